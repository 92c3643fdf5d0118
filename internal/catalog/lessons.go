package catalog

// defaultLessons returns the lesson catalog in declaration order.
func defaultLessons() []Lesson {
	return []Lesson{
		{
			ID:            "variables-1",
			Title:         "Introduction to Variables",
			Description:   "Learn how to store and use data in your programs",
			Topic:         "Variables",
			Difficulty:    DifficultyBeginner,
			XPReward:      50,
			RequiredLevel: 1,
			Explanation: "Variables are containers for storing data values. Think of them like " +
				"boxes that hold information you want to use later.",
			Example: `let name = "Alice";
let age = 25;
let isStudent = true;

console.log(name); // Output: Alice`,
			Quiz: []QuizQuestion{
				{
					Text:          "What keyword is used to declare a variable in JavaScript?",
					Options:       []string{"var", "let", "const", "All of the above"},
					CorrectAnswer: 3,
				},
			},
		},
		{
			ID:            "functions-1",
			Title:         "Creating Functions",
			Description:   "Master the art of writing reusable code blocks",
			Topic:         "Functions",
			Difficulty:    DifficultyBeginner,
			XPReward:      60,
			RequiredLevel: 1,
			Explanation: "Functions are reusable blocks of code that perform a specific task. " +
				"They help you organize your code and avoid repetition.",
			Example: `function greet(name) {
  return "Hello, " + name + "!";
}

console.log(greet("Bob")); // Output: Hello, Bob!`,
			Quiz: []QuizQuestion{
				{
					Text:          "What keyword is used to define a function?",
					Options:       []string{"func", "function", "def", "method"},
					CorrectAnswer: 1,
				},
			},
		},
		{
			ID:            "conditionals-1",
			Title:         "If Statements",
			Description:   "Make decisions in your code with conditionals",
			Topic:         "Conditionals",
			Difficulty:    DifficultyBeginner,
			XPReward:      55,
			RequiredLevel: 2,
			Explanation: "Conditional statements allow your code to make decisions. The if " +
				"statement executes code only when a condition is true.",
			Example: `let score = 85;

if (score >= 80) {
  console.log("Great job!");
} else {
  console.log("Keep practicing!");
}`,
			Quiz: []QuizQuestion{
				{
					Text:          "Which operator checks if two values are equal?",
					Options:       []string{"=", "==", "===", "equals"},
					CorrectAnswer: 2,
				},
			},
		},
		{
			ID:            "loops-1",
			Title:         "Understanding Loops",
			Description:   "Repeat actions efficiently with for and while loops",
			Topic:         "Loops",
			Difficulty:    DifficultyIntermediate,
			XPReward:      70,
			RequiredLevel: 3,
			Explanation: "Loops allow you to repeat a block of code multiple times. This is " +
				"useful when you need to perform the same action many times.",
			Example: `for (let i = 0; i < 5; i++) {
  console.log("Count: " + i);
}

// Output: Count: 0, 1, 2, 3, 4`,
			Quiz: []QuizQuestion{
				{
					Text:          "What does i++ do in a for loop?",
					Options:       []string{"Decreases i by 1", "Increases i by 1", "Multiplies i by 1", "Nothing"},
					CorrectAnswer: 1,
				},
			},
		},
		{
			ID:            "arrays-1",
			Title:         "Working with Arrays",
			Description:   "Store and manipulate lists of data",
			Topic:         "Arrays",
			Difficulty:    DifficultyIntermediate,
			XPReward:      65,
			RequiredLevel: 4,
			Explanation: "Arrays are used to store multiple values in a single variable. Each " +
				"value has an index starting from 0.",
			Example: `let fruits = ["apple", "banana", "orange"];

console.log(fruits[0]); // Output: apple
fruits.push("grape"); // Add to end
console.log(fruits.length); // Output: 4`,
			Quiz: []QuizQuestion{
				{
					Text:          "What is the index of the first element in an array?",
					Options:       []string{"1", "0", "-1", "It depends"},
					CorrectAnswer: 1,
				},
			},
		},
	}
}
