package catalog

// defaultChallenges returns the challenge catalog in declaration order.
func defaultChallenges() []Challenge {
	return []Challenge{
		{
			ID:            "challenge-1",
			Title:         "Double the Number",
			Description:   "Write a function that doubles a number",
			Topic:         "Functions",
			Difficulty:    DifficultyEasy,
			XPReward:      80,
			RequiredLevel: 2,
			Problem: "Create a function called `doubleNumber` that takes a number as input " +
				"and returns that number multiplied by 2.",
			StarterCode: `function doubleNumber(num) {
  // Your code here

}

// Test your function
console.log(doubleNumber(5)); // Should output: 10`,
			Solution: `function doubleNumber(num) {
  return num * 2;
}`,
			TestCases: []TestCase{
				{Input: "5", Expected: "10"},
				{Input: "0", Expected: "0"},
				{Input: "-3", Expected: "-6"},
			},
			Hints: []string{
				"Use the * operator to multiply",
				"Remember to use the return keyword",
			},
		},
		{
			ID:            "challenge-2",
			Title:         "Even or Odd",
			Description:   "Determine if a number is even or odd",
			Topic:         "Conditionals",
			Difficulty:    DifficultyEasy,
			XPReward:      85,
			RequiredLevel: 3,
			Problem: "Create a function called `isEven` that returns true if a number is " +
				"even, and false if it is odd.",
			StarterCode: `function isEven(num) {
  // Your code here

}

// Test your function
console.log(isEven(4)); // Should output: true
console.log(isEven(7)); // Should output: false`,
			Solution: `function isEven(num) {
  return num % 2 === 0;
}`,
			TestCases: []TestCase{
				{Input: "4", Expected: "true"},
				{Input: "7", Expected: "false"},
				{Input: "0", Expected: "true"},
			},
			Hints: []string{
				"Use the modulo operator (%) to find the remainder",
				"If num % 2 equals 0, the number is even",
			},
		},
		{
			ID:            "challenge-3",
			Title:         "Sum Array",
			Description:   "Calculate the sum of all numbers in an array",
			Topic:         "Arrays & Loops",
			Difficulty:    DifficultyMedium,
			XPReward:      100,
			RequiredLevel: 5,
			Problem: "Create a function called `sumArray` that takes an array of numbers " +
				"and returns their sum.",
			StarterCode: `function sumArray(numbers) {
  // Your code here

}

// Test your function
console.log(sumArray([1, 2, 3, 4])); // Should output: 10`,
			Solution: `function sumArray(numbers) {
  let sum = 0;
  for (let i = 0; i < numbers.length; i++) {
    sum += numbers[i];
  }
  return sum;
}`,
			TestCases: []TestCase{
				{Input: "[1, 2, 3, 4]", Expected: "10"},
				{Input: "[0, 0, 0]", Expected: "0"},
				{Input: "[5, -3, 2]", Expected: "4"},
			},
			Hints: []string{
				"Initialize a variable to store the sum",
				"Use a for loop to iterate through the array",
				"Add each element to your sum variable",
			},
		},
		{
			ID:            "challenge-4",
			Title:         "Reverse String",
			Description:   "Reverse the characters in a string",
			Topic:         "Strings",
			Difficulty:    DifficultyMedium,
			XPReward:      95,
			RequiredLevel: 4,
			Problem: "Create a function called `reverseString` that takes a string and " +
				"returns it reversed.",
			StarterCode: `function reverseString(str) {
  // Your code here

}

// Test your function
console.log(reverseString("hello")); // Should output: "olleh"`,
			Solution: `function reverseString(str) {
  return str.split('').reverse().join('');
}`,
			TestCases: []TestCase{
				{Input: `"hello"`, Expected: `"olleh"`},
				{Input: `"code"`, Expected: `"edoc"`},
				{Input: `"a"`, Expected: `"a"`},
			},
			Hints: []string{
				"You can convert a string to an array using split()",
				"Arrays have a reverse() method",
				"Use join() to convert the array back to a string",
			},
		},
		{
			ID:            "challenge-5",
			Title:         "FizzBuzz",
			Description:   "The classic FizzBuzz challenge",
			Topic:         "Logic",
			Difficulty:    DifficultyHard,
			XPReward:      120,
			RequiredLevel: 6,
			Problem: "Create a function that prints numbers from 1 to n. For multiples of 3, " +
				"print \"Fizz\" instead of the number. For multiples of 5, print \"Buzz\". " +
				"For multiples of both 3 and 5, print \"FizzBuzz\".",
			StarterCode: `function fizzBuzz(n) {
  // Your code here

}

// Test your function
fizzBuzz(15);`,
			Solution: `function fizzBuzz(n) {
  for (let i = 1; i <= n; i++) {
    if (i % 15 === 0) {
      console.log("FizzBuzz");
    } else if (i % 3 === 0) {
      console.log("Fizz");
    } else if (i % 5 === 0) {
      console.log("Buzz");
    } else {
      console.log(i);
    }
  }
}`,
			TestCases: []TestCase{
				{Input: "3", Expected: "Fizz"},
				{Input: "5", Expected: "Buzz"},
				{Input: "15", Expected: "FizzBuzz"},
			},
			Hints: []string{
				"Check divisibility by 15 first",
				"Use the modulo operator to test multiples",
				"Loop from 1 up to and including n",
			},
		},
	}
}
