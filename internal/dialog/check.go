package dialog

import "strings"

// CheckCode is the stub challenge checker: it accepts code that contains a
// return statement and differs from the starter once whitespace and case
// are stripped. It is not a correctness oracle; real execution and
// grading are out of scope.
func CheckCode(code, starterCode string) bool {
	if !strings.Contains(code, "return") {
		return false
	}
	return normalize(code) != normalize(starterCode)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
