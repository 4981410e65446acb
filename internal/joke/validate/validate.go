// Package validate holds the field rules shared by the create path and the
// submission preview. Both must agree exactly, so the rules live in one place.
package validate

import "unicode/utf8"

const (
	minNameLength    = 3
	minContentLength = 10
)

// JokeName returns an error message for an unacceptable name, or "" when the
// name is valid.
func JokeName(name string) string {
	if utf8.RuneCountInString(name) < minNameLength {
		return "That joke's name is too short"
	}
	return ""
}

// JokeContent returns an error message for unacceptable content, or "" when
// the content is valid.
func JokeContent(content string) string {
	if utf8.RuneCountInString(content) < minContentLength {
		return "That joke was too short"
	}
	return ""
}
