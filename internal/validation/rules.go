// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// TitleMinLength and TitleMaxLength bound post titles, inclusive.
	TitleMinLength = 12
	TitleMaxLength = 100

	// BodyMinWords and BodyMaxWords bound post bodies, inclusive.
	BodyMinWords = 30
	BodyMaxWords = 100

	// CommentMaxWords bounds comment bodies.
	CommentMaxWords = 100
)

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ValidateCredentials checks registration input. Uniqueness is left to the
// store; only emptiness is rejected here.
func ValidateCredentials(username, password string) error {
	if IsBlank(username) || IsBlank(password) {
		return fmt.Errorf("can not accept an empty username or password")
	}
	return nil
}

// ValidateUsername checks a username update. Uniqueness is left to the store.
func ValidateUsername(username string) error {
	if IsBlank(username) {
		return fmt.Errorf("can not take empty username")
	}
	return nil
}

// ValidatePostTitle checks post title constraints: non-blank and length
// within [TitleMinLength, TitleMaxLength] characters.
func ValidatePostTitle(title string) error {
	if IsBlank(title) {
		return fmt.Errorf("title can not be empty")
	}
	n := utf8.RuneCountInString(title)
	if n < TitleMinLength || n > TitleMaxLength {
		return fmt.Errorf("title must be between %d and %d characters", TitleMinLength, TitleMaxLength)
	}
	return nil
}

// ValidatePostBody checks post body constraints: word count within
// [BodyMinWords, BodyMaxWords].
func ValidatePostBody(body string) error {
	n := WordCount(body)
	if n < BodyMinWords || n > BodyMaxWords {
		return fmt.Errorf("post body must be between %d and %d words", BodyMinWords, BodyMaxWords)
	}
	return nil
}

// ValidateCommentBody checks comment body constraints: non-blank and at most
// CommentMaxWords words.
func ValidateCommentBody(body string) error {
	if IsBlank(body) {
		return fmt.Errorf("comment can not be empty")
	}
	if WordCount(body) > CommentMaxWords {
		return fmt.Errorf("comment must be at most %d words", CommentMaxWords)
	}
	return nil
}
