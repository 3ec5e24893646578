// Package validate is for validating parsed files. It provides a Report that
// contains warnings and errors during validation as well as helper methods in
// the form of Assertion.
package validate

import (
	"github.com/lefinal/nulls"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"path"
	"strings"
)

// Path represents the path from some root to a field.
type Path = field.Path

// NewPath creates a root Path with the given name.
func NewPath(name string, moreNames ...string) *Path {
	return field.NewPath(name, moreNames...)
}

// Assertion returns a non-empty error message if the given value does not
// satisfy the requirements.
type Assertion[T any] func(val T) string

// AssertNotEmpty is an Assertion for the value not being equal to its empty value.
func AssertNotEmpty[T comparable]() Assertion[T] {
	return func(val T) string {
		var empty T
		if val == empty {
			return "required"
		}
		return ""
	}
}

// AssertRelativeDir is an Assertion for the value being a slash-separated
// directory inside the project directory.
func AssertRelativeDir() Assertion[string] {
	return func(val string) string {
		if path.IsAbs(val) || strings.HasPrefix(val, `\`) || (len(val) > 1 && val[1] == ':') {
			return "must be relative to the project directory"
		}
		cleaned := path.Clean(val)
		if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			return "must not leave the project directory"
		}
		return ""
	}
}

// AssertFileExtension is an Assertion for the value being a file extension with
// leading dot like .ts.
func AssertFileExtension() Assertion[string] {
	return func(val string) string {
		if !strings.HasPrefix(val, ".") || len(val) < 2 {
			return "must start with a dot followed by the extension"
		}
		if strings.ContainsAny(val, `/\ `) {
			return "must not contain separators or whitespace"
		}
		return ""
	}
}

// AssertIfOptionalStringSet checks the given Assertion-list if the value is set.
func AssertIfOptionalStringSet(assertions ...Assertion[string]) Assertion[nulls.String] {
	return func(val nulls.String) string {
		if len(assertions) == 0 {
			return "internal error: no assertions"
		}
		if !val.Valid {
			return ""
		}
		for _, assertion := range assertions {
			errMessage := assertion(val.String)
			if errMessage != "" {
				return errMessage
			}
		}
		return ""
	}
}

// ForField checks the given Assertion-list on the provided value and reports the
// first encountered error, if any, to the Reporter.
func ForField[T any](reporter *Reporter, path *Path, val T, assertion Assertion[T], moreAssertions ...Assertion[T]) {
	assertions := append([]Assertion[T]{assertion}, moreAssertions...)
	reporter.NextField(path, val)
	for _, assertion := range assertions {
		errMessage := assertion(val)
		if errMessage != "" {
			reporter.Error(errMessage)
			return
		}
	}
}
