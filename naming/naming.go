// Package naming converts identifiers between cases and English number forms.
// It is used for deriving class names and file names as well as from within
// stubs.
package naming

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"regexp"
	"text/template"
)

// Pascal converts the given identifier to PascalCase, e.g., store_user to
// StoreUser.
func Pascal(s string) string {
	return strcase.ToCamel(s)
}

// Camel converts the given identifier to camelCase.
func Camel(s string) string {
	return strcase.ToLowerCamel(s)
}

var (
	acronymBoundaryRegex = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundaryRegex    = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// Snake converts the given identifier to snake_case, e.g., StoreUser to
// store_user. Acronyms form their own word, so HTTPClient becomes http_client.
func Snake(s string) string {
	s = acronymBoundaryRegex.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundaryRegex.ReplaceAllString(s, "${1}_${2}")
	return strcase.ToSnake(s)
}

// Kebab converts the given identifier to kebab-case.
func Kebab(s string) string {
	return strcase.ToKebab(s)
}

// Plural returns the English plural of the given word. The word is expected
// to be singular: irregular plurals like people are pluralized again, so use
// Plural(Singular(word)) for input of unknown number.
func Plural(word string) string {
	return inflection.Plural(word)
}

// Singular returns the English singular of the given word.
func Singular(word string) string {
	return inflection.Singular(word)
}

// FuncMap returns the naming functions for usage in templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"pascal":   Pascal,
		"camel":    Camel,
		"snake":    Snake,
		"kebab":    Kebab,
		"plural":   Plural,
		"singular": Singular,
	}
}
