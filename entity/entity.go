// Package entity derives class names and directory paths from raw names like
// users/update_user_from_form.
package entity

import (
	"fmt"
	"github.com/lefinal/acegen/naming"
	"github.com/lefinal/meh"
	"regexp"
	"strings"
)

// ErrInvalidName is the meh.Code for names that cannot be turned into an
// Entity.
const ErrInvalidName meh.Code = "invalid-name"

// Separator separates directories in Entity.Path.
const Separator = "/"

var segmentRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// sourceExtensions are stripped from the last segment so that
// users/get_user.ts and users/get_user derive the same Entity.
var sourceExtensions = []string{".ts", ".js"}

// Entity is the class name and containing directory of a generated file.
type Entity struct {
	// Name is the PascalCase class name.
	Name string
	// Path is the directory relative to the actions root. It is empty if the raw
	// name has no directories.
	Path string
}

// IsEmpty returns true if neither name nor path is set.
func (e Entity) IsEmpty() bool {
	return e.Name == "" && e.Path == ""
}

// Filename returns the name of the file without extension, e.g.,
// update_user_from_form for UpdateUserFromForm.
func (e Entity) Filename() string {
	return naming.Snake(e.Name)
}

// Dir returns the directory for nesting other entities inside this one, i.e.,
// the path joined with the snake-cased name.
func (e Entity) Dir() string {
	if e.Name == "" {
		return e.Path
	}
	if e.Path == "" {
		return e.Filename()
	}
	return e.Path + Separator + e.Filename()
}

// String returns the path and class name, e.g., users/UpdateUserFromForm.
func (e Entity) String() string {
	if e.Path == "" {
		return e.Name
	}
	return e.Path + Separator + e.Name
}

// Derive splits the given raw name at path separators. The last segment is
// converted to the class name while all others form the path. Both slashes and
// backslashes are accepted as separators.
func Derive(raw string) (Entity, error) {
	if raw == "" {
		return Entity{}, invalidNameErr("name must not be empty", raw, "")
	}
	normalized := strings.ReplaceAll(raw, `\`, Separator)
	segments := strings.Split(normalized, Separator)
	last := len(segments) - 1
	for _, ext := range sourceExtensions {
		segments[last] = strings.TrimSuffix(segments[last], ext)
	}
	for _, segment := range segments {
		if !segmentRegex.MatchString(segment) {
			return Entity{}, invalidNameErr(fmt.Sprintf("invalid segment %q", segment), raw, segment)
		}
	}
	return Entity{
		Name: naming.Pascal(segments[last]),
		Path: strings.Join(segments[:last], Separator),
	}, nil
}

// DeriveOptional is like Derive but returns an empty Entity if raw is empty.
func DeriveOptional(raw string) (Entity, error) {
	if raw == "" {
		return Entity{}, nil
	}
	return Derive(raw)
}

func invalidNameErr(message string, raw string, segment string) error {
	return &meh.Error{
		Code:    ErrInvalidName,
		Message: message,
		Details: meh.Details{
			"name":    raw,
			"segment": segment,
		},
	}
}
