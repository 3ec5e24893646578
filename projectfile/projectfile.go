// Package projectfile parses the project configuration file.
package projectfile

import (
	"encoding/json"
	"github.com/lefinal/acegen/validate"
	"github.com/lefinal/meh"
	"github.com/lefinal/nulls"
	"os"
	k8syaml "sigs.k8s.io/yaml"
	"strings"
)

// Defaults for unset fields in Project.
const (
	DefaultActionsDir    = "app/actions"
	DefaultStubsDir      = "stubs"
	DefaultFileExtension = ".ts"
)

// Project is the project configuration file.
type Project struct {
	// ActionsDir is the directory where actions are generated.
	ActionsDir nulls.String `json:"actionsDir"`
	// StubsDir is the directory holding customized stubs.
	StubsDir nulls.String `json:"stubsDir"`
	// FileExtension of generated files, e.g., .ts.
	FileExtension nulls.String `json:"fileExtension"`
}

// Settings are the effective settings after applying defaults to a Project.
type Settings struct {
	ActionsDir    string
	StubsDir      string
	FileExtension string
}

// DefaultSettings returns the Settings for an empty Project.
func DefaultSettings() Settings {
	return Project{}.Settings()
}

// Settings applies defaults to unset fields.
func (project Project) Settings() Settings {
	settings := Settings{
		ActionsDir:    DefaultActionsDir,
		StubsDir:      DefaultStubsDir,
		FileExtension: DefaultFileExtension,
	}
	if project.ActionsDir.Valid {
		settings.ActionsDir = project.ActionsDir.String
	}
	if project.StubsDir.Valid {
		settings.StubsDir = project.StubsDir.String
	}
	if project.FileExtension.Valid {
		settings.FileExtension = project.FileExtension.String
	}
	return settings
}

// Validate the Project.
func (project Project) Validate() *validate.Report {
	reporter := validate.NewReporter()
	validate.ForField(reporter, validate.NewPath("actionsDir"), project.ActionsDir,
		validate.AssertIfOptionalStringSet(validate.AssertNotEmpty[string](), validate.AssertRelativeDir()))
	validate.ForField(reporter, validate.NewPath("stubsDir"), project.StubsDir,
		validate.AssertIfOptionalStringSet(validate.AssertNotEmpty[string](), validate.AssertRelativeDir()))
	validate.ForField(reporter, validate.NewPath("fileExtension"), project.FileExtension,
		validate.AssertIfOptionalStringSet(validate.AssertFileExtension()))
	return reporter.Report()
}

// ParseProject parses and validates the given raw JSON.
func ParseProject(rawProject json.RawMessage) (Project, error) {
	var project Project
	err := json.Unmarshal(rawProject, &project)
	if err != nil {
		return Project{}, meh.NewBadInputErrFromErr(err, "unmarshal project", nil)
	}
	err = project.Validate().Err()
	if err != nil {
		return Project{}, meh.Wrap(err, "validate project", nil)
	}
	return project, nil
}

// FromFile reads the project file with the given filename. YAML and JSON files
// are supported.
func FromFile(filename string) (Project, error) {
	// Read file contents.
	rawProject, err := os.ReadFile(filename)
	if err != nil {
		return Project{}, meh.NewBadInputErrFromErr(err, "read project file", meh.Details{"filename": filename})
	}
	var rawProjectJSON json.RawMessage
	// If YAML, we need to convert to JSON.
	if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		rawProjectJSON, err = k8syaml.YAMLToJSON(rawProject)
		if err != nil {
			return Project{}, meh.NewBadInputErrFromErr(err, "yaml to json", meh.Details{"filename": filename})
		}
	} else if strings.HasSuffix(filename, ".json") {
		rawProjectJSON = rawProject
	} else {
		return Project{}, meh.NewBadInputErr("unsupported file extension", meh.Details{"filename": filename})
	}
	// Parse.
	project, err := ParseProject(rawProjectJSON)
	if err != nil {
		return Project{}, meh.Wrap(err, "parse project", meh.Details{"filename": filename})
	}
	return project, nil
}
