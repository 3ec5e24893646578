package validate

import (
	"fmt"
	"github.com/lefinal/meh"
)

// Reporter is used as syntactic sugar in validation. Set the next field using
// NextField and then report errors with Error. The final Report can be retrieved
// via Report.
type Reporter struct {
	fieldPath  *Path
	fieldValue any
	report     *Report
}

// Issue is a single problem with a field.
type Issue struct {
	Field    string
	BadValue any
	Detail   string
}

// NewIssue creates a new Issue for the given field.
func NewIssue(field *Path, badValue any, detail string) Issue {
	return Issue{
		Field:    field.String(),
		BadValue: badValue,
		Detail:   detail,
	}
}

func (issue Issue) String() string {
	return fmt.Sprintf("%s: %s (got %v)", issue.Field, issue.Detail, issue.BadValue)
}

// Report holds errors from validation.
type Report struct {
	Errors []Issue
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		Errors: make([]Issue, 0),
	}
}

// AddError adds the given error.
func (r *Report) AddError(issue Issue) {
	r.Errors = append(r.Errors, issue)
}

// Err returns a meh.ErrBadInput error listing all errors of the report or nil
// if there are none.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	issues := make([]string, 0, len(r.Errors))
	for _, issue := range r.Errors {
		issues = append(issues, issue.String())
	}
	return meh.NewBadInputErr(fmt.Sprintf("validation failed with %d error(s): %s", len(r.Errors), issues[0]),
		meh.Details{"errors": issues})
}

// NextField sets the field that calls to Error will use.
func (r *Reporter) NextField(fieldPath *Path, fieldValue any) {
	r.fieldPath = fieldPath
	r.fieldValue = fieldValue
}

// Error the given error for the last field that was set via NextField.
func (r *Reporter) Error(errMsg string) {
	r.report.AddError(NewIssue(r.fieldPath, r.fieldValue, errMsg))
}

// Report returns the final Report that contains all issues.
func (r *Reporter) Report() *Report {
	return r.report
}

// NewReporter creates a new Reporter that is ready to use.
func NewReporter() *Reporter {
	return &Reporter{
		fieldPath:  nil,
		fieldValue: nil,
		report:     NewReport(),
	}
}
