package e2e

import (
	"bytes"
	"context"
	"github.com/lefinal/acegen/app"
	"github.com/lefinal/acegen/logging"
	"github.com/lefinal/meh"
	"github.com/lefinal/meh/mehlog"
	"github.com/lefinal/zaprec"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeInput answers requests with preset values.
type fakeInput struct {
	confirm   bool
	answers   []string
	selection string
	requested []string
}

func (input *fakeInput) RequestConfirm(_ context.Context, prompt string, _ bool) (bool, error) {
	input.requested = append(input.requested, prompt)
	return input.confirm, nil
}

func (input *fakeInput) Request(_ context.Context, prompt string, validate func(s string) error) (string, error) {
	input.requested = append(input.requested, prompt)
	for len(input.answers) > 0 {
		answer := input.answers[0]
		input.answers = input.answers[1:]
		if validate(answer) == nil {
			return answer, nil
		}
	}
	return "", meh.NewBadInputErr("canceled", nil)
}

func (input *fakeInput) RequestSelection(_ context.Context, prompt string, options []string) (int, string, error) {
	input.requested = append(input.requested, prompt)
	for i, option := range options {
		if option == input.selection {
			return i, option, nil
		}
	}
	return 0, "", meh.NewBadInputErr("canceled", nil)
}

type result struct {
	err error
	out string
}

func (r result) lines() []string {
	return strings.Split(strings.TrimSpace(r.out), "\n")
}

func run(t *testing.T, input *fakeInput, args ...string) result {
	logger, records := zaprec.NewRecorder(zap.DebugLevel)
	t.Cleanup(func() {
		if t.Failed() {
			logger, _ = logging.NewLogger(zap.DebugLevel)
			records.DumpToLogger(logger)
		}
	})
	if input == nil {
		input = &fakeInput{}
	}
	var out bytes.Buffer
	err := app.RunCLI(context.Background(), logger, app.IO{
		Input: input,
		Out:   &out,
	}, append([]string{"acegen"}, args...))
	if err != nil {
		mehlog.Log(logger, err)
	}
	return result{err: err, out: out.String()}
}

func readFile(t *testing.T, contextDir string, relFilename string) string {
	content, err := os.ReadFile(filepath.Join(contextDir, filepath.FromSlash(relFilename)))
	if err != nil {
		t.Fatalf("read %s: %v", relFilename, err)
	}
	return string(content)
}

func writeFile(t *testing.T, contextDir string, relFilename string, content string) {
	filename := filepath.Join(contextDir, filepath.FromSlash(relFilename))
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Fatalf("create dir for %s: %v", relFilename, err)
	}
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", relFilename, err)
	}
}
