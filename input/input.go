// Package input requests missing information from the user.
package input

import (
	"context"
	"fmt"
	"github.com/lefinal/meh"
	"github.com/manifoldco/promptui"
	"io"
	"os"
	"strings"
)

// Input requests information from the user.
type Input interface {
	// RequestConfirm prompts the user with the given one for confirmation. If no
	// input was provided, the given default value will be returned.
	RequestConfirm(ctx context.Context, prompt string, defaultValue bool) (bool, error)

	// Request prompts the user with the given one for an input. The input is
	// requested again until the validate function returns no error.
	Request(ctx context.Context, prompt string, validate func(s string) error) (string, error)

	// RequestSelection prompts the user to select one of the given options. The
	// index and value of the selected option are returned.
	RequestSelection(ctx context.Context, prompt string, options []string) (int, string, error)
}

// Stdin is an Input reading from the terminal.
type Stdin struct {
	// Out is where error messages for invalid values are written to. If not set,
	// os.Stdout is used.
	Out io.Writer
}

func (input *Stdin) out() io.Writer {
	if input.Out == nil {
		return os.Stdout
	}
	return input.Out
}

func (input *Stdin) RequestConfirm(ctx context.Context, prompt string, defaultValue bool) (bool, error) {
	defaultValueStr := "n"
	if defaultValue {
		defaultValueStr = "y"
	}
	for {
		myPrompt := promptui.Prompt{
			Label:     prompt,
			Default:   defaultValueStr,
			IsConfirm: true,
		}
		resultStr, err := myPrompt.Run()
		if err == nil || err.Error() == "" {
			switch strings.ToLower(resultStr) {
			case "y", "yes":
				return true, nil
			case "n", "no":
				return false, nil
			case "":
				return defaultValue, nil
			}
		}
		// Error or invalid value.
		if shouldAbortPrompt(ctx, err) {
			return false, meh.NewBadInputErr("canceled", nil)
		}
		_, _ = fmt.Fprintln(input.out(), createErrorMessage("invalid value entered", err, resultStr))
	}
}

func (input *Stdin) Request(ctx context.Context, prompt string, validate func(s string) error) (string, error) {
	for {
		myPrompt := promptui.Prompt{
			Label:    prompt,
			Validate: validate,
		}
		result, err := myPrompt.Run()
		if err == nil {
			return result, nil
		}
		if shouldAbortPrompt(ctx, err) {
			return "", meh.NewBadInputErr("canceled", nil)
		}
		_, _ = fmt.Fprintln(input.out(), createErrorMessage("invalid value entered", err, result))
	}
}

func (input *Stdin) RequestSelection(ctx context.Context, prompt string, options []string) (int, string, error) {
	for {
		myPrompt := promptui.Select{
			Label: prompt,
			Items: options,
		}
		resultIndex, result, err := myPrompt.Run()
		if err == nil {
			return resultIndex, result, nil
		}
		if shouldAbortPrompt(ctx, err) {
			return 0, "", meh.NewBadInputErr("canceled", nil)
		}
		_, _ = fmt.Fprintln(input.out(), createErrorMessage("invalid value entered", err, result))
	}
}

// shouldAbortPrompt reports whether the context is done or the user interrupted
// the prompt.
func shouldAbortPrompt(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if err == promptui.ErrInterrupt || err == promptui.ErrEOF || err == promptui.ErrAbort {
		return true
	}
	return false
}

func createErrorMessage(message string, err error, value string) string {
	errDescription := message
	if err != nil && err.Error() != "" {
		errDescription += fmt.Sprintf(" (%s)", err.Error())
	}
	if value != "" {
		errDescription += fmt.Sprintf(": %s", value)
	}
	return errDescription
}
