// Package errors provides structured, actionable error messages for the
// hue CLI and tooling.
//
// Each error carries a code (e.g. "H120") mapping to a registered message,
// an optional detail, and a suggestion on how to fix the problem:
//
//	err := errors.New("H141").
//	    WithDetail("No hue.yaml found in " + dir).
//	    WithSuggestion("Create hue.yaml in your project root")
//
//	fmt.Println(err.Format())
package errors

import "fmt"

// Category groups errors by the subsystem that raised them.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryTailwind Category = "tailwind"
	CategoryDev      Category = "dev"
	CategoryDeploy   Category = "deploy"
	CategoryCLI      Category = "cli"
)

// HueError is a structured error with a code, detail, and fix suggestion.
type HueError struct {
	// Code is a unique error identifier (e.g. "H120").
	Code string

	// Category is the subsystem the error belongs to.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL links to documentation covering the error, if any exists.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HueError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HueError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *HueError) WithDetail(d string) *HueError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HueError) WithSuggestion(s string) *HueError {
	e.Suggestion = s
	return e
}

// WithDocURL links documentation to the error.
func (e *HueError) WithDocURL(url string) *HueError {
	e.DocURL = url
	return e
}

// Wrap wraps another error.
func (e *HueError) Wrap(err error) *HueError {
	e.Wrapped = err
	return e
}

// New creates a HueError from a registered error code.
func New(code string) *HueError {
	template, ok := registry[code]
	if !ok {
		return &HueError{Code: code, Message: "Unknown error"}
	}
	return &HueError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a HueError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *HueError {
	return &HueError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a HueError with the given code.
// HueErrors pass through unchanged.
func FromError(err error, code string) *HueError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HueError); ok {
		return he
	}
	return New(code).Wrap(err)
}
