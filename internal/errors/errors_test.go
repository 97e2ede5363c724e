package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New("H141")

	if err.Code != "H141" {
		t.Errorf("Code = %q, want H141", err.Code)
	}
	if err.Category != CategoryConfig {
		t.Errorf("Category = %q, want config", err.Category)
	}
	if err.Message == "" {
		t.Error("registered code produced empty message")
	}
	if got := err.Error(); !strings.HasPrefix(got, "H141: ") {
		t.Errorf("Error() = %q, want H141 prefix", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("H999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
}

func TestBuilders(t *testing.T) {
	err := New("H203").
		WithDetail("exit status 1").
		WithSuggestion("Run 'hue css' for the full output")

	if err.Detail != "exit status 1" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Suggestion == "" {
		t.Error("Suggestion not set")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := New("H402").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is failed to find wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	he := New("H120")
	if got := FromError(he, "H141"); got != he {
		t.Error("FromError should pass HueError through unchanged")
	}

	plain := stderrors.New("boom")
	wrapped := FromError(plain, "H141")
	if wrapped.Code != "H141" {
		t.Errorf("Code = %q, want H141", wrapped.Code)
	}
	if !stderrors.Is(wrapped, plain) {
		t.Error("wrapped error lost its cause")
	}

	if FromError(nil, "H141") != nil {
		t.Error("FromError(nil) should be nil")
	}
}

func TestFormatWithoutColors(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("H201").
		WithSuggestion("Run 'hue css' to download it")
	out := err.Format()

	for _, want := range []string{"ERROR", "H201", err.Message, "Hint:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() contains ANSI codes after DisableColors")
	}
}

func TestFormatDocsLine(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("H401").WithDocURL("https://hue.dev/docs/deploy").Format()
	if !strings.Contains(out, "Docs: https://hue.dev/docs/deploy") {
		t.Errorf("Format() missing docs line:\n%s", out)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("H301").Wrap(stderrors.New("address in use"))
	got := err.FormatCompact()

	if !strings.Contains(got, "H301") || !strings.Contains(got, "address in use") {
		t.Errorf("FormatCompact() = %q", got)
	}
	if strings.Contains(got, "\n") {
		t.Error("FormatCompact() should be a single line")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 20)
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if wrapText("", 20) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}
