package main

import (
	"fmt"
	"os"
)

// colorOn gates ANSI sequences in CLI output. Flipped off by --no-color or
// the NO_COLOR environment variable.
var colorOn = true

func disableColor() {
	colorOn = false
}

func paint(ansi, s string) string {
	if !colorOn {
		return s
	}
	return ansi + s + "\033[0m"
}

const banner = `
  ┬ ┬┬ ┬┌─┐
  ├─┤│ │├┤
  ┴ ┴└─┘└─┘
`

func printBanner() {
	fmt.Print(banner)
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", paint("\033[32m", "✓"), fmt.Sprintf(format, args...))
}

func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", paint("\033[31m", "✗"), fmt.Sprintf(format, args...))
}
