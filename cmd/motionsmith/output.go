package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("212"))

// printResult writes the response text to stdout. With --pretty on a
// terminal, the markdown is rendered with glamour; otherwise it is printed
// raw so the output stays pipeable.
func printResult(text string) error {
	if pretty && isatty.IsTerminal(os.Stdout.Fd()) {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			out, renderErr := renderer.Render(text)
			if renderErr == nil {
				fmt.Print(headerStyle.Render("motionsmith") + "\n" + out)
				return nil
			}
		}
		// Fall through to raw output on renderer failure.
	}

	fmt.Println(text)
	return nil
}
