package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the cellview banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"            _ _       _               ", "#38bdf8"},
		{"   ___ ___ | | |_   _(_) _____      __", "#60a5fa"},
		{"  / __/ _ \\| | \\ \\ / / |/ _ \\ \\ /\\ / /", "#818cf8"},
		{" | (_|  __/| | |\\ V /| |  __/\\ V  V / ", "#a78bfa"},
		{"  \\___\\___||_|_| \\_/ |_|\\___| \\_/\\_/  ", "#c084fc"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
