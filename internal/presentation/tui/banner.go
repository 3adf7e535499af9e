package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  _                                      ", "#818cf8"},
	{" | |___      _____  __      ____ _ _   _ ", "#a78bfa"},
	{" | __\\ \\ /\\ / / _ \\ \\ \\ /\\ / / _` | | | |", "#c084fc"},
	{" | |_ \\ V  V / (_) | \\ V  V / (_| | |_| |", "#e879f9"},
	{"  \\__| \\_/\\_/ \\___/   \\_/\\_/ \\__,_|\\__, |", "#f472b6"},
	{"                                    |___/ ", "#fb7185"},
}

// PrintBanner writes the twoway ASCII art banner to w.
func PrintBanner(w io.Writer) {
	PrintBannerWith(w, termenv.ColorProfile())
}

// PrintBannerWith is PrintBanner with an explicit color profile.
func PrintBannerWith(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
