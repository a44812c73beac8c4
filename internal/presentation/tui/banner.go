package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`    _         _                        _        `,
	`   / \  _   _| |_ ___  _ __ ___   __ _| |_ __ _ `,
	`  / _ \| | | | __/ _ \| '_ ' _ \ / _' | __/ _' |`,
	` / ___ \ |_| | || (_) | | | | | | (_| | || (_| |`,
	`/_/   \_\__,_|\__\___/|_| |_| |_|\__,_|\__\__,_|`,
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa"}

// PrintBanner writes the service banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
