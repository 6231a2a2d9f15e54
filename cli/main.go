// Command cli is a small demo that exercises the row buffer: it builds a
// buffer from settings, writes mixed-width text into it, and prints the
// display plus a per-cell dump of one row.
package main

import (
	"flag"
	"fmt"
	"os"

	"termbuf/internal/config"
	"termbuf/internal/logger"
	"termbuf/internal/rowbuf"
)

func main() {
	configPath := flag.String("config", "", "path to settings.yaml (default: ~/.config/termbuf/settings.yaml)")
	debug := flag.Bool("debug", false, "debug-level logging")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "settings path: %v\n", err)
			os.Exit(1)
		}
		path = p
	}

	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load settings: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(*debug || settings.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	fill := rowbuf.DefaultAttributes()
	fill.Fg = settings.DefaultFg
	fill.Bg = settings.DefaultBg

	buf, err := rowbuf.NewTextBuffer(settings.Columns, settings.Lines, settings.MaxHistory, fill)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create buffer: %v\n", err)
		os.Exit(1)
	}

	green := fill
	green.Fg = "green"
	bold := fill
	bold.Bold = true

	// Narrow text, CJK wide pairs, and a combining mark.
	if _, err := buf.WriteAt(0, 0, "termbuf demo", bold); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if _, err := buf.WriteAt(1, 0, "wide: 世界", green); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if _, err := buf.WriteAt(2, 0, "combining: é", fill); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("buffer %s (%dx%d)\n", buf.ID(), buf.Columns(), buf.Lines())
	for y, line := range buf.Display() {
		if line == "" {
			continue
		}
		fmt.Printf("%2d | %s\n", y, line)
	}

	row, _ := buf.Row(1)
	fmt.Println("\nrow 1 cells:")
	for col, cell := range row.AsCells() {
		if cell.IsBlank() {
			continue
		}
		fmt.Printf("  col %2d: glyph=%q width=%s fg=%s\n",
			col, string(cell.Glyph), cell.Width, cell.Attrs.Fg)
	}
}
