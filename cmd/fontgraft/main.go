// seehuhn.de/go/fontgraft - copy glyphs from one font into another
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Fontgraft interactively copies glyphs from a source font into a
// destination font.
//
// The program asks for a set of Unicode code points, reads the source
// font from the Source folder and the destination font from the
// Destination folder, and writes the combined font to the Output folder.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/fontgraft"
	"seehuhn.de/go/fontgraft/codepoint"
	"seehuhn.de/go/fontgraft/fontfile"
	"seehuhn.de/go/fontgraft/sfntedit"
)

func main() {
	sourceDir := flag.String("source", "Source", "folder containing the source font")
	destDir := flag.String("dest", "Destination", "folder containing the destination font")
	outputDir := flag.String("output", "Output", "folder for the finished font")
	flag.Parse()

	ui := newPrompter()

	fmt.Println("=== fontgraft: font glyph replacer ===")

	cps := codepoint.NewSet()

	fmt.Println()
	fmt.Println("--- Step 1: Unicode range ---")
	startInput := ui.ask("Start Unicode (hex): ")
	endInput := ui.ask("End Unicode (hex): ")
	if cps.AddRange(startInput, endInput) {
		start, _ := codepoint.ParseHex(startInput)
		end, _ := codepoint.ParseHex(endInput)
		fmt.Printf("added range U+%04X to U+%04X\n", start, end)
	}

	fmt.Println()
	fmt.Println("--- Step 2: specific code points ---")
	listInput := ui.ask("Specific Unicodes (comma hex): ")
	for _, cp := range cps.AddList(listInput) {
		fmt.Printf("added U+%04X %s\n", cp, runenames.Name(cp))
	}

	codepoints := cps.Runes()
	if len(codepoints) == 0 {
		fmt.Println("No code points given, nothing to do.")
		return
	}

	fmt.Println()
	fmt.Println("--- Step 3: metadata ---")
	fontName := ui.mustAsk("New font name: ")
	author := ui.mustAsk("Author name: ")
	license := ui.ask("License text (optional): ")
	if license == "" {
		license = fmt.Sprintf("© %s All rights reserved", author)
	}

	srcPath := chooseFont(ui, *sourceDir, "source")
	dstPath := chooseFont(ui, *destDir, "destination")

	err := os.MkdirAll(*outputDir, 0o755)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	outPath := filepath.Join(*outputDir, fontName+fontfile.Ext(dstPath))
	err = fontfile.Copy(outPath, dstPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	src, err := sfntedit.Open(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	dst, err := sfntedit.Open(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	dst.SetMetadata(fontgraft.Metadata{
		FontName:  fontName,
		Designer:  author,
		Copyright: fmt.Sprintf("Copyright %d: %s", time.Now().Year(), author),
		License:   license,
	})

	q := float64(dst.UnitsPerEm()) / float64(src.UnitsPerEm())
	fmt.Println()
	fmt.Printf("Scale factor = %.3f\n", q)

	fmt.Println()
	fmt.Println("--- Step 4: vertical alignment ---")
	fmt.Println("1 = keep source top")
	fmt.Println("2 = match destination top")
	fmt.Println("3 = match destination bottom")
	align := fontgraft.ParseAlignment(ui.ask("Choose (default 1): "))

	fmt.Println()
	opts := &fontgraft.Options{
		Align: align,
		OnResult: func(res fontgraft.Result) {
			switch res.Status {
			case fontgraft.StatusReplaced:
				fmt.Printf("U+%04X %s replaced\n", res.CP, runenames.Name(res.CP))
			case fontgraft.StatusSkipped:
				fmt.Printf("U+%04X missing in source, skipped\n", res.CP)
			case fontgraft.StatusFailed:
				fmt.Fprintln(os.Stderr, "error:", res.Err)
			}
		},
	}
	stats := fontgraft.Transfer(dst, src, codepoints, opts)

	err = dst.Write(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Replaced %d, skipped %d, failed %d.\n",
		stats.Replaced, stats.Skipped, stats.Failed)
	fmt.Println("Output saved:", outPath)
}

// chooseFont selects a font file from the given folder, prompting for an
// index if there is more than one candidate.  Failure to find a font is
// fatal.
func chooseFont(ui *prompter, dir, role string) string {
	files, err := fontfile.Discover(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "error: no fonts found in %s\n", dir)
		os.Exit(1)
	}
	if len(files) == 1 {
		fmt.Printf("Found %s font: %s\n", role, files[0])
		return filepath.Join(dir, files[0])
	}

	fmt.Printf("Multiple fonts found for %s:\n", role)
	for i, f := range files {
		fmt.Printf("  [%d] %s\n", i, f)
	}
	choice := ui.ask(fmt.Sprintf("Choose %s font number (default 0): ", role))
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 0 || idx >= len(files) {
		idx = 0
	}
	return filepath.Join(dir, files[idx])
}

// A prompter reads interactive answers from stdin.  The prompt text is
// only shown when stdin is a terminal, so that the program can also be
// driven by piped input.
type prompter struct {
	scanner     *bufio.Scanner
	interactive bool
	eof         bool
}

func newPrompter() *prompter {
	return &prompter{
		scanner:     bufio.NewScanner(os.Stdin),
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func (p *prompter) ask(prompt string) string {
	if p.eof {
		return ""
	}
	if p.interactive {
		fmt.Print(prompt)
	}
	if !p.scanner.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

func (p *prompter) mustAsk(prompt string) string {
	for {
		s := p.ask(prompt)
		if s != "" {
			return s
		}
		if p.eof {
			fmt.Fprintln(os.Stderr, "error: missing answer to", strconv.Quote(prompt))
			os.Exit(1)
		}
		fmt.Println("The answer cannot be empty.")
	}
}
