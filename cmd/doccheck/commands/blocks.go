package commands

import (
	"fmt"
	"os"
	"strings"

	"git.home.luguber.info/inful/doccheck/internal/directive"
	"git.home.luguber.info/inful/doccheck/internal/extract"
	"git.home.luguber.info/inful/doccheck/internal/render"
	"git.home.luguber.info/inful/doccheck/internal/scan"
)

// BlocksCmd lists discovered code samples without invoking the compiler.
// Useful for verifying fence tagging before wiring up CI.
type BlocksCmd struct {
	Rendered bool `help:"Print each block's text as the site renders it (hidden regions stripped)"`
}

func (bc *BlocksCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	files, err := scan.NewScanner(cfg.Content.Root, cfg.Content.Extension).Scan()
	if err != nil {
		return err
	}

	markers := directive.Markers{
		Start:        cfg.Language.HiddenStart,
		End:          cfg.Language.HiddenEnd,
		CommentToken: cfg.Language.CommentToken,
	}
	extractor := extract.NewExtractor(cfg.Language.Tag, cfg.Language.SkipModifier)

	total := 0
	for _, file := range files {
		blocks, err := extractor.ExtractFile(file)
		if err != nil {
			return fmt.Errorf("extracting %s: %w", file, err)
		}
		for _, b := range blocks {
			total++
			mode := "checked"
			if !b.Checked {
				mode = "skipped"
			}
			fmt.Fprintf(os.Stdout, "%s:%d [%s] %s\n", b.SourceFile, b.StartLine, b.LanguageTag, mode)
			if bc.Rendered {
				for _, line := range splitDisplayLines(render.StripHidden(b.RawText, markers)) {
					fmt.Fprintf(os.Stdout, "    %s\n", line)
				}
			}
		}
	}
	fmt.Fprintf(os.Stdout, "%d block(s) found\n", total)
	return nil
}

func splitDisplayLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
