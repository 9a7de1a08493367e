package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/cellview/internal/presentation/tui"
	httpAdapter "github.com/aretw0/cellview/pkg/adapters/http"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	formatAuto     = "auto"
	formatHTML     = "html"
	formatPage     = "page"
	formatTerminal = "terminal"
)

var renderCmd = &cobra.Command{
	Use:   "render [FILE|-]",
	Short: "Render one output payload",
	Long: `Parses a payload (from FILE, or stdin when FILE is "-" or omitted) under the given
type tag and writes the rendered output to stdout.

Formats:
- html: the HTML fragment
- page: a standalone HTML document with the stylesheet inlined
- terminal: a Markdown preview rendered for the terminal
- auto (default): terminal when stdout is a terminal, html otherwise`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		mime, _ := cmd.Flags().GetString("mime")
		format, _ := cmd.Flags().GetString("format")
		style, _ := cmd.Flags().GetString("style")

		source := "-"
		if len(args) > 0 {
			source = args[0]
		}
		data, err := readSource(cmd.InOrStdin(), source)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format == formatAuto {
			format = formatHTML
			if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				format = formatTerminal
			}
		}

		engine := newEngine(cfg, logger, domain.Hooks{})
		payload := domain.OutputPayload{Type: domain.MIMEType(mime), Data: data}
		value, err := engine.Parse(payload)
		if err != nil {
			if format == formatTerminal {
				return err
			}
			writeOutput(out, format, source, engine.FormatError(err))
			return err
		}

		switch format {
		case formatTerminal:
			width := 80
			if f, ok := out.(*os.File); ok {
				if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
					width = w
				}
			}
			preview, err := tui.Preview(payload.Type, value, style, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, preview)
			return err
		case formatHTML, formatPage:
			return writeOutput(out, format, source, engine.Format(payload.Type, value))
		default:
			return fmt.Errorf("unknown format %q (want auto, html, page or terminal)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("mime", string(domain.MIMEJSON), "Type tag of the payload")
	renderCmd.Flags().String("format", formatAuto, "Output format: auto, html, page or terminal")
	renderCmd.Flags().String("style", "", "Glamour style for terminal output (default: auto)")
}

func readSource(stdin io.Reader, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return data, nil
}

func writeOutput(w io.Writer, format, source, markup string) error {
	if format == formatPage {
		title := "cellview"
		if source != "-" {
			title = filepath.Base(source)
		}
		return httpAdapter.WritePage(w, title, markup)
	}
	_, err := fmt.Fprintln(w, markup)
	return err
}
