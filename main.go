package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hellricer/mandown/internal/doc"
	"github.com/hellricer/mandown/internal/grid"
	"github.com/hellricer/mandown/internal/pager"
	"github.com/hellricer/mandown/internal/render"
)

// ---------- flags ----------

type startFlags struct {
	width   int
	height  int
	title   string
	html    bool
	logPath string
}

// ---------- input ----------

// readInput returns the document named by args. fromStdin is set when the
// document was read from stdin rather than a file.
func readInput(args []string, stdin *os.File) (src []byte, fromStdin bool, err error) {
	if len(args) == 0 || args[0] == "-" {
		if len(args) == 0 && isatty.IsTerminal(stdin.Fd()) {
			return nil, false, errors.New("no input: pass a file or pipe Markdown on stdin")
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, true, fmt.Errorf("%w: stdin: %v", doc.ErrParseFailure, err)
		}
		return b, true, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, false, err
	}
	return b, false, nil
}

// ---------- layout ----------

// layout parses src and renders it into a new buffer width columns wide.
func layout(src []byte, width int, flags startFlags) (*grid.Buffer, error) {
	var (
		root doc.Node
		err  error
	)
	if flags.html {
		root, err = doc.ParseHTML(bytes.NewReader(src))
	} else {
		root, err = doc.ParseMarkdown(src)
	}
	if err != nil {
		return nil, err
	}

	height := flags.height
	if height <= 0 {
		height = doc.CountBlocks(src)
	}
	buf, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}

	r := render.New(buf, render.WithTitle(flags.title))
	r.Render(root)
	log.Printf("render: %d bytes, %d nodes, estimate %d rows, final %dx%d",
		len(src), r.Visits(), height, buf.Height(), buf.Width())
	return buf, nil
}

// displaySize returns the terminal size, 80x24 when it cannot be queried.
func displaySize() (w, h int) {
	w, h = 80, 24
	if ww, hh, err := term.GetSize(int(os.Stdout.Fd())); err == nil && ww > 0 && hh > 0 {
		w, h = ww, hh
	}
	return w, h
}

// ---------- cobra CLI ----------

func newRootCmd() *cobra.Command {
	var flags startFlags

	cmd := &cobra.Command{
		Use:           "mandown [file.md|-]",
		Short:         "View Markdown as a man page in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.width < 0 {
				return fmt.Errorf("invalid --width: %d", flags.width)
			}
			if flags.height < 0 {
				return fmt.Errorf("invalid --height: %d", flags.height)
			}
			if strings.TrimSpace(flags.title) == "" {
				return errors.New("invalid --title: must not be blank")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)
			if flags.logPath != "" {
				f, err := tea.LogToFile(flags.logPath, "mandown")
				if err != nil {
					return err
				}
				defer f.Close()
			}

			src, fromStdin, err := readInput(args, os.Stdin)
			if err != nil {
				return err
			}
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("stdout is not a TTY")
			}

			w, h := displaySize()
			width := w
			if flags.width > 0 {
				width = flags.width
			}
			log.Printf("input %q (stdin=%v), display %dx%d, layout width %d", args, fromStdin, w, h, width)

			buf, err := layout(src, width, flags)
			if err != nil {
				return err
			}

			var opts []tea.ProgramOption
			if fromStdin {
				// stdin carried the document; keys come from the terminal.
				opts = append(opts, tea.WithInputTTY())
			}
			return pager.Run(buf, w, h, opts...)
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 0, "layout width in columns (0 = terminal width)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "initial buffer rows (0 = number of Markdown blocks)")
	cmd.Flags().StringVar(&flags.title, "title", render.DefaultTitle, "title line written before a top-level heading")
	cmd.Flags().BoolVar(&flags.html, "html", false, "treat the input as HTML instead of Markdown")
	cmd.Flags().StringVar(&flags.logPath, "log", "", "write debug log to this file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
