package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"github.com/npillmayer/unistyle"
)

func newStyleCmd() *cobra.Command {
	var styleName string
	cmd := &cobra.Command{
		Use:   "style [text...]",
		Short: "Convert text to a style",
		Long: `Convert text to a style. Text which is already styled is converted as well,
so mixed input ends up in a single style. Without text arguments, stdin is
converted. Without --style, the style from the config file is used, and
without one of these, text is converted back to regular characters.`,
		Example: `  unistyle style -s bold "Hello, World!"
  echo "Hello" | unistyle style --style fraktur`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			style, err := configFromContext(ctx).style()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("style") {
				if style, err = unistyle.ParseStyle(styleName); err != nil {
					return err
				}
			}
			loggerFromContext(ctx).Debug("converting", "style", style)
			return convert(cmd, args, unistyle.NewStyleTransformer(style), func(s string) string {
				return unistyle.StyleConvert(s, style)
			})
		},
	}
	cmd.Flags().StringVarP(&styleName, "style", "s", "", "target style (see 'unistyle list')")
	return cmd
}

func newLineCmd() *cobra.Command {
	var (
		markNames []string
		replace   bool
	)
	cmd := &cobra.Command{
		Use:   "line [text...]",
		Short: "Add line marks to text",
		Long: `Add combining line marks (underline, strikethrough, ...) after every
character of text. With --replace, existing occurrences of the marks are
removed first, so lines do not pile up. Without text arguments, stdin is
processed.`,
		Example: `  unistyle line -m underline "Hello, World!"
  unistyle line -m strikethrough -m overline --replace "Hello"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			marks, err := configFromContext(ctx).marks()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mark") {
				if marks, err = parseMarks(markNames); err != nil {
					return err
				}
			}
			if len(marks) == 0 {
				return errors.New("no line marks given, use --mark")
			}
			loggerFromContext(ctx).Debug("adding lines", "marks", marks, "replace", replace)
			if replace {
				tr := transform.Chain(unistyle.NewUnlineTransformer(marks...), unistyle.NewLineTransformer(marks...))
				return convert(cmd, args, tr, func(s string) string {
					return unistyle.ReplaceLine(s, marks...)
				})
			}
			return convert(cmd, args, unistyle.NewLineTransformer(marks...), func(s string) string {
				return unistyle.AddLine(s, marks...)
			})
		},
	}
	cmd.Flags().StringSliceVarP(&markNames, "mark", "m", nil, "line mark to add (repeatable)")
	cmd.Flags().BoolVar(&replace, "replace", false, "remove existing occurrences of the marks first")
	return cmd
}

func newUnlineCmd() *cobra.Command {
	var markNames []string
	cmd := &cobra.Command{
		Use:   "unline [text...]",
		Short: "Remove line marks from text",
		Long: `Remove line marks from text. Without --mark, every combining mark is
removed. Without text arguments, stdin is processed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			marks, err := parseMarks(markNames)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("removing lines", "marks", marks)
			return convert(cmd, args, unistyle.NewUnlineTransformer(marks...), func(s string) string {
				if len(marks) == 0 {
					return unistyle.RemoveLine(s)
				}
				return unistyle.RemoveLines(s, marks...)
			})
		},
	}
	cmd.Flags().StringSliceVarP(&markNames, "mark", "m", nil, "line mark to remove (repeatable)")
	return cmd
}

// convert applies f to the command's arguments, joined by blanks, or streams
// stdin through tr if there are no arguments.
func convert(cmd *cobra.Command, args []string, tr transform.Transformer, f func(string) string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, f(strings.Join(args, " ")))
		return err
	}
	ctx := cmd.Context()
	r := transform.NewReader(&ctxReader{ctx: ctx, r: cmd.InOrStdin()}, tr)
	n, err := io.Copy(out, r)
	loggerFromContext(ctx).Debug("stream converted", "bytes", n)
	return err
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
