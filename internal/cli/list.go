package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/npillmayer/unistyle"
)

const sample = "Hello, World!"

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).MarginTop(1)
	styleName  = lipgloss.NewStyle().Foreground(colorDim).Width(32)
)

func newListCmd() *cobra.Command {
	var marksOnly, stylesOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every style and line mark",
		Long:  `Show every style and line mark, each applied to "` + sample + `".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !marksOnly {
				listStyles(out)
			}
			if !stylesOnly {
				listMarks(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stylesOnly, "styles", false, "list styles only")
	cmd.Flags().BoolVar(&marksOnly, "marks", false, "list line marks only")
	cmd.MarkFlagsMutuallyExclusive("styles", "marks")
	return cmd
}

func listStyles(w io.Writer) {
	fmt.Fprintln(w, styleTitle.Render("Styles"))
	for _, s := range unistyle.Styles() {
		fmt.Fprintln(w, row(s.String(), unistyle.StyleConvert(sample, s)))
	}
}

func listMarks(w io.Writer) {
	fmt.Fprintln(w, styleTitle.Render("Line marks"))
	for _, m := range unistyle.LineMarks() {
		name := fmt.Sprintf("%s %U", m, rune(m))
		fmt.Fprintln(w, row(name, unistyle.AddLine(sample, m)))
	}
}

func row(name, text string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, styleName.Render(name), text)
}
