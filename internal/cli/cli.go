// Package cli implements the unistyle command-line interface.
//
// The commands convert text given as arguments, or streamed from stdin, to
// one of the Unicode styles of package unistyle, and add or remove combining
// line marks. The CLI is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - style: convert text to a style (regular if none is given)
//   - line: add line marks to text
//   - unline: remove line marks from text
//   - list: show every style and line mark
//
// # Configuration
//
// Defaults for --style and --mark may be put into a TOML file, either given
// by --config or found at $XDG_CONFIG_HOME/unistyle/config.toml.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "unistyle"

var (
	version = "dev" // semantic version, set by SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the unistyle CLI on the process's standard streams.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// rootOptions are the persistent flags shared by all commands.
type rootOptions struct {
	verbose    bool
	configFile string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   appName,
		Short: "unistyle writes text in Unicode letter styles",
		Long: `unistyle converts text to mathematical alphanumeric and other styled
Unicode characters (bold, italic, script, fraktur, circled, ...) and decorates
it with combining line marks such as underline or strikethrough.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(errOut, level)
			conf, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			logger.Debug("configuration", "file", conf.source, "style", conf.Style, "marks", conf.Marks)
			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, conf))
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "TOML file with default style and marks")

	root.AddCommand(newStyleCmd())
	root.AddCommand(newLineCmd())
	root.AddCommand(newUnlineCmd())
	root.AddCommand(newListCmd())
	return root
}
