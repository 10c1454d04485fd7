package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/unistyle"
)

// config holds defaults for flags which are not given on the command line.
//
//	style = "fraktur"
//	marks = ["underline", "overline"]
type config struct {
	Style string   `toml:"style"`
	Marks []string `toml:"marks"`

	source string // file the configuration was read from, if any
}

// loadConfig reads the configuration from path. With an empty path, the
// default location is tried and a missing file yields an empty configuration.
func loadConfig(path string) (*config, error) {
	conf := &config{}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return conf, nil
		}
	}
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	conf.source = path
	return conf, nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/unistyle/config.toml, or the
// platform's equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}

// style resolves the configured default style.
func (c *config) style() (unistyle.Style, error) {
	if c == nil || c.Style == "" {
		return unistyle.Regular, nil
	}
	return unistyle.ParseStyle(c.Style)
}

// marks resolves the configured default line marks.
func (c *config) marks() ([]unistyle.LineMark, error) {
	if c == nil {
		return nil, nil
	}
	return parseMarks(c.Marks)
}

func parseMarks(names []string) ([]unistyle.LineMark, error) {
	marks := make([]unistyle.LineMark, 0, len(names))
	for _, name := range names {
		m, err := unistyle.ParseLineMark(name)
		if err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, nil
}

func withConfig(ctx context.Context, c *config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

func configFromContext(ctx context.Context) *config {
	if c, ok := ctx.Value(configKey).(*config); ok {
		return c
	}
	return &config{}
}
