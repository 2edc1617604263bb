// Package config loads the numsys command's default conversion settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/calebcase/numsys"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// System is a number system in the configuration file. Zero fields keep the
// current value.
type System struct {
	Base     uint            `toml:"base"`
	Notation numsys.Notation `toml:"notation"`
}

// Layout is the [layout] table of the configuration file.
type Layout struct {
	MinDigits uint   `toml:"min_digits"`
	GroupSize uint   `toml:"group_size"`
	Separator string `toml:"separator"`
}

// FileConfig represents the configuration loaded from config.toml.
type FileConfig struct {
	// Unsigned selects unsigned arithmetic.
	Unsigned bool `toml:"unsigned"`

	// Source is the number system of the input.
	Source System `toml:"source"`

	// Dest is the number system of the output.
	Dest System `toml:"dest"`

	// Layout shapes the output.
	Layout Layout `toml:"layout"`
}

// Config is the resolved conversion request.
type Config struct {
	Unsigned bool
	Source   numsys.System
	Dest     numsys.System
	Layout   numsys.Layout
}

// Default returns base 10 negative sign in and out, with no padding or
// grouping.
func Default() *Config {
	return &Config{
		Source: numsys.Default,
		Dest:   numsys.Default,
	}
}

// DefaultPath returns the path of the per-user configuration file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", Error.Wrap(err)
	}

	return filepath.Join(dir, "numsys", "config.toml"), nil
}

// LoadFileConfig reads the per-user configuration file.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfig() (*FileConfig, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, nil
	}

	return LoadFileConfigFrom(path)
}

// LoadFileConfigFrom reads configuration from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfigFrom(path string) (fc *FileConfig, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	fc = &FileConfig{}

	md, err := toml.Decode(string(data), fc)
	if err != nil {
		return nil, err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, Error.New("%s: unknown key %q", path, undecoded[0].String())
	}

	return fc, nil
}

// Apply overlays the file configuration onto c and validates the result.
func (fc *FileConfig) Apply(c *Config) (err error) {
	defer Error.WrapP(&err)

	if fc == nil {
		return nil
	}

	c.Unsigned = c.Unsigned || fc.Unsigned
	fc.Source.apply(&c.Source)
	fc.Dest.apply(&c.Dest)

	if fc.Layout.MinDigits != 0 {
		c.Layout.MinDigits = fc.Layout.MinDigits
	}

	if fc.Layout.GroupSize != 0 {
		c.Layout.GroupSize = fc.Layout.GroupSize
	}

	switch len(fc.Layout.Separator) {
	case 0:
	case 1:
		c.Layout.Separator = fc.Layout.Separator[0]
	default:
		return numsys.InvalidArgument.New("separator %q is not a single character", fc.Layout.Separator)
	}

	return c.Validate()
}

func (s System) apply(sys *numsys.System) {
	if s.Base != 0 {
		sys.Base = s.Base
	}

	if s.Notation != 0 {
		sys.Notation = s.Notation
	}
}

// Validate checks both systems and the layout against the destination base.
func (c *Config) Validate() (err error) {
	defer Error.WrapP(&err)

	err = c.Source.Validate()
	if err != nil {
		return err
	}

	err = c.Dest.Validate()
	if err != nil {
		return err
	}

	return c.Layout.Validate(c.Dest.Base)
}
