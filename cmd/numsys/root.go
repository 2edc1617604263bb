package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/term"

	"github.com/calebcase/numsys"
	"github.com/calebcase/numsys/integer"
	"github.com/calebcase/numsys/internal/config"
)

var version = "0.1.0"

const long = `Converts an integer from one number system or negative notation to another.

To change from one base to another, pass two bases separated by an equals
sign.

    "10=2"
     |  |_ Output will be printed in base 2
     |____ Input is in base 10

Similarly, to change from one notation to another, pass any two of the four
notation tokens.

    "ns=sp"
     |  |_ Negative output is marked by a non-zero sign place
     |____ Negative input is marked by a negative sign

Either side may be left empty to keep its default. By default input and output
are base 10 with a negative sign.

    Notation          Token    Example

    Negative sign     ns       8, -12
    Sign place        sp       08, 912
    One's complement  1c       08, 987
    Two's complement  2c       08, 988

To use or display numbers larger than the signed maximum, pass -u or
--unsigned to use unsigned arithmetic instead.

An INPUT starting with '-' is read as a number unless it names a flag. Put
"--" before inputs such as "-c" that would otherwise be taken as a flag.

CONFIGURATION FILE

Defaults can be set in a TOML file. By default numsys looks for
numsys/config.toml in the user configuration directory. Use --config to
specify a different path.

    unsigned = false

    [source]
    base = 10
    notation = "ns"

    [dest]
    base = 2
    notation = "2c"

    [layout]
    min_digits = 8
    group_size = 4
    separator = "_"`

type options struct {
	unsigned   bool
	spaces     uint
	minimum    uint
	separator  string
	configPath string
	json       bool
	debug      bool
}

// request is a fully resolved conversion.
type request struct {
	config.Config

	Input string
}

// result is the --json output.
type result struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Source   string `json:"source"`
	Dest     string `json:"dest"`
	Unsigned bool   `json:"unsigned"`
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "numsys [flags] [SRC=DEST] [SRC=DEST] INPUT",
		Short:         "Converts number system or notation",
		Long:          long,
		Version:       version,
		Args:          conversionArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.unsigned, "unsigned", "u", false, "Use unsigned arithmetic, larger maximum value")
	flags.UintVarP(&opts.spaces, "spaces", "s", 0, "Number of digits between separators, 0 for none")
	flags.UintVarP(&opts.minimum, "minimum", "m", 0, "Minimum number of digits, 0 for the absolute minimum")
	flags.StringVar(&opts.separator, "separator", " ", "Character inserted between groups of digits")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: numsys/config.toml in the user config directory)")
	flags.BoolVar(&opts.json, "json", false, "Print the result as JSON")
	flags.BoolVar(&opts.debug, "debug", false, "Print the resolved conversion to stderr")

	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	return cmd
}

func conversionArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return numsys.InvalidArgument.New("expected at most two conversion arguments and an input, received %d arguments", len(args))
	}

	return nil
}

// inputArgs marks a final argument that looks like a negative number as
// positional so the flag parser doesn't reject it.
func inputArgs(flags *pflag.FlagSet, args []string) []string {
	if len(args) == 0 {
		return args
	}

	last := args[len(args)-1]
	if len(last) < 2 || last[0] != '-' || isFlag(flags, last) {
		return args
	}

	for _, arg := range args[:len(args)-1] {
		if arg == "--" {
			return args
		}
	}

	marked := make([]string, 0, len(args)+1)
	marked = append(marked, args[:len(args)-1]...)

	return append(marked, "--", last)
}

func isFlag(flags *pflag.FlagSet, arg string) bool {
	if strings.HasPrefix(arg, "--") {
		if arg == "--" {
			return true
		}

		name, _, _ := strings.Cut(arg[2:], "=")

		return flags.Lookup(name) != nil
	}

	return flags.ShorthandLookup(arg[1:2]) != nil
}

func loadConfig(path string) (*config.FileConfig, error) {
	if path == "" {
		return config.LoadFileConfig()
	}

	fc, err := config.LoadFileConfigFrom(path)
	if err != nil {
		return nil, err
	}

	if fc == nil {
		return nil, config.Error.New("%s: no such file", path)
	}

	return fc, nil
}

// resolve builds the request from the defaults, the config file, the flags
// and the conversion arguments in that order.
func resolve(cmd *cobra.Command, opts *options, args []string) (*request, error) {
	c := config.Default()

	fc, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	err = fc.Apply(c)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("unsigned") {
		c.Unsigned = opts.unsigned
	}

	if flags.Changed("spaces") {
		c.Layout.GroupSize = opts.spaces
	}

	if flags.Changed("minimum") {
		c.Layout.MinDigits = opts.minimum
	}

	if flags.Changed("separator") {
		if len(opts.separator) != 1 {
			return nil, numsys.InvalidArgument.New("separator %q is not a single character", opts.separator)
		}

		c.Layout.Separator = opts.separator[0]
	}

	err = applyConversions(args[:len(args)-1], c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &request{
		Config: *c,
		Input:  args[len(args)-1],
	}, nil
}

// convert returns the input written in the destination system.
func (r *request) convert() (string, error) {
	if r.Unsigned {
		return integer.ConvertUnsigned(r.Input, r.Source.Base, r.Dest.Base, r.Layout)
	}

	return integer.Convert(r.Input, r.Source, r.Dest, r.Layout)
}

func (r *request) describe(sys numsys.System) string {
	if r.Unsigned {
		return strconv.FormatUint(uint64(sys.Base), 10)
	}

	return sys.String()
}

func runConvert(cmd *cobra.Command, opts *options, args []string) error {
	r, err := resolve(cmd, opts, args)
	if err != nil {
		return err
	}

	if opts.debug {
		spew.Fdump(cmd.ErrOrStderr(), r)
	}

	out, err := r.convert()
	if err != nil {
		return err
	}

	if !opts.json {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

		return err
	}

	data, err := sonnet.Marshal(result{
		Input:    r.Input,
		Output:   out,
		Source:   r.describe(r.Source),
		Dest:     r.describe(r.Dest),
		Unsigned: r.Unsigned,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return err
}

// isTerminal returns true if w is a terminal that accepts color.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func printError(w io.Writer, err error, debug bool) {
	red := color.New(color.FgRed)
	if isTerminal(w) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	if debug {
		red.Fprintf(w, "numsys: %+v\n", oops.Trace(err))

		return
	}

	red.Fprintf(w, "numsys: %v\n", err)
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}

	// cobra reads os.Args when the arguments are nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(opts)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(inputArgs(cmd.Flags(), args))

	err := cmd.Execute()
	if err != nil {
		printError(stderr, err, opts.debug)

		return 1
	}

	return 0
}
