package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/joshprk/jsonkdl"
	"github.com/joshprk/jsonkdl/format"
	"github.com/joshprk/jsonkdl/kdl"
	"github.com/joshprk/jsonkdl/textdiff"
)

const description = `jsonkdl converts JSON (or YAML) documents to KDL.

The input is an array of node objects; each object's name, arguments,
properties, children and type keys become the matching KDL node pieces.
Numeric literals pass through byte for byte, whatever their size.
By default, KDL spec v2 is used.

With no output path, or with "-", the document prints to stdout.
With -d, the conversion is compared against the existing output file
instead of writing: differences print as a line diff and exit with
status 1.
`

type config struct {
	V1      bool   `cli:"name=1 aliases=kdl-v1 desc='convert to KDL v1'"`
	V2      bool   `cli:"name=2 aliases=kdl-v2 desc='convert to KDL v2'"`
	Force   bool   `cli:"name=f aliases=force desc='overwrite output if it exists'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='print extra information during conversion'"`
	Diff    bool   `cli:"name=d aliases=diff desc='diff against the existing output instead of writing'"`
	YAML    bool   `cli:"name=y aliases=yaml desc='read input as YAML regardless of extension'"`
	Patch   string `cli:"name=patch desc='apply a JSON patch file (RFC 6902 or RFC 7386) before converting'"`
	Filter  string `cli:"name=filter desc='keep only nodes matching this expression'"`
	Color   string `cli:"name=color desc='color stdout output: auto, always, never'"`

	Cmd *cli.Command
}

func Command() *cli.Command {
	cfg := &config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "jsonkdl").
		WithSynopsis("jsonkdl [opts] <input> [output]").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Cmd.Parse(cc, args)
			if err != nil {
				return err
			}
			return run(cfg, cc.Out, args)
		})
}

func run(cfg *config, out io.Writer, args []string) error {
	if cfg.V1 && cfg.V2 {
		return fmt.Errorf("%w: specify only one of --kdl-v1 or --kdl-v2", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: missing input path", cli.ErrUsage)
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: too many arguments: %v", cli.ErrUsage, args[2:])
	}
	input := args[0]
	output := ""
	if len(args) == 2 && args[1] != "-" {
		output = args[1]
	}

	if err := checkInput(input); err != nil {
		return err
	}
	if output != "" && !cfg.Diff && !cfg.Force {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("file exists: %s (use --force to overwrite)", output)
		}
	}

	opts, err := cfg.convertOpts()
	if err != nil {
		return err
	}

	switch {
	case cfg.Diff:
		return diffOutput(cfg, out, input, output, opts)
	case output == "":
		return printOutput(cfg, out, input, opts)
	default:
		return writeOutput(cfg, out, input, output, opts)
	}
}

func (cfg *config) convertOpts() ([]jsonkdl.Option, error) {
	version := kdl.DefaultVersion
	switch {
	case cfg.V1:
		version = kdl.V1
	case cfg.V2:
		version = kdl.V2
	}
	opts := []jsonkdl.Option{jsonkdl.WithVersion(version)}
	if cfg.YAML {
		opts = append(opts, jsonkdl.WithFormat(format.YAMLFormat))
	}
	if cfg.Patch != "" {
		patch, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return nil, err
		}
		opts = append(opts, jsonkdl.WithPatch(patch))
	}
	if cfg.Filter != "" {
		opts = append(opts, jsonkdl.WithFilter(cfg.Filter))
	}
	return opts, nil
}

func checkInput(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file: %s", path)
		}
		return err
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("not a file: %s", path)
	}
	return nil
}

func printOutput(cfg *config, out io.Writer, input string, opts []jsonkdl.Option) error {
	w, colors, err := colorWriter(out, cfg.Color)
	if err != nil {
		return err
	}
	if colors != nil {
		opts = append(opts, jsonkdl.WithColors(colors))
	}
	text, err := jsonkdl.ConvertFile(input, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func writeOutput(cfg *config, out io.Writer, input, output string, opts []jsonkdl.Option) error {
	text, err := jsonkdl.ConvertFile(input, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(out, "converted %s -> %s\n", input, output)
	}
	return nil
}

func diffOutput(cfg *config, out io.Writer, input, output string, opts []jsonkdl.Option) error {
	if output == "" {
		return fmt.Errorf("%w: -d requires an output path to diff against", cli.ErrUsage)
	}
	text, err := jsonkdl.ConvertFile(input, opts...)
	if err != nil {
		return err
	}
	existing, err := os.ReadFile(output)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file: %s", output)
		}
		return err
	}
	d := textdiff.Unified(string(existing), text)
	if d == "" {
		if cfg.Verbose {
			fmt.Fprintf(out, "%s matches %s\n", output, input)
		}
		return nil
	}
	fmt.Fprint(out, d)
	return cli.ExitCodeErr(1)
}

// colorWriter decides whether stdout output gets colored and through
// which writer. Untagged or "auto" colors only terminals; "always"
// forces escapes on even when piped.
func colorWriter(w io.Writer, mode string) (io.Writer, *kdl.Colors, error) {
	switch mode {
	case "", "auto":
		f, ok := w.(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			return w, nil, nil
		}
		return colorable.NewColorable(f), kdl.NewColors(), nil
	case "always":
		color.NoColor = false
		if f, ok := w.(*os.File); ok {
			return colorable.NewColorable(f), kdl.NewColors(), nil
		}
		return w, kdl.NewColors(), nil
	case "never":
		return w, nil, nil
	}
	return nil, nil, fmt.Errorf("%w: bad color mode %q", cli.ErrUsage, mode)
}
