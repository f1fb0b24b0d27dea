// Command pathwalk walks a YAML document along a dot/bracket path, either
// printing the value at the end of the path or stepping through it
// interactively.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/pathwalk/app"
	yamlparser "github.com/0xalexb/pathwalk/config/parser/yaml"
	"github.com/0xalexb/pathwalk/internal/shell"
	"github.com/0xalexb/pathwalk/keypath"

	"github.com/goccy/go-yaml/ast"
	"go.uber.org/fx"
)

var (
	errFileRequired = errors.New("-file is required")
	errGetNeedsPath = errors.New("-get needs -path")
)

// Flags holds the parsed command line.
type Flags struct {
	File       string
	Path       string
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Get        bool
	Version    bool
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (Flags, error) {
	var flags Flags

	fs := flag.NewFlagSet("pathwalk", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "pathwalk - step through a YAML document along a key path\n\n")
		fmt.Fprintf(fs.Output(), "Usage: pathwalk -file doc.yaml [-path a.b[0]] [-get]\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nWithout -get an interactive shell starts; type help for its commands.\n")
	}

	fs.StringVar(&flags.File, "file", "", "YAML document to walk, - for standard input")
	fs.StringVar(&flags.Path, "path", "", "path to open, in dot/bracket notation")
	fs.BoolVar(&flags.Get, "get", false, "print the value at -path and exit")
	fs.StringVar(&flags.ConfigFile, "config", "", "settings file with a shell section")
	fs.StringVar(&flags.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.StringVar(&flags.LogFormat, "log-format", "text", "log format: text or json")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	err := fs.Parse(args)
	if err != nil {
		return Flags{}, err
	}

	return flags, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if flags.Version {
		_, _ = fmt.Fprintln(stdout, app.VersionString())

		return nil
	}

	if flags.File == "" {
		return errFileRequired
	}

	if flags.Get && flags.Path == "" {
		return errGetNeedsPath
	}

	var (
		root ast.Node
		sh   *shell.Shell
		cfg  *shell.Config
	)

	fxApp := app.NewApp(
		app.WithLogLevel(flags.LogLevel),
		app.WithLogFormat(flags.LogFormat),
		app.WithLogOutput(stderr),
		app.WithModules(
			documentModule(flags.File),
			settingsModule(flags.ConfigFile),
			shellModule(stdout),
			fx.Populate(&root, &sh, &cfg),
		),
	)

	err = fxApp.Start()
	if err != nil {
		return err
	}

	defer func() { _ = fxApp.Stop() }()

	if flags.Get {
		return printValue(stdout, root, flags.Path)
	}

	return interactive(sh, cfg, flags.Path)
}

func printValue(w io.Writer, root ast.Node, path string) error {
	node, err := yamlparser.Lookup(root, keypath.Parse(path))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, yamlparser.Render(node))

	return err
}

func interactive(sh *shell.Shell, cfg *shell.Config, path string) error {
	if path != "" {
		err := sh.Open(path)
		if err != nil {
			return err
		}
	}

	rl, err := shell.NewReadline(*cfg)
	if err != nil {
		return err
	}

	defer func() { _ = rl.Close() }()

	return sh.Run(rl)
}
