// Package cmd implements the highlight CLI commands.
//
// The root command loads a label description and dispatches to a
// subcommand (spans, a11y, tap).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pureui/highlight/pkg/config"
	"github.com/pureui/highlight/pkg/errors"
	"github.com/pureui/highlight/pkg/graphics"
	"github.com/pureui/highlight/pkg/widgets"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(env *Env, args []string) error
}

// Env carries what every command needs.
type Env struct {
	// Out receives command output.
	Out io.Writer
	// Label is the label built from the description.
	Label *widgets.HighlightLabel
	// Taps records link names as the label reports them; "" is plain text.
	Taps []string
}

var rootCmd = &Command{
	Name:  "highlight",
	Short: "Inspect highlight label descriptions",
	Long: `highlight lays out a label described in highlight.yaml and reports
how its links resolve.

Use "highlight <command> --help" for more information about a command.`,
	Usage: "highlight [--file FILE] [--verbose] <command> [args]",
}

var (
	commands    = make(map[string]*Command)
	subCommands []*Command

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subCommands = append(subCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	file := ""
	verbose := false

	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "highlight version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		case "-f", "--file":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			file = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--file=") {
				file = strings.TrimPrefix(arg, "--file=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	logger := newLogger(stderr, verbose)
	prevHandler := errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	defer errors.SetHandler(prevHandler)
	restore := setDefaultLogger(logger)
	defer restore()

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	env, err := loadEnv(file)
	if err != nil {
		logger.Error("failed to load label", "err", err)
		return err
	}
	if err := cmd.Run(env, cmdArgs); err != nil {
		logger.Error("command failed", "command", cmd.Name, "err", err)
		return err
	}
	return nil
}

func loadEnv(file string) (*Env, error) {
	var (
		desc *config.Label
		err  error
	)
	if file != "" {
		desc, err = config.Load(file)
	} else {
		var dir string
		if dir, err = os.Getwd(); err != nil {
			return nil, err
		}
		desc, err = config.LoadOptional(dir)
		if err == nil && desc == nil {
			err = fmt.Errorf("no %s in %s (use --file)", config.FileName, dir)
		}
	}
	if err != nil {
		return nil, err
	}

	env := &Env{Out: stdout}
	label, err := desc.Build(graphics.Offset{}, func(name string) {
		env.Taps = append(env.Taps, name)
	})
	if err != nil {
		return nil, err
	}
	env.Label = label
	return env, nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range subCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -f, --file FILE      Label description (default: ./highlight.yaml)")
	fmt.Fprintln(stdout, "  --verbose            Log debug output to stderr")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  highlight spans               List links and their ranges")
	fmt.Fprintln(stdout, "  highlight a11y                List accessibility elements")
	fmt.Fprintln(stdout, "  highlight tap 66,5 10,30      Tap at label-local points")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
