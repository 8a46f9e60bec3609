// Package cli implements the cobra-based command line for pascal-triangle.
//
// The root command is the whole program: it resolves settings from flags and
// an optional config file, builds the triangle, and prints it. Printing lives
// in print.go.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/pascal-triangle/internal/config"
	"github.com/shinji-kodama/pascal-triangle/internal/model"
	"github.com/shinji-kodama/pascal-triangle/internal/triangle"
)

// Global flag variables, bound in NewRootCommand.
var (
	// jsonOutput switches both results and errors to JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool
)

// logger receives VerboseLog output. It discards everything until
// --verbose is set.
var logger = zerolog.Nop()

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values that only the root command reads.
type rootFlags struct {
	// rows overrides the configured row count when set.
	rows int

	// configPath is an optional YAML or JSONC settings file.
	configPath string
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pascal-triangle",
		Short: "Print rows of Pascal's triangle",
		Long: `pascal-triangle prints the first N rows of Pascal's triangle,
one row per line with values separated by spaces.

Values are exact for any N. Settings can come from a YAML or JSONC file
passed with --config; flags on the command line take precedence.

Examples:
  pascal-triangle
  pascal-triangle --rows 20
  pascal-triangle --config settings.yaml --json`,

		Args: cobra.NoArgs,

		// Errors are printed by Execute in text or JSON form.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(cmd.ErrOrStderr())
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().IntVarP(&flags.rows, "rows", "n", config.DefaultRows, "Number of rows to print")
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or JSONC config file")

	return rootCmd
}

// runRoot resolves settings, builds the triangle and prints it to the
// command's output stream.
func runRoot(cmd *cobra.Command, flags *rootFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		VerboseLog("Loaded config from %s", flags.configPath)
	}

	// Command-line flags win over the config file.
	if cmd.Flags().Changed("rows") {
		cfg.Rows = flags.rows
	}
	if jsonOutput {
		cfg.JSON = true
	}
	jsonOutput = cfg.JSON

	VerboseLog("Building %d rows", cfg.Rows)
	tri, err := triangle.Build(cfg.Rows)
	if err != nil {
		if errors.Is(err, triangle.ErrNegativeRows) {
			return model.WrapCLIError(model.ExitInvalidArgument,
				fmt.Sprintf("invalid row count %d", cfg.Rows), triangle.ErrNegativeRows)
		}
		return err
	}

	if cfg.JSON {
		return printTriangleJSON(cmd.OutOrStdout(), tri)
	}
	return printTriangleText(cmd.OutOrStdout(), tri)
}

// Execute runs the root command and exits the process with the code that
// matches the returned error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(int(ExitCodeOf(err)))
	}
}

// ExitCodeOf maps an error to a process exit code. CLIError values anywhere
// in the chain carry their own code; any other error is a general error.
func ExitCodeOf(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error in the format selected by --json.
func printError(w io.Writer, err error) {
	message := err.Error()
	var underlying error
	code := ExitCodeOf(err)

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		message = cliErr.Message
		underlying = cliErr.Err
	}

	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
				"code":    code.String(),
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	red := color.New(color.FgRed)
	if underlying != nil {
		red.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		red.Fprintf(w, "Error: %s\n", message)
	}
}

// configureLogger points the package logger at w when --verbose is set.
func configureLogger(w io.Writer) {
	if !verbose {
		logger = zerolog.Nop()
		return
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// VerboseLog writes a debug message to stderr when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}
