package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucrnz/ms/internal/logging"
	"github.com/lucrnz/ms/internal/version"
)

// UsageError marks errors caused by invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// options holds the flag values shared by the root command and its children.
type options struct {
	forceParse  bool
	forceFormat bool
	jsonOut     bool
	comma       bool
	compact     bool
	logLevel    string
	logFormat   string
}

// NewRootCmd builds the ms command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ms [flags] [value...]",
		Short: "Convert between duration literals and milliseconds",
		Long: `ms

Converts human-readable durations such as "2 days" or "1.5h" into milliseconds,
and millisecond counts back into short literals such as "2 days".

Integer values are formatted, anything else is parsed. Use --parse or --format
to force a direction. Without arguments, values are read from stdin, one per line.
`,
		Example: `  ms "2 days"          # 172800000
  ms 60000             # 1 minute
  ms --parse 500       # 500
  ms --comma 1y        # 31,557,600,000
  ms -- "-2 days"      # -172800000
  ms normalize timeouts.yaml`,
		Args:    cobra.ArbitraryArgs,
		Version: version.Print(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.forceParse, "parse", "p", false, "Treat every value as a duration literal")
	rootCmd.Flags().BoolVarP(&opts.forceFormat, "format", "f", false, "Treat every value as a millisecond count")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Emit JSON instead of plain lines")
	rootCmd.PersistentFlags().BoolVar(&opts.comma, "comma", false, "Group millisecond digits with commas (e.g., 172,800,000)")
	rootCmd.PersistentFlags().BoolVar(&opts.compact, "compact", false, "Print parsed values in compact units (e.g., 1h30m)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env "+logging.EnvLevel+")")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json (env "+logging.EnvFormat+")")

	// Silence usage output for runtime errors, but show it for flag errors
	// SilenceErrors is true so we can control error output format in main()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return &UsageError{Err: err}
	})

	rootCmd.AddCommand(newNormalizeCmd(opts))

	return rootCmd
}

// ExecuteContext runs the command tree with the process arguments.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup validates flag combinations and installs the logger in the command context.
func (o *options) setup(cmd *cobra.Command) error {
	if o.forceParse && o.forceFormat {
		return usageErrorf("--parse and --format cannot be used together")
	}
	if o.comma && o.compact {
		return usageErrorf("--comma and --compact cannot be used together")
	}

	level := o.logLevel
	if level == "" {
		level = os.Getenv(logging.EnvLevel)
	}
	format := o.logFormat
	if format == "" {
		format = os.Getenv(logging.EnvFormat)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return usageErrorf("invalid logging configuration: %w", err)
	}
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))
	return nil
}

func runConvert(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()
	w := newWriter(cmd.OutOrStdout(), opts)

	if len(args) > 0 {
		for _, arg := range args {
			if err := convertOne(ctx, w, opts, arg); err != nil {
				return err
			}
		}
		return nil
	}

	return forEachLine(ctx, cmd.InOrStdin(), func(line string) error {
		return convertOne(ctx, w, opts, line)
	})
}

// forEachLine calls fn for every non-blank line of r. Lines are read on a
// separate goroutine so a cancelled ctx returns even while a read is blocked.
func forEachLine(ctx context.Context, r io.Reader, fn func(string) error) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-scanErr; err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				return nil
			}
			line := strings.TrimSpace(text)
			if line == "" {
				continue
			}
			if err := fn(line); err != nil {
				return err
			}
		}
	}
}
