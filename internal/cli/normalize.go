package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lucrnz/ms"
	"github.com/lucrnz/ms/internal/logging"
)

func newNormalizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize FILE",
		Short: "Resolve every duration in a YAML mapping to milliseconds",
		Long: `Reads a flat YAML mapping of names to duration literals or integers
and prints each entry as milliseconds, sorted by name. Use "-" to read stdin.`,
		Example: `  ms normalize timeouts.yaml
  ms normalize --json - < timeouts.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("normalize expects exactly one FILE argument, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, opts, args[0])
		},
	}
}

func runNormalize(cmd *cobra.Command, opts *options, path string) error {
	logger := logging.FromContext(cmd.Context())

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	entries := map[string]ms.Duration{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		logger.Warn("normalize_failed", "file", path, "error", err)
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.Debug("normalize_loaded", "file", path, "entries", len(entries))

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	w := newWriter(out, opts)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(out, "%s: %s\n", name, w.millis(entries[name].Milliseconds())); err != nil {
			return err
		}
	}
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}
