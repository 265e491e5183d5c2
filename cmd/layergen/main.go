// Command layergen generates partial implementations for configuration structs.
//
// It is meant to be run through go generate:
//
//	//go:generate go run github.com/0xalexb/hjarta-config/cmd/layergen --type Config,Nested
//
// The output file defaults to <first type>_partial.go next to the file that
// holds the directive.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/env"
	"github.com/0xalexb/hjarta-config/internal/gen"
	"github.com/0xalexb/hjarta-config/logging"
)

func main() {
	cmd := newCommand(afero.NewOsFs(), env.OS(), os.Stderr)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	types  []string
	output string
	dir    string
}

func newCommand(fsys afero.Fs, provider env.Provider, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "layergen",
		Short: "Generate partial configuration types",
		Long: `layergen reads the configuration structs named by --type and writes, for each,
a <Type>Partial implementing Default, FromEnv, Merge and Resolve.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(provider, stderr)

			err := run(fsys, provider, logger, opts)
			if err != nil {
				logger.Error("generation failed", slog.Any("error", err))
			}

			return err
		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.types, "type", nil, "comma-separated configuration types to generate partials for")
	flags.StringVar(&opts.output, "output", "", "output file name (default <first type>_partial.go)")
	flags.StringVar(&opts.dir, "dir", "", "package directory (default: directory of $GOFILE, or .)")

	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func run(fsys afero.Fs, provider env.Provider, logger *slog.Logger, opts options) error {
	dir, err := packageDir(provider, opts.dir)
	if err != nil {
		return err
	}

	written, err := gen.Run(fsys, dir, opts.types, opts.output)
	if err != nil {
		return fmt.Errorf("generating partials: %w", err)
	}

	logger.Info("partials written", slog.String("file", written), slog.Any("types", opts.types))

	return nil
}

// packageDir picks the directory to load: the flag, then the directory of
// the file go generate is processing, then the working directory.
func packageDir(provider env.Provider, flagDir string) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}

	goFile, err := env.FetchAndParse(provider, "GOFILE", env.Parse[string])
	if err != nil {
		return "", err
	}

	if goFile != nil {
		return filepath.Dir(*goFile), nil
	}

	return ".", nil
}

// newLogger honors LOG_LEVEL and LOG_FORMAT, falling back to defaults when
// they are unusable so that generation still runs.
func newLogger(provider env.Provider, w io.Writer) *slog.Logger {
	cfg, err := config.Resolve[logging.LoggerConfig](
		config.Defaults[logging.LoggerConfigPartial](),
		config.Environment[logging.LoggerConfigPartial](provider),
	)
	if err != nil {
		cfg = logging.DefaultConfig()
	}

	return logging.NewLogger(cfg, w)
}
