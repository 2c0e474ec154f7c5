package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	mdwconfig "github.com/jostylr/rix-parser-sub000/foundation/core/config"
	mdwerror "github.com/jostylr/rix-parser-sub000/foundation/core/error"
	mdwlog "github.com/jostylr/rix-parser-sub000/foundation/core/log"
	"github.com/jostylr/rix-parser-sub000/foundation/rix"
	"github.com/jostylr/rix-parser-sub000/internal/render"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	registryFile string
	noBuiltins   bool
)

var rootCmd = &cobra.Command{
	Use:   "rix",
	Short: "RiX - Scanner und Parser für die RiX-Mathematiksprache",
	Long: `rix zerlegt RiX-Quelltext in Tokens und baut daraus Syntaxbäume.

Befehle:
  scan     - Tokenstrom ausgeben
  parse    - Syntaxbaum ausgeben oder Quelltext prüfen
  symbols  - Operator- und Registry-Tabellen anzeigen
  version  - Versionsinformationen

Konfiguration wird aus rix.toml, rix.yaml oder rix.yml im aktuellen
Verzeichnis oder im Benutzer-Konfigurationsverzeichnis gelesen.
Umgebungsvariablen mit Präfix RIX_ überschreiben einzelne Werte.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := render.ParseFormat(outputFormat)
		return err
	},
}

// Execute runs the root command until it finishes or is interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	var done *reportedError
	if err != nil && !errors.As(err, &done) {
		printError(rootCmd, "rix", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./rix.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Ausgabeformat: text, json oder yaml")
	rootCmd.PersistentFlags().StringVar(&registryFile, "registry", "", "Zusätzliche Definitionen (YAML oder TOML)")
	rootCmd.PersistentFlags().BoolVar(&noBuiltins, "no-builtins", false, "Eingebaute Funktionen und Operatoren nicht laden")
}

// loadConfig reads --config or discovers a config file, then applies the
// command line overrides
func loadConfig() (*mdwconfig.Config, error) {
	var (
		cfg *mdwconfig.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = mdwconfig.LoadWithOptions(cfgFile, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: "RIX",
			Defaults:  rix.ConfigDefaults(),
		})
	} else {
		opts := mdwconfig.DefaultDiscoveryOptions()
		opts.Defaults = rix.ConfigDefaults()
		cfg, err = mdwconfig.Discover(opts)
	}
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Set(rix.KeyLogLevel, "debug")
	}
	if registryFile != "" {
		cfg.Set(rix.KeyRegistryFile, registryFile)
	}
	if noBuiltins {
		cfg.Set(rix.KeyRegistryBuiltins, false)
	}
	return cfg, nil
}

// newEngine builds an engine that logs to the command's stderr
func newEngine(cmd *cobra.Command) (*rix.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := rix.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	mdwlog.SetDefault(logger)
	return rix.NewFromConfig(cfg, logger)
}

// readSource returns the -e expression, the named file, or stdin
func readSource(cmd *cobra.Command, args []string, expr string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mdwerror.Wrap(err, "failed to read stdin").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.readSource")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrap(err, "failed to read source file").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("path", args[0])
	}
	return string(data), nil
}

func format() render.Format {
	f, _ := render.ParseFormat(outputFormat)
	return f
}

// reportedError marks an error whose diagnostic was already printed
type reportedError struct{ error }

func (r *reportedError) Unwrap() error { return r.error }

// report prints a scan or parse error with the offending source line.
// Errors without a location are left to Execute.
func report(cmd *cobra.Command, source string, err error) error {
	if _, _, ok := render.Location(err); !ok {
		return err
	}
	if perr := render.New(cmd.ErrOrStderr()).Diagnostic(source, err); perr != nil {
		return perr
	}
	return &reportedError{err}
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Fehler: %s: %v\n", msg, strings.TrimSpace(err.Error()))
}
