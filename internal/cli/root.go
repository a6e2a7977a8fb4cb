// Package cli implements the sweets command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/sweets/internal/config"
	"github.com/mesh-intelligence/sweets/internal/logging"
	"github.com/mesh-intelligence/sweets/internal/paths"
	"github.com/mesh-intelligence/sweets/pkg/currency"
	"github.com/mesh-intelligence/sweets/pkg/directory"
	"github.com/mesh-intelligence/sweets/pkg/sweets"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	jsonMode  bool
}

// app is the state shared by subcommands once the root pre-run has loaded
// the configuration.
type app struct {
	flags rootFlags
	cfg   *config.Config
	log   *zap.Logger
	rates *currency.Table
	dir   *directory.Directory
}

// sysError marks failures of the environment rather than of user input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

// NewRootCmd creates the top-level "sweets" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "sweets",
		Short:   "Build bubble teas and pineapple cakes",
		Long:    "sweets assembles bubble tea drinks and pineapple cakes from recipes,\nand looks up ingredients, pineapple varieties, manufacturers and currency rates.",
		Version: sweets.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCurrencyCmd(a))
	root.AddCommand(newIngredientCmd(a))
	root.AddCommand(newPineappleCmd(a))
	root.AddCommand(newManufacturerCmd(a))
	root.AddCommand(newBobbaCmd(a))
	root.AddCommand(newCakeCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd()))
}

func run(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		return exitCode(err)
	}
	return exitSuccess
}

func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// setup loads the configuration and builds the logger, currency table and
// manufacturer directory. The version and init commands skip it.
func (a *app) setup(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "version", "init", "help":
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &sysError{fmt.Errorf("resolve config dir: %w", err)}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return configLoadError(err)
	}
	if a.flags.logLevel != "" {
		cfg.Log.Level = a.flags.logLevel
	}

	log, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.rates = cfg.CurrencyTable()
	a.dir = cfg.Directory()

	log.Debug("config loaded",
		zap.String("config_dir", dir),
		zap.Bool("currency_strict", cfg.Currency.Strict),
		zap.String("display_currency", cfg.Currency.Display),
		zap.Int("extra_regions", len(cfg.Manufacturers)),
		zap.Int("rankings", len(cfg.Rankings)),
	)
	return nil
}

// configLoadError marks a config file that could not be read as a system
// error. Parse and validation failures stay user errors.
func configLoadError(err error) error {
	err = fmt.Errorf("load config: %w", err)
	if errors.Is(err, config.ErrUnreadable) {
		return &sysError{err}
	}
	return err
}

// warnUnknownCurrency logs each code the lenient table will silently map to
// the reference rate.
func (a *app) warnUnknownCurrency(codes ...string) {
	if a.rates.Strict() {
		return
	}
	for _, code := range codes {
		if _, ok := a.rates.Lookup(code); !ok {
			a.log.Warn("unknown currency, using reference rate",
				zap.String("code", code),
				zap.String("reference", a.rates.Reference()),
			)
		}
	}
}
