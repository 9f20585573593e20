package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/frederic-klein/pinlock/internal/app"
	"github.com/frederic-klein/pinlock/internal/config"
	"github.com/frederic-klein/pinlock/internal/logger"
	"github.com/frederic-klein/pinlock/internal/pip"
	"github.com/frederic-klein/pinlock/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	log.SetOutput(stderr)
	printer := ui.NewPrinter(stdout, stderr)

	c := newCLI(printer, log)
	c.root.SetArgs(args)
	c.root.SetOut(stdout)
	c.root.SetErr(stderr)

	if err := c.root.ExecuteContext(ctx); err != nil {
		printer.Error(err)
		if c.verbose {
			log.Error(err)
		}
		return 1
	}
	return 0
}

type cli struct {
	printer *ui.Printer
	log     *logger.Logger
	root    *cobra.Command

	configPath string
	lockPath   string
	python     string
	verbose    bool
}

func newCLI(printer *ui.Printer, log *logger.Logger) *cli {
	c := &cli{printer: printer, log: log}

	c.root = &cobra.Command{
		Use:           "pinlock",
		Short:         "Keep a requirements lock in sync with a virtual environment",
		Long:          "pinlock freezes the packages installed in a virtual environment into a requirements lock file, keeping pins on source references and markers untouched.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			c.log.SetVerbose(c.verbose)
		},
	}

	flags := c.root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Config file path (default: pinlock.yml, pinlock.yaml or pinlock.toml)")
	flags.StringVarP(&c.lockPath, "lock", "l", "", "Lock file path (default \""+config.DefaultLockFile+"\")")
	flags.StringVarP(&c.python, "python", "p", "", "Python interpreter of the virtual environment")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	c.root.AddCommand(
		c.newLockCmd(),
		c.newBumpCmd(),
		c.newTidyCmd(),
		c.newShowCmd(),
		c.newVersionCmd(),
	)
	return c
}

// loadConfig merges the defaults, the config file and the flags, in that order.
func (c *cli) loadConfig() (config.Config, error) {
	cfg := config.Default()

	path := c.configPath
	if path == "" {
		path = config.Discover(".")
	}
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
		c.log.Debug("config loaded", "path", path)
	}

	if c.lockPath != "" {
		cfg.LockFile = c.lockPath
	}
	if c.python != "" {
		cfg.Python = c.python
	}
	return cfg, nil
}

func (c *cli) newApp() (*app.App, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	c.log.Debug("settings", "lock", cfg.LockFile, "python", cfg.Python, "exclude", cfg.Exclude)

	runner := pip.NewRunner(cfg.Python, cfg.Exclude)
	return app.New(runner, c.log, c.printer, cfg.LockFile, version), nil
}
