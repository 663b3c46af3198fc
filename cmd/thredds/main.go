package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/jmgilman/go/errors"
	"github.com/rjw57/thredds"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// cfg holds the configuration from flags, environment and config file.
var cfg = viper.New()

var rootCmd = &cobra.Command{
	Use:   "thredds",
	Short: "browse THREDDS catalogs and download their data",
	Long: `
Thredds reads catalogs published by THREDDS data servers. It can list their
contents, crawl references to further catalogs, print the download URLs of
the data files found and download them.

Flags may also be given in a configuration file (see --config) or as THREDDS_
prefixed environment variables.
`,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "thredds", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "configuration file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "log in JSON format")
	flags.Duration("timeout", thredds.DefaultFetchStrategy.FetchTimeout, "timeout of a single fetch")
	flags.Int("retries", thredds.DefaultFetchStrategy.MaximumRetries, "number of retries of a failed fetch")
	flags.Duration("retry-sleep", thredds.DefaultFetchStrategy.RetrySleep, "initial sleep between retries")
	flags.StringSlice("skip", nil, "regular expressions of dataset and reference names to skip")
	flags.String("user-agent", "thredds-go/"+version, "User-Agent header sent to servers")
	if err := cfg.BindPFlags(flags); err != nil {
		panic(err)
	}

	cfg.SetEnvPrefix("THREDDS")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	cfg.AutomaticEnv()

	rootCmd.AddCommand(versionCmd, lsCmd, urlsCmd, discoverCmd, downloadCmd)
}

// setConfig reads the configuration file, if any, and sets up logging.
func setConfig() error {
	if file := cfg.GetString("config"); file != "" {
		cfg.SetConfigFile(file)
		if err := cfg.ReadInConfig(); err != nil {
			return errors.Wrapf(err, errors.CodeInvalidConfig, "reading config file %v", file)
		}
	}

	level, err := logrus.ParseLevel(cfg.GetString("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	if cfg.GetBool("log-json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// newClient returns a client configured from cfg.
func newClient() (*thredds.Client, error) {
	skip, err := thredds.SkipPatterns(cfg.GetStringSlice("skip")...)
	if err != nil {
		return nil, err
	}
	return thredds.NewClient(
		thredds.WithFetchStrategy(fetchStrategy()),
		thredds.WithSkip(skip),
		thredds.WithUserAgent(cfg.GetString("user-agent")),
	), nil
}

func main() {
	// Set signal handler so that "atexit" functions are called on keyboard
	// interrupt.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for s := range c {
			logrus.Printf("captured %v, cleaning up", s)
			setExitStatus(130)
			exit()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		setExitStatus(1)
	}
	exit()
}

var exitStatus = 0
var exitMu sync.Mutex

func setExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

var atexitFuncs []func()
var atexitMu sync.Mutex

func atexit(f func()) {
	atexitMu.Lock()
	atexitFuncs = append(atexitFuncs, f)
	atexitMu.Unlock()
}

func exit() {
	atexitMu.Lock()
	funcs := atexitFuncs
	atexitMu.Unlock()
	for _, f := range funcs {
		f()
	}
	os.Exit(exitStatus)
}
