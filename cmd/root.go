/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/internal/iofs"
	"github.com/jupiter-tools/mongotest/internal/iologger"
	app "github.com/jupiter-tools/mongotest/pkg"
	"github.com/jupiter-tools/mongotest/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir  string
	cfgFile  string
	cfg      *config.Config
	closeLog = func() error { return nil }
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "mongotest",
		Short:   "mongotest populates and checks MongoDB test databases",
		Long: `mongotest works with JSON data sets of MongoDB collections.

Data set keys are collection names or qualified Go type names of
documents listed in the document manifest
(~/.config/mongotest/documents.yaml by default).

Commands:
  - scan: show collections of documents under a package
  - populate: insert a data set into the database
  - export: write the content of the database as a data set
  - expect: compare the database with an expected data set
  - cleanup: drop all collections of the database

Configuration precedence (highest to lowest):
  1. CLI flags (--uri, --database, etc.)
  2. Environment variables (MONGOTEST_*)
  3. Config file (~/.config/mongotest/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLog()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "mongotest version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for mongotest")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default ~/.config/mongotest/config.yaml)")
	pf.StringP("uri", "u", "", "MongoDB connection string")
	pf.StringP("database", "d", "", "database name")
	pf.IntP("jobs", "j", 0, "number of collections read concurrently")

	rootCmd.AddCommand(
		getScanCmd(),
		getPopulateCmd(),
		getExportCmd(),
		getExpectCmd(),
		getCleanUpCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureManifestFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	path := cfgFile
	if path == "" {
		path = config.ConfigFilePath(homeDir)
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(path); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})
	cfg.Update(flagOptions(cmd))

	closeLog, err = iologger.Init(config.LogDir(homeDir), cfg.Log, true)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", path, "command", cmd.Name())
	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(path string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	initEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(path, err)
	}

	var res config.Config
	if err := v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(path, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one to keep the list of
	// allowed ones visible. They match the fields of config.ToOptions().
	v.SetEnvPrefix("MONGOTEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// MongoDB configuration
	_ = v.BindEnv("mongo.uri", "MONGOTEST_MONGO_URI")
	_ = v.BindEnv("mongo.database", "MONGOTEST_MONGO_DATABASE")
	_ = v.BindEnv("mongo.timeout_sec", "MONGOTEST_MONGO_TIMEOUT_SEC")

	// Scan configuration
	_ = v.BindEnv("scan.base_package", "MONGOTEST_SCAN_BASE_PACKAGE")
	_ = v.BindEnv("scan.manifest", "MONGOTEST_SCAN_MANIFEST")
	_ = v.BindEnv("scan.strict", "MONGOTEST_SCAN_STRICT")

	// Log configuration
	_ = v.BindEnv("log.level", "MONGOTEST_LOG_LEVEL")
	_ = v.BindEnv("log.format", "MONGOTEST_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "MONGOTEST_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "MONGOTEST_JOBS_NUMBER")

	v.AutomaticEnv()
}
