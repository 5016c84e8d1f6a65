// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extern-names/internal/extract"
	"github.com/pdiddy/extern-names/pkg/types"
)

const (
	configName = "extern-names"
	envPrefix  = "EXTERN_NAMES"
)

func init() {
	rootCmd.Flags().StringP("input", "i", types.DefaultInput, "header file to scan")
	rootCmd.Flags().Bool("trim", false, "drop whitespace between a name and its opening parenthesis")
	rootCmd.Flags().BoolP("verbose", "v", false, "log scan progress to stderr")
}

// loadConfig resolves the extraction settings for cmd. Precedence is flag,
// then EXTERN_NAMES_* environment variable, then config file, then flag
// default. A missing config file is not an error.
func loadConfig(cmd *cobra.Command) (types.ExtractConfig, string, error) {
	v := viper.New()

	for _, key := range []string{"input", "trim", "verbose"} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return types.ExtractConfig{}, "", fmt.Errorf("binding flag %s: %w", key, err)
		}
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err == nil {
		used = v.ConfigFileUsed()
	} else if cfgFile != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring config file %s: %v\n", cfgFile, err)
	}

	cfg := types.ExtractConfig{
		Input:   v.GetString("input"),
		Trim:    v.GetBool("trim"),
		Verbose: v.GetBool("verbose"),
	}
	return cfg, used, nil
}

// newLogger returns a text logger on w; debug output only when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, used, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if used != "" {
		logger.Debug("using config file", "path", used)
	}

	summary, err := extract.Run(cfg.InputPath(), cmd.OutOrStdout(), extract.Options{
		Trim:   cfg.Trim,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	logger.Debug("done", "input", cfg.InputPath(), "lines", summary.Lines, "names", summary.Names)
	return nil
}
