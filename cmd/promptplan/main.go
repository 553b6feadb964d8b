// Package main implements the promptplan CLI application.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/promptplan/promptplan/internal/config"
)

var (
	// Version information (set by build flags)
	version   = "0.1.0-dev"
	commit    = "unknown"
	buildDate = "unknown"

	// Global flags
	cfgFile   string
	logLevel  string
	logFormat string

	// Global config
	cfg *config.Config
)

func main() {
	setupCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, FormatError(err, rootCmd.CalledAs()))
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "promptplan",
	Short: "promptplan - Turn an app idea into AI-ready build prompts",
	Long: `promptplan walks you through a short questionnaire about an app idea and
turns your answers into a structured spec, then renders that spec as prompts
tailored to AI coding tools (Claude, Cursor, v0), a Markdown brief, or JSON.

Plans are saved locally; half-finished sessions autosave as a draft and can
be resumed, and any plan can be turned into a shareable code.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		if err := initLogging(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load configuration")
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if cmd.Flags().Changed("log-level") {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
		} else {
			zerolog.SetGlobalLevel(cfg.GetLogLevel())
		}

		log.Debug().
			Str("version", version).
			Str("config_file", cfgFile).
			Msg("promptplan initialized")

		return nil
	},
}

func setupCommands() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: .promptplan.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	setupPlanFlags()
	setupExportFlags()
	setupShareFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(templatesCmd)

	rootCmd.SetVersionTemplate(fmt.Sprintf("promptplan v%s\n", version))
}

func initLogging() error {
	if logFormat == "console" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	level, err := parseLogLevel(logLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	return nil
}

func parseLogLevel(level string) (zerolog.Level, error) {
	switch level {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
}
