package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"imd/internal/config"
	"imd/internal/logger"
	"imd/internal/metadata"
	"imd/internal/provider/itunes"
	"imd/pkg/utils"
)

// reportedError wraps an error that has already been written to the log.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

func newRootCommand() *cobra.Command {
	var configFlag string
	var debugFlag bool
	var writeFlag bool

	rootCmd := &cobra.Command{
		Use:           "imd [flags] <path>",
		Short:         "Fix the tags of a music file using the iTunes catalog",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfigFile(configFlag)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// CLI flags > config file > defaults
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debugFlag
			}
			if cmd.Flags().Changed("write") {
				cfg.Write = writeFlag
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			log := logger.NewWithWriter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Debug)
			defer log.Close()

			if cfg.LogFile != "" {
				if err := log.SetFileLog(cfg.LogFile); err != nil {
					log.Warn("Failed to setup file logging: %v", err)
				}
			}

			if err := run(cmd.Context(), cfg, args[0], log, cmd.OutOrStdout()); err != nil {
				log.Error("%v", err)
				return reportedError{err}
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false, "Turn debugging information on")
	rootCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Apply the matched metadata tags to the file")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newInitConfigCommand())

	return rootCmd
}

// run reads the tags of path, looks up the best catalog match and, when
// configured to, writes the merged tags back.
func run(ctx context.Context, cfg config.Config, path string, log *logger.Logger, out io.Writer) error {
	log.Info("imd version: %s", version)
	log.Debug("File: %s", path)
	log.Debug("Debug: %v", cfg.Debug)
	log.Debug("Write: %v", cfg.Write)
	if cfg.Path != "" {
		log.Debug("Loaded configuration from: %s", cfg.Path)
	}

	if !utils.IsAudioFile(path) {
		log.Warn("%s does not have a known audio file extension", path)
	}

	original, err := metadata.ReadTags(path)
	if err != nil {
		return fmt.Errorf("failed to read tags: %w", err)
	}

	client := itunes.New(log, itunes.Options{
		APIURL:    cfg.SearchURL,
		Timeout:   cfg.RequestTimeout,
		UserAgent: "imd/" + version,
	})
	scorer := metadata.NewScorer(metadata.Weights{
		Title:       cfg.Weights.Title,
		Artist:      cfg.Weights.Artist,
		TitleArtist: cfg.Weights.TitleArtist,
		Duration:    cfg.Weights.Duration,
	}, cfg.DurationTolerance)

	result, err := metadata.NewFixer(client, scorer, cfg.TopMatches, log).Fix(ctx, original)
	if err != nil {
		return err
	}

	log.Info("Top %d matches:", len(result.Top))
	fmt.Fprintln(out, renderMatches(result.Top))
	log.Info("Best match: %s (score: %.3f)", result.Best.Record, result.Best.Score)
	log.Info("Fixed metadata:")
	fmt.Fprintln(out, renderRecord(result.Original, result.Final))

	if cfg.Write {
		log.Info("Writing metadata to file...")
		if err := metadata.WriteTags(path, result.Final); err != nil {
			return err
		}
		log.Info("Metadata saved successfully!")
	}

	log.Info("Done")
	return nil
}
