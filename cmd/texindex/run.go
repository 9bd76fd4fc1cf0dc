// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/texindex/pkg/texindex"
)

// newMacrosCmd creates the "macros" command.
func newMacrosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macros [file-or-dir]...",
		Short: "List macros not declared in the exclusion files",
		Long: "Macros reads the given files (directories are expanded to their .tex files), " +
			"strips environments, references and punctuation, and prints every macro that " +
			"never appears in an exclusion file, one per line in sorted order.",
		Args: cobra.ArbitraryArgs,
		RunE: runMacros,
	}

	cmd.Flags().Bool("suggest", false, "Append the closest declared macro to each undefined one")
	cmd.Flags().Bool("dump-words", false, "Also print every word with its surface forms")

	return cmd
}

func runMacros(cmd *cobra.Command, args []string) error {
	suggest, _ := cmd.Flags().GetBool("suggest")
	dumpWords, _ := cmd.Flags().GetBool("dump-words")

	ix, err := texindex.New(configFromViper(cmd))
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_, err = ix.Macros(ctx, args, texindex.MacroOptions{
		Suggest:   suggest,
		DumpWords: dumpWords,
	}, cmd.OutOrStdout())
	return err
}

// newWordsCmd creates the "words" command.
func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words [regex]...",
		Short: "List candidate index words in context, ordered by frequency",
		Long: "Words scans the book's source files and prints each candidate index word " +
			"with 20 characters of context on either side, ordered by frequency and then " +
			"alphabetically. Only words matching one of the given case-insensitive " +
			"expressions are printed; with none, every word is. A frequency table " +
			"(--freq) is required unless --alphabetical is given.",
		Args: cobra.ArbitraryArgs,
		RunE: runWords,
	}

	cmd.Flags().Int("max-occurrences", 1000, "Excerpts printed per word")
	cmd.Flags().Bool("alphabetical", false, "Order words alphabetically without a frequency table")
	viper.BindPFlag("max-occurrences", cmd.Flags().Lookup("max-occurrences"))
	viper.BindPFlag("alphabetical", cmd.Flags().Lookup("alphabetical"))

	return cmd
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg := configFromViper(cmd)
	cfg.MaxOccurrences = viper.GetInt("max-occurrences")
	cfg.Alphabetical = viper.GetBool("alphabetical")
	if viper.IsSet("files") {
		cfg.Files = viper.GetStringSlice("files")
	}

	ix, err := texindex.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return ix.Words(ctx, args, cmd.OutOrStdout())
}

// configFromViper builds the settings shared by every report command.
func configFromViper(cmd *cobra.Command) texindex.Config {
	cfg := texindex.Config{
		WorkDir:       viper.GetString("workdir"),
		Rev:           viper.GetString("rev"),
		FrequencyPath: viper.GetString("freq"),
	}
	if viper.IsSet("exclude") {
		cfg.Exclude = viper.GetStringSlice("exclude")
	}
	if viper.GetBool("verbose") {
		cfg.Log = cmd.ErrOrStderr()
	}
	return cfg
}
