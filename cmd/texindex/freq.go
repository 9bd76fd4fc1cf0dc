// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/texindex/pkg/texindex"
)

// newFreqCmd creates the "freq" command group.
func newFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Manage the word frequency table",
	}
	cmd.AddCommand(newFreqImportCmd())
	cmd.AddCommand(newFreqGetCmd())
	return cmd
}

// newFreqImportCmd creates the "freq import" command.
func newFreqImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <table>",
		Short: "Load a TSV or YAML frequency table into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _ := cmd.Flags().GetString("db")

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			n, err := texindex.ImportFrequencies(ctx, args[0], db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d words into %s\n", n, db)
			return nil
		},
	}

	cmd.Flags().String("db", "frequency.db", "SQLite database to write")
	return cmd
}

// newFreqGetCmd creates the "freq get" command.
func newFreqGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <word>...",
		Short: "Print the frequency score of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := texindex.LookupFrequencies(viper.GetString("freq"), args)
			if err != nil {
				return err
			}
			for _, s := range scores {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", s.Word, s.Frequency)
			}
			return nil
		},
	}
}
