// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command texindex helps build the index of a LaTeX book. It lists macros
// that are used but never declared, and candidate index words with their
// context ordered by frequency.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "texindex",
		Short:        "Index helpers for LaTeX books",
		Long:         "texindex scans LaTeX sources to find undeclared macros and to review candidate index words in context.",
		SilenceUsage: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Directory the sources are read from")
	rootCmd.PersistentFlags().String("rev", "", "Read sources from this git revision instead of the working tree")
	rootCmd.PersistentFlags().String("freq", "", "Frequency table (.tsv, .yaml or SQLite .db)")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Exclusion files whose macros count as declared (default: built-in list)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print diagnostics to stderr")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("rev", rootCmd.PersistentFlags().Lookup("rev"))
	viper.BindPFlag("freq", rootCmd.PersistentFlags().Lookup("freq"))
	viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: TEXINDEX_WORKDIR, TEXINDEX_FREQ, etc.
	viper.SetEnvPrefix("TEXINDEX")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".texindex")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newMacrosCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newFreqCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print texindex version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "texindex %s\n", version)
		},
	}
}
