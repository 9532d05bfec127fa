package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toxc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print toxc's version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
		return err
	},
}

func versionString() string { return version.VersionString() }
