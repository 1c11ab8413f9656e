package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"faultline/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show faultline build fingerprint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("faultline %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("built:  %s\n", version.BuildDate)
		}
	},
}
