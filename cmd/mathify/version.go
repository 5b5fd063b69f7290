package main

import (
	"github.com/spf13/cobra"
)

// version 由构建时 -ldflags 注入
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("mathify version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
