package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexcounsel/site-backend/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of site-backend",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Site backend version %s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
