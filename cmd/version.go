package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repobook/pkg/version"
)

// versionCmd displays the current version of the repobook CLI.
// The --short flag prints the bare version string.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of repobook",
	Long:  `Display the current version information of the repobook CLI tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Println(v.Version)
		} else {
			fmt.Println(v.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	RootCmd.AddCommand(versionCmd)
}
