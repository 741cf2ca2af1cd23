package commands

import (
	"fmt"

	"github.com/glazeapp/glaze"
	"github.com/spf13/cobra"
)

// VersionCmd creates the 'version' command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("glaze v%s\n", glaze.Version)
		},
	}
}
