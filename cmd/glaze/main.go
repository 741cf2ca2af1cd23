package main

import (
	"os"

	"github.com/glazeapp/glaze/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.PackageCmd())
	rootCmd.AddCommand(commands.DetectCmd())
	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.DoctorCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
