package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of reversemath",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("reversemath version 1.0.0")
	},
}
