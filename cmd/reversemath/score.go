package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the cumulative score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeFn, err := openScores(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		n, err := st.Load(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set the score back to zero",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeFn, err := openScores(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		return st.Reset(cmd.Context())
	},
}

func init() {
	scoreCmd.AddCommand(scoreResetCmd)
}
