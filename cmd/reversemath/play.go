package main

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/reversemath/internal/adapters/console"
	"svw.info/reversemath/internal/domain"
)

var (
	playDifficulty string
	playManual     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play puzzles in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := domain.ParseDifficulty(playDifficulty)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("manual") {
			cfg.Manual = playManual
		}
		uc, closeFn, err := newService(cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		return console.New(uc, os.Stdin, os.Stdout).Run(cmd.Context(), d)
	},
}

func init() {
	playCmd.Flags().StringVarP(&playDifficulty, "difficulty", "d", "easy", "easy, medium or hard")
	playCmd.Flags().BoolVar(&playManual, "manual", true, "Type each recovered number after choosing the operation")
}
