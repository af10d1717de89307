package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/generator"
)

var (
	genDifficulty string
	genSeed       int64
	genJSON       bool
	genReveal     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a puzzle without playing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := domain.ParseDifficulty(genDifficulty)
		if err != nil {
			return err
		}
		g, err := newGenerator(cfg)
		if err != nil {
			return err
		}
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		p, st, err := g.Generate(cmd.Context(), seed, d)
		if err != nil {
			return err
		}
		fp, err := generator.Fingerprint(p)
		if err != nil {
			return err
		}
		log.Debug().Int64("seed", seed).Int("attempts", st.Attempts).Uint64("fingerprint", fp).Msg("generated")

		if genJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}
		fmt.Print(describe(p, genReveal))
		return nil
	},
}

func describe(p *domain.GameState, reveal bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "difficulty: %s\nseed:       %d\n", p.Difficulty, p.Seed)
	start := "?"
	if reveal {
		start = fmt.Sprint(p.StartNumber)
	}
	fmt.Fprintf(&b, "chain:      %s", start)
	for i, s := range p.Steps {
		mid := "?"
		if reveal || i == len(p.Steps)-1 {
			mid = fmt.Sprint(p.IntermediateResults[i+1])
		}
		fmt.Fprintf(&b, " --(%s)--> %s", s, mid)
	}
	b.WriteString("\ntiles:     ")
	for _, t := range p.Tiles {
		fmt.Fprintf(&b, " [%s]", t)
	}
	b.WriteString("\n")
	if reveal {
		b.WriteString("answer:    ")
		for i := len(p.InverseOperations) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, " [%s]", p.InverseOperations[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func init() {
	generateCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "easy", "easy, medium or hard")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for a reproducible puzzle (0 = clock)")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "Print the full game as JSON")
	generateCmd.Flags().BoolVar(&genReveal, "reveal", false, "Show the starting number and the answer")
}
