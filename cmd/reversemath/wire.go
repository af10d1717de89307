package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"svw.info/reversemath/internal/config"
	"svw.info/reversemath/internal/generator"
	"svw.info/reversemath/internal/hint"
	"svw.info/reversemath/internal/infrastructure/storage"
	"svw.info/reversemath/internal/infrastructure/storage/sqlite"
	"svw.info/reversemath/internal/ports"
	"svw.info/reversemath/internal/solver"
	"svw.info/reversemath/internal/usecase"
	"svw.info/reversemath/internal/validator"
)

// openScores picks the score backend; the returned func releases it.
func openScores(c *config.Config) (ports.ScoreStore, func(), error) {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return nil, nil, err
	}
	if strings.EqualFold(strings.TrimSpace(c.ScoreBackend), "sqlite") {
		st, err := sqlite.Open(c.ScoreDB())
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	}
	return storage.NewFS(c.DataDir), func() {}, nil
}

func newGenerator(c *config.Config) (*generator.ChainGenerator, error) {
	tiers, err := c.Tiers()
	if err != nil {
		return nil, err
	}
	g := generator.NewChainGenerator(tiers)
	g.MaxStepAttempts = c.MaxStepAttempts
	return g, nil
}

// Wire providers → use case
func newService(c *config.Config) (*usecase.Service, func(), error) {
	g, err := newGenerator(c)
	if err != nil {
		return nil, nil, err
	}
	scores, closeFn, err := openScores(c)
	if err != nil {
		return nil, nil, err
	}
	uc, err := usecase.NewService(g, validator.New(), solver.NewChainSolver(), hint.NewTiles(), scores, usecase.Options{
		Manual:      c.Manual,
		HistorySize: c.HistorySize,
		Logger:      log.Logger,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	log.Debug().Str("scores", c.ScoreBackend).Str("data", c.DataDir).Bool("manual", c.Manual).Msg("service ready")
	return uc, closeFn, nil
}
