package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"svw.info/reversemath/internal/domain"
	"svw.info/reversemath/internal/generator"
	"svw.info/reversemath/internal/ports"
	"svw.info/reversemath/internal/session"
)

// maxRegenerate bounds how often NewGame redraws a recently played puzzle.
const maxRegenerate = 8

var (
	errNotConfigured = errors.New("usecase dependency not configured")
	// ErrNoGame is returned by play methods before the first NewGame.
	ErrNoGame = errors.New("no game in progress")
)

// Options tunes a Service.
type Options struct {
	Manual      bool
	HistorySize int
	Logger      zerolog.Logger
	// Seed returns the seed for the next generation; defaults to the clock.
	Seed func() int64
}

// Service runs one player's games: generation, submissions, hints and score.
type Service struct {
	Generator ports.Generator
	Validator ports.Validator
	Solver    ports.Solver
	Hinter    ports.Hinter
	Scores    ports.ScoreStore

	log    zerolog.Logger
	manual bool
	seed   func() int64
	recent *lru.Cache[uint64, string]

	game     *domain.GameState
	progress domain.Progress
}

func NewService(g ports.Generator, v ports.Validator, s ports.Solver, h ports.Hinter, st ports.ScoreStore, opts Options) (*Service, error) {
	u := &Service{
		Generator: g, Validator: v, Solver: s, Hinter: h, Scores: st,
		log:    opts.Logger,
		manual: opts.Manual,
		seed:   opts.Seed,
	}
	if u.seed == nil {
		u.seed = func() int64 { return time.Now().UnixNano() }
	}
	if opts.HistorySize > 0 {
		c, err := lru.New[uint64, string](opts.HistorySize)
		if err != nil {
			return nil, fmt.Errorf("history cache: %w", err)
		}
		u.recent = c
	}
	return u, nil
}

// Manual reports whether new games use manual calculation mode.
func (u *Service) Manual() bool { return u.manual }

// SetManual switches the mode for the next NewGame.
func (u *Service) SetManual(m bool) { u.manual = m }

// NewGame discards any game in progress and starts a fresh one.
func (u *Service) NewGame(ctx context.Context, d domain.Difficulty) (*domain.GameState, domain.Progress, error) {
	if u.Generator == nil {
		return nil, domain.Progress{}, errNotConfigured
	}
	for attempt := 1; ; attempt++ {
		seed := u.seed()
		g, st, err := u.Generator.Generate(ctx, seed, d)
		if err != nil {
			return nil, domain.Progress{}, err
		}
		if u.Validator != nil {
			ok, conf, err := u.Validator.Validate(ctx, g)
			if err != nil {
				return nil, domain.Progress{}, err
			}
			if !ok {
				return nil, domain.Progress{}, fmt.Errorf("generated puzzle is inconsistent: %v", conf)
			}
		}
		fp, err := generator.Fingerprint(g)
		if err != nil {
			return nil, domain.Progress{}, err
		}
		if u.recent != nil && u.recent.Contains(fp) && attempt < maxRegenerate {
			u.log.Debug().Uint64("fingerprint", fp).Int64("seed", seed).Msg("recently played, regenerating")
			continue
		}
		if u.recent != nil {
			u.recent.Add(fp, g.ID)
		}
		u.game = g
		u.progress = session.New(g, u.manual)
		u.log.Info().
			Str("game", g.ID).
			Stringer("difficulty", d).
			Int64("seed", seed).
			Int("attempts", st.Attempts).
			Int("rejections", st.Rejections).
			Dur("dur", st.Duration).
			Msg("new game")
		return g, u.progress, nil
	}
}

// Current returns the game in progress, if any.
func (u *Service) Current() (*domain.GameState, domain.Progress, bool) {
	return u.game, u.progress, u.game != nil
}

// Submit places a tile on a step. Solving awards the difficulty's points.
func (u *Service) Submit(ctx context.Context, stepIndex, tileIndex int) (domain.Outcome, error) {
	if u.game == nil {
		return domain.Ignored, ErrNoGame
	}
	var out domain.Outcome
	u.progress, out = session.Submit(u.game, u.progress, stepIndex, tileIndex)
	u.log.Debug().Str("game", u.game.ID).Int("step", stepIndex).Int("tile", tileIndex).Stringer("outcome", out).Msg("submit")
	return out, u.finish(ctx, out)
}

// Answer checks a typed number in manual mode.
func (u *Service) Answer(ctx context.Context, stepIndex int, e domain.Entry) (domain.Outcome, error) {
	if u.game == nil {
		return domain.Ignored, ErrNoGame
	}
	var out domain.Outcome
	u.progress, out = session.SubmitAnswer(u.game, u.progress, stepIndex, e)
	u.log.Debug().Str("game", u.game.ID).Int("step", stepIndex).Stringer("outcome", out).Msg("answer")
	return out, u.finish(ctx, out)
}

// ResetTile frees a tile after a miss.
func (u *Service) ResetTile(tileIndex int) {
	if u.game != nil {
		u.progress = session.ResetTile(u.progress, tileIndex)
	}
}

// Expected is the number the active manual step expects.
func (u *Service) Expected() (int, bool) {
	if u.game == nil || u.progress.Active < 0 {
		return 0, false
	}
	return session.Expected(u.game, u.progress, u.progress.Active), true
}

func (u *Service) Hint(ctx context.Context) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	if u.game == nil {
		return domain.Hint{}, false, ErrNoGame
	}
	return u.Hinter.Hint(ctx, u.game, &u.progress)
}

// Reveal returns the full chain of numbers without changing progress.
func (u *Service) Reveal(ctx context.Context) ([]int, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	if u.game == nil {
		return nil, ErrNoGame
	}
	return u.Solver.Solve(ctx, u.game)
}

func (u *Service) Score(ctx context.Context) (int, error) {
	if u.Scores == nil {
		return 0, errNotConfigured
	}
	return u.Scores.Load(ctx)
}

func (u *Service) ResetScore(ctx context.Context) error {
	if u.Scores == nil {
		return errNotConfigured
	}
	return u.Scores.Reset(ctx)
}

func (u *Service) finish(ctx context.Context, out domain.Outcome) error {
	if out != domain.Solved {
		return nil
	}
	points := u.game.Difficulty.Points()
	if u.Scores == nil {
		return errNotConfigured
	}
	total, err := u.Scores.Add(ctx, points)
	if err != nil {
		u.log.Error().Err(err).Str("game", u.game.ID).Msg("score not saved")
		return fmt.Errorf("save score: %w", err)
	}
	u.log.Info().Str("game", u.game.ID).Int("points", points).Int("score", total).Msg("solved")
	return nil
}
