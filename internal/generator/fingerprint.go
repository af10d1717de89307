package generator

import (
	"fmt"

	"github.com/dgryski/go-farm"
	"github.com/shamaton/msgpack/v2"

	"svw.info/reversemath/internal/domain"
)

type chainKey struct {
	Start int           `msgpack:"s"`
	Steps []domain.Step `msgpack:"c"`
}

// Fingerprint hashes the start number and forward chain. Two games with the
// same fingerprint play identically apart from tile order and decoys.
func Fingerprint(g *domain.GameState) (uint64, error) {
	b, err := msgpack.Marshal(chainKey{Start: g.StartNumber, Steps: g.Steps})
	if err != nil {
		return 0, fmt.Errorf("encode chain: %w", err)
	}
	return farm.Hash64(b), nil
}
