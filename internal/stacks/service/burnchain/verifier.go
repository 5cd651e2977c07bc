// Package burnchain cross-checks burn blocks reported by the Stacks node
// against a bitcoind instance.
package burnchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/pkg/safe"
	"go.uber.org/zap"
)

// MismatchError reports a burn block hash that differs from bitcoind's.
type MismatchError struct {
	Height   uint64
	Reported string
	Node     string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("burn block %d: reported hash %s, bitcoind has %s", e.Height, e.Reported, e.Node)
}

// Verifier checks burn block hashes against bitcoind.
type Verifier struct {
	client BlockHasher
	logger *zap.Logger
}

func NewVerifier(client BlockHasher, logger *zap.Logger) *Verifier {
	return &Verifier{client: client, logger: logger.Named("burnchain")}
}

// VerifyBurnBlock returns a *MismatchError when bitcoind's hash at the
// block's height differs. Heights above bitcoind's tip are not checked.
func (v *Verifier) VerifyBurnBlock(ctx context.Context, block *decoder.ParsedBurnBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	height, err := safe.Int64(block.BurnBlockHeight)
	if err != nil {
		return fmt.Errorf("burn block height: %w", err)
	}

	count, err := v.client.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get block count: %w", err)
	}
	if height > count {
		v.logger.Debug("burn block ahead of bitcoind",
			zap.Uint64("height", block.BurnBlockHeight),
			zap.Int64("bitcoind_height", count),
		)
		return nil
	}

	hash, err := v.client.GetBlockHash(height)
	if err != nil {
		return fmt.Errorf("get block hash %d: %w", block.BurnBlockHeight, err)
	}

	reported := strings.ToLower(strings.TrimPrefix(block.BurnBlockHash, "0x"))
	if reported != hash.String() {
		return &MismatchError{
			Height:   block.BurnBlockHeight,
			Reported: block.BurnBlockHash,
			Node:     hash.String(),
		}
	}
	return nil
}
