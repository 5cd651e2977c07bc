package normalizer

import (
	"context"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PostProcessor handles domain-specific data of a block after it is stored.
	PostProcessor interface {
		Name() string
		Process(ctx context.Context, block *decoder.ParsedBlock, update *model.BlockUpdate) error
	}
)
