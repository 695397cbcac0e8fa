package ports

import (
	"context"

	"ecb-rates/internal/domain/model"
)

// FeedFetcher downloads and decodes one feed window.
type FeedFetcher interface {
	Fetch(ctx context.Context, window model.Window) (model.Batch, error)
}
