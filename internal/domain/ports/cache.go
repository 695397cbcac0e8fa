package ports

import (
	"ecb-rates/internal/domain/model"
)

type RateCache interface {
	model.DateIndex
	// Store writes every day of the batch, replacing existing days.
	Store(batch model.Batch)
	Len() int
}
