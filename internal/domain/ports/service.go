package ports

import (
	"context"

	"ecb-rates/internal/domain/model"
)

type ExchangeService interface {
	Rate(ctx context.Context, spec model.RequestSpec) (float64, error)
	Quote(ctx context.Context, spec model.RequestSpec) (*model.Quote, error)
	ConvertCurrency(ctx context.Context, request model.ConversionRequest) (*model.ConversionResult, error)
	Refresh(ctx context.Context) error
}
