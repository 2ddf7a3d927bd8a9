package limiter

import (
	"context"

	"github.com/adrianliechti/paddleocr-ui/pkg/paddle"

	"golang.org/x/time/rate"
)

type Provider interface {
	Limiter
	paddle.Provider
}

type limitedProvider struct {
	limiter  *rate.Limiter
	provider paddle.Provider
}

func NewProvider(l *rate.Limiter, p paddle.Provider) Provider {
	return &limitedProvider{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedProvider) limiterSetup() {
}

func (p *limitedProvider) Parse(ctx context.Context, input paddle.Input, options *paddle.ParseOptions) (*paddle.Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Parse(ctx, input, options)
}
