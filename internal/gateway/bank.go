package gateway

import (
	"context"
	"fmt"

	"clash-arena/internal/config"
	"clash-arena/internal/model"
)

// Bank talks to the real banking provider. The HTTP client integration is a
// deployment concern; until credentials are wired it refuses to initiate so
// no payment can silently dead-end.
type Bank struct {
	cfg config.BankConfig
}

var _ Provider = (*Bank)(nil)

func NewBank(cfg config.BankConfig) *Bank {
	return &Bank{cfg: cfg}
}

func (b *Bank) Kind() model.GatewayKind {
	return model.GatewayBank
}

func (b *Bank) Initiate(_ context.Context, _ string, _ string) (*InitiateResult, error) {
	if b.cfg.MerchantID == "" || b.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: bank gateway not configured", model.ErrGatewayUnavailable)
	}
	// TODO: wire the provider HTTP API once merchant credentials are issued.
	return nil, fmt.Errorf("%w: bank gateway integration pending", model.ErrGatewayUnavailable)
}

func (b *Bank) Verify(_ context.Context, _ string) (*VerifyResult, error) {
	return nil, fmt.Errorf("%w: bank gateway integration pending", model.ErrGatewayUnavailable)
}
