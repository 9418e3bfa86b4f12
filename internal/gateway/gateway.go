// Package gateway abstracts external payment providers. Wire protocols are
// out of scope; the core only needs initiate and verify.
package gateway

import (
	"context"
	"fmt"

	"clash-arena/internal/config"
	"clash-arena/internal/model"
)

// InitiateResult is the provider's answer to a payment initiation.
type InitiateResult struct {
	GatewayTransactionID string
	PaymentURL           string
}

// VerifyResult is the provider's answer to a verification poll or callback.
type VerifyResult struct {
	Success      bool
	TrackingCode string
	CardInfo     *model.CardInfo
	// Reason is provider-internal and must not surface to users.
	Reason string
}

// Provider is one payment gateway. Implementations must treat Verify as
// repeatable: the caller's completed-once guard absorbs duplicate successes.
type Provider interface {
	Kind() model.GatewayKind
	Initiate(ctx context.Context, amount string, callbackURL string) (*InitiateResult, error)
	Verify(ctx context.Context, gatewayTransactionID string) (*VerifyResult, error)
}

// New builds the provider selected by the tagged configuration.
func New(cfg config.GatewayConfig) (Provider, error) {
	kind, err := model.ParseGatewayKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case model.GatewaySandbox:
		return NewSandbox(cfg.Sandbox), nil
	case model.GatewayBank:
		return NewBank(cfg.Bank), nil
	default:
		return nil, fmt.Errorf("%w: %s has no provider implementation", model.ErrInvalidGateway, kind)
	}
}
