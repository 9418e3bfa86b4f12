package gateway

import (
	"context"
	"sync/atomic"

	"clash-arena/internal/config"
	"clash-arena/internal/model"

	"github.com/google/uuid"
)

// Sandbox is an in-process provider for development and tests. Every
// verification succeeds unless FailEvery is set.
type Sandbox struct {
	cfg     config.SandboxConfig
	counter atomic.Int64
}

var _ Provider = (*Sandbox)(nil)

func NewSandbox(cfg config.SandboxConfig) *Sandbox {
	return &Sandbox{cfg: cfg}
}

func (s *Sandbox) Kind() model.GatewayKind {
	return model.GatewaySandbox
}

func (s *Sandbox) Initiate(_ context.Context, _ string, _ string) (*InitiateResult, error) {
	id := uuid.New().String()
	return &InitiateResult{
		GatewayTransactionID: id,
		PaymentURL:           "https://sandbox.invalid/pay/" + id,
	}, nil
}

func (s *Sandbox) Verify(_ context.Context, gatewayTransactionID string) (*VerifyResult, error) {
	n := s.counter.Add(1)
	if s.cfg.FailEvery > 0 && n%int64(s.cfg.FailEvery) == 0 {
		return &VerifyResult{Success: false, Reason: "sandbox simulated failure"}, nil
	}
	return &VerifyResult{
		Success:      true,
		TrackingCode: "SBX-" + gatewayTransactionID[:8],
		CardInfo:     &model.CardInfo{Last4Digits: "0000", HolderName: "Sandbox"},
	}, nil
}
