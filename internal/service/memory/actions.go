package memory

import (
	"context"
	"fmt"

	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/log"
)

var _ core.DashboardActions = (*StubActions)(nil)

// StubActions stands in for the map, analytics and refresh services until
// they exist. Every call reports core.ErrNotImplemented.
type StubActions struct{}

func NewStubActions() *StubActions {
	return &StubActions{}
}

func (s *StubActions) TriggerMap(ctx context.Context) error {
	return s.notImplemented(ctx, core.ActionMap)
}

func (s *StubActions) TriggerAnalytics(ctx context.Context) error {
	return s.notImplemented(ctx, core.ActionAnalytics)
}

func (s *StubActions) Refresh(ctx context.Context) (core.RefreshResult, error) {
	return core.RefreshResult{}, s.notImplemented(ctx, core.ActionRefresh)
}

func (s *StubActions) notImplemented(ctx context.Context, a core.Action) error {
	log.FromCtx(ctx).Info().
		Str("action", string(a)).
		Msgf("%s: %s", a.Title(), a.Description())
	return fmt.Errorf("%s: %w", a.Title(), core.ErrNotImplemented)
}
