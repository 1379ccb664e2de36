package core

import (
	"context"
	"fmt"
)

type Action string

const (
	ActionMap       Action = "map"
	ActionAnalytics Action = "analytics"
	ActionRefresh   Action = "refresh"
)

func Actions() []Action {
	return []Action{ActionMap, ActionAnalytics, ActionRefresh}
}

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionMap, ActionAnalytics, ActionRefresh:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

func (a Action) Title() string {
	switch a {
	case ActionMap:
		return "Memory Map"
	case ActionAnalytics:
		return "Memory Analytics"
	case ActionRefresh:
		return "Refresh Memories"
	default:
		return string(a)
	}
}

// Description is the user-facing text announcing what the action will do.
func (a Action) Description() string {
	switch a {
	case ActionMap:
		return "This will open an interactive visualization showing memory relationships and clusters"
	case ActionAnalytics:
		return "Detailed insights about memory patterns, trends, and usage statistics"
	case ActionRefresh:
		return "Sync latest memories from all connected sources and update the dashboard"
	default:
		return ""
	}
}

// RefreshResult is reserved for the outcome of a real refresh job.
type RefreshResult struct{}

// DashboardActions is the boundary between the dashboard and the services that
// will back the map, analytics and refresh features.
type DashboardActions interface {
	TriggerMap(ctx context.Context) error
	TriggerAnalytics(ctx context.Context) error
	Refresh(ctx context.Context) (RefreshResult, error)
}

// RunAction dispatches a to the matching DashboardActions method.
func RunAction(ctx context.Context, actions DashboardActions, a Action) error {
	switch a {
	case ActionMap:
		return actions.TriggerMap(ctx)
	case ActionAnalytics:
		return actions.TriggerAnalytics(ctx)
	case ActionRefresh:
		_, err := actions.Refresh(ctx)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
}
