package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/pkg/humantime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureBrowser struct {
	err error
}

func (b fixtureBrowser) List(ctx context.Context, state core.FilterState) ([]core.Memory, error) {
	if b.err != nil {
		return nil, b.err
	}
	return memory.Filter(memory.Fixture(), state), nil
}

func newTestServer(b Browser) *Server {
	return NewServer(b, memory.NewStubActions(), &humantime.Formatter{
		Layout:   humantime.DefaultDateLayout,
		Now:      func() time.Time { return time.Date(2025, 6, 21, 21, 0, 0, 0, time.UTC) },
		Location: time.UTC,
	})
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestListMemories(t *testing.T) {
	s := newTestServer(fixtureBrowser{})

	tests := []struct {
		name    string
		args    map[string]any
		wantIDs []string
	}{
		{name: "no arguments", args: nil, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "search", args: map[string]any{"search": "React"}, wantIDs: []string{"2", "3", "4"}},
		{name: "category", args: map[string]any{"category": "learning"}, wantIDs: []string{"3", "4"}},
		{name: "both", args: map[string]any{"search": "versions", "category": "learning"}, wantIDs: []string{"3"}},
		{name: "no match", args: map[string]any{"search": "nonexistent-xyz"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.listMemories(context.Background(), callRequest(ToolListMemories, tt.args))
			require.NoError(t, err)
			assert.False(t, res.IsError)

			var entries []memory.Entry
			require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))

			got := make([]string, len(entries))
			for i, e := range entries {
				got[i] = e.ID
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestListMemories_RelativeTime(t *testing.T) {
	s := newTestServer(fixtureBrowser{})

	res, err := s.listMemories(context.Background(), callRequest(ToolListMemories, map[string]any{"category": "personal"}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), `"relative_time":"1h ago"`)
}

func TestListMemories_Errors(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		s := newTestServer(fixtureBrowser{})
		res, err := s.listMemories(context.Background(), callRequest(ToolListMemories, map[string]any{"category": "hobby"}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid category")
	})

	t.Run("source unavailable", func(t *testing.T) {
		s := newTestServer(fixtureBrowser{err: errors.Join(core.ErrSourceUnavailable, errors.New("locked"))})
		res, err := s.listMemories(context.Background(), callRequest(ToolListMemories, nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "memory source unavailable")
	})
}

func TestTriggerAction(t *testing.T) {
	s := newTestServer(fixtureBrowser{})

	for _, a := range core.Actions() {
		t.Run(string(a), func(t *testing.T) {
			res, err := s.triggerAction(context.Background(), callRequest(ToolTriggerAction, map[string]any{"action": string(a)}))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Equal(t, a.Title()+": "+a.Description()+" (not implemented yet)", resultText(t, res))
		})
	}

	res, err := s.triggerAction(context.Background(), callRequest(ToolTriggerAction, map[string]any{"action": "delete"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "unknown action")
}

func TestTools_Schema(t *testing.T) {
	tool := listMemoriesTool()
	assert.Equal(t, ToolListMemories, tool.Name)
	assert.Contains(t, tool.InputSchema.Properties, "search")
	assert.Contains(t, tool.InputSchema.Properties, "category")
	assert.Empty(t, tool.InputSchema.Required)

	action := triggerActionTool()
	assert.Equal(t, []string{"action"}, action.InputSchema.Required)
}
