package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/internal/service/memory"
	"github.com/sandevgo/tuskmem/pkg/humantime"
	"github.com/sandevgo/tuskmem/pkg/log"
	"github.com/sandevgo/tuskmem/pkg/srv"
)

const (
	ToolListMemories  = "list_memories"
	ToolTriggerAction = "trigger_action"
)

type Browser interface {
	List(ctx context.Context, state core.FilterState) ([]core.Memory, error)
}

var _ srv.Service = (*Server)(nil)

// Server exposes the memory listing to MCP clients over stdio.
type Server struct {
	browser   Browser
	actions   core.DashboardActions
	formatter *humantime.Formatter
	mcp       *server.MCPServer
	in        io.Reader
	out       io.Writer
}

func NewServer(browser Browser, actions core.DashboardActions, formatter *humantime.Formatter) *Server {
	if formatter == nil {
		formatter = humantime.NewFormatter("")
	}
	s := &Server{
		browser:   browser,
		actions:   actions,
		formatter: formatter,
		in:        os.Stdin,
		out:       os.Stdout,
	}

	s.mcp = server.NewMCPServer(core.AppName, core.AppVersion, server.WithToolCapabilities(false))
	s.mcp.AddTool(listMemoriesTool(), s.listMemories)
	s.mcp.AddTool(triggerActionTool(), s.triggerAction)
	return s
}

func listMemoriesTool() mcp.Tool {
	categories := make([]string, 0, len(core.CategoryFilters()))
	for _, f := range core.CategoryFilters() {
		categories = append(categories, f.String())
	}

	return mcp.NewTool(ToolListMemories,
		mcp.WithDescription("List stored memories, optionally narrowed by a case-insensitive substring search over content and tags and by category."),
		mcp.WithString("search",
			mcp.Description("Substring to look for in memory content or tags. Empty matches everything."),
		),
		mcp.WithString("category",
			mcp.Description("Category filter, defaults to all."),
			mcp.Enum(categories...),
		),
	)
}

func triggerActionTool() mcp.Tool {
	actions := make([]string, 0, len(core.Actions()))
	for _, a := range core.Actions() {
		actions = append(actions, string(a))
	}

	return mcp.NewTool(ToolTriggerAction,
		mcp.WithDescription("Run a dashboard action: the memory map, analytics, or a refresh from connected sources."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("Action to run."),
			mcp.Enum(actions...),
		),
	)
}

func (s *Server) listMemories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := core.NewFilterState(req.GetString("search", ""), req.GetString("category", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	memories, err := s.browser.List(ctx, state)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("mcp: failed to list memories")
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.Marshal(memory.Entries(memories, s.formatter))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal memories: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) triggerAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action, err := core.ParseAction(strings.TrimSpace(req.GetString("action", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = core.RunAction(ctx, s.actions, action)
	switch {
	case err == nil:
		return mcp.NewToolResultText(fmt.Sprintf("%s: done", action.Title())), nil
	case errors.Is(err, core.ErrNotImplemented):
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s (not implemented yet)", action.Title(), action.Description())), nil
	default:
		return mcp.NewToolResultError(err.Error()), nil
	}
}

// Start serves MCP over stdio until ctx is done or stdin closes.
func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("mcp server listening on stdio")
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, s.in, s.out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}
