package journaltools

import (
	"context"
	"fmt"
	"time"

	"github.com/brunocadim/termolog/internal/analytics"
	"github.com/brunocadim/termolog/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// StreakTool handles the journal_streak MCP tool.
type StreakTool struct {
	store *journal.Store
}

// NewStreakTool creates a StreakTool with the given journal store.
func NewStreakTool(store *journal.Store) *StreakTool {
	return &StreakTool{store: store}
}

// Definition returns the MCP tool definition for journal_streak.
func (t *StreakTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_streak",
		mcp.WithDescription(
			"Show the current logging streak: consecutive calendar days, ending today or yesterday, with at least one assessment.",
		),
	)
}

// Handle processes the journal_streak tool call.
func (t *StreakTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	streak := analytics.Streak(t.store.List(), time.Now())
	switch streak {
	case 0:
		return mcp.NewToolResultText("Sem sequência ativa. Registre hoje para começar uma!"), nil
	case 1:
		return mcp.NewToolResultText("Sequência atual: 1 dia."), nil
	default:
		return mcp.NewToolResultText(fmt.Sprintf("Sequência atual: %d dias.", streak)), nil
	}
}
