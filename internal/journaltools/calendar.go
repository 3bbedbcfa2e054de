package journaltools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brunocadim/termolog/internal/analytics"
	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/brunocadim/termolog/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// CalendarTool handles the journal_calendar MCP tool.
type CalendarTool struct {
	store *journal.Store
}

// NewCalendarTool creates a CalendarTool with the given journal store.
func NewCalendarTool(store *journal.Store) *CalendarTool {
	return &CalendarTool{store: store}
}

// Definition returns the MCP tool definition for journal_calendar.
func (t *CalendarTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_calendar",
		mcp.WithDescription(
			"Show the current month as a grid: for each day, the dominant emotion logged (highest level wins, most recent breaks ties).",
		),
	)
}

// Handle processes the journal_calendar tool call.
func (t *CalendarTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now()
	grid := analytics.Calendar(t.store.List(), now)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", now.Format("January 2006")))
	sb.WriteString("Dom Seg Ter Qua Qui Sex Sáb\n")

	col := 0
	logged := 0
	for _, cell := range grid {
		switch {
		case cell.Day == 0:
			sb.WriteString("  . ")
		case cell.HasData:
			sb.WriteString(fmt.Sprintf("%2d* ", cell.Day))
			logged++
		default:
			sb.WriteString(fmt.Sprintf("%2d  ", cell.Day))
		}
		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n%d dias com registro neste mês.\n", logged))
	for _, cell := range grid {
		if cell.HasData {
			sb.WriteString(fmt.Sprintf("- dia %d: %s nível %d\n", cell.Day, catalog.DisplayName(cell.Emotion), cell.Level))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
