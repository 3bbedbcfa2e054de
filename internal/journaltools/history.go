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

// HistoryTool handles the journal_history MCP tool.
type HistoryTool struct {
	store *journal.Store
}

// NewHistoryTool creates a HistoryTool with the given journal store.
func NewHistoryTool(store *journal.Store) *HistoryTool {
	return &HistoryTool{store: store}
}

// Definition returns the MCP tool definition for journal_history.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_history",
		mcp.WithDescription(
			"List recorded assessments, most recent first, optionally filtered by emotion and trailing-day window.",
		),
		mcp.WithString("emotion",
			mcp.Description("Restrict to one emotion key ('all' or empty keeps everything)"),
		),
		mcp.WithNumber("days",
			mcp.Description("Trailing window in days; 365 or more means all time (default: all time)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum records to return (default: 20)"),
		),
	)
}

// Handle processes the journal_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := analytics.Filter{
		Emotion: catalog.Key(req.GetString("emotion", "")),
		Days:    intArg(req, "days", analytics.AllTimeDays),
	}
	limit := intArg(req, "limit", 20)

	recs := analytics.Apply(t.store.List(), filter, time.Now())
	if len(recs) == 0 {
		return mcp.NewToolResultText("Nenhum registro encontrado."), nil
	}

	total := len(recs)
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Histórico (%d de %d registros)\n\n", len(recs), total))
	for _, r := range recs {
		sb.WriteString(fmt.Sprintf("- **#%d** %s — %s nível %d", r.ID, r.Timestamp, catalog.DisplayName(r.Emotion), r.Level))
		if def, ok := catalog.ResolveLevel(r.Emotion, r.Level); ok {
			sb.WriteString(fmt.Sprintf(" (%s)", def.Label))
		}
		var details []string
		if r.Location != "" {
			details = append(details, "local: "+r.Location)
		}
		if r.Trigger != "" {
			details = append(details, "gatilho: "+r.Trigger)
		}
		if r.Notes != "" {
			details = append(details, "notas: "+r.Notes)
		}
		if len(details) > 0 {
			sb.WriteString("\n  " + strings.Join(details, " · "))
		}
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}
