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

// InsightsTool handles the journal_insights MCP tool.
type InsightsTool struct {
	store  *journal.Store
	window int
}

// NewInsightsTool creates an InsightsTool. window is how many recent
// records feed the emotional weather classification.
func NewInsightsTool(store *journal.Store, window int) *InsightsTool {
	return &InsightsTool{store: store, window: window}
}

// Definition returns the MCP tool definition for journal_insights.
func (t *InsightsTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_insights",
		mcp.WithDescription(
			"Summarize the journal: emotional weather, emotion frequencies, intensity trend and sleep correlation, "+
				"optionally filtered by emotion and trailing-day window.",
		),
		mcp.WithString("emotion",
			mcp.Description("Restrict to one emotion key ('all' or empty keeps everything)"),
		),
		mcp.WithNumber("days",
			mcp.Description("Trailing window in days; 365 or more means all time (default: all time)"),
		),
	)
}

// Handle processes the journal_insights tool call.
func (t *InsightsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := analytics.Filter{
		Emotion: catalog.Key(req.GetString("emotion", "")),
		Days:    intArg(req, "days", analytics.AllTimeDays),
	}
	recs := analytics.Apply(t.store.List(), filter, time.Now())
	if len(recs) == 0 {
		return mcp.NewToolResultText("Nenhum registro no período — nada para analisar."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Insights (%d registros)\n\n", len(recs)))

	if w := analytics.EmotionalWeather(recs, t.window); w != nil {
		sb.WriteString(fmt.Sprintf("### Clima emocional: %s\n%s\n", w.Label, w.Desc))
		sb.WriteString(fmt.Sprintf("Valência média %.1f · ativação média %.1f (últimos %d registros)\n\n",
			w.AvgValence, w.AvgArousal, w.Sample))
	}

	freqs := analytics.Frequencies(recs)
	if len(freqs) > 0 {
		sb.WriteString("### Frequência por emoção\n")
		for _, f := range freqs {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", f.Name, f.Count))
		}
		sb.WriteString("\n")
	}

	trend := analytics.Trend(recs)
	if len(trend) > 1 {
		sb.WriteString("### Tendência de intensidade\n")
		points := make([]string, len(trend))
		for i, p := range trend {
			points[i] = fmt.Sprintf("%s:%d", p.Date, p.Level)
		}
		sb.WriteString(strings.Join(points, " → ") + "\n\n")
	}

	sleep := analytics.SleepCorrelation(recs)
	var withSleep int
	for _, p := range sleep {
		if p.Sleep > 0 {
			withSleep++
		}
	}
	if withSleep > 0 {
		sb.WriteString("### Sono × intensidade\n")
		for _, p := range sleep {
			if p.Sleep > 0 {
				sb.WriteString(fmt.Sprintf("- %.1fh de sono → %s nível %d\n", p.Sleep, p.Emotion, p.Intensity))
			}
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
