package journaltools

import (
	"context"
	"fmt"
	"time"

	"github.com/brunocadim/termolog/internal/export"
	"github.com/brunocadim/termolog/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// ExportTool handles the journal_export MCP tool.
type ExportTool struct {
	store *journal.Store
	notes export.NotesPolicy
}

// NewExportTool creates an ExportTool. notes is the policy applied to
// free-text fields in anonymous exports.
func NewExportTool(store *journal.Store, notes export.NotesPolicy) *ExportTool {
	return &ExportTool{store: store, notes: notes}
}

// Definition returns the MCP tool definition for journal_export.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_export",
		mcp.WithDescription(
			"Serialize the full journal for backup or sharing. Formats: json (re-importable backup), "+
				"csv (spreadsheet), anonymous (pseudonymized ids, date-only timestamps).",
		),
		mcp.WithString("format",
			mcp.Description("json, csv or anonymous (default: json)"),
		),
	)
}

// Handle processes the journal_export tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recs := t.store.List()
	if len(recs) == 0 {
		return mcp.NewToolResultText("Nenhum registro para exportar."), nil
	}

	now := time.Now()
	format := req.GetString("format", "json")
	switch format {
	case "json":
		data, err := export.JSON(recs, now)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to serialize journal: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Arquivo sugerido: %s\n\n%s", export.JSONFileName(now), data)), nil
	case "csv":
		return mcp.NewToolResultText(fmt.Sprintf("Arquivo sugerido: %s\n\n%s", export.CSVFileName(now), export.CSV(recs))), nil
	case "anonymous":
		data, err := export.AnonymizedJSON(recs, t.notes, now)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to serialize journal: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Arquivo sugerido: %s\n\n%s", export.AnonymousFileName(now), data)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q (valid: json, csv, anonymous)", format)), nil
	}
}
