package journaltools

import (
	"context"
	"errors"
	"fmt"

	"github.com/brunocadim/termolog/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// ImportTool handles the journal_import MCP tool.
type ImportTool struct {
	store *journal.Store
}

// NewImportTool creates an ImportTool with the given journal store.
func NewImportTool(store *journal.Store) *ImportTool {
	return &ImportTool{store: store}
}

// Definition returns the MCP tool definition for journal_import.
func (t *ImportTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_import",
		mcp.WithDescription(
			"Merge a JSON backup (as produced by journal_export format=json) into the journal. "+
				"Records already present — same id — are skipped; invalid entries are dropped.",
		),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The backup JSON document, verbatim"),
		),
	)
}

// Handle processes the journal_import tool call.
func (t *ImportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document := req.GetString("document", "")
	if document == "" {
		return mcp.NewToolResultError("'document' is required"), nil
	}

	res, err := t.store.Import([]byte(document))
	if err != nil {
		switch {
		case errors.Is(err, journal.ErrInvalidFormat):
			return mcp.NewToolResultError("formato de arquivo inválido — esperava um backup JSON com o campo 'assessments'"), nil
		case errors.Is(err, journal.ErrNoValidRecords):
			return mcp.NewToolResultError("nenhum registro válido encontrado no arquivo"), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("failed to import backup: %v", err)), nil
		}
	}

	response := fmt.Sprintf("%d registros importados.", res.Added)
	if res.Added == 0 {
		response = "Nenhum registro novo — todos já existiam."
	}
	if res.Warning != "" {
		response += fmt.Sprintf("\n⚠ %s", res.Warning)
	}
	return mcp.NewToolResultText(response), nil
}
