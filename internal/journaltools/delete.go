package journaltools

import (
	"context"
	"fmt"

	"github.com/brunocadim/termolog/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// DeleteTool handles the journal_delete MCP tool.
type DeleteTool struct {
	store *journal.Store
}

// NewDeleteTool creates a DeleteTool with the given journal store.
func NewDeleteTool(store *journal.Store) *DeleteTool {
	return &DeleteTool{store: store}
}

// Definition returns the MCP tool definition for journal_delete.
func (t *DeleteTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_delete",
		mcp.WithDescription("Delete a single assessment by its id."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The assessment id, as shown by journal_history"),
		),
	)
}

// Handle processes the journal_delete tool call.
func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := int64(intArg(req, "id", 0))
	if id == 0 {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	deleted, err := t.store.Delete(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete assessment: %v", err)), nil
	}
	if !deleted {
		return mcp.NewToolResultText(fmt.Sprintf("Nenhum registro com id %d.", id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Registro %d removido.", id)), nil
}

// ─── ClearTool ──────────────────────────────────────────────────────────────

// ClearTool handles the journal_clear MCP tool.
type ClearTool struct {
	store *journal.Store
}

// NewClearTool creates a ClearTool with the given journal store.
func NewClearTool(store *journal.Store) *ClearTool {
	return &ClearTool{store: store}
}

// Definition returns the MCP tool definition for journal_clear.
func (t *ClearTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_clear",
		mcp.WithDescription(
			"Delete ALL assessments. Irreversible — export first. Requires confirm=true.",
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to actually clear the journal"),
		),
	)
}

// Handle processes the journal_clear tool call.
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !boolArg(req, "confirm", false) {
		return mcp.NewToolResultError("pass confirm=true to clear the journal — this cannot be undone"), nil
	}

	if err := t.store.Clear(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to clear journal: %v", err)), nil
	}
	return mcp.NewToolResultText("Todos os registros foram removidos."), nil
}
