package journaltools

import (
	"context"
	"fmt"

	"github.com/brunocadim/termolog/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// ThemeTool handles the journal_theme MCP tool.
type ThemeTool struct {
	store *journal.Store
}

// NewThemeTool creates a ThemeTool with the given journal store.
func NewThemeTool(store *journal.Store) *ThemeTool {
	return &ThemeTool{store: store}
}

// Definition returns the MCP tool definition for journal_theme.
func (t *ThemeTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_theme",
		mcp.WithDescription("Get or set the stored UI theme preference (light or dark)."),
		mcp.WithString("set",
			mcp.Description("New theme value: light or dark. Omit to read the current theme."),
		),
	)
}

// Handle processes the journal_theme tool call.
func (t *ThemeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if v := req.GetString("set", ""); v != "" {
		if err := t.store.SetTheme(journal.Theme(v)); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid theme %q (valid: light, dark)", v)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Tema definido: %s", v)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Tema atual: %s", t.store.Theme())), nil
}
