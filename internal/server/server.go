// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it takes the already-opened journal
// store, builds every tool handler, and registers them. No business
// logic lives here — only wiring.
package server

import (
	"github.com/brunocadim/termolog/internal/config"
	"github.com/brunocadim/termolog/internal/export"
	"github.com/brunocadim/termolog/internal/journal"
	"github.com/brunocadim/termolog/internal/journaltools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all journal tools
// registered. The caller owns the store's lifecycle.
func New(store *journal.Store, cfg config.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"termolog",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	logTool := journaltools.NewLogTool(store)
	s.AddTool(logTool.Definition(), logTool.Handle)

	historyTool := journaltools.NewHistoryTool(store)
	s.AddTool(historyTool.Definition(), historyTool.Handle)

	deleteTool := journaltools.NewDeleteTool(store)
	s.AddTool(deleteTool.Definition(), deleteTool.Handle)

	clearTool := journaltools.NewClearTool(store)
	s.AddTool(clearTool.Definition(), clearTool.Handle)

	streakTool := journaltools.NewStreakTool(store)
	s.AddTool(streakTool.Definition(), streakTool.Handle)

	insightsTool := journaltools.NewInsightsTool(store, cfg.WeatherWindow)
	s.AddTool(insightsTool.Definition(), insightsTool.Handle)

	calendarTool := journaltools.NewCalendarTool(store)
	s.AddTool(calendarTool.Definition(), calendarTool.Handle)

	exportTool := journaltools.NewExportTool(store, export.NotesPolicy(cfg.AnonymizeNotes))
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	importTool := journaltools.NewImportTool(store)
	s.AddTool(importTool.Definition(), importTool.Handle)

	themeTool := journaltools.NewThemeTool(store)
	s.AddTool(themeTool.Definition(), themeTool.Handle)

	return s
}

// serverInstructions is the guidance sent to MCP clients on connect.
func serverInstructions() string {
	return `Termolog is a personal emotional journal.

Use journal_log to record how the user feels: an emotion scale key
(alegria, tristeza, raiva, medo, surpresa, nojo), an intensity level,
and optional context (location, company, trigger, sleep, energy,
coping strategies, notes).

Read the journal back with journal_history, journal_streak,
journal_insights and journal_calendar. Back it up with journal_export
(json, csv or anonymous) and restore with journal_import. journal_clear
wipes everything and needs confirm=true.

Data never leaves the local machine unless the user exports it.`
}
