package journaltools

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/brunocadim/termolog/internal/journal"
	"github.com/mark3labs/mcp-go/mcp"
)

// LogTool handles the journal_log MCP tool.
type LogTool struct {
	store *journal.Store
}

// NewLogTool creates a LogTool with the given journal store.
func NewLogTool(store *journal.Store) *LogTool {
	return &LogTool{store: store}
}

// Definition returns the MCP tool definition for journal_log.
func (t *LogTool) Definition() mcp.Tool {
	return mcp.NewTool("journal_log",
		mcp.WithDescription(
			"Record an emotional assessment: an emotion, its intensity level, and the situational context "+
				"(where, with whom, trigger, sleep, energy, coping strategies, notes).",
		),
		mcp.WithString("emotion",
			mcp.Required(),
			mcp.Description("Emotion scale key: alegria, tristeza, raiva, medo, surpresa or nojo"),
		),
		mcp.WithNumber("level",
			mcp.Required(),
			mcp.Description("Intensity level on the chosen scale (1-7; nojo goes to 5)"),
		),
		mcp.WithString("timestamp",
			mcp.Description("Event time as RFC 3339 (default: now)"),
		),
		mcp.WithString("location",
			mcp.Description("Where it happened (e.g. 'casa', 'trabalho')"),
		),
		mcp.WithString("company",
			mcp.Description("Who was present, comma-separated (e.g. 'família, amigos')"),
		),
		mcp.WithString("trigger",
			mcp.Description("What triggered the emotion"),
		),
		mcp.WithString("duration",
			mcp.Description("How long it lasted (e.g. 'minutos', 'horas')"),
		),
		mcp.WithString("copingStrategies",
			mcp.Description("Regulation strategies used, comma-separated"),
		),
		mcp.WithNumber("sleepHours",
			mcp.Description("Hours slept the previous night"),
		),
		mcp.WithNumber("energy",
			mcp.Description("Energy level 1-10"),
		),
		mcp.WithString("notes",
			mcp.Description("Free-form notes"),
		),
		mcp.WithString("secondaryEmotion",
			mcp.Description("A secondary emotion key, if one was present"),
		),
	)
}

// Handle processes the journal_log tool call.
func (t *LogTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	emotion := catalog.Key(req.GetString("emotion", ""))
	if emotion == "" {
		return mcp.NewToolResultError("'emotion' is required"), nil
	}
	if !catalog.Known(emotion) {
		keys := catalog.Keys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = string(k)
		}
		return mcp.NewToolResultError(fmt.Sprintf("unknown emotion %q (valid: %s)", emotion, strings.Join(names, ", "))), nil
	}

	level := intArg(req, "level", 0)
	def, ok := catalog.ResolveLevel(emotion, level)
	if !ok {
		scale, _ := catalog.Lookup(emotion)
		return mcp.NewToolResultError(fmt.Sprintf("level %d is not on the %s scale (1-%d)", level, scale.Name, len(scale.Levels))), nil
	}

	res, err := t.store.Append(journal.AppendParams{
		Emotion:   emotion,
		Level:     level,
		Timestamp: req.GetString("timestamp", ""),
		Context: journal.AssessmentContext{
			Location:         req.GetString("location", ""),
			Company:          listArg(req, "company"),
			Trigger:          req.GetString("trigger", ""),
			Duration:         req.GetString("duration", ""),
			CopingStrategies: listArg(req, "copingStrategies"),
			SleepHours:       floatArg(req, "sleepHours", 0),
			Energy:           intArg(req, "energy", 0),
			Notes:            req.GetString("notes", ""),
			SecondaryEmotion: req.GetString("secondaryEmotion", ""),
		},
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save assessment: %v", err)), nil
	}

	response := fmt.Sprintf("Registrado: %s — %s (nível %d)\nID: %d\nTimestamp: %s",
		catalog.DisplayName(emotion), def.Label, level, res.Assessment.ID, res.Assessment.Timestamp)
	if def.Regulation != "" {
		response += fmt.Sprintf("\nRegulação sugerida: %s", def.Regulation)
	}
	if res.Warning != "" {
		response += fmt.Sprintf("\n⚠ %s", res.Warning)
	}

	return mcp.NewToolResultText(response), nil
}
