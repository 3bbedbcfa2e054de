package cli

import (
	"fmt"
	"time"

	"github.com/brunocadim/termolog/internal/analytics"
	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	historyEmotion string
	historyDays    int
	historyLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded assessments, most recent first",
	Long: `List recorded assessments, most recent first, optionally filtered by
emotion and trailing-day window.

Examples:
  termolog history
  termolog history --emotion tristeza --days 30
  termolog history -n 5`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyEmotion, "emotion", "e", "", "filter by emotion key")
	historyCmd.Flags().IntVarP(&historyDays, "days", "d", analytics.AllTimeDays, "trailing window in days (365+ = all time)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max records")
}

func runHistory(cmd *cobra.Command, args []string) error {
	recs := analytics.Apply(store.List(), analytics.Filter{
		Emotion: catalog.Key(historyEmotion),
		Days:    historyDays,
	}, time.Now())

	if len(recs) == 0 {
		fmt.Println("Nenhum registro encontrado.")
		return nil
	}

	total := len(recs)
	if historyLimit > 0 && len(recs) > historyLimit {
		recs = recs[:historyLimit]
	}

	fmt.Printf("Histórico (%d de %d registros):\n\n", len(recs), total)
	for _, r := range recs {
		label := ""
		if def, ok := catalog.ResolveLevel(r.Emotion, r.Level); ok {
			label = " (" + def.Label + ")"
		}
		fmt.Printf("#%d  %s  %s nível %d%s\n", r.ID, r.Timestamp, catalog.DisplayName(r.Emotion), r.Level, label)
		if r.Location != "" || r.Trigger != "" {
			fmt.Printf("    local: %s  gatilho: %s\n", r.Location, r.Trigger)
		}
		if r.Notes != "" {
			fmt.Printf("    notas: %s\n", r.Notes)
		}
	}
	return nil
}
