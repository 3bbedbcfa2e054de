package cli

import (
	"fmt"
	"time"

	"github.com/brunocadim/termolog/internal/analytics"
	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	insightsEmotion string
	insightsDays    int
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Summarize the journal: weather, frequencies, trend, sleep",
	RunE:  runInsights,
}

func init() {
	insightsCmd.Flags().StringVarP(&insightsEmotion, "emotion", "e", "", "filter by emotion key")
	insightsCmd.Flags().IntVarP(&insightsDays, "days", "d", analytics.AllTimeDays, "trailing window in days (365+ = all time)")
}

func runInsights(cmd *cobra.Command, args []string) error {
	recs := analytics.Apply(store.List(), analytics.Filter{
		Emotion: catalog.Key(insightsEmotion),
		Days:    insightsDays,
	}, time.Now())

	if len(recs) == 0 {
		fmt.Println("Nenhum registro no período — nada para analisar.")
		return nil
	}

	fmt.Printf("Insights (%d registros)\n\n", len(recs))

	if w := analytics.EmotionalWeather(recs, cfg.WeatherWindow); w != nil {
		fmt.Printf("Clima emocional: %s — %s\n", w.Label, w.Desc)
		fmt.Printf("Valência média %.1f · ativação média %.1f (últimos %d registros)\n\n",
			w.AvgValence, w.AvgArousal, w.Sample)
	}

	freqs := analytics.Frequencies(recs)
	if len(freqs) > 0 {
		fmt.Println("Frequência por emoção:")
		for _, f := range freqs {
			fmt.Printf("  %-10s %d\n", f.Name, f.Count)
		}
		fmt.Println()
	}

	trend := analytics.Trend(recs)
	if len(trend) > 1 {
		fmt.Println("Tendência de intensidade:")
		for _, p := range trend {
			fmt.Printf("  %s  %s nível %d\n", p.Date, p.Emotion, p.Level)
		}
		fmt.Println()
	}

	var printedHeader bool
	for _, p := range analytics.SleepCorrelation(recs) {
		if p.Sleep <= 0 {
			continue
		}
		if !printedHeader {
			fmt.Println("Sono × intensidade:")
			printedHeader = true
		}
		fmt.Printf("  %.1fh de sono → %s nível %d\n", p.Sleep, p.Emotion, p.Intensity)
	}
	return nil
}
