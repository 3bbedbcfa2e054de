package cli

import (
	"fmt"
	"strconv"

	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/brunocadim/termolog/internal/journal"
	"github.com/spf13/cobra"
)

var (
	logTimestamp  string
	logLocation   string
	logCompany    []string
	logTrigger    string
	logDuration   string
	logStrategies []string
	logSleep      float64
	logEnergy     int
	logNotes      string
	logSecondary  string
)

var logCmd = &cobra.Command{
	Use:   "log <emotion> <level>",
	Short: "Record an emotional assessment",
	Long: `Record an emotional assessment: an emotion scale key, its intensity
level, and optional situational context.

Emotion keys: alegria, tristeza, raiva, medo, surpresa, nojo.

Examples:
  termolog log alegria 5
  termolog log tristeza 4 --location casa --trigger "discussão" --sleep 6.5
  termolog log raiva 3 --company "colegas,chefe" --notes "reunião tensa"`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logTimestamp, "timestamp", "", "event time as RFC 3339 (default: now)")
	logCmd.Flags().StringVar(&logLocation, "location", "", "where it happened")
	logCmd.Flags().StringSliceVar(&logCompany, "company", nil, "who was present")
	logCmd.Flags().StringVar(&logTrigger, "trigger", "", "what triggered the emotion")
	logCmd.Flags().StringVar(&logDuration, "duration", "", "how long it lasted")
	logCmd.Flags().StringSliceVar(&logStrategies, "strategies", nil, "coping strategies used")
	logCmd.Flags().Float64Var(&logSleep, "sleep", 0, "hours slept the previous night")
	logCmd.Flags().IntVar(&logEnergy, "energy", 0, "energy level 1-10")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "free-form notes")
	logCmd.Flags().StringVar(&logSecondary, "secondary", "", "secondary emotion key")
}

func runLog(cmd *cobra.Command, args []string) error {
	emotion := catalog.Key(args[0])
	if !catalog.Known(emotion) {
		return fmt.Errorf("unknown emotion %q (valid: %v)", args[0], catalog.Keys())
	}

	level, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("level must be a number: %w", err)
	}
	def, ok := catalog.ResolveLevel(emotion, level)
	if !ok {
		scale, _ := catalog.Lookup(emotion)
		return fmt.Errorf("level %d is not on the %s scale (1-%d)", level, scale.Name, len(scale.Levels))
	}

	res, err := store.Append(journal.AppendParams{
		Emotion:   emotion,
		Level:     level,
		Timestamp: logTimestamp,
		Context: journal.AssessmentContext{
			Location:         logLocation,
			Company:          logCompany,
			Trigger:          logTrigger,
			Duration:         logDuration,
			CopingStrategies: logStrategies,
			SleepHours:       logSleep,
			Energy:           logEnergy,
			Notes:            logNotes,
			SecondaryEmotion: logSecondary,
		},
	})
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}

	fmt.Printf("Registrado: %s — %s (nível %d, id %d)\n",
		catalog.DisplayName(emotion), def.Label, level, res.Assessment.ID)
	if def.Regulation != "" {
		fmt.Printf("Regulação sugerida: %s\n", def.Regulation)
	}
	if res.Warning != "" {
		fmt.Printf("Aviso: %s\n", res.Warning)
	}
	return nil
}
