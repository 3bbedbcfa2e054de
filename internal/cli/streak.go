package cli

import (
	"fmt"
	"time"

	"github.com/brunocadim/termolog/internal/analytics"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current logging streak",
	RunE:  runStreak,
}

func runStreak(cmd *cobra.Command, args []string) error {
	streak := analytics.Streak(store.List(), time.Now())
	switch streak {
	case 0:
		fmt.Println("Sem sequência ativa. Registre hoje para começar uma!")
	case 1:
		fmt.Println("Sequência atual: 1 dia.")
	default:
		fmt.Printf("Sequência atual: %d dias.\n", streak)
	}
	return nil
}
