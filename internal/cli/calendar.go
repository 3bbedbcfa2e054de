package cli

import (
	"fmt"
	"time"

	"github.com/brunocadim/termolog/internal/analytics"
	"github.com/brunocadim/termolog/internal/catalog"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the current month with the dominant emotion per day",
	RunE:  runCalendar,
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := time.Now()
	grid := analytics.Calendar(store.List(), now)

	fmt.Printf("%s\n\n", now.Format("January 2006"))
	fmt.Println("Dom Seg Ter Qua Qui Sex Sáb")

	col := 0
	for _, cell := range grid {
		switch {
		case cell.Day == 0:
			fmt.Print("  . ")
		case cell.HasData:
			fmt.Printf("%2d* ", cell.Day)
		default:
			fmt.Printf("%2d  ", cell.Day)
		}
		col++
		if col == 7 {
			fmt.Println()
			col = 0
		}
	}
	if col != 0 {
		fmt.Println()
	}

	fmt.Println()
	for _, cell := range grid {
		if cell.HasData {
			fmt.Printf("dia %2d: %s nível %d\n", cell.Day, catalog.DisplayName(cell.Emotion), cell.Level)
		}
	}
	return nil
}
