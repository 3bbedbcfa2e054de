package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL assessments",
	Long: `Delete every assessment in the journal. Irreversible — export first.

Requires --yes to actually clear.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm the wipe")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("pass --yes to clear the journal — this cannot be undone")
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear journal: %w", err)
	}
	fmt.Println("Todos os registros foram removidos.")
	return nil
}
