package cli

import (
	"fmt"

	"github.com/brunocadim/termolog/internal/journal"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Get or set the stored UI theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Printf("Tema atual: %s\n", store.Theme())
		return nil
	}

	if err := store.SetTheme(journal.Theme(args[0])); err != nil {
		return fmt.Errorf("invalid theme %q (valid: light, dark)", args[0])
	}
	fmt.Printf("Tema definido: %s\n", args[0])
	return nil
}
