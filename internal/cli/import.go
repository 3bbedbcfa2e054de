package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/brunocadim/termolog/internal/journal"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a JSON backup into the journal",
	Long: `Merge a JSON backup (as produced by "termolog export") into the
journal. Records already present — same id — are skipped; invalid
entries are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	res, err := store.Import(data)
	if err != nil {
		switch {
		case errors.Is(err, journal.ErrInvalidFormat):
			return fmt.Errorf("formato de arquivo inválido — esperava um backup JSON com o campo 'assessments'")
		case errors.Is(err, journal.ErrNoValidRecords):
			return fmt.Errorf("nenhum registro válido encontrado no arquivo")
		default:
			return fmt.Errorf("import backup: %w", err)
		}
	}

	if res.Added == 0 {
		fmt.Println("Nenhum registro novo — todos já existiam.")
	} else {
		fmt.Printf("%d registros importados.\n", res.Added)
	}
	if res.Warning != "" {
		fmt.Printf("Aviso: %s\n", res.Warning)
	}
	return nil
}
