package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/brunocadim/termolog/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Serialize the journal for backup or sharing",
	Long: `Serialize the full journal. Formats:

  json       re-importable backup (default)
  csv        spreadsheet with one row per assessment
  anonymous  pseudonymized ids, date-only timestamps

Writes to --out, or to a dated file in the current directory when
--out is omitted.

Examples:
  termolog export
  termolog export --format csv --out diario.csv
  termolog export --format anonymous`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "json, csv or anonymous")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: dated file in cwd)")
}

func runExport(cmd *cobra.Command, args []string) error {
	recs := store.List()
	if len(recs) == 0 {
		fmt.Println("Nenhum registro para exportar.")
		return nil
	}

	now := time.Now()
	var data []byte
	var name string
	var err error

	switch exportFormat {
	case "json":
		data, err = export.JSON(recs, now)
		name = export.JSONFileName(now)
	case "csv":
		data = []byte(export.CSV(recs))
		name = export.CSVFileName(now)
	case "anonymous":
		data, err = export.AnonymizedJSON(recs, export.NotesPolicy(cfg.AnonymizeNotes), now)
		name = export.AnonymousFileName(now)
	default:
		return fmt.Errorf("unknown format %q (valid: json, csv, anonymous)", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("serialize journal: %w", err)
	}

	if exportOut != "" {
		name = exportOut
	}
	if err := os.WriteFile(name, data, 0o600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Printf("%d registros exportados para %s\n", len(recs), name)
	return nil
}
