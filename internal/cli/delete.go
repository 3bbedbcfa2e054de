package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a single assessment by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a number: %w", err)
	}

	deleted, err := store.Delete(id)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	if !deleted {
		fmt.Printf("Nenhum registro com id %d.\n", id)
		return nil
	}
	fmt.Printf("Registro %d removido.\n", id)
	return nil
}
