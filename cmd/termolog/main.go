// Termolog: a personal emotional journal.
//
// Log how you feel on one of six emotion scales, keep the data in a
// local SQLite file, and read it back as history, streaks, insights, a
// monthly calendar, or portable exports. "termolog serve" exposes the
// same operations as MCP tools over stdio.
package main

import (
	"os"

	"github.com/brunocadim/termolog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
