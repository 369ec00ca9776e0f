package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/honganh1206/parley/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse contacts and conversations interactively",
	RunE:  tuiHandler,
}

func tuiHandler(cmd *cobra.Command, args []string) error {
	recs, err := loadRecords()
	if err != nil {
		return err
	}

	path, err := storePath()
	if err != nil {
		return err
	}
	statePath := filepath.Join(filepath.Dir(path), "state.db")

	return tui.Run(tui.Input{
		People:        recs.People,
		Conversations: recs.Conversations,
		Messages:      recs.Messages,
		Self:          recs.Self,
		StatePath:     statePath,
	})
}
