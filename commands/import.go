package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/honganh1206/parley/seed"
	"github.com/honganh1206/parley/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the seed records into the sqlite store",
	RunE:  importHandler,
}

func importHandler(cmd *cobra.Command, args []string) error {
	path, err := storePath()
	if err != nil {
		return err
	}

	s, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("store.Open: %w", err)
	}
	defer s.Close()

	batchID, err := s.SaveAll(seed.People(), seed.Conversations(), seed.Messages())
	if err != nil {
		return fmt.Errorf("store.SaveAll: %w", err)
	}

	fmt.Printf("Imported seed data into %s (batch %s)\n", path, batchID)

	if verbose {
		imports, err := s.Imports()
		if err != nil {
			return err
		}
		fmt.Println("Batches:")
		for _, imp := range imports {
			fmt.Printf("  %s at %s: %d people, %d conversations, %d messages\n",
				imp.ID, imp.ImportedAt.Format(time.RFC3339),
				imp.PeopleCount, imp.ConversationCount, imp.MessageCount)
		}
	}
	return nil
}
