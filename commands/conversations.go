package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honganh1206/parley/view"
)

var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "List conversations and their participants",
	RunE:  conversationsHandler,
}

func conversationsHandler(cmd *cobra.Command, args []string) error {
	recs, err := loadRecords()
	if err != nil {
		return err
	}

	if len(recs.Conversations) == 0 {
		fmt.Println("No conversations found.")
		return nil
	}

	control, err := view.NewConversationControl(recs.Conversations)
	if err != nil {
		return err
	}

	fmt.Print(control.Render())
	return nil
}
