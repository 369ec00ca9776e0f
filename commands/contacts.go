package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honganh1206/parley/view"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List all contacts",
	RunE:  contactsHandler,
}

func contactsHandler(cmd *cobra.Command, args []string) error {
	recs, err := loadRecords()
	if err != nil {
		return err
	}

	if len(recs.People) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}

	list, err := view.NewContactList(recs.People)
	if err != nil {
		return err
	}

	fmt.Print(list.Render())
	return nil
}
