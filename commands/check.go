package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/honganh1206/parley/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the record collections",
	Long: `Check runs the collection-level validation pass: duplicate conversation
ids, duplicate or gapped sequence numbers within a conversation, and
messages referencing a conversation that does not exist.`,
	RunE: checkHandler,
}

func checkHandler(cmd *cobra.Command, args []string) error {
	recs, err := loadRecords()
	if err != nil {
		return err
	}

	findings := validate.Conversations(recs.Conversations)
	findings = append(findings, validate.Messages(recs.Messages, recs.Conversations)...)

	if len(findings) == 0 {
		fmt.Println("OK: no findings.")
		return nil
	}

	for _, f := range findings {
		fmt.Println(f)
	}
	return fmt.Errorf("%d finding(s)", len(findings))
}
