package commands

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/honganh1206/parley/message"
	"github.com/honganh1206/parley/view"
)

var threadCmd = &cobra.Command{
	Use:   "thread <conversation-id>",
	Short: "Render one conversation thread",
	Args:  cobra.ExactArgs(1),
	RunE:  threadHandler,
}

func threadHandler(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("conversation id must be an integer: %w", err)
	}

	recs, err := loadRecords()
	if err != nil {
		return err
	}

	known := false
	for _, c := range recs.Conversations {
		if c.ID == id {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("no conversation with id %d", id)
	}

	msgs := lo.Filter(recs.Messages, func(m message.Message, _ int) bool {
		return m.ConversationID == id
	})

	selfMsgs := lo.Filter(msgs, func(m message.Message, _ int) bool {
		return m.Sender == recs.Self
	})
	senderMsgs := lo.Filter(msgs, func(m message.Message, _ int) bool {
		return m.Sender != recs.Self
	})

	header, err := view.NewHeader(recs.Self)
	if err != nil {
		return err
	}

	thread, err := view.NewThread(senderMsgs, selfMsgs)
	if err != nil {
		return err
	}

	fmt.Printf("Conversation %d (as %s)\n\n", id, header.Render())
	fmt.Print(thread.Render())
	return nil
}
