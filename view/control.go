package view

import (
	"bytes"
	"strconv"

	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/utils"
)

// ConversationControl renders the conversation roster: one participant
// row per participant, grouped under the conversation id, in the order
// the records were supplied.
type ConversationControl struct {
	convs []conversation.Conversation
}

func NewConversationControl(convs []conversation.Conversation) (ConversationControl, error) {
	for _, c := range convs {
		for _, p := range c.Participants {
			if p.IsZero() {
				return ConversationControl{}, ErrMissingPerson
			}
		}
	}
	return ConversationControl{convs: convs}, nil
}

func (v ConversationControl) Render() string {
	var buf bytes.Buffer
	utils.RenderTable(&buf, []string{"Conversation", "Participant"}, v.rows())
	return buf.String()
}

// rows flattens conversations to one row per participant, order
// preserved.
func (v ConversationControl) rows() [][]string {
	var rows [][]string
	for _, c := range v.convs {
		for _, p := range c.Participants {
			rows = append(rows, []string{strconv.Itoa(c.ID), p.Name})
		}
	}
	return rows
}

// ParticipantRows exposes the flattened participant names per
// conversation, in render order.
func (v ConversationControl) ParticipantRows() []string {
	var names []string
	for _, c := range v.convs {
		for _, p := range c.Participants {
			names = append(names, p.Name)
		}
	}
	return names
}
