// Package message defines a single chat message. The conversation id is a
// foreign reference: nothing here checks it against an existing
// conversation, and nothing checks that sequence numbers are unique or
// contiguous within a thread. Both are caller-maintained conventions,
// verified on demand by the validate package.
package message

import (
	"errors"

	"github.com/honganh1206/parley/person"
)

var ErrMissingSender = errors.New("message: sender is required")

// Message is one chat message. Sequence establishes the total order of
// messages within a single conversation.
type Message struct {
	Sender         person.Person `validate:"required"`
	Body           string
	ConversationID int `validate:"gte=0"`
	Sequence       int `validate:"gte=0"`
}

// New builds a Message. The sender record is required; everything else is
// taken as given.
func New(sender person.Person, body string, conversationID, sequence int) (Message, error) {
	if sender.IsZero() {
		return Message{}, ErrMissingSender
	}

	return Message{
		Sender:         sender,
		Body:           body,
		ConversationID: conversationID,
		Sequence:       sequence,
	}, nil
}

// IsZero reports whether the record was never constructed.
func (m Message) IsZero() bool {
	return m == Message{}
}
