package view

import (
	"fmt"

	"github.com/honganh1206/parley/message"
)

// SenderMessage renders a message received from the other side of a
// conversation. Layout matches UserMessage; only the color and side
// differ.
type SenderMessage struct {
	msg message.Message
}

func NewSenderMessage(m message.Message) (SenderMessage, error) {
	if m.IsZero() {
		return SenderMessage{}, ErrMissingMessage
	}
	return SenderMessage{msg: m}, nil
}

func (v SenderMessage) Render() string {
	return fmt.Sprintf("%s: %s", v.msg.Sender.Name, v.msg.Body)
}

func (v SenderMessage) Markup() string {
	return fmt.Sprintf("[red::]%s:[-]\n%s\n\n", v.msg.Sender.Name, v.msg.Body)
}

// UserMessage renders a message the active user sent themselves.
type UserMessage struct {
	msg message.Message
}

func NewUserMessage(m message.Message) (UserMessage, error) {
	if m.IsZero() {
		return UserMessage{}, ErrMissingMessage
	}
	return UserMessage{msg: m}, nil
}

func (v UserMessage) Render() string {
	return fmt.Sprintf("    %s: %s", v.msg.Sender.Name, v.msg.Body)
}

func (v UserMessage) Markup() string {
	return fmt.Sprintf("[green::]%s:[-]\n%s\n\n", v.msg.Sender.Name, v.msg.Body)
}
