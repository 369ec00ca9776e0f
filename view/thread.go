package view

import (
	"sort"
	"strings"

	"github.com/honganh1206/parley/message"
)

// Thread renders a conversation: messages attributed to the other side
// and messages from the active user, interleaved by sequence number.
type Thread struct {
	entries []threadEntry
}

type threadEntry struct {
	msg  message.Message
	self bool
}

// NewThread takes the two ordered message slices. Any zero message is a
// construction error. The merge is stable: within equal sequence numbers
// the sender side comes first.
func NewThread(senderMsgs, selfMsgs []message.Message) (Thread, error) {
	entries := make([]threadEntry, 0, len(senderMsgs)+len(selfMsgs))

	for _, m := range senderMsgs {
		if m.IsZero() {
			return Thread{}, ErrMissingMessage
		}
		entries = append(entries, threadEntry{msg: m})
	}
	for _, m := range selfMsgs {
		if m.IsZero() {
			return Thread{}, ErrMissingMessage
		}
		entries = append(entries, threadEntry{msg: m, self: true})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].msg.Sequence < entries[j].msg.Sequence
	})

	return Thread{entries: entries}, nil
}

func (t Thread) Render() string {
	var b strings.Builder
	for _, e := range t.entries {
		if e.self {
			v, _ := NewUserMessage(e.msg)
			b.WriteString(v.Render())
		} else {
			v, _ := NewSenderMessage(e.msg)
			b.WriteString(v.Render())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (t Thread) Markup() string {
	var b strings.Builder
	for _, e := range t.entries {
		if e.self {
			v, _ := NewUserMessage(e.msg)
			b.WriteString(v.Markup())
		} else {
			v, _ := NewSenderMessage(e.msg)
			b.WriteString(v.Markup())
		}
	}
	return b.String()
}

// Len reports how many messages the thread holds.
func (t Thread) Len() int {
	return len(t.entries)
}
