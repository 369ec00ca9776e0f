// Package validate checks full in-memory collections of records before
// they are handed to the display layer. The record packages deliberately
// enforce nothing beyond required fields; everything collection-scoped
// (id collisions, sequence order, foreign references) lives here.
package validate

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/message"
)

// Finding codes. A finding is a diagnostic, not an error: callers decide
// whether any given code is fatal for their use.
const (
	CodeInvalidField            = "invalid-field"
	CodeDuplicateConversationID = "duplicate-conversation-id"
	CodeDuplicateSequence       = "duplicate-sequence"
	CodeSequenceGap             = "sequence-gap"
	CodeDanglingConversation    = "dangling-conversation"
)

// Finding describes one problem detected in a collection.
type Finding struct {
	Code   string
	Detail string
}

func (f Finding) String() string {
	return f.Code + ": " + f.Detail
}

var fieldValidator = validator.New()

// Conversations reports duplicate ids and invalid fields over the full
// conversation list. Construction never fails on a duplicate id, so this
// is the only place collisions surface.
func Conversations(convs []conversation.Conversation) []Finding {
	var findings []Finding

	for _, c := range convs {
		if err := fieldValidator.Struct(c); err != nil {
			findings = append(findings, Finding{
				Code:   CodeInvalidField,
				Detail: fmt.Sprintf("conversation %d: %v", c.ID, err),
			})
		}
	}

	byID := lo.GroupBy(convs, func(c conversation.Conversation) int { return c.ID })
	ids := lo.Keys(byID)
	sort.Ints(ids)

	for _, id := range ids {
		if n := len(byID[id]); n > 1 {
			findings = append(findings, Finding{
				Code:   CodeDuplicateConversationID,
				Detail: fmt.Sprintf("conversation id %d used by %d conversations", id, n),
			})
		}
	}

	return findings
}

// Messages reports sequence duplicates, sequence gaps (contiguity from 0),
// and messages whose ConversationID matches none of convs. Pass the full
// conversation list: an empty one marks every message dangling.
func Messages(msgs []message.Message, convs []conversation.Conversation) []Finding {
	var findings []Finding

	for _, m := range msgs {
		if err := fieldValidator.Struct(m); err != nil {
			findings = append(findings, Finding{
				Code:   CodeInvalidField,
				Detail: fmt.Sprintf("message %d/%d: %v", m.ConversationID, m.Sequence, err),
			})
		}
	}

	known := lo.SliceToMap(convs, func(c conversation.Conversation) (int, struct{}) {
		return c.ID, struct{}{}
	})

	for _, m := range msgs {
		if _, ok := known[m.ConversationID]; !ok {
			findings = append(findings, Finding{
				Code:   CodeDanglingConversation,
				Detail: fmt.Sprintf("message %q references unknown conversation %d", m.Body, m.ConversationID),
			})
		}
	}

	byConv := lo.GroupBy(msgs, func(m message.Message) int { return m.ConversationID })
	convIDs := lo.Keys(byConv)
	sort.Ints(convIDs)

	for _, id := range convIDs {
		seqs := lo.Map(byConv[id], func(m message.Message, _ int) int { return m.Sequence })
		sort.Ints(seqs)

		for i := 1; i < len(seqs); i++ {
			switch {
			case seqs[i] == seqs[i-1]:
				findings = append(findings, Finding{
					Code:   CodeDuplicateSequence,
					Detail: fmt.Sprintf("conversation %d: sequence %d used more than once", id, seqs[i]),
				})
			case seqs[i] > seqs[i-1]+1:
				findings = append(findings, Finding{
					Code:   CodeSequenceGap,
					Detail: fmt.Sprintf("conversation %d: gap between sequence %d and %d", id, seqs[i-1], seqs[i]),
				})
			}
		}

		if len(seqs) > 0 && seqs[0] != 0 {
			findings = append(findings, Finding{
				Code:   CodeSequenceGap,
				Detail: fmt.Sprintf("conversation %d: first sequence is %d, want 0", id, seqs[0]),
			})
		}
	}

	return findings
}
