package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/message"
	"github.com/honganh1206/parley/person"
)

func mustPerson(t *testing.T, name string) person.Person {
	t.Helper()
	p, err := person.New(name)
	require.NoError(t, err)
	return p
}

func mustMessage(t *testing.T, sender person.Person, body string, conversationID, sequence int) message.Message {
	t.Helper()
	m, err := message.New(sender, body, conversationID, sequence)
	require.NoError(t, err)
	return m
}

func TestConversations_Clean(t *testing.T) {
	claire := mustPerson(t, "Claire")
	ludovic := mustPerson(t, "Ludovic")

	convs := []conversation.Conversation{
		conversation.New(1, []person.Person{claire, ludovic}),
		conversation.New(2, []person.Person{claire}),
	}

	require.Empty(t, Conversations(convs))
}

func TestConversations_DuplicateID(t *testing.T) {
	claire := mustPerson(t, "Claire")

	convs := []conversation.Conversation{
		conversation.New(1, []person.Person{claire}),
		conversation.New(1, []person.Person{claire}),
	}

	findings := Conversations(convs)
	require.Len(t, findings, 1)
	require.Equal(t, CodeDuplicateConversationID, findings[0].Code)
}

func TestMessages_Clean(t *testing.T) {
	claire := mustPerson(t, "Claire")
	ludovic := mustPerson(t, "Ludovic")

	convs := []conversation.Conversation{
		conversation.New(1, []person.Person{claire, ludovic}),
	}
	msgs := []message.Message{
		mustMessage(t, ludovic, "Message from Ludovic", 1, 0),
		mustMessage(t, claire, "Reply", 1, 1),
	}

	require.Empty(t, Messages(msgs, convs))
}

func TestMessages_DuplicateSequence(t *testing.T) {
	ludovic := mustPerson(t, "Ludovic")
	convs := []conversation.Conversation{conversation.New(1, nil)}

	msgs := []message.Message{
		mustMessage(t, ludovic, "first", 1, 0),
		mustMessage(t, ludovic, "also first", 1, 0),
	}

	findings := Messages(msgs, convs)
	require.Len(t, findings, 1)
	require.Equal(t, CodeDuplicateSequence, findings[0].Code)
}

func TestMessages_SequenceGap(t *testing.T) {
	ludovic := mustPerson(t, "Ludovic")
	convs := []conversation.Conversation{conversation.New(1, nil)}

	msgs := []message.Message{
		mustMessage(t, ludovic, "first", 1, 0),
		mustMessage(t, ludovic, "third", 1, 2),
	}

	findings := Messages(msgs, convs)
	require.Len(t, findings, 1)
	require.Equal(t, CodeSequenceGap, findings[0].Code)
}

func TestMessages_FirstSequenceNotZero(t *testing.T) {
	ludovic := mustPerson(t, "Ludovic")
	convs := []conversation.Conversation{conversation.New(1, nil)}

	msgs := []message.Message{
		mustMessage(t, ludovic, "second", 1, 1),
	}

	findings := Messages(msgs, convs)
	require.Len(t, findings, 1)
	require.Equal(t, CodeSequenceGap, findings[0].Code)
}

func TestMessages_DanglingConversation(t *testing.T) {
	ludovic := mustPerson(t, "Ludovic")
	convs := []conversation.Conversation{conversation.New(1, nil)}

	msgs := []message.Message{
		mustMessage(t, ludovic, "orphan", 99, 0),
	}

	findings := Messages(msgs, convs)
	require.Len(t, findings, 1)
	require.Equal(t, CodeDanglingConversation, findings[0].Code)
	require.Contains(t, findings[0].Detail, "99")
}

func TestMessages_MultipleConversations(t *testing.T) {
	claire := mustPerson(t, "Claire")
	danielle := mustPerson(t, "Danielle")

	convs := []conversation.Conversation{
		conversation.New(1, nil),
		conversation.New(2, nil),
	}
	msgs := []message.Message{
		mustMessage(t, claire, "c1 s0", 1, 0),
		mustMessage(t, danielle, "c2 s0", 2, 0),
		mustMessage(t, claire, "c1 s1", 1, 1),
		mustMessage(t, danielle, "c2 s1", 2, 1),
	}

	// Sequences are scoped per conversation, so interleaving across
	// threads is not a finding.
	require.Empty(t, Messages(msgs, convs))
}
