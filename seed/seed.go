// Package seed holds the static demo records: the contact book, two
// conversations, and their messages. In a real deployment these would come
// from a directory service; here they are constructed once and read-only.
package seed

import (
	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/message"
	"github.com/honganh1206/parley/person"
)

func mustPerson(name string) person.Person {
	p, err := person.New(name)
	if err != nil {
		panic(err)
	}
	return p
}

func mustMessage(sender person.Person, body string, conversationID, sequence int) message.Message {
	m, err := message.New(sender, body, conversationID, sequence)
	if err != nil {
		panic(err)
	}
	return m
}

var (
	claire   = mustPerson("Claire")
	ludovic  = mustPerson("Ludovic")
	jessica  = mustPerson("Jessica")
	danielle = mustPerson("Danielle")
)

// Self is the active user the display layer renders "own" messages for.
func Self() person.Person {
	return claire
}

// People returns the contact book in display order.
func People() []person.Person {
	return []person.Person{claire, ludovic, jessica, danielle}
}

// Conversations returns the demo threads.
func Conversations() []conversation.Conversation {
	return []conversation.Conversation{
		conversation.New(1, []person.Person{claire, ludovic, jessica}),
		conversation.New(2, []person.Person{claire, danielle}),
	}
}

// Messages returns all demo messages, sequence-ordered per conversation.
func Messages() []message.Message {
	return []message.Message{
		mustMessage(ludovic, "Message from Ludovic", 1, 0),
		mustMessage(claire, "Reply from Claire", 1, 1),
		mustMessage(jessica, "Jessica joining in", 1, 2),
		mustMessage(ludovic, "Second message from Ludovic", 1, 3),
		mustMessage(danielle, "Hello Claire", 2, 0),
		mustMessage(claire, "Hello Danielle", 2, 1),
	}
}
