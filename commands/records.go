package commands

import (
	"fmt"

	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/message"
	"github.com/honganh1206/parley/person"
	"github.com/honganh1206/parley/seed"
	"github.com/honganh1206/parley/store"
)

// records is the full in-memory collection a command renders from.
type records struct {
	People        []person.Person
	Conversations []conversation.Conversation
	Messages      []message.Message
	Self          person.Person
}

// loadRecords reads from the sqlite store when --store is set, otherwise
// from the built-in seed data.
func loadRecords() (records, error) {
	self := seed.Self()
	if cfg.Active != "" {
		p, err := person.New(cfg.Active)
		if err != nil {
			return records{}, err
		}
		self = p
	}

	if !fromStore {
		return records{
			People:        seed.People(),
			Conversations: seed.Conversations(),
			Messages:      seed.Messages(),
			Self:          self,
		}, nil
	}

	path, err := storePath()
	if err != nil {
		return records{}, err
	}

	s, err := store.Open(path)
	if err != nil {
		return records{}, fmt.Errorf("store.Open: %w", err)
	}
	defer s.Close()

	people, err := s.People()
	if err != nil {
		return records{}, err
	}
	convs, err := s.Conversations()
	if err != nil {
		return records{}, err
	}
	msgs, err := s.AllMessages()
	if err != nil {
		return records{}, err
	}

	return records{
		People:        people,
		Conversations: convs,
		Messages:      msgs,
		Self:          self,
	}, nil
}
