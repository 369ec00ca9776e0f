// Package conversation defines the thread record: an id plus an ordered
// participant list. Uniqueness of ids is a caller concern; the validate
// package can detect collisions over a full collection.
package conversation

import "github.com/honganh1206/parley/person"

// Conversation aggregates participants under an id. Participant order is
// display/insertion order and carries no further meaning.
type Conversation struct {
	ID           int             `validate:"gte=0"`
	Participants []person.Person `validate:"dive,required"`
}

// New copies the participant slice so later mutation by the caller cannot
// reach into the record. No uniqueness or deduplication is performed.
func New(id int, participants []person.Person) Conversation {
	ps := make([]person.Person, len(participants))
	copy(ps, participants)
	return Conversation{ID: id, Participants: ps}
}
