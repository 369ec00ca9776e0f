package message

import (
	"testing"

	"github.com/honganh1206/parley/person"
)

func TestNew(t *testing.T) {
	sender, err := person.New("Ludovic")
	if err != nil {
		t.Fatalf("person.New() failed: %v", err)
	}

	m, err := New(sender, "Message from Ludovic", 1, 0)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if m.Sender.Name != "Ludovic" {
		t.Errorf("Expected sender Ludovic, got %s", m.Sender.Name)
	}
	if m.Body != "Message from Ludovic" {
		t.Errorf("Expected body %q, got %q", "Message from Ludovic", m.Body)
	}
	if m.ConversationID != 1 {
		t.Errorf("Expected conversation id 1, got %d", m.ConversationID)
	}
	if m.Sequence != 0 {
		t.Errorf("Expected sequence 0, got %d", m.Sequence)
	}
}

func TestNew_MissingSender(t *testing.T) {
	_, err := New(person.Person{}, "orphan", 1, 0)
	if err != ErrMissingSender {
		t.Errorf("Expected ErrMissingSender, got %v", err)
	}
}

func TestIsZero(t *testing.T) {
	var m Message
	if !m.IsZero() {
		t.Error("Zero-value message should report IsZero")
	}

	sender, _ := person.New("Claire")
	built, err := New(sender, "", 0, 0)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if built.IsZero() {
		t.Error("Constructed message should not be zero")
	}
}
