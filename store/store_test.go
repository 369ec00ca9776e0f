package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/message"
	"github.com/honganh1206/parley/person"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "store_test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	s, err := Open(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func testRecords(t *testing.T) ([]person.Person, []conversation.Conversation, []message.Message) {
	t.Helper()

	claire, err := person.New("Claire")
	if err != nil {
		t.Fatalf("person.New() failed: %v", err)
	}
	ludovic, err := person.New("Ludovic")
	if err != nil {
		t.Fatalf("person.New() failed: %v", err)
	}
	jessica, err := person.New("Jessica")
	if err != nil {
		t.Fatalf("person.New() failed: %v", err)
	}

	people := []person.Person{claire, ludovic, jessica}
	convs := []conversation.Conversation{
		conversation.New(1, []person.Person{claire, ludovic, jessica}),
		conversation.New(2, []person.Person{claire, jessica}),
	}

	var msgs []message.Message
	for i, fixture := range []struct {
		sender person.Person
		body   string
		conv   int
		seq    int
	}{
		{ludovic, "Message from Ludovic", 1, 0},
		{claire, "Reply from Claire", 1, 1},
		{jessica, "Hi Claire", 2, 0},
	} {
		m, err := message.New(fixture.sender, fixture.body, fixture.conv, fixture.seq)
		if err != nil {
			t.Fatalf("message.New() fixture %d failed: %v", i, err)
		}
		msgs = append(msgs, m)
	}

	return people, convs, msgs
}

func TestSaveAll_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	people, convs, msgs := testRecords(t)

	batchID, err := s.SaveAll(people, convs, msgs)
	if err != nil {
		t.Fatalf("SaveAll() failed: %v", err)
	}
	if batchID == "" {
		t.Error("Expected a non-empty batch id")
	}

	loadedPeople, err := s.People()
	if err != nil {
		t.Fatalf("People() failed: %v", err)
	}
	if len(loadedPeople) != len(people) {
		t.Fatalf("Expected %d people, got %d", len(people), len(loadedPeople))
	}
	for i := range people {
		if loadedPeople[i] != people[i] {
			t.Errorf("Person %d: expected %v, got %v", i, people[i], loadedPeople[i])
		}
	}

	loadedConvs, err := s.Conversations()
	if err != nil {
		t.Fatalf("Conversations() failed: %v", err)
	}
	if len(loadedConvs) != len(convs) {
		t.Fatalf("Expected %d conversations, got %d", len(convs), len(loadedConvs))
	}
	for i, c := range convs {
		loaded := loadedConvs[i]
		if loaded.ID != c.ID {
			t.Errorf("Conversation %d: expected id %d, got %d", i, c.ID, loaded.ID)
		}
		if len(loaded.Participants) != len(c.Participants) {
			t.Fatalf("Conversation %d: expected %d participants, got %d",
				i, len(c.Participants), len(loaded.Participants))
		}
		for j := range c.Participants {
			if loaded.Participants[j] != c.Participants[j] {
				t.Errorf("Conversation %d participant %d: expected %v, got %v",
					i, j, c.Participants[j], loaded.Participants[j])
			}
		}
	}
}

func TestMessages_OrderedBySequence(t *testing.T) {
	s := createTestStore(t)
	people, convs, msgs := testRecords(t)

	if _, err := s.SaveAll(people, convs, msgs); err != nil {
		t.Fatalf("SaveAll() failed: %v", err)
	}

	loaded, err := s.Messages(1)
	if err != nil {
		t.Fatalf("Messages() failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 messages in conversation 1, got %d", len(loaded))
	}

	for i, m := range loaded {
		if m.Sequence != i {
			t.Errorf("Message %d: expected sequence %d, got %d", i, i, m.Sequence)
		}
		if m.ConversationID != 1 {
			t.Errorf("Message %d: expected conversation id 1, got %d", i, m.ConversationID)
		}
	}

	if loaded[0].Sender.Name != "Ludovic" {
		t.Errorf("Expected first sender Ludovic, got %s", loaded[0].Sender.Name)
	}
	if loaded[0].Body != "Message from Ludovic" {
		t.Errorf("Expected body %q, got %q", "Message from Ludovic", loaded[0].Body)
	}
}

func TestMessages_UnknownConversation(t *testing.T) {
	s := createTestStore(t)
	people, convs, msgs := testRecords(t)

	if _, err := s.SaveAll(people, convs, msgs); err != nil {
		t.Fatalf("SaveAll() failed: %v", err)
	}

	_, err := s.Messages(99)
	if err != ErrConversationNotFound {
		t.Errorf("Expected ErrConversationNotFound, got %v", err)
	}
}

func TestSaveAll_ReplacesPreviousImport(t *testing.T) {
	s := createTestStore(t)
	people, convs, msgs := testRecords(t)

	if _, err := s.SaveAll(people, convs, msgs); err != nil {
		t.Fatalf("First SaveAll() failed: %v", err)
	}
	if _, err := s.SaveAll(people[:1], convs[:1], msgs[:2]); err != nil {
		t.Fatalf("Second SaveAll() failed: %v", err)
	}

	loadedPeople, err := s.People()
	if err != nil {
		t.Fatalf("People() failed: %v", err)
	}
	if len(loadedPeople) != 1 {
		t.Errorf("Expected 1 person after re-import, got %d", len(loadedPeople))
	}

	imports, err := s.Imports()
	if err != nil {
		t.Fatalf("Imports() failed: %v", err)
	}
	if len(imports) != 2 {
		t.Fatalf("Expected 2 import batches, got %d", len(imports))
	}

	latest := imports[0]
	if latest.PeopleCount != 1 || latest.ConversationCount != 1 || latest.MessageCount != 2 {
		t.Errorf("Unexpected latest batch counts: %+v", latest)
	}
	if latest.ImportedAt.IsZero() {
		t.Error("ImportedAt was not set")
	}
}
