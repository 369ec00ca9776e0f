// Package store is the directory collaborator: it persists people,
// conversations, and messages to sqlite and hands them back as records.
// The record packages themselves stay persistence-free; everything
// database-shaped lives here.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/message"
	"github.com/honganh1206/parley/person"
	"github.com/honganh1206/parley/utils"
)

//go:embed schema.sql
var schemaSQL string

var (
	ErrConversationNotFound = errors.New("store: conversation not found")
)

// Store wraps the sqlite connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens the sqlite file at path and applies the schema.
func Open(path string) (*Store, error) {
	cfg := Config{
		Dsn:          path,
		MaxOpenConns: 25,
		MaxIdleConns: 25,
		MaxIdleTime:  "15m",
	}

	db, err := openDB(cfg, schemaSQL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Import describes one saved batch.
type Import struct {
	ID                string
	ImportedAt        time.Time
	PeopleCount       int
	ConversationCount int
	MessageCount      int
}

// SaveAll replaces the stored collections with the given ones inside a
// single transaction and records the batch under a fresh id.
func (s *Store) SaveAll(people []person.Person, convs []conversation.Conversation, msgs []message.Message) (string, error) {
	batchID, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}

	for _, table := range []string{"people", "participants", "conversations", "messages"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return "", err
		}
	}

	stmt, err := tx.Prepare(`INSERT INTO people (name, position) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	for i, p := range people {
		if _, err := stmt.Exec(p.Name, i); err != nil {
			stmt.Close()
			tx.Rollback()
			return "", err
		}
	}
	stmt.Close()

	for i, c := range convs {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO conversations (id, position) VALUES (?, ?)`, c.ID, i); err != nil {
			tx.Rollback()
			return "", err
		}

		for pos, p := range c.Participants {
			if _, err := tx.Exec(
				`INSERT INTO participants (conversation_id, position, person_name) VALUES (?, ?, ?)`,
				c.ID, pos, p.Name,
			); err != nil {
				tx.Rollback()
				return "", err
			}
		}
	}

	stmt, err = tx.Prepare(`INSERT INTO messages (conversation_id, sequence_number, sender_name, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return "", err
	}
	for _, m := range msgs {
		if _, err := stmt.Exec(m.ConversationID, m.Sequence, m.Sender.Name, m.Body); err != nil {
			stmt.Close()
			tx.Rollback()
			return "", err
		}
	}
	stmt.Close()

	if _, err := tx.Exec(
		`INSERT INTO imports (id, imported_at, people_count, conversation_count, message_count) VALUES (?, ?, ?, ?, ?)`,
		batchID.String(), time.Now(), len(people), len(convs), len(msgs),
	); err != nil {
		tx.Rollback()
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return batchID.String(), nil
}

// People returns the contact book in stored order.
func (s *Store) People() ([]person.Person, error) {
	rows, err := s.db.Query(`SELECT name FROM people ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []person.Person
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		p, err := person.New(name)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// Conversations returns all threads with participants in stored order.
func (s *Store) Conversations() ([]conversation.Conversation, error) {
	rows, err := s.db.Query(`SELECT id FROM conversations ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var convs []conversation.Conversation
	for _, id := range ids {
		participants, err := s.participants(id)
		if err != nil {
			return nil, err
		}
		convs = append(convs, conversation.New(id, participants))
	}

	return convs, nil
}

func (s *Store) participants(conversationID int) ([]person.Person, error) {
	rows, err := s.db.Query(
		`SELECT person_name FROM participants WHERE conversation_id = ? ORDER BY position`,
		conversationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []person.Person
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		p, err := person.New(name)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// Messages returns one conversation's messages ordered by sequence
// number. The id must exist as a conversation row; a dangling id is an
// ErrConversationNotFound, not an empty result.
func (s *Store) Messages(conversationID int) ([]message.Message, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM conversations WHERE id = ?`, conversationID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrConversationNotFound
	}

	rows, err := s.db.Query(
		`SELECT sequence_number, sender_name, body FROM messages WHERE conversation_id = ? ORDER BY sequence_number`,
		conversationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []message.Message
	for rows.Next() {
		var (
			sequence   int
			senderName string
			body       string
		)
		if err := rows.Scan(&sequence, &senderName, &body); err != nil {
			return nil, err
		}

		sender, err := person.New(senderName)
		if err != nil {
			return nil, err
		}

		m, err := message.New(sender, body, conversationID, sequence)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	return msgs, rows.Err()
}

// AllMessages returns every stored message, ordered by conversation then
// sequence. Used by the validation pass.
func (s *Store) AllMessages() ([]message.Message, error) {
	rows, err := s.db.Query(
		`SELECT conversation_id, sequence_number, sender_name, body FROM messages ORDER BY conversation_id, sequence_number`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []message.Message
	for rows.Next() {
		var (
			conversationID int
			sequence       int
			senderName     string
			body           string
		)
		if err := rows.Scan(&conversationID, &sequence, &senderName, &body); err != nil {
			return nil, err
		}

		sender, err := person.New(senderName)
		if err != nil {
			return nil, err
		}

		m, err := message.New(sender, body, conversationID, sequence)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	return msgs, rows.Err()
}

// Imports lists saved batches, newest first.
func (s *Store) Imports() ([]Import, error) {
	rows, err := s.db.Query(
		`SELECT id, imported_at, people_count, conversation_count, message_count FROM imports ORDER BY imported_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []Import
	for rows.Next() {
		var (
			imp        Import
			importedAt string
		)
		if err := rows.Scan(&imp.ID, &importedAt, &imp.PeopleCount, &imp.ConversationCount, &imp.MessageCount); err != nil {
			return nil, err
		}

		t, err := utils.ParseSQLiteTime(importedAt)
		if err != nil {
			return nil, err
		}
		imp.ImportedAt = t

		imports = append(imports, imp)
	}

	return imports, rows.Err()
}
