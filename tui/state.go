package tui

import (
	"encoding/json"
	"time"

	"github.com/tidwall/buntdb"
)

const lastViewedKey = "last_viewed"

// lastViewed remembers which conversation was open so the next session
// starts there.
type lastViewed struct {
	ConversationID int   `json:"conversation_id"`
	Time           int64 `json:"time"`
}

func openStateDB(path string) (*buntdb.DB, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	db.CreateIndex("time", "*", buntdb.IndexJSON("time"))
	return db, nil
}

func loadLastViewed(db *buntdb.DB) (int, bool) {
	var state lastViewed
	found := false

	db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(lastViewedKey)
		if err != nil {
			return nil
		}
		if err := json.Unmarshal([]byte(value), &state); err == nil {
			found = true
		}
		return nil
	})

	return state.ConversationID, found
}

func saveLastViewed(db *buntdb.DB, conversationID int) {
	state := lastViewed{
		ConversationID: conversationID,
		Time:           time.Now().Unix(),
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return
	}

	db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(lastViewedKey, string(payload), nil)
		return err
	})
}
