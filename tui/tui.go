// Package tui is the top-level container: it holds the record lists and
// passes individual records or sub-lists down to the view components.
// There is no upward data flow; the panes only render what they are
// given.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/samber/lo"

	"github.com/honganh1206/parley/conversation"
	"github.com/honganh1206/parley/message"
	"github.com/honganh1206/parley/person"
	"github.com/honganh1206/parley/view"
)

// Input carries the record collections the container renders from.
type Input struct {
	People        []person.Person
	Conversations []conversation.Conversation
	Messages      []message.Message
	Self          person.Person
	StatePath     string
}

// Run starts the read-only browser: contact list on the left,
// conversation roster below it, thread view on the right, active-user
// header on top.
func Run(in Input) error {
	header, err := view.NewHeader(in.Self)
	if err != nil {
		return err
	}

	contacts, err := view.NewContactList(in.People)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(in.StatePath), 0700); err != nil {
		return err
	}
	stateDB, err := openStateDB(in.StatePath)
	if err != nil {
		return err
	}
	defer stateDB.Close()

	app := tview.NewApplication()

	// Components
	headerView := tview.NewTextView().
		SetDynamicColors(true).
		SetText(header.Markup())
	headerView.SetBorder(true)

	contactList := tview.NewList()
	contactList.SetTitle("Contacts").SetBorder(true)
	for _, name := range contacts.Rows() {
		contactList.AddItem(name, "", rune(0), nil)
	}

	conversationList := tview.NewList()
	conversationList.SetTitle("Conversations").SetBorder(true)

	threadView := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetChangedFunc(func() {
			app.Draw()
		})
	threadView.SetTitle("Thread").SetBorder(true)

	showThread := func(c conversation.Conversation) {
		msgs := lo.Filter(in.Messages, func(m message.Message, _ int) bool {
			return m.ConversationID == c.ID
		})
		selfMsgs := lo.Filter(msgs, func(m message.Message, _ int) bool {
			return m.Sender == in.Self
		})
		senderMsgs := lo.Filter(msgs, func(m message.Message, _ int) bool {
			return m.Sender != in.Self
		})

		thread, err := view.NewThread(senderMsgs, selfMsgs)
		if err != nil {
			threadView.SetText(fmt.Sprintf("[red]%v[-]", err))
			return
		}

		threadView.SetText(thread.Markup())
		threadView.ScrollToEnd()
		saveLastViewed(stateDB, c.ID)
	}

	for _, c := range in.Conversations {
		c := c
		names := lo.Map(c.Participants, func(p person.Person, _ int) string { return p.Name })
		title := "#" + strconv.Itoa(c.ID)
		secondary := ""
		if len(names) > 0 {
			secondary = names[0]
			for _, n := range names[1:] {
				secondary += ", " + n
			}
		}
		conversationList.AddItem(title, secondary, rune(0), func() {
			showThread(c)
		})
	}

	conversationList.SetChangedFunc(func(index int, title string, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(in.Conversations) {
			showThread(in.Conversations[index])
		}
	})

	// Reopen where the last session left off.
	if id, ok := loadLastViewed(stateDB); ok {
		if _, idx, found := lo.FindIndexOf(in.Conversations, func(c conversation.Conversation) bool {
			return c.ID == id
		}); found {
			conversationList.SetCurrentItem(idx)
			showThread(in.Conversations[idx])
		}
	} else if len(in.Conversations) > 0 {
		showThread(in.Conversations[0])
	}

	// Layout
	sidebar := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(contactList, 0, 1, false).
		AddItem(conversationList, 0, 1, true)

	mainLayout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(headerView, 3, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(sidebar, 0, 1, true).
			AddItem(threadView, 0, 3, false), 0, 1, true)

	// Event handling
	threadView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyESC:
			app.SetFocus(conversationList)
		}
		return event
	})

	conversationList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			app.SetFocus(threadView)
		}
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(mainLayout, true).SetFocus(conversationList).Run()
}
