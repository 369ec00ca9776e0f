package view

import (
	"bytes"
	"fmt"

	"github.com/samber/lo"

	"github.com/honganh1206/parley/person"
	"github.com/honganh1206/parley/utils"
)

// Contact renders exactly one person.
type Contact struct {
	p person.Person
}

func NewContact(p person.Person) (Contact, error) {
	if p.IsZero() {
		return Contact{}, ErrMissingPerson
	}
	return Contact{p: p}, nil
}

func (c Contact) Render() string {
	return c.p.Name
}

func (c Contact) Markup() string {
	return fmt.Sprintf("[yellow]%s[-]", c.p.Name)
}

// ContactList renders one row per person, delegating each row to Contact.
type ContactList struct {
	contacts []Contact
}

// NewContactList fails if any entry is a zero person, so a hole in the
// list cannot degrade into a blank row.
func NewContactList(people []person.Person) (ContactList, error) {
	contacts := make([]Contact, 0, len(people))
	for _, p := range people {
		c, err := NewContact(p)
		if err != nil {
			return ContactList{}, err
		}
		contacts = append(contacts, c)
	}
	return ContactList{contacts: contacts}, nil
}

func (l ContactList) Render() string {
	var buf bytes.Buffer
	rows := lo.Map(l.contacts, func(c Contact, _ int) []string {
		return []string{c.Render()}
	})
	utils.RenderTable(&buf, []string{"Name"}, rows)
	return buf.String()
}

// Rows exposes the rendered names in order, one per contact.
func (l ContactList) Rows() []string {
	return lo.Map(l.contacts, func(c Contact, _ int) string { return c.Render() })
}

// Header renders the active user's name as a banner.
type Header struct {
	active person.Person
}

func NewHeader(active person.Person) (Header, error) {
	if active.IsZero() {
		return Header{}, ErrMissingPerson
	}
	return Header{active: active}, nil
}

func (h Header) Render() string {
	return h.active.Name
}

func (h Header) Markup() string {
	return fmt.Sprintf("[::b]%s[-:-:-]", h.active.Name)
}
