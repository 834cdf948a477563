package entity

import "github.com/google/uuid"

// Magazine is a named, categorized publication.
// Both fields stay mutable for the magazine's whole life; invalid writes are dropped.
// A zero Magazine has no rules and accepts any write; use NewMagazine.
type Magazine struct {
	id       uuid.UUID
	name     StringField
	category StringField
	opts     options
}

// NewMagazine never fails. Initial values go through the same rules as SetName and
// SetCategory, so an invalid initial value leaves that field empty.
func NewMagazine(name, category string, opts ...Option) *Magazine {
	m := &Magazine{
		id: uuid.New(),
		name: NewStringField(KindMagazine, "name",
			RuneLength(KindMagazine, "name", MagazineNameMin, MagazineNameMax), PolicySilentIgnore),
		category: NewStringField(KindMagazine, "category",
			NonEmpty(KindMagazine, "category"), PolicySilentIgnore),
		opts: buildOptions(opts),
	}
	m.SetName(name)
	m.SetCategory(category)
	return m
}

// ID returns a label for logs and metrics. Magazines are compared by pointer, not ID.
func (m *Magazine) ID() uuid.UUID {
	return m.id
}

// Name returns the magazine's name.
func (m *Magazine) Name() string {
	return m.name.Get()
}

// SetName applies v when it has 2 to 16 characters and ignores it otherwise.
func (m *Magazine) SetName(v string) {
	if applied, _ := m.name.Set(v); !applied {
		m.opts.reject(KindMagazine, "name", PolicySilentIgnore)
	}
}

// Category returns the magazine's category.
func (m *Magazine) Category() string {
	return m.category.Get()
}

// SetCategory applies v when it is non-empty and ignores it otherwise.
func (m *Magazine) SetCategory(v string) {
	if applied, _ := m.category.Set(v); !applied {
		m.opts.reject(KindMagazine, "category", PolicySilentIgnore)
	}
}
