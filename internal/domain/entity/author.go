package entity

import "github.com/google/uuid"

// Author is a named party that writes articles.
// An Author keeps no list of its own articles; they are found by scanning the
// article registry for articles that point at this instance.
type Author struct {
	id   uuid.UUID
	name StringField
	opts options
}

// NewAuthor validates name and returns a new Author.
// The name must be non-empty and cannot be changed afterwards.
func NewAuthor(name string, opts ...Option) (*Author, error) {
	a := &Author{
		id:   uuid.New(),
		name: NewStringField(KindAuthor, "name", NonEmpty(KindAuthor, "name"), PolicyFailFast),
		opts: buildOptions(opts),
	}
	if _, err := a.name.Set(name); err != nil {
		return nil, err
	}
	a.name.freeze()
	return a, nil
}

// ID returns a label for logs and metrics. Authors are compared by pointer, not ID.
func (a *Author) ID() uuid.UUID {
	return a.id
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name.Get()
}

// SetName is a no-op: the name is fixed at construction.
func (a *Author) SetName(v string) {
	if applied, _ := a.name.Set(v); !applied {
		a.opts.reject(KindAuthor, "name", PolicySilentIgnore)
	}
}
