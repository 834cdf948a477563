// Package entity defines the publishing domain: authors, magazines and the articles
// that join them, along with the field rules that guard every write.
package entity

import "github.com/google/uuid"

// Article links exactly one Author to exactly one Magazine under a title.
// The title is frozen after construction. The author and magazine links may be
// reassigned but never to nil.
type Article struct {
	id       uuid.UUID
	title    StringField
	author   *Author
	magazine *Magazine
	opts     options
}

// NewArticle validates its arguments in the order title, author, magazine and
// returns the first failure as a *ValidationError. It does not register the article.
func NewArticle(author *Author, magazine *Magazine, title string, opts ...Option) (*Article, error) {
	a := &Article{
		id: uuid.New(),
		title: NewStringField(KindArticle, "title",
			RuneLength(KindArticle, "title", ArticleTitleMin, ArticleTitleMax), PolicyFailFast),
		opts: buildOptions(opts),
	}
	if _, err := a.title.Set(title); err != nil {
		return nil, err
	}
	a.title.freeze()

	if err := setRef(&a.author, author, KindArticle, KindAuthor); err != nil {
		return nil, err
	}
	if err := setRef(&a.magazine, magazine, KindArticle, KindMagazine); err != nil {
		return nil, err
	}
	return a, nil
}

// ID returns a label for logs and metrics. Articles are compared by pointer, not ID.
func (a *Article) ID() uuid.UUID {
	return a.id
}

// Title returns the article's title.
func (a *Article) Title() string {
	return a.title.Get()
}

// SetTitle ignores every value, valid or not.
func (a *Article) SetTitle(v string) {
	if applied, _ := a.title.Set(v); !applied {
		a.opts.reject(KindArticle, "title", PolicySilentIgnore)
	}
}

// Author returns the article's author.
func (a *Article) Author() *Author {
	return a.author
}

// SetAuthor replaces the author. A nil author is rejected and the old one kept.
func (a *Article) SetAuthor(author *Author) error {
	if err := setRef(&a.author, author, KindArticle, KindAuthor); err != nil {
		a.opts.reject(KindArticle, KindAuthor, PolicyFailFast)
		return err
	}
	return nil
}

// Magazine returns the magazine the article appears in.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// SetMagazine replaces the magazine. A nil magazine is rejected and the old one kept.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := setRef(&a.magazine, magazine, KindArticle, KindMagazine); err != nil {
		a.opts.reject(KindArticle, KindMagazine, PolicyFailFast)
		return err
	}
	return nil
}
