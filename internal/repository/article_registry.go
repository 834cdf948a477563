package repository

import "publishing-graph/internal/domain/entity"

// ArticleRegistry records every article ever constructed, in construction order.
// It is append-only: nothing is ever removed and Len never decreases.
type ArticleRegistry interface {
	Append(article *entity.Article)
	// Snapshot returns the registry contents in order. The slice is the caller's own copy.
	Snapshot() []*entity.Article
	Len() int
}
