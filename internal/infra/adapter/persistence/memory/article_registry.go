package memory

import (
	"publishing-graph/internal/domain/entity"
	"publishing-graph/internal/repository"
)

// ArticleRegistry implements repository.ArticleRegistry in process memory.
type ArticleRegistry struct {
	log appendLog[entity.Article]
}

// NewArticleRegistry returns an empty article registry.
func NewArticleRegistry() *ArticleRegistry {
	return &ArticleRegistry{}
}

var _ repository.ArticleRegistry = (*ArticleRegistry)(nil)

// Append records article at the end of the registry. A nil article is ignored.
func (r *ArticleRegistry) Append(article *entity.Article) { r.log.append(article) }

// Snapshot returns a copy of the registry in construction order.
func (r *ArticleRegistry) Snapshot() []*entity.Article { return r.log.snapshot() }

// Len returns the number of registered articles.
func (r *ArticleRegistry) Len() int { return r.log.len() }
