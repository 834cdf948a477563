// Package publishing is the composition root of the publishing graph.
// It constructs authors, magazines and articles, registers them, and answers
// relationship queries by scanning the registries on every call.
package publishing

import (
	"context"
	"errors"
	"log/slog"

	"publishing-graph/internal/domain/entity"
	"publishing-graph/internal/domain/query"
	"publishing-graph/internal/observability/metrics"
	"publishing-graph/internal/repository"
)

// Registry names used as log attributes and metric labels.
const (
	RegistryArticles  = "articles"
	RegistryMagazines = "magazines"
)

// Service owns the article and magazine registries.
// Entity fields are not synchronized; callers sharing a Service across goroutines
// must serialize entity mutations themselves.
type Service struct {
	ArticleRegistry  repository.ArticleRegistry
	MagazineRegistry repository.MagazineRegistry
	Logger           *slog.Logger
	Metrics          metrics.Recorder
}

// NewService wires a Service. A nil logger falls back to slog.Default and a nil
// recorder to metrics.NoopRecorder.
func NewService(articles repository.ArticleRegistry, magazines repository.MagazineRegistry, logger *slog.Logger, rec metrics.Recorder) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Service{
		ArticleRegistry:  articles,
		MagazineRegistry: magazines,
		Logger:           logger,
		Metrics:          rec,
	}
}

// NewAuthor returns a new Author. An empty name fails with a *entity.ValidationError.
// Authors are not registered; they are found through their articles.
func (s *Service) NewAuthor(name string) (*entity.Author, error) {
	a, err := entity.NewAuthor(name, s.observer())
	if err != nil {
		s.constructionFailed(entity.KindAuthor, err)
		return nil, err
	}
	s.Metrics.EntityCreated(entity.KindAuthor)
	s.Logger.Debug("author created",
		slog.String("author_id", a.ID().String()),
		slog.String("name", a.Name()))
	return a, nil
}

// NewMagazine returns a new Magazine and appends it to the magazine registry.
// It never fails; invalid initial values are dropped by the field rules.
func (s *Service) NewMagazine(name, category string) *entity.Magazine {
	m := entity.NewMagazine(name, category, s.observer())
	s.MagazineRegistry.Append(m)
	s.Metrics.EntityCreated(entity.KindMagazine)
	s.Metrics.RegistrySize(RegistryMagazines, s.MagazineRegistry.Len())
	s.Logger.Debug("magazine registered",
		slog.String("magazine_id", m.ID().String()),
		slog.String("name", m.Name()),
		slog.String("category", m.Category()))
	return m
}

// NewArticle validates and registers a new Article. The magazine must have been
// created by NewMagazine on this Service. On failure the registry is left unchanged
// and the *entity.ValidationError is returned as is.
func (s *Service) NewArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	art, err := entity.NewArticle(author, magazine, title, s.observer())
	if err == nil && !s.MagazineRegistry.Contains(magazine) {
		err = &entity.ValidationError{
			Entity:  entity.KindArticle,
			Field:   entity.KindMagazine,
			Message: "must be registered through NewMagazine",
		}
	}
	if err != nil {
		s.constructionFailed(entity.KindArticle, err)
		return nil, err
	}
	s.ArticleRegistry.Append(art)
	s.Metrics.EntityCreated(entity.KindArticle)
	s.Metrics.RegistrySize(RegistryArticles, s.ArticleRegistry.Len())
	s.Logger.Debug("article registered",
		slog.String("article_id", art.ID().String()),
		slog.String("author_id", author.ID().String()),
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("title", art.Title()))
	return art, nil
}

// AddArticle creates an article written by author. It behaves exactly like NewArticle.
func (s *Service) AddArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	return s.NewArticle(author, magazine, title)
}

// Articles returns the articles written by author, in registry order.
func (s *Service) Articles(author *entity.Author) []*entity.Article {
	return query.ArticlesByAuthor(s.ArticleRegistry.Snapshot(), author)
}

// Magazines returns the distinct magazines author has written for.
func (s *Service) Magazines(author *entity.Author) []*entity.Magazine {
	return query.MagazinesForAuthor(s.ArticleRegistry.Snapshot(), author)
}

// TopicAreas returns the distinct categories author has written in.
// ok is false when the author has no magazines.
func (s *Service) TopicAreas(author *entity.Author) (areas []string, ok bool) {
	return query.TopicAreas(s.ArticleRegistry.Snapshot(), author)
}

// MagazineArticles returns the articles published in magazine, in registry order.
func (s *Service) MagazineArticles(magazine *entity.Magazine) []*entity.Article {
	return query.ArticlesInMagazine(s.ArticleRegistry.Snapshot(), magazine)
}

// Contributors returns the distinct authors who have written for magazine.
func (s *Service) Contributors(magazine *entity.Magazine) []*entity.Author {
	return query.Contributors(s.ArticleRegistry.Snapshot(), magazine)
}

// ArticleTitles returns the titles of magazine's articles; ok is false when it has none.
func (s *Service) ArticleTitles(magazine *entity.Magazine) (titles []string, ok bool) {
	return query.ArticleTitles(s.ArticleRegistry.Snapshot(), magazine)
}

// ContributingAuthors returns the authors with more than two articles in magazine;
// ok is false when there are none.
func (s *Service) ContributingAuthors(magazine *entity.Magazine) (authors []*entity.Author, ok bool) {
	return query.ContributingAuthors(s.ArticleRegistry.Snapshot(), magazine)
}

// TopPublisher returns the registered magazine with the most articles.
// ok is false when no article exists anywhere.
func (s *Service) TopPublisher() (*entity.Magazine, bool) {
	return query.TopPublisher(s.ArticleRegistry.Snapshot(), s.MagazineRegistry.Snapshot())
}

// ArticleCounts returns every registered magazine with its article count, in registry order.
func (s *Service) ArticleCounts() []query.MagazineCount {
	return query.ArticleCounts(s.ArticleRegistry.Snapshot(), s.MagazineRegistry.Snapshot())
}

// AllArticles returns a snapshot of the article registry.
func (s *Service) AllArticles() []*entity.Article {
	return s.ArticleRegistry.Snapshot()
}

// AllMagazines returns a snapshot of the magazine registry.
func (s *Service) AllMagazines() []*entity.Magazine {
	return s.MagazineRegistry.Snapshot()
}

func (s *Service) observer() entity.Option {
	return entity.WithRejectionObserver(s.rejected)
}

func (s *Service) rejected(kind, field string, policy entity.Policy) {
	s.Metrics.ValidationRejected(kind, field, policy.String())
	level := slog.LevelDebug
	if policy == entity.PolicyFailFast {
		level = slog.LevelWarn
	}
	s.Logger.Log(context.Background(), level, "field write rejected",
		slog.String("entity", kind),
		slog.String("field", field),
		slog.String("policy", policy.String()))
}

func (s *Service) constructionFailed(kind string, err error) {
	field := ""
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		field = ve.Field
	}
	s.Metrics.ValidationRejected(kind, field, entity.PolicyFailFast.String())
	s.Logger.Warn("construction rejected",
		slog.String("entity", kind),
		slog.String("field", field),
		slog.Any("error", err))
}
