package main

import (
	"errors"
	"fmt"
	"log/slog"

	"publishing-graph/internal/domain/entity"
	pubUC "publishing-graph/internal/usecase/publishing"
)

type demoArticle struct {
	author, magazine, title string
}

var (
	demoAuthors   = []string{"Ada", "Grace", "Linus"}
	demoMagazines = []struct{ name, category string }{
		{"Byte", "Tech"},
		{"Nature", "Science"},
		{"Wired", "Tech"},
	}
	demoArticles = []demoArticle{
		{"Ada", "Byte", "A Title That Fits"},
		{"Ada", "Byte", "Notes on the Analytical Engine"},
		{"Ada", "Byte", "Looms and Punched Cards"},
		{"Ada", "Nature", "Bernoulli Numbers by Machine"},
		{"Grace", "Byte", "Debugging, Literally"},
		{"Grace", "Wired", "Compilers for Everyone"},
		{"Linus", "Wired", "Just for Fun"},
	}
)

// seed builds the demo graph and checks that an invalid title is refused.
func seed(svc *pubUC.Service) error {
	authors := make(map[string]*entity.Author, len(demoAuthors))
	for _, name := range demoAuthors {
		a, err := svc.NewAuthor(name)
		if err != nil {
			return fmt.Errorf("create author %q: %w", name, err)
		}
		authors[name] = a
	}

	magazines := make(map[string]*entity.Magazine, len(demoMagazines))
	for _, m := range demoMagazines {
		magazines[m.name] = svc.NewMagazine(m.name, m.category)
	}

	for _, da := range demoArticles {
		if _, err := svc.AddArticle(authors[da.author], magazines[da.magazine], da.title); err != nil {
			return fmt.Errorf("add article %q: %w", da.title, err)
		}
	}

	_, err := svc.AddArticle(authors["Ada"], magazines["Byte"], "Hi")
	if !errors.Is(err, entity.ErrValidationFailed) {
		return fmt.Errorf("short title was not rejected: %v", err)
	}
	return nil
}

// report logs the derived relationships of every registered entity.
func report(logger *slog.Logger, svc *pubUC.Service) {
	seen := make(map[*entity.Author]bool)
	for _, art := range svc.AllArticles() {
		a := art.Author()
		if seen[a] {
			continue
		}
		seen[a] = true

		areas, _ := svc.TopicAreas(a)
		logger.Info("author",
			slog.String("name", a.Name()),
			slog.Int("articles", len(svc.Articles(a))),
			slog.Int("magazines", len(svc.Magazines(a))),
			slog.Any("topic_areas", areas))
	}

	for _, mc := range svc.ArticleCounts() {
		m := mc.Magazine
		titles, _ := svc.ArticleTitles(m)
		contributing, _ := svc.ContributingAuthors(m)
		names := make([]string, 0, len(contributing))
		for _, a := range contributing {
			names = append(names, a.Name())
		}
		logger.Info("magazine",
			slog.String("name", m.Name()),
			slog.String("category", m.Category()),
			slog.Int("articles", mc.Count),
			slog.Int("contributors", len(svc.Contributors(m))),
			slog.Any("titles", titles),
			slog.Any("contributing_authors", names))
	}

	if top, ok := svc.TopPublisher(); ok {
		logger.Info("top publisher", slog.String("name", top.Name()))
	} else {
		logger.Info("top publisher", slog.String("name", ""), slog.Bool("absent", true))
	}
}
