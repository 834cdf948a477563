// Package query derives relationships from registry snapshots.
//
// Every function here is pure: it reads the slices it is given, compares entities by
// pointer identity and never caches. Results that can be "absent" use the comma-ok
// form; the boolean is false exactly when the underlying collection is empty.
package query

import "publishing-graph/internal/domain/entity"

// ContributorThreshold is the article count an author must exceed in a magazine
// to be a contributing author.
const ContributorThreshold = 2

// MagazineCount pairs a magazine with the number of articles it has published.
type MagazineCount struct {
	Magazine *entity.Magazine
	Count    int
}

// ArticlesByAuthor returns the articles written by author, in registry order.
func ArticlesByAuthor(articles []*entity.Article, author *entity.Author) []*entity.Article {
	var out []*entity.Article
	for _, a := range articles {
		if a.Author() == author {
			out = append(out, a)
		}
	}
	return out
}

// MagazinesForAuthor returns each magazine author has written for once,
// in the order first seen.
func MagazinesForAuthor(articles []*entity.Article, author *entity.Author) []*entity.Magazine {
	return distinct(ArticlesByAuthor(articles, author), (*entity.Article).Magazine)
}

// TopicAreas returns the distinct categories of the magazines author has written for.
func TopicAreas(articles []*entity.Article, author *entity.Author) ([]string, bool) {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range MagazinesForAuthor(articles, author) {
		c := m.Category()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, len(out) > 0
}

// ArticlesInMagazine returns the articles published in magazine, in registry order.
func ArticlesInMagazine(articles []*entity.Article, magazine *entity.Magazine) []*entity.Article {
	var out []*entity.Article
	for _, a := range articles {
		if a.Magazine() == magazine {
			out = append(out, a)
		}
	}
	return out
}

// Contributors returns each author who has written for magazine once, in the order first seen.
func Contributors(articles []*entity.Article, magazine *entity.Magazine) []*entity.Author {
	return distinct(ArticlesInMagazine(articles, magazine), (*entity.Article).Author)
}

// ArticleTitles returns the titles of the articles in magazine.
func ArticleTitles(articles []*entity.Article, magazine *entity.Magazine) ([]string, bool) {
	var out []string
	for _, a := range ArticlesInMagazine(articles, magazine) {
		out = append(out, a.Title())
	}
	return out, len(out) > 0
}

// ContributingAuthors returns the authors with more than ContributorThreshold
// articles in magazine, in the order first seen.
func ContributingAuthors(articles []*entity.Article, magazine *entity.Magazine) ([]*entity.Author, bool) {
	inMag := ArticlesInMagazine(articles, magazine)
	counts := make(map[*entity.Author]int, len(inMag))
	for _, a := range inMag {
		counts[a.Author()]++
	}

	var out []*entity.Author
	for _, author := range distinct(inMag, (*entity.Article).Author) {
		if counts[author] > ContributorThreshold {
			out = append(out, author)
		}
	}
	return out, len(out) > 0
}

// ArticleCounts returns the article count of every magazine, registered magazines
// first in registry order. Magazines reached only through an article (for example
// after Article.SetMagazine with an unregistered magazine) follow in the order first seen.
func ArticleCounts(articles []*entity.Article, magazines []*entity.Magazine) []MagazineCount {
	counts := make(map[*entity.Magazine]int, len(magazines))
	for _, a := range articles {
		counts[a.Magazine()]++
	}

	out := make([]MagazineCount, 0, len(magazines))
	listed := make(map[*entity.Magazine]struct{}, len(magazines))
	for _, m := range magazines {
		if _, ok := listed[m]; ok {
			continue
		}
		listed[m] = struct{}{}
		out = append(out, MagazineCount{Magazine: m, Count: counts[m]})
	}
	for _, m := range distinct(articles, (*entity.Article).Magazine) {
		if _, ok := listed[m]; ok {
			continue
		}
		listed[m] = struct{}{}
		out = append(out, MagazineCount{Magazine: m, Count: counts[m]})
	}
	return out
}

// TopPublisher returns the magazine with the most articles. Ties go to the magazine
// registered first; unregistered magazines rank after every registered one.
// It reports false when there are no articles at all, even if magazines exist.
func TopPublisher(articles []*entity.Article, magazines []*entity.Magazine) (*entity.Magazine, bool) {
	if len(articles) == 0 {
		return nil, false
	}
	ranked := ArticleCounts(articles, magazines)
	best := ranked[0]
	for _, mc := range ranked[1:] {
		if mc.Count > best.Count {
			best = mc
		}
	}
	return best.Magazine, true
}

func distinct[T comparable](articles []*entity.Article, key func(*entity.Article) T) []T {
	var out []T
	seen := make(map[T]struct{})
	for _, a := range articles {
		k := key(a)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
