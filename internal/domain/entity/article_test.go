package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"publishing-graph/internal/domain/entity"
)

func newPair(t *testing.T) (*entity.Author, *entity.Magazine) {
	t.Helper()
	a, err := entity.NewAuthor("Ada")
	require.NoError(t, err)
	return a, entity.NewMagazine("Byte", "Tech")
}

func TestNewArticle(t *testing.T) {
	author, mag := newPair(t)

	tests := []struct {
		name      string
		author    *entity.Author
		magazine  *entity.Magazine
		title     string
		wantField string
	}{
		{"valid", author, mag, "A Title That Fits", ""},
		{"title at lower bound", author, mag, "Five!", ""},
		{"title at upper bound", author, mag, strings.Repeat("x", 50), ""},
		{"title too short", author, mag, "Hi", "title"},
		{"title too long", author, mag, strings.Repeat("x", 51), "title"},
		{"empty title", author, mag, "", "title"},
		{"nil author", nil, mag, "A Title That Fits", "author"},
		{"nil magazine", author, nil, "A Title That Fits", "magazine"},
		{"title checked before author", nil, nil, "Hi", "title"},
		{"author checked before magazine", nil, nil, "A Title That Fits", "author"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := entity.NewArticle(tt.author, tt.magazine, tt.title)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.title, art.Title())
				assert.Same(t, tt.author, art.Author())
				assert.Same(t, tt.magazine, art.Magazine())
				return
			}
			assert.Nil(t, art)
			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.ErrorIs(t, err, entity.ErrValidationFailed)
		})
	}
}

func TestArticle_SetTitle_IsIgnored(t *testing.T) {
	author, mag := newPair(t)

	rapid.Check(t, func(r *rapid.T) {
		title := rapid.StringMatching(`[A-Za-z ]{5,50}`).Draw(r, "title")
		next := rapid.String().Draw(r, "next")

		art, err := entity.NewArticle(author, mag, title)
		if err != nil {
			r.Fatalf("NewArticle(%q): %v", title, err)
		}
		art.SetTitle(next)
		if art.Title() != title {
			r.Fatalf("title changed from %q to %q", title, art.Title())
		}
	})
}

func TestArticle_SetAuthor(t *testing.T) {
	author, mag := newPair(t)
	art, err := entity.NewArticle(author, mag, "A Title That Fits")
	require.NoError(t, err)

	t.Run("nil is rejected and previous author kept", func(t *testing.T) {
		err := art.SetAuthor(nil)
		var ve *entity.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "author", ve.Field)
		assert.Same(t, author, art.Author())
	})

	t.Run("another author replaces the reference", func(t *testing.T) {
		grace, err := entity.NewAuthor("Grace")
		require.NoError(t, err)
		require.NoError(t, art.SetAuthor(grace))
		assert.Same(t, grace, art.Author())
	})
}

func TestArticle_SetMagazine(t *testing.T) {
	author, mag := newPair(t)
	art, err := entity.NewArticle(author, mag, "A Title That Fits")
	require.NoError(t, err)

	t.Run("nil is rejected and previous magazine kept", func(t *testing.T) {
		err := art.SetMagazine(nil)
		var ve *entity.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "magazine", ve.Field)
		assert.Same(t, mag, art.Magazine())
	})

	t.Run("another magazine replaces the reference", func(t *testing.T) {
		wired := entity.NewMagazine("Wired", "Tech")
		require.NoError(t, art.SetMagazine(wired))
		assert.Same(t, wired, art.Magazine())
	})
}
