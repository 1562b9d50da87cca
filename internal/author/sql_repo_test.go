package author_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/author"
	"libraryapi/internal/testutil"
)

func TestSQLRepo(t *testing.T) {
	ex, _ := testutil.NewExecutor(t)
	repo := author.NewSQLRepo(ex)
	ctx := context.Background()

	hugo, err := repo.Create(ctx, "Hugo")
	require.NoError(t, err)
	assert.Equal(t, "Hugo", hugo.Nom)
	assert.Positive(t, hugo.ID)

	_, err = repo.Create(ctx, "Zola")
	require.NoError(t, err)

	t.Run("list keeps insertion order", func(t *testing.T) {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Hugo", all[0].Nom)
		assert.Equal(t, "Zola", all[1].Nom)
	})

	t.Run("get by name", func(t *testing.T) {
		got, err := repo.GetByName(ctx, "Hugo")
		require.NoError(t, err)
		assert.Equal(t, hugo.ID, got.ID)

		_, err = repo.GetByName(ctx, "hugo")
		assert.ErrorIs(t, err, author.ErrNotFound)
	})

	t.Run("duplicate name is rejected by the schema", func(t *testing.T) {
		_, err := repo.Create(ctx, "Hugo")
		assert.Error(t, err)
	})

	t.Run("list by book", func(t *testing.T) {
		_, err := ex.Exec(ctx, `INSERT INTO livres (isbn, nom, description, auteur_id) VALUES ($1, $2, $3, $4)`,
			"978-1", "LesMiserables", "Epic", hugo.ID)
		require.NoError(t, err)

		authors, err := repo.ListByBook(ctx, "978-1")
		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "Hugo", authors[0].Nom)

		authors, err = repo.ListByBook(ctx, "000")
		require.NoError(t, err)
		assert.Empty(t, authors)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteByName(ctx, "Hugo"))
		require.NoError(t, repo.DeleteByName(ctx, "Hugo"), "deleting nothing is fine")

		_, err := repo.GetByName(ctx, "Hugo")
		assert.ErrorIs(t, err, author.ErrNotFound)

		authors, err := repo.ListByBook(ctx, "978-1")
		require.NoError(t, err)
		assert.Empty(t, authors, "the book keeps a null author")
	})
}
