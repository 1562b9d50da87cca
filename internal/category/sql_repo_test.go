package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/category"
	"libraryapi/internal/testutil"
)

func TestSQLRepo_CreateGetDelete(t *testing.T) {
	ex, _ := testutil.NewExecutor(t)
	repo := category.NewSQLRepo(ex)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Roman")
	require.NoError(t, err)

	got, err := repo.GetByName(ctx, "Roman")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteByName(ctx, "Roman"))
	_, err = repo.GetByName(ctx, "Roman")
	assert.ErrorIs(t, err, category.ErrNotFound)

	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
