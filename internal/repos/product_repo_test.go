package repos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadito/internal/domain"
	"mercadito/internal/repos"
)

func strp(s string) *string { return &s }

func f64p(f float64) *float64 { return &f }

func TestProductRepoRoundtrip(t *testing.T) {
	db := testDB(t)
	repo := repos.NewProductRepo(db)
	ctx := context.Background()

	created, err := repo.Insert(ctx, domain.Product{
		Name:      "Widget",
		Condition: strp("new"),
		PriceUSD:  f64p(9.99),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	updated, err := repo.Update(ctx, created.ID, domain.Product{
		Name:     "Widget v2",
		PriceARS: f64p(15000),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Widget v2", updated.Name)
	assert.Nil(t, updated.PriceUSD, "update replaces every mutable field")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	// The table trigger, not the query, refreshes updated_at.
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Update(ctx, created.ID, domain.Product{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestProductRepoListOrder(t *testing.T) {
	db := testDB(t)
	repo := repos.NewProductRepo(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Insert(ctx, domain.Product{Name: name})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		assert.False(t, prev.CreatedAt.Before(cur.CreatedAt))
		if prev.CreatedAt.Equal(cur.CreatedAt) {
			assert.Greater(t, prev.ID, cur.ID, "id breaks created_at ties")
		}
	}
}

func TestProductRepoCount(t *testing.T) {
	db := testDB(t)
	repo := repos.NewProductRepo(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = repo.Insert(ctx, domain.Product{Name: "Widget"})
	require.NoError(t, err)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
