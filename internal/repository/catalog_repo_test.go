package repository

import (
	"context"
	"testing"

	"holonet-go/internal/model"
	"holonet-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogRepositoryListInInsertionOrder(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	planets, err := repo.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Empty(t, planets)

	testutil.CreatePlanet(t, db, 1, "Tatooine")
	testutil.CreatePlanet(t, db, 2, "Alderaan")
	testutil.CreatePlanet(t, db, 3, "Hoth")

	planets, err = repo.ListPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 3)
	assert.Equal(t, []string{"Tatooine", "Alderaan", "Hoth"}, []string{planets[0].Name, planets[1].Name, planets[2].Name})
}

func TestCatalogRepositoryGetByID(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)
	testutil.CreateCharacter(t, db, 5, "Luke Skywalker")
	testutil.CreateVehicle(t, db, 8, "TIE Fighter")

	c, err := repo.GetCharacter(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)
	assert.Equal(t, "Luke Skywalker", c.Name)

	v, err := repo.GetVehicle(ctx, 8)
	require.NoError(t, err)
	require.NotNil(t, v.Price)
	assert.Equal(t, int64(150000), *v.Price)

	_, err = repo.GetPlanet(ctx, 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCatalogRepositoryExists(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)
	testutil.CreateVehicle(t, db, 1, "Millennium Falcon")

	ok, err := repo.Exists(ctx, model.KindVehicle, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, model.KindCharacter, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Exists(ctx, "droid", 1)
	assert.ErrorIs(t, err, model.ErrUnknownKind)
}

func TestCatalogRepositorySearchByName(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)
	testutil.CreatePlanet(t, db, 1, "Tatooine")
	testutil.CreatePlanet(t, db, 2, "Alderaan")
	testutil.CreatePlanet(t, db, 3, "Hoth")

	items, err := repo.SearchByName(ctx, model.KindPlanet, "TAT", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.CatalogItem{Kind: model.KindPlanet, ID: 1, Name: "Tatooine"}, items[0])

	items, err = repo.SearchByName(ctx, model.KindPlanet, "o", 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	all, err := repo.ListItems(ctx, model.KindPlanet)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
