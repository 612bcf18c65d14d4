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

func newFavorite(t *testing.T, userID int64, kind model.Kind, id int64) *model.Favorite {
	t.Helper()
	fav, err := model.NewFavorite(userID, model.Target{Kind: kind, ID: id})
	require.NoError(t, err)
	return fav
}

func TestFavoriteRepositoryCreateAndList(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	testutil.CreateUser(t, db, 1, "luke@rebellion.org")
	testutil.CreatePlanet(t, db, 1, "Tatooine")
	testutil.CreateCharacter(t, db, 1, "Leia Organa")
	testutil.CreateVehicle(t, db, 1, "X-wing")

	repo := NewFavoriteRepository(db)

	// 同一用户可以收藏不同类型的同 ID 实体
	for _, kind := range []model.Kind{model.KindPlanet, model.KindCharacter, model.KindVehicle} {
		fav := newFavorite(t, 1, kind, 1)
		require.NoError(t, repo.Create(ctx, fav))
		assert.NotZero(t, fav.ID)
	}

	favorites, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, favorites, 3)
	assert.Less(t, favorites[0].ID, favorites[1].ID)
	assert.Less(t, favorites[1].ID, favorites[2].ID)

	target, err := favorites[1].Target()
	require.NoError(t, err)
	assert.Equal(t, model.Target{Kind: model.KindCharacter, ID: 1}, target)

	empty, err := repo.ListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFavoriteRepositoryRejectsDuplicateTarget(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	testutil.CreateUser(t, db, 1, "luke@rebellion.org")
	testutil.CreatePlanet(t, db, 1, "Tatooine")

	repo := NewFavoriteRepository(db)
	require.NoError(t, repo.Create(ctx, newFavorite(t, 1, model.KindPlanet, 1)))

	err := repo.Create(ctx, newFavorite(t, 1, model.KindPlanet, 1))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFavoriteTableRejectsRowsWithoutSingleTarget(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, 1, "luke@rebellion.org")

	err := db.Exec(`INSERT INTO favorite (user_id) VALUES (1)`).Error
	assert.Error(t, err)

	err = db.Exec(`INSERT INTO favorite (user_id, planet_id, vehicle_id) VALUES (1, 1, 1)`).Error
	assert.Error(t, err)
}

func TestFavoriteRepositoryFindFirstAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	testutil.CreateUser(t, db, 1, "luke@rebellion.org")
	testutil.CreateVehicle(t, db, 4, "X-wing")

	repo := NewFavoriteRepository(db)
	fav := newFavorite(t, 1, model.KindVehicle, 4)
	require.NoError(t, repo.Create(ctx, fav))

	found, err := repo.FindFirst(ctx, 1, model.Target{Kind: model.KindVehicle, ID: 4})
	require.NoError(t, err)
	assert.Equal(t, fav.ID, found.ID)

	_, err = repo.FindFirst(ctx, 1, model.Target{Kind: model.KindPlanet, ID: 4})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := repo.Exists(ctx, 1, model.Target{Kind: model.KindVehicle, ID: 4})
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.DeleteByID(ctx, fav.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, fav.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindFirst(ctx, 1, model.Target{Kind: "starship", ID: 4})
	assert.ErrorIs(t, err, model.ErrUnknownKind)
}

func TestFavoriteRepositoryCountByKind(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	testutil.CreateUser(t, db, 1, "luke@rebellion.org")
	testutil.CreateUser(t, db, 2, "leia@rebellion.org")
	testutil.CreatePlanet(t, db, 1, "Tatooine")
	testutil.CreatePlanet(t, db, 2, "Hoth")
	testutil.CreateCharacter(t, db, 1, "Darth Vader")

	repo := NewFavoriteRepository(db)
	require.NoError(t, repo.Create(ctx, newFavorite(t, 1, model.KindPlanet, 1)))
	require.NoError(t, repo.Create(ctx, newFavorite(t, 2, model.KindPlanet, 1)))
	require.NoError(t, repo.Create(ctx, newFavorite(t, 2, model.KindPlanet, 2)))
	require.NoError(t, repo.Create(ctx, newFavorite(t, 1, model.KindCharacter, 1)))

	counts, err := repo.CountByKind(ctx, model.KindPlanet)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 2, 2: 1}, counts)

	counts, err = repo.CountByKind(ctx, model.KindVehicle)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
