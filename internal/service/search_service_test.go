package service

import (
	"context"
	"errors"
	"testing"

	"holonet-go/internal/api/dto"
	infraES "holonet-go/internal/infra/elasticsearch"
	"holonet-go/internal/model"
	"holonet-go/internal/repository"
	"holonet-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSearchData(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, 1, "luke@rebellion.org")
	testutil.CreateUser(t, db, 2, "leia@rebellion.org")
	testutil.CreatePlanet(t, db, 1, "Tatooine")
	testutil.CreatePlanet(t, db, 2, "Alderaan")
	testutil.CreateCharacter(t, db, 1, "Luke Skywalker")
	testutil.CreateVehicle(t, db, 1, "TIE Fighter")

	for _, userID := range []int64{1, 2} {
		fav, err := model.NewFavorite(userID, model.Target{Kind: model.KindPlanet, ID: 1})
		require.NoError(t, err)
		require.NoError(t, repository.NewFavoriteRepository(db).Create(context.Background(), fav))
	}
	return db
}

func newSearchService(db *gorm.DB, index CatalogIndex) *SearchService {
	return NewSearchService(repository.NewCatalogRepository(db), repository.NewFavoriteRepository(db), index)
}

func TestSearchServiceDatabaseFallback(t *testing.T) {
	db := seedSearchData(t)
	svc := newSearchService(db, nil)

	data, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "TAT"})
	require.NoError(t, err)
	assert.Equal(t, SourceDatabase, data.Source)
	require.Len(t, data.Hits, 1)
	assert.Equal(t, dto.SearchHit{Kind: "planet", ID: 1, Name: "Tatooine", FavoriteCount: 2}, data.Hits[0])
}

func TestSearchServiceKindFilterAndLimit(t *testing.T) {
	db := seedSearchData(t)
	svc := newSearchService(db, nil)
	ctx := context.Background()

	data, err := svc.Search(ctx, &dto.SearchRequest{Q: "a", Kind: "planet"})
	require.NoError(t, err)
	require.Len(t, data.Hits, 2)
	for _, h := range data.Hits {
		assert.Equal(t, "planet", h.Kind)
	}

	data, err = svc.Search(ctx, &dto.SearchRequest{Q: "e", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, data.Hits, 2)

	_, err = svc.Search(ctx, &dto.SearchRequest{Q: "x", Kind: "droid"})
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestSearchServiceUsesIndex(t *testing.T) {
	db := seedSearchData(t)
	index := &fakeIndex{docs: []infraES.CatalogDoc{{Kind: "vehicle", ID: 1, Name: "TIE Fighter", FavoriteCount: 5}}}
	svc := newSearchService(db, index)

	data, err := svc.Search(context.Background(), &dto.SearchRequest{Q: " tie ", Kind: "vehicle", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, SourceElasticsearch, data.Source)
	require.Len(t, data.Hits, 1)
	assert.Equal(t, int64(5), data.Hits[0].FavoriteCount)

	assert.Equal(t, "tie", index.gotKeyword)
	assert.Equal(t, model.KindVehicle, index.gotKind)
	assert.Equal(t, maxSearchLimit, index.gotLimit)
}

func TestSearchServiceIndexFailureFallsBack(t *testing.T) {
	db := seedSearchData(t)
	index := &fakeIndex{err: errors.New("cluster red")}
	svc := newSearchService(db, index)

	data, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "luke"})
	require.NoError(t, err)
	assert.Equal(t, defaultSearchLimit, index.gotLimit)
	assert.Equal(t, SourceDatabase, data.Source)
	require.Len(t, data.Hits, 1)
	assert.Equal(t, "Luke Skywalker", data.Hits[0].Name)
	assert.Zero(t, data.Hits[0].FavoriteCount)
}
