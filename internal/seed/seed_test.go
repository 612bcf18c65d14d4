package seed

import (
	"context"
	"testing"

	"holonet-go/internal/model"
	"holonet-go/internal/testutil"
	"holonet-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateDefaultDataset(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	res, err := Populate(ctx, db, DefaultDataset())
	require.NoError(t, err)
	assert.Equal(t, Result{Characters: 3, Planets: 3, Vehicles: 3}, *res)

	var vehicles []model.Vehicle
	require.NoError(t, db.Order("id ASC").Find(&vehicles).Error)
	require.Len(t, vehicles, 3)
	assert.Equal(t, "Millennium Falcon", vehicles[2].Name)
	require.NotNil(t, vehicles[2].Price)
	assert.Equal(t, int64(1000000), *vehicles[2].Price)

	var planet model.Planet
	require.NoError(t, db.Where("name = ?", "Hoth").First(&planet).Error)
	assert.Equal(t, "tundra, ice caves", *planet.Terrain)
}

func TestPopulateIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	testutil.CreatePlanet(t, db, 1, "Dagobah")

	res, err := Populate(ctx, db, DefaultDataset())
	require.NoError(t, err)
	assert.Zero(t, res.Planets)
	assert.Equal(t, 3, res.Characters)

	res, err = Populate(ctx, db, DefaultDataset())
	require.NoError(t, err)
	assert.Equal(t, Result{}, *res)

	var count int64
	require.NoError(t, db.Model(&model.Planet{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	require.NoError(t, db.Model(&model.Character{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestParse(t *testing.T) {
	ds, err := Parse([]byte(`{
		"users": [{"email": "han@falcon.org", "password": "kessel", "is_active": true}],
		"characters": [{"name": "Han Solo", "birth_year": "29BBY", "gender": "male"}],
		"planets": [{"name": "Bespin", "climate": "temperate"}],
		"vehicles": [{"name": "Slave I", "model": "Firespray-31", "price": 120000}]
	}`))
	require.NoError(t, err)
	require.Len(t, ds.Characters, 1)
	assert.Equal(t, "29BBY", *ds.Characters[0].BirthYear)
	assert.Nil(t, ds.Planets[0].Terrain)
	assert.Equal(t, int64(120000), *ds.Vehicles[0].Price)

	db := testutil.NewDB(t)
	res, err := Populate(context.Background(), db, ds)
	require.NoError(t, err)
	assert.Equal(t, Result{Users: 1, Characters: 1, Planets: 1, Vehicles: 1}, *res)

	var user model.User
	require.NoError(t, db.Where("email = ?", "han@falcon.org").First(&user).Error)
	assert.True(t, utils.VerifyPassword("kessel", user.Password))

	_, err = Parse([]byte(`{"planets": [{"climate": "arid"}]}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`not json`))
	assert.Error(t, err)
}
