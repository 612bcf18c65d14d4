package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavoritePopulatesSingleColumn(t *testing.T) {
	cases := []struct {
		kind  Kind
		check func(t *testing.T, f *Favorite)
	}{
		{KindPlanet, func(t *testing.T, f *Favorite) {
			require.NotNil(t, f.PlanetID)
			assert.Equal(t, int64(3), *f.PlanetID)
			assert.Nil(t, f.CharacterID)
			assert.Nil(t, f.VehicleID)
		}},
		{KindCharacter, func(t *testing.T, f *Favorite) {
			require.NotNil(t, f.CharacterID)
			assert.Equal(t, int64(3), *f.CharacterID)
			assert.Nil(t, f.PlanetID)
			assert.Nil(t, f.VehicleID)
		}},
		{KindVehicle, func(t *testing.T, f *Favorite) {
			require.NotNil(t, f.VehicleID)
			assert.Equal(t, int64(3), *f.VehicleID)
			assert.Nil(t, f.PlanetID)
			assert.Nil(t, f.CharacterID)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			f, err := NewFavorite(7, Target{Kind: tc.kind, ID: 3})
			require.NoError(t, err)
			assert.Equal(t, int64(7), f.UserID)
			tc.check(t, f)

			target, err := f.Target()
			require.NoError(t, err)
			assert.Equal(t, Target{Kind: tc.kind, ID: 3}, target)
		})
	}
}

func TestNewFavoriteRejectsUnknownKind(t *testing.T) {
	_, err := NewFavorite(1, Target{Kind: "starship", ID: 1})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFavoriteTargetRejectsMalformedRows(t *testing.T) {
	id := int64(1)

	_, err := (&Favorite{UserID: 1}).Target()
	assert.ErrorIs(t, err, ErrInvalidFavoriteTarget)

	_, err = (&Favorite{UserID: 1, PlanetID: &id, VehicleID: &id}).Target()
	assert.ErrorIs(t, err, ErrInvalidFavoriteTarget)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("Planet")
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.Equal(t, "vehicle_id", KindVehicle.Column())
	assert.Equal(t, "planet-9", Target{Kind: KindPlanet, ID: 9}.String())
}
