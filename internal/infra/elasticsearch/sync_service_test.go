package elasticsearch

import (
	"bytes"
	"encoding/json"
	"testing"

	"holonet-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocID(t *testing.T) {
	assert.Equal(t, "planet-1", DocID(model.KindPlanet, 1))
	assert.Equal(t, "vehicle-42", DocID(model.KindVehicle, 42))
}

func TestBuildBulkBody(t *testing.T) {
	body, err := BuildBulkBody([]CatalogDoc{
		{Kind: "planet", ID: 1, Name: "Tatooine", FavoriteCount: 2},
		{Kind: "character", ID: 3, Name: "Darth Vader"},
	})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(body), []byte("\n"))
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"index":{"_id":"planet-1"}}`, string(lines[0]))
	assert.JSONEq(t, `{"kind":"planet","id":1,"name":"Tatooine","favorite_count":2}`, string(lines[1]))
	assert.JSONEq(t, `{"index":{"_id":"character-3"}}`, string(lines[2]))
	assert.True(t, bytes.HasSuffix(body, []byte("\n")))
}

func TestBuildSearchQuery(t *testing.T) {
	q := BuildSearchQuery("falcon", model.KindVehicle, 5)
	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded struct {
		Size  int `json:"size"`
		Query struct {
			Bool struct {
				Should []map[string]interface{} `json:"should"`
				Filter []map[string]interface{} `json:"filter"`
			} `json:"bool"`
		} `json:"query"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 5, decoded.Size)
	assert.Len(t, decoded.Query.Bool.Should, 2)
	require.Len(t, decoded.Query.Bool.Filter, 1)
	assert.Equal(t, map[string]interface{}{"term": map[string]interface{}{"kind": "vehicle"}}, decoded.Query.Bool.Filter[0])

	noKind := BuildSearchQuery("falcon", "", 5)
	_, hasFilter := noKind["query"].(map[string]interface{})["bool"].(map[string]interface{})["filter"]
	assert.False(t, hasFilter)
}
