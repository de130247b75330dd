package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestZooInputModel(t *testing.T) {
	zoo := ZooInput{Name: "Central Park Zoo", Location: strPtr("New York")}.Model()

	assert.Zero(t, zoo.ID)
	assert.Equal(t, "Central Park Zoo", zoo.Name)
	assert.Equal(t, "New York", *zoo.Location)
}

func TestZooUpdateChangesOnlySuppliedFields(t *testing.T) {
	changes, err := ZooUpdate{}.Changes()
	require.NoError(t, err)
	assert.Empty(t, changes)

	changes, err = ZooUpdate{Name: Some("CPZ")}.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "CPZ"}, changes)

	changes, err = ZooUpdate{Name: Some("CPZ"), Location: Some("NYC")}.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "CPZ", "location": "NYC"}, changes)
}

func TestBearUpdateChangesOnlySuppliedFields(t *testing.T) {
	changes, err := BearUpdate{}.Changes()
	require.NoError(t, err)
	assert.Empty(t, changes)

	changes, err = BearUpdate{Species: Some("grizzly")}.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"species": "grizzly"}, changes)
}

func TestUpdateNullClearsNullableColumn(t *testing.T) {
	changes, err := ZooUpdate{Location: Null[string]()}.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"location": nil}, changes)

	changes, err = BearUpdate{Species: Null[string]()}.Changes()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"species": nil}, changes)
}

func TestUpdateRejectsNullOrEmptyName(t *testing.T) {
	_, err := ZooUpdate{Name: Null[string]()}.Changes()
	assert.EqualError(t, err, "name must not be null")

	_, err = BearUpdate{Name: Some("")}.Changes()
	assert.EqualError(t, err, "name must not be empty")
}

func TestNullableDecoding(t *testing.T) {
	var in ZooUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"location":null}`), &in))
	assert.False(t, in.Name.Set)
	assert.True(t, in.Location.Set)
	assert.Nil(t, in.Location.Value)

	in = ZooUpdate{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"CPZ"}`), &in))
	assert.True(t, in.Name.Set)
	assert.Equal(t, "CPZ", *in.Name.Value)
	assert.False(t, in.Location.Set)

	assert.Error(t, json.Unmarshal([]byte(`{"name":42}`), &in))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "zoos", Zoo{}.TableName())
	assert.Equal(t, "bears", Bear{}.TableName())
	assert.Len(t, All(), 2)
}
