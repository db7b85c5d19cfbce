package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientListScanNativeArray(t *testing.T) {
	var list IngredientList
	require.NoError(t, list.Scan([]byte(`[{"amount":"1 cup","name":"kale"}]`)))
	require.Len(t, list, 1)
	assert.Equal(t, Ingredient{Amount: "1 cup", Name: "kale"}, list[0])
}

func TestIngredientListScanDoubleEncodedString(t *testing.T) {
	// Legacy rows stored the list as a JSON string.
	var list IngredientList
	require.NoError(t, list.Scan(`"[{\"amount\":\"2\",\"name\":\"bananas\"}]"`))
	require.Len(t, list, 1)
	assert.Equal(t, Ingredient{Amount: "2", Name: "bananas"}, list[0])
}

func TestIngredientListScanGarbage(t *testing.T) {
	var list IngredientList
	require.NoError(t, list.Scan([]byte(`not json`)))
	assert.Empty(t, list)
}

func TestIngredientListScanNil(t *testing.T) {
	var list IngredientList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
}

func TestIngredientListValueEmpty(t *testing.T) {
	v, err := IngredientList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
