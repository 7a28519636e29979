package cache

import (
	"testing"

	"github.com/wardacoder/COMPAIR/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeItems(t *testing.T) {
	normalized := NormalizeItems([]string{"  iPhone 15 ", "Samsung S24"})
	assert.Equal(t, []string{"iphone 15", "samsung s24"}, normalized)
}

func TestNormalizeItemsOrderInsensitive(t *testing.T) {
	a := NormalizeItems([]string{"Samsung S24", "iPhone 15"})
	b := NormalizeItems([]string{"iPhone 15", "Samsung S24"})
	assert.Equal(t, a, b)
}

func TestNormalizeItemsDoesNotMutateInput(t *testing.T) {
	items := []string{"B", "A"}
	NormalizeItems(items)
	assert.Equal(t, []string{"B", "A"}, items)
}

func TestPreferencesKeyNilIsEmptyObject(t *testing.T) {
	key, err := PreferencesKey(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", key)
}

func TestPreferencesKeyDeterministic(t *testing.T) {
	prefs := &model.UserPreferences{
		Priorities: []string{"camera", "battery"},
		Budget:     "under $900",
	}
	a, err := PreferencesKey(prefs)
	require.NoError(t, err)
	b, err := PreferencesKey(prefs)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "camera")
}

func TestCanonicalizeStoredPreferences(t *testing.T) {
	// 空串和空对象都归一化为 {}
	key, err := canonicalizeStoredPreferences("")
	require.NoError(t, err)
	assert.Equal(t, "{}", key)

	key, err = canonicalizeStoredPreferences("{}")
	require.NoError(t, err)
	assert.Equal(t, "{}", key)

	_, err = canonicalizeStoredPreferences("not json")
	assert.Error(t, err)
}
