package session

import (
	"context"
	"testing"

	"github.com/abhisek/engpower/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_RoundTrip(t *testing.T) {
	h := MistakeHistory{"amy": {3, 1}, "小明": {}}
	raw, err := EncodeHistory(h)
	require.NoError(t, err)

	got, err := DecodeHistory(raw)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, []string{"amy", "小明"}, got.Usernames())
}

func TestHistory_GetReturnsCopy(t *testing.T) {
	h := MistakeHistory{"amy": {1, 2}}
	m := h.Get("amy")
	m[0] = 99
	assert.Equal(t, []int{1, 2}, h["amy"])
	assert.Empty(t, h.Get("nobody"))
}

func TestDecodeHistory_Malformed(t *testing.T) {
	for _, raw := range []string{`[]`, `{"amy": 3}`, `{"amy": [1.5]}`, `nope`} {
		_, err := DecodeHistory(raw)
		var invalid *store.ErrInvalidData
		assert.ErrorAs(t, err, &invalid, "input %s", raw)
	}
}

func TestLoadSaveHistory(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()

	h, err := LoadHistory(ctx, kv, nil)
	require.NoError(t, err)
	assert.Empty(t, h)

	require.NoError(t, SaveHistory(ctx, kv, MistakeHistory{"amy": {4}}))
	h, err = LoadHistory(ctx, kv, nil)
	require.NoError(t, err)
	assert.Equal(t, MistakeHistory{"amy": {4}}, h)
}
