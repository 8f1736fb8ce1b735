package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/engpower/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	table := []Entry{
		{Username: "amy", Score: 120, AvatarID: 3, Date: "2026-01-02T03:04:05Z"},
		{Username: "小明", Score: 45, AvatarID: 0, Date: "2026-01-03T00:00:00Z"},
	}
	raw, err := Encode(table)
	require.NoError(t, err)
	assert.Contains(t, raw, `"avatarId":3`)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.ElementsMatch(t, table, got)
}

func TestEncode_NilIsEmptyArray(t *testing.T) {
	raw, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{
		`{not json`,
		`{"username": "amy"}`,
		`[{"username": "amy", "score": "lots", "avatarId": 0, "date": "d"}]`,
		`[{"username": "amy", "score": 10}]`,
		`null`,
	} {
		_, err := Decode(raw)
		var invalid *store.ErrInvalidData
		assert.ErrorAs(t, err, &invalid, "input %s", raw)
	}
}

func TestLoad_MissingAndMalformed(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()

	got, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, kv.Save(ctx, Key, `[{"oops": true}]`))
	got, err = Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	table := Record(nil, Entry{Username: "amy", Score: 30, AvatarID: 1, Date: "2026-01-01T00:00:00Z"})

	require.NoError(t, Save(ctx, kv, table))
	got, err := Load(ctx, kv, nil)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

type brokenKV struct{}

func (brokenKV) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("io error")
}

func (brokenKV) Save(context.Context, string, string) error {
	return errors.New("io error")
}

func TestLoadSave_GatewayErrors(t *testing.T) {
	ctx := context.Background()
	_, err := Load(ctx, brokenKV{}, nil)
	assert.ErrorContains(t, err, "load leaderboard")
	assert.ErrorContains(t, Save(ctx, brokenKV{}, nil), "save leaderboard")
}
