package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hashtable/pkg/types"
)

func TestDJB2(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{in: "", want: 5381},
		{in: "a", want: 5381*33 + 'a'},
		{in: "ab", want: (5381*33+'a')*33 + 'b'},
		{in: "\xff", want: 5381*33 + 0xff}, // bytes are unsigned
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DJB2(tt.in))
		})
	}
}

func TestCompareStrings(t *testing.T) {
	assert.Equal(t, 0, CompareStrings("key", "key"))
	assert.Negative(t, CompareStrings("a", "b"))
	assert.Positive(t, CompareStrings("b", "a"))
}

func TestStringHasher(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
	}{
		{name: types.HashDJB2},
		{name: types.HashXXHash},
		{name: types.HashMaphash},
		{name: "sha1", wantErr: types.ErrUnknownHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := StringHasher(tt.name)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, h("stable"), h("stable"))
		})
	}
}

func TestNewStringMapFromConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.Config
		wantErr error
	}{
		{name: "default", cfg: types.DefaultConfig()},
		{name: "xxhash", cfg: types.Config{InitialCapacity: 3, KeyHash: types.HashXXHash}},
		{name: "maphash", cfg: types.Config{InitialCapacity: 5, KeyHash: types.HashMaphash}},
		{name: "zero capacity", cfg: types.Config{KeyHash: types.HashDJB2}, wantErr: types.ErrZeroCapacity},
		{name: "unknown hash", cfg: types.Config{InitialCapacity: 4, KeyHash: "md5"}, wantErr: types.ErrUnknownHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewStringMapFromConfig(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer tbl.Destroy()

			assert.Equal(t, tt.cfg.InitialCapacity, tbl.Capacity())
			for _, k := range []string{"one", "two", "three", "four"} {
				require.NoError(t, tbl.Put(k, k+"!"))
			}
			require.NoError(t, tbl.Resize(11))
			for _, k := range []string{"one", "two", "three", "four"} {
				got, ok := tbl.Get(k)
				require.True(t, ok, "key %s", k)
				assert.Equal(t, k+"!", got)
			}
		})
	}
}

func TestNewStringMapOwningDestroyers(t *testing.T) {
	var released []string
	release := func(s string) { released = append(released, s) }

	tbl, err := NewStringMap(4,
		WithKeyDestroyer[string, string](release),
		WithValueDestroyer[string, string](release),
	)
	require.NoError(t, err)

	require.NoError(t, tbl.Put("k", "A"))
	require.NoError(t, tbl.Put("k", "B"))
	assert.Equal(t, 1, tbl.Size())
	assert.Equal(t, []string{"A"}, released, "overwritten value released once, key kept")

	require.NoError(t, tbl.Put("j", "C"))
	tbl.Destroy()
	assert.ElementsMatch(t, []string{"A", "k", "B", "j", "C"}, released)
}

func TestNewStringMapFromConfigOptions(t *testing.T) {
	var released []string
	tbl, err := NewStringMapFromConfig(types.DefaultConfig(),
		WithValueDestroyer[string, string](func(v string) { released = append(released, v) }))
	require.NoError(t, err)

	require.NoError(t, tbl.Put("k", "old"))
	require.NoError(t, tbl.Put("k", "new"))
	tbl.Clear()
	assert.Equal(t, []string{"old", "new"}, released)
}
