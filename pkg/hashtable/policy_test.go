package hashtable

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hashtable/pkg/types"
)

func TestBytesMap(t *testing.T) {
	tbl, err := NewBytesMap[int](4)
	require.NoError(t, err)
	defer tbl.Destroy()

	require.NoError(t, tbl.Put([]byte("alpha"), 1))
	require.NoError(t, tbl.Put([]byte{}, 2))
	assert.ErrorIs(t, tbl.Put(nil, 3), types.ErrNilKey)

	got, ok := tbl.Get([]byte("alpha"))
	require.True(t, ok, "lookup with a distinct but equal slice")
	assert.Equal(t, 1, got)

	got, ok = tbl.Get([]byte{})
	require.True(t, ok)
	assert.Equal(t, 2, got)

	require.NoError(t, tbl.Put([]byte("alpha"), 10))
	assert.Equal(t, 2, tbl.Size())
	assert.True(t, tbl.Remove([]byte("alpha")))
	assert.False(t, tbl.Contains([]byte("alpha")))
}

func TestXXHashStringMatchesBytes(t *testing.T) {
	for _, s := range []string{"", "a", "hashtable", "caf\u00e9"} {
		assert.Equal(t, XXHashBytes([]byte(s)), XXHashString(s), s)
	}
}

func TestUUIDMap(t *testing.T) {
	tbl, err := NewUUIDMap[string](8)
	require.NoError(t, err)
	defer tbl.Destroy()

	ids := make([]uuid.UUID, 50)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, tbl.Put(ids[i], fmt.Sprintf("value-%d", i)))
	}
	require.NoError(t, tbl.Resize(64))

	assert.Equal(t, len(ids), tbl.Size())
	for i, id := range ids {
		got, ok := tbl.Get(id)
		require.True(t, ok, "id %s", id)
		assert.Equal(t, fmt.Sprintf("value-%d", i), got)
	}
	assert.False(t, tbl.Contains(uuid.Nil))
}

func TestCompareUUID(t *testing.T) {
	id := uuid.MustParse("0190b6a2-7c3e-7d4f-8a1b-2c3d4e5f6a7b")
	same := uuid.MustParse("0190b6a2-7c3e-7d4f-8a1b-2c3d4e5f6a7b")
	assert.Equal(t, 0, CompareUUID(id, same))
	assert.Equal(t, HashUUID(id), HashUUID(same))
	assert.NotEqual(t, 0, CompareUUID(id, uuid.Nil))
}

func TestComparableMap(t *testing.T) {
	type point struct{ x, y int }

	tbl, err := NewComparableMap[point, string](4)
	require.NoError(t, err)
	defer tbl.Destroy()

	for x := range 5 {
		for y := range 5 {
			require.NoError(t, tbl.Put(point{x, y}, fmt.Sprintf("%d,%d", x, y)))
		}
	}
	assert.Equal(t, 25, tbl.Size())

	got, ok := tbl.Get(point{3, 4})
	require.True(t, ok)
	assert.Equal(t, "3,4", got)
	assert.False(t, tbl.Contains(point{5, 5}))
}

func TestCompareComparable(t *testing.T) {
	assert.Equal(t, 0, CompareComparable(7, 7))
	assert.NotEqual(t, 0, CompareComparable(7, 8))
}

func TestComparableHasherIsStable(t *testing.T) {
	h := ComparableHasher[int]()
	assert.Equal(t, h(42), h(42))
}
