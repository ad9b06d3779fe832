package keys

import (
	"math/rand/v2"
	"testing"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/magic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestOrderFor(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 3},
		{1, 3},
		{9, 3},
		{10, 4},
		{16, 4},
		{17, 5},
		{25, 5},
		{26, 7}, // 6 is singly-even
		{49, 7},
		{50, 8},
		{65, 9},
		{101, 11},
		{122, 12}, // 11² = 121, 12 is doubly-even
	}
	for _, tt := range tests {
		got, err := OrderFor(tt.length)
		require.NoError(t, err, "length %d", tt.length)
		assert.Equal(t, tt.want, got, "length %d", tt.length)
	}
}

func TestOrderFor_Unreachable(t *testing.T) {
	_, err := OrderFor(-1)
	assert.ErrorIs(t, err, serrors.ErrNoConstructibleOrder)

	_, err = OrderFor(MaxOrder * MaxOrder)
	assert.ErrorIs(t, err, serrors.ErrNoConstructibleOrder)
}

func TestGenerate_IdentityKey(t *testing.T) {
	key, err := Generate(9, 'X', 0, seeded(1))
	require.NoError(t, err)

	assert.Equal(t, 3, key.Order)
	assert.Equal(t, magic.Siamese, key.Method)
	assert.Empty(t, key.Transformations)
	assert.Equal(t, 'X', key.Padding)
	assert.Equal(t, 0, key.PaddingCount)
	assert.NotEmpty(t, key.ID)

	sq, err := key.Square()
	require.NoError(t, err)
	base, err := magic.Build(3, magic.Siamese)
	require.NoError(t, err)
	assert.True(t, base.Equal(sq))
}

func TestGenerate_RecordsValidTransformations(t *testing.T) {
	for _, length := range []int{5, 16, 20, 40, 64, 150} {
		key, err := Generate(length, '_', 50, seeded(uint64(length)))
		require.NoError(t, err)

		assert.Len(t, key.Transformations, 50)
		assert.Equal(t, key.Capacity()-length, key.PaddingCount)
		require.NoError(t, key.Validate())

		sq, err := key.Square()
		require.NoError(t, err)
		assert.NoError(t, sq.Verify())
	}
}

func TestGenerate_OrderThreeNeverDrawsPairSwaps(t *testing.T) {
	key, err := Generate(9, '_', 200, seeded(3))
	require.NoError(t, err)
	for _, tr := range key.Transformations {
		assert.NotEqual(t, magic.SwapRowPair, tr.Kind)
		assert.NotEqual(t, magic.SwapColPair, tr.Kind)
	}
}

func TestGenerate_DrawsEveryKind(t *testing.T) {
	key, err := Generate(64, '_', 500, seeded(5))
	require.NoError(t, err)

	seen := map[magic.Kind]int{}
	for _, tr := range key.Transformations {
		seen[tr.Kind]++
	}
	for _, kind := range magic.Kinds() {
		assert.Greater(t, seen[kind], 0, "kind %s never drawn", kind)
	}
}

func TestGenerate_SeededSourceIsDeterministic(t *testing.T) {
	a, err := Generate(30, '_', 25, seeded(42))
	require.NoError(t, err)
	b, err := Generate(30, '_', 25, seeded(42))
	require.NoError(t, err)

	assert.Equal(t, a.Transformations, b.Transformations)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGenerate_RejectsBadArguments(t *testing.T) {
	_, err := Generate(10, '_', -1, seeded(1))
	assert.ErrorIs(t, err, serrors.ErrInvalidKey)

	_, err = Generate(10, 0, 3, seeded(1))
	assert.ErrorIs(t, err, serrors.ErrInvalidKey)
}

func TestKey_Layout(t *testing.T) {
	key := &CipherKey{Order: 3, Method: magic.Siamese, Padding: '_'}
	layout, err := key.Layout()
	require.NoError(t, err)
	assert.Equal(t, "8/1/6/3/5/7/4/9/2", layout)
}

func TestKey_ValidateRejectsBadRecipes(t *testing.T) {
	bad := []*CipherKey{
		{Order: 4, Method: magic.Siamese, Padding: '_'},
		{Order: 6, Method: magic.GenericDoublyEven, Padding: '_'},
		{Order: 3, Method: magic.Siamese},
		{Order: 5, Method: magic.Siamese, Padding: '_', Transformations: []magic.Transformation{magic.OuterSwap(6)}},
	}
	for _, key := range bad {
		assert.Error(t, key.Validate(), "%+v", key)
	}
}

func TestKey_ValidateCapsOrder(t *testing.T) {
	assert.NoError(t, (&CipherKey{Order: MaxOrder - 1, Method: magic.Siamese, Padding: '_'}).Validate())

	for _, order := range []int{MaxOrder, MaxOrder + 1, 1000001} {
		key := &CipherKey{Order: order, Method: magic.Siamese, Padding: '_'}
		assert.ErrorIs(t, key.Validate(), serrors.ErrInvalidKey, "order %d", order)
	}
}
