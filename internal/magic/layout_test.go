package magic

import (
	"testing"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_RoundTrip(t *testing.T) {
	sq, err := Build(4, GenericDoublyEven)
	require.NoError(t, err)
	require.NoError(t, Apply(sq, RowPairSwap(1, 2)))

	parsed, err := ParseLayout(sq.Layout())
	require.NoError(t, err)
	assert.True(t, sq.Equal(parsed))
}

func TestLayout_OrderThree(t *testing.T) {
	sq, err := Build(3, Siamese)
	require.NoError(t, err)
	assert.Equal(t, "8/1/6/3/5/7/4/9/2", sq.Layout())
}

func TestParseLayout_Errors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "", serrors.ErrInvalidLayout},
		{"not a number", "8/1/x/3/5/7/4/9/2", serrors.ErrInvalidLayout},
		{"not square", "1/2/3", serrors.ErrInvalidLayout},
		{"duplicate value", "8/8/6/3/5/7/4/9/2", serrors.ErrInvalidLayout},
		{"out of range", "10/1/6/3/5/7/4/9/2", serrors.ErrInvalidLayout},
		{"permutation but not magic", "1/2/3/4/5/6/7/8/9", serrors.ErrNotMagic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.layout)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
