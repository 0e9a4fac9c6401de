package integrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadra-ml/quadra/tensor"
)

func TestWrapDim(t *testing.T) {
	cases := []struct {
		dim, rank int
		want      int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
	}
	for _, c := range cases {
		got, err := wrapDim(c.dim, c.rank)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "wrapDim(%d, %d)", c.dim, c.rank)
	}

	_, err := wrapDim(3, 3)
	assert.ErrorIs(t, err, ErrInvalidDim)
	_, err = wrapDim(-4, 3)
	assert.ErrorIs(t, err, ErrInvalidDim)
}

func TestPadShape(t *testing.T) {
	assert.Equal(t, tensor.Shape{1, 1, 1, 5, 5, 5}, padShape(tensor.Shape{5, 5, 5}, 6))
	assert.Equal(t, tensor.Shape{1, 4}, padShape(tensor.Shape{4}, 2))
	assert.Equal(t, tensor.Shape{2, 3}, padShape(tensor.Shape{2, 3}, 2))
	assert.Equal(t, tensor.Shape{2, 3}, padShape(tensor.Shape{2, 3}, 1))
}

func TestZerosLikeExcept(t *testing.T) {
	y, err := tensor.NewRaw(tensor.Shape{2, 0, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	out, err := zerosLikeExcept(y, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, out.Shape())
	assert.Equal(t, tensor.Float32, out.DType())
	for _, v := range out.AsFloat32() {
		assert.Zero(t, v)
	}

	lead, err := zerosLikeExcept(y, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0, 3}, lead.Shape())
}

func TestToStep(t *testing.T) {
	for _, dx := range []any{1.5, float32(1.5), 2, int32(2), int64(2), uint8(2)} {
		got, err := toStep(dx)
		require.NoError(t, err, "%T", dx)
		assert.Greater(t, got, 0.0)
	}

	for _, dx := range []any{true, complex(1, 0), complex64(1), "1.5", nil} {
		_, err := toStep(dx)
		assert.ErrorIs(t, err, ErrUnsupportedDType, "%T", dx)
	}
}
