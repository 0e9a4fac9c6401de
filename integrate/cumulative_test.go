package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadra-ml/quadra/backend/cpu"
	"github.com/quadra-ml/quadra/tensor"
)

func TestCumulativeTrapezoid1D(t *testing.T) {
	b := cpu.New()
	y := vec(t, b, 1, 2, 3)
	x := vec(t, b, 0, 1, 2)

	got, err := CumulativeTrapezoid(y, x, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, got.Shape())
	assert.InDeltaSlice(t, []float64{1.5, 4}, got.Data(), 1e-12)
}

func TestCumulativeTrapezoidUniform2D(t *testing.T) {
	b := cpu.New()
	y := mat(t, b, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	got, err := CumulativeTrapezoidUniform(y, 1.0, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
	assert.InDeltaSlice(t, []float64{1.5, 4, 4.5, 10}, got.Data(), 1e-12)

	gotCols, err := CumulativeTrapezoidUniform(y, 1.0, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3}, gotCols.Shape())
	assert.InDeltaSlice(t, []float64{2.5, 3.5, 4.5}, gotCols.Data(), 1e-12)
}

func TestCumulativeTrapezoidNonUniformSpacing(t *testing.T) {
	b := cpu.New()
	y := vec(t, b, 1, 2, 3)
	x := vec(t, b, 0, 2, 3)

	got, err := CumulativeTrapezoid(y, x, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 5.5}, got.Data(), 1e-12)
}

func TestCumulativeTrapezoidNegativeDim(t *testing.T) {
	b := cpu.New()
	y := mat(t, b, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	pos, err := CumulativeTrapezoidUniform(y, 1.0, 1)
	require.NoError(t, err)
	neg, err := CumulativeTrapezoidUniform(y, 1.0, -1)
	require.NoError(t, err)
	assert.Equal(t, pos.Data(), neg.Data())
}

func TestCumulativeTrapezoidLastEqualsTotal(t *testing.T) {
	b := cpu.New()
	const n = 101
	x := tensor.Linspace[float64](0, 2, n, b)
	y := tensor.Zeros[float64](tensor.Shape{n}, b)
	yData := y.Data()
	for i, v := range x.Data() {
		yData[i] = v*v - math.Cos(v)
	}

	running, err := CumulativeTrapezoid(y, x, 0)
	require.NoError(t, err)
	total, err := Trapezoid(y, x, 0)
	require.NoError(t, err)

	last := running.Data()[running.NumElements()-1]
	assert.InDelta(t, total.Item(), last, 1e-10)
}

func TestCumulativeTrapezoidScalarVersusArraySpacingAgree(t *testing.T) {
	b := cpu.New()
	const n = 51
	x := tensor.Linspace[float64](0, 1, n, b)
	y := tensor.Zeros[float64](tensor.Shape{n}, b)
	yData := y.Data()
	for i, v := range x.Data() {
		yData[i] = math.Sqrt(v)
	}

	fromX, err := CumulativeTrapezoid(y, x, 0)
	require.NoError(t, err)
	fromStep, err := CumulativeTrapezoidUniform(y, 1.0/float64(n-1), 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, fromStep.Data(), fromX.Data(), 1e-10)
}

func TestCumulativeTrapezoidDegenerateExtents(t *testing.T) {
	b := cpu.New()

	// One sample: zero intervals, so the integrated dim has extent 0.
	single := vec(t, b, 5)
	got, err := CumulativeTrapezoidUniform(single, 1.0, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{0}, got.Shape())

	// Zero samples degenerate the same way.
	empty := tensor.Zeros[float64](tensor.Shape{2, 0}, b)
	gotEmpty, err := CumulativeTrapezoidUniform(empty, 1.0, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 0}, gotEmpty.Shape())
}

func TestCumulativeTrapezoidErrors(t *testing.T) {
	b := cpu.New()
	y := vec(t, b, 1, 2, 3)

	t.Run("invalid dim", func(t *testing.T) {
		_, err := CumulativeTrapezoidUniform(y, 1.0, 1)
		assert.ErrorIs(t, err, ErrInvalidDim)
		_, err = CumulativeTrapezoid(y, y, -2)
		assert.ErrorIs(t, err, ErrInvalidDim)
	})

	t.Run("sample count mismatch", func(t *testing.T) {
		short := vec(t, b, 0, 1)
		_, err := CumulativeTrapezoid(y, short, 0)
		assert.ErrorIs(t, err, ErrSampleCountMismatch)
	})

	t.Run("bool inputs", func(t *testing.T) {
		yb, err := tensor.FromSlice([]bool{true, false}, tensor.Shape{2}, b)
		require.NoError(t, err)
		_, err = CumulativeTrapezoidUniform(yb, 1.0, 0)
		assert.ErrorIs(t, err, ErrUnsupportedDType)
	})

	t.Run("non-real scalar spacing", func(t *testing.T) {
		_, err := CumulativeTrapezoidUniform(y, complex(1, 2), 0)
		assert.ErrorIs(t, err, ErrUnsupportedDType)
		_, err = CumulativeTrapezoidUniform(y, false, 0)
		assert.ErrorIs(t, err, ErrUnsupportedDType)
	})
}
