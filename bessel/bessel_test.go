package bessel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sphera/bessel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference values computed independently from the defining series
// sum_k (z/2)^{2k+v} / (k!·Γ(v+k+1)) · e^{-z} in extended precision.
// Integer orders go through the polynomial kernels (|error| < 2e-7), so
// they are compared at 1e-6; half-integer orders are closed forms and are
// compared at 1e-12.
var iveReference = []struct {
	v, z, want, tol float64
}{
	{0, 0.5, 6.4503527044915021e-01, 1e-6},
	{0, 1.0, 4.6575960759364043e-01, 1e-6},
	{0, 2.0, 3.0850832255367105e-01, 1e-6},
	{0, 10.0, 1.2783333716342835e-01, 1e-6},
	{0, 50.0, 5.6561626647453678e-02, 1e-6},
	{1, 0.5, 1.5642080318487173e-01, 1e-6},
	{1, 1.0, 2.0791041534970842e-01, 1e-6},
	{1, 2.0, 2.1526928924893765e-01, 1e-6},
	{1, 10.0, 1.2126268138445528e-01, 1e-6},
	{1, 50.0, 5.5993123892894972e-02, 1e-6},
	{0.5, 0.5, 3.5663583483745898e-01, 1e-12},
	{0.5, 1.0, 3.4495131388824463e-01, 1e-12},
	{0.5, 2.0, 2.7692804543535504e-01, 1e-12},
	{0.5, 10.0, 1.2615662584097964e-01, 1e-12},
	{-0.5, 0.5, 7.7174333225805358e-01, 1e-12},
	{-0.5, 1.0, 4.5293324691462078e-01, 1e-12},
	{-0.5, 2.0, 2.8726153811240118e-01, 1e-12},
	{-0.5, 10.0, 1.2615662636103614e-01, 1e-12},
	{1.5, 0.5, 5.8471662583135742e-02, 1e-12},
	{1.5, 1.0, 1.0798193302637604e-01, 1e-12},
	{1.5, 2.0, 1.4879751539472361e-01, 1e-12},
	{1.5, 10.0, 1.1354096377693816e-01, 1e-12},
	{2, 0.5, 1.9352057709663289e-02, 1e-6},
	{2, 1.0, 4.9938776894223567e-02, 1e-6},
	{2, 2.0, 9.3239033304733390e-02, 1e-6},
	{2, 10.0, 1.0358080088653729e-01, 1e-6},
	{2.5, 0.5, 5.8058593386443305e-03, 1e-11},
	{2.5, 1.0, 2.1005514809116315e-02, 1e-11},
	{2.5, 2.0, 5.3731772343269757e-02, 1e-11},
	{2.5, 10.0, 9.2094336707898225e-02, 1e-11},
}

// TestIve_ReferenceValues compares every supported order against the
// independently computed table above.
func TestIve_ReferenceValues(t *testing.T) {
	for _, tc := range iveReference {
		got, err := bessel.Ive(tc.v, tc.z)
		require.NoErrorf(t, err, "Ive(%v, %v) must not error", tc.v, tc.z)
		assert.InDeltaf(t, tc.want, got, tc.tol, "Ive(%v, %v)", tc.v, tc.z)
	}
}

// TestIve_UnsupportedOrder verifies that orders off the ladder fail with
// ErrOrder rather than returning imprecise recurrence output.
func TestIve_UnsupportedOrder(t *testing.T) {
	for _, v := range []float64{3, 3.5, 100, -1, -1.5, 0.25, 1.2} {
		_, err := bessel.Ive(v, 1.0)
		assert.ErrorIsf(t, err, bessel.ErrOrder, "order %v must be rejected", v)
	}
}

// TestIve_NonPositiveArgument checks the masking convention: z ≤ 0 is
// evaluated at z = 1 and the caller is responsible for discarding it.
func TestIve_NonPositiveArgument(t *testing.T) {
	want, err := bessel.Ive(1.5, 1)
	require.NoError(t, err)
	for _, z := range []float64{0, -0.5, -100} {
		got, err := bessel.Ive(1.5, z)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "Ive(1.5, %v) must equal Ive(1.5, 1)", z)
	}
}

// TestIve_RecurrenceConsistency re-derives the ladder orders from the base
// orders through the recurrence and checks the table agrees with it.
func TestIve_RecurrenceConsistency(t *testing.T) {
	for _, z := range []float64{0.5, 1, 2, 5, 10, 40} {
		i0, err := bessel.Ive(0, z)
		require.NoError(t, err)
		i1, err := bessel.Ive(1, z)
		require.NoError(t, err)
		i2, err := bessel.Ive(2, z)
		require.NoError(t, err)
		assert.InDeltaf(t, i0-2/z*i1, i2, 1e-14, "integer chain at z=%v", z)

		im, err := bessel.Ive(-0.5, z)
		require.NoError(t, err)
		ih, err := bessel.Ive(0.5, z)
		require.NoError(t, err)
		i15, err := bessel.Ive(1.5, z)
		require.NoError(t, err)
		i25, err := bessel.Ive(2.5, z)
		require.NoError(t, err)
		assert.InDeltaf(t, im-1/z*ih, i15, 1e-14, "half chain first step at z=%v", z)
		assert.InDeltaf(t, ih-3/z*i15, i25, 1e-14, "half chain second step at z=%v", z)
	}
}

// TestIve_HalfIntegerClosedForms checks I_{±0.5} against their textbook
// closed forms for moderate arguments where the naive form is safe.
func TestIve_HalfIntegerClosedForms(t *testing.T) {
	pref := math.Sqrt(2 / math.Pi)
	for _, z := range []float64{0.25, 1, 3, 8} {
		got, err := bessel.Ive(0.5, z)
		require.NoError(t, err)
		assert.InDelta(t, pref*math.Sinh(z)*math.Exp(-z)/math.Sqrt(z), got, 1e-13)

		got, err = bessel.Ive(-0.5, z)
		require.NoError(t, err)
		assert.InDelta(t, pref*math.Cosh(z)*math.Exp(-z)/math.Sqrt(z), got, 1e-13)
	}
}

// TestIve_LargeArgumentBounded confirms the whole point of the scaling:
// huge arguments stay finite and inside (0, 1].
func TestIve_LargeArgumentBounded(t *testing.T) {
	for _, v := range []float64{-0.5, 0, 0.5, 1, 1.5, 2, 2.5} {
		got, err := bessel.Ive(v, 5000)
		require.NoError(t, err)
		assert.Falsef(t, math.IsNaN(got) || math.IsInf(got, 0), "Ive(%v, 5000) must be finite", v)
		assert.Greaterf(t, got, 0.0, "Ive(%v, 5000) must be positive", v)
		assert.LessOrEqualf(t, got, 1.0, "Ive(%v, 5000) must not exceed 1", v)
	}
}

// TestI1e_OddSymmetry checks I1e(-x) = -I1e(x) and I0e evenness.
func TestI1e_OddSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 1, 4, 20} {
		assert.Equal(t, -bessel.I1e(x), bessel.I1e(-x))
		assert.Equal(t, bessel.I0e(x), bessel.I0e(-x))
	}
}

// TestIveBatch_Contract covers destination handling and the per-lane
// equivalence with the scalar form.
func TestIveBatch_Contract(t *testing.T) {
	z := []float64{0.5, 1, 2, -1, 10}

	out, err := bessel.IveBatch(1.5, z, nil)
	require.NoError(t, err)
	require.Len(t, out, len(z))
	for i, x := range z {
		want, err := bessel.Ive(1.5, x)
		require.NoError(t, err)
		assert.Equalf(t, want, out[i], "lane %d", i)
	}

	dst := make([]float64, len(z))
	out, err = bessel.IveBatch(1.5, z, dst)
	require.NoError(t, err)
	assert.Equal(t, &dst[0], &out[0], "provided dst must be reused")

	_, err = bessel.IveBatch(1.5, z, make([]float64, 2))
	assert.ErrorIs(t, err, bessel.ErrLength)

	_, err = bessel.IveBatch(7, z, nil)
	assert.ErrorIs(t, err, bessel.ErrOrder)
}
