package dist

import (
	"testing"

	"goanova/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFProvider_CDFKnownValues(t *testing.T) {
	p := NewFProvider()

	// F(1,1) has CDF(1) = 0.5 by symmetry of its underlying beta form
	v, err := p.CDF(1, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-9)

	// Closed form for df1=2: CDF(x; 2, d2) = 1 - (1 + 2x/d2)^(-d2/2)
	v, err = p.CDF(4.256495, 2, 9)
	require.NoError(t, err)
	assert.InDelta(t, 0.95, v, 1e-4)

	// Left of the support
	v, err = p.CDF(-3, 2, 9)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestFProvider_QuantileInvertsCDF(t *testing.T) {
	p := NewFProvider()

	for _, prob := range []float64{0.05, 0.5, 0.9, 0.95, 0.99} {
		x, err := p.Quantile(prob, 2, 9)
		require.NoError(t, err)

		back, err := p.CDF(x, 2, 9)
		require.NoError(t, err)
		assert.InDelta(t, prob, back, 1e-8, "prob=%v", prob)
	}
}

func TestFProvider_CriticalValueTable(t *testing.T) {
	p := NewFProvider()

	// Standard 5% upper-tail table entries
	v, err := p.Quantile(0.95, 2, 9)
	require.NoError(t, err)
	assert.InDelta(t, 4.2565, v, 1e-3)

	v, err = p.Quantile(0.95, 1, 9)
	require.NoError(t, err)
	assert.InDelta(t, 5.1174, v, 1e-3)
}

func TestFProvider_InvalidArguments(t *testing.T) {
	p := NewFProvider()

	_, err := p.CDF(1.0, 0, 9)
	assert.True(t, core.IsDistributionError(err))

	_, err = p.Quantile(0.95, 2, -1)
	assert.True(t, core.IsDistributionError(err))

	_, err = p.Quantile(1.0, 2, 9)
	assert.True(t, core.IsDistributionError(err))

	_, err = p.Quantile(0, 2, 9)
	assert.True(t, core.IsDistributionError(err))
}
