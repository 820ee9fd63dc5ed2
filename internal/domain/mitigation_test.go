package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMitigationBrief_Composition(t *testing.T) {
	tips := MitigationBrief(Size50to140m, EventGround, 12, true)

	// base block + ground tweaks + ocean block + lead-time line
	require.Len(t, tips, 3+2+2+1)
	assert.Equal(t, mitigationBase[Size50to140m], tips[:3])
	assert.Equal(t, mitigationGround, tips[3:5])
	assert.Equal(t, mitigationOcean, tips[5:7])
	assert.Contains(t, tips[7], "kinetic impactor mission(s)")
}

func TestMitigationBrief_AirburstLand(t *testing.T) {
	tips := MitigationBrief(Size10to50m, EventAirburst, 0.5, false)

	require.Len(t, tips, 3+2+1)
	assert.Equal(t, mitigationAirburst, tips[3:5])
	assert.Contains(t, tips[5], "focus 100% on civil protection")
}

func TestMitigationBrief_LeadTimeThresholds(t *testing.T) {
	tests := []struct {
		leadYears float64
		fragment  string
	}{
		{15, "reconnaissance flyby"},
		{10, "reconnaissance flyby"},
		{7, "single kinetic impactor"},
		{5, "single kinetic impactor"},
		{2, "slow-push/gravity tractor"},
		{1, "slow-push/gravity tractor"},
		{0.2, "focus 100% on civil protection"},
		{-3, "focus 100% on civil protection"}, // negative treated as zero
	}

	for _, tt := range tests {
		tips := MitigationBrief(SizeOver1km, EventGround, tt.leadYears, false)
		assert.Contains(t, tips[len(tips)-1], tt.fragment, "lead %g years", tt.leadYears)
	}
}

func TestMitigationBrief_EverySizeClassHasBaseAdvice(t *testing.T) {
	for _, size := range []SizeClass{SizeUnder10m, Size10to50m, Size50to140m, Size140to300m, Size300mTo1km, SizeOver1km} {
		tips := MitigationBrief(size, EventGround, 5, false)
		assert.GreaterOrEqual(t, len(tips), 5, "size class %s", size)
	}
}
