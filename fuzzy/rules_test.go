package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTableLayout(t *testing.T) {
	rules, err := RuleTable(7)
	require.NoError(t, err)

	// Two rules per side ray plus one center rule.
	assert.Len(t, rules, 13)

	for _, r := range rules {
		assert.NotEqual(t, Far, r.When, "far must not generate a rule (ray %d)", r.Ray)
		assert.NotEqual(t, Straight, r.Then, "nothing concludes straight (ray %d)", r.Ray)
		switch {
		case r.Ray < 3:
			assert.Contains(t, []SteeringLabel{Right, SlightRight}, r.Then)
		case r.Ray > 3:
			assert.Contains(t, []SteeringLabel{Left, SlightLeft}, r.Then)
		}
	}
}

func TestRuleTableCenterRayAlwaysHardRight(t *testing.T) {
	// The center offset (i-center)*15 is always zero and zero counts as
	// non-negative, so the center ray concludes hard_right for every fan
	// size. Preserved behavior, not a bug to balance.
	for _, n := range []int{3, 5, 7, 9} {
		rules, err := RuleTable(n)
		require.NoError(t, err)

		var center []Rule
		for _, r := range rules {
			if r.Ray == n/2 {
				center = append(center, r)
			}
		}
		require.Len(t, center, 1, "n=%d", n)
		assert.Equal(t, Rule{Ray: n / 2, When: Close, Then: HardRight}, center[0], "n=%d", n)
	}
}

func TestRuleTableRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"even count", 6},
		{"too small", 1},
		{"zero", 0},
		{"negative", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RuleTable(tt.n)
			assert.Error(t, err)
		})
	}
}
