package fuzzy

import "fmt"

// Rule maps one antecedent label on one ray variable to a steering
// conclusion, with an implicit weight of 1. Firing strength is the membership
// degree of the crisp distance in the antecedent label.
type Rule struct {
	Ray  int
	When DistanceLabel
	Then SteeringLabel
}

// RuleTable builds the static rule base for rayCount rays. Left-side rays
// steer right when obstructed, right-side rays steer left, and the far label
// never generates a rule. The table is data, not control flow, so the
// center-ray behavior below stays inspectable.
func RuleTable(rayCount int) ([]Rule, error) {
	if rayCount < 3 {
		return nil, fmt.Errorf("ray count %d below minimum 3", rayCount)
	}
	if rayCount%2 == 0 {
		return nil, fmt.Errorf("ray count %d is even, center ray undefined", rayCount)
	}
	center := rayCount / 2
	rules := make([]Rule, 0, 2*(rayCount-1)+1)
	for i := 0; i < rayCount; i++ {
		switch {
		case i < center:
			rules = append(rules,
				Rule{Ray: i, When: Close, Then: Right},
				Rule{Ray: i, When: Medium, Then: SlightRight})
		case i > center:
			rules = append(rules,
				Rule{Ray: i, When: Close, Then: Left},
				Rule{Ray: i, When: Medium, Then: SlightLeft})
		default:
			// The scaled offset (i-center)*15 is always zero here and the
			// sign test treats zero as non-negative, so the center ray
			// resolves to hard_right every time.
			then := HardRight
			if (i-center)*15 < 0 {
				then = HardLeft
			}
			rules = append(rules, Rule{Ray: i, When: Close, Then: then})
		}
	}
	return rules, nil
}
