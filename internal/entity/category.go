package entity

import "fmt"

// Category identifies one of the three screening instruments scored
// during a session.
type Category string

const (
	// CategoryCDI is the Children's Depression Inventory.
	CategoryCDI Category = "cdi"
	// CategoryRCMAS is the Revised Children's Manifest Anxiety Scale.
	CategoryRCMAS Category = "rcmas"
	// CategoryBDI is the Beck Depression Inventory.
	CategoryBDI Category = "bdi"
)

// Categories lists every scored instrument in report order.
var Categories = []Category{CategoryCDI, CategoryRCMAS, CategoryBDI}

func (c Category) Validate() error {
	switch c {
	case CategoryCDI, CategoryRCMAS, CategoryBDI:
		return nil
	default:
		return fmt.Errorf("unknown category: %s", c)
	}
}

// MaxScore returns the upper bound of a single answer score for the
// category. RCMAS items are binary, CDI and BDI items are three-tier.
func (c Category) MaxScore() int {
	if c == CategoryRCMAS {
		return 1
	}
	return 2
}

// AmbiguousScore is the default returned when an answer cannot be
// matched to any tier with enough confidence.
func (c Category) AmbiguousScore() int {
	return 1
}

// DisplayName returns the Korean instrument name used in prompts and
// reports.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCDI:
		return "아동용 우울척도(CDI)"
	case CategoryRCMAS:
		return "아동불안척도(RCMAS)"
	case CategoryBDI:
		return "벡 우울척도(BDI)"
	default:
		return string(c)
	}
}

// Tier is a severity band within a rubric. Binary categories use only
// TierPositive and TierNegative.
type Tier string

const (
	TierPositive Tier = "positive"
	TierModerate Tier = "moderate"
	TierNegative Tier = "negative"
)

// Score maps a tier to the ordinal score it carries for the category:
// 0 for the normal tier, rising with severity up to MaxScore.
func (t Tier) Score(c Category) int {
	switch t {
	case TierPositive:
		return 0
	case TierModerate:
		return 1
	case TierNegative:
		return c.MaxScore()
	default:
		return c.AmbiguousScore()
	}
}
