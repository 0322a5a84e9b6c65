package entity

// Rubric anchors scoring for one (category, subcategory) pair: a set of
// exemplar phrases per severity tier. Binary categories carry only the
// positive and negative tiers.
type Rubric struct {
	Category    Category          `json:"category"`
	Subcategory string            `json:"subcategory"`
	Tiers       map[Tier][]string `json:"tiers"`
}

// TierOrder returns the rubric's tiers from normal to severe, skipping
// tiers the rubric does not define.
func (r Rubric) TierOrder() []Tier {
	order := make([]Tier, 0, 3)
	for _, t := range []Tier{TierPositive, TierModerate, TierNegative} {
		if len(r.Tiers[t]) > 0 {
			order = append(order, t)
		}
	}
	return order
}
