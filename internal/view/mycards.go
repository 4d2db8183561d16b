package view

import (
	"river-client/internal/diff"
	"river-client/internal/model"
)

// MyCardsProjector owns the local player's hand, rendered grouped by suit
// with cards ascending, and toggles whether the hand accepts clicks.
type MyCardsProjector struct {
	last     MyCardsFragment
	rendered bool
}

func NewMyCardsProjector() *MyCardsProjector {
	return &MyCardsProjector{}
}

func (p *MyCardsProjector) Apply(fragment MyCardsFragment) []RenderOp {
	if p.rendered && diff.Equal(fragment, p.last) {
		return nil
	}
	first := !p.rendered
	previous := p.last
	p.last = fragment
	p.rendered = true

	if !fragment.Visible {
		if first || previous.Visible {
			return []RenderOp{HideRegion{R: RegionMyCards}}
		}
		return nil
	}

	var ops []RenderOp
	if first || !previous.Visible {
		ops = append(ops, ShowRegion{R: RegionMyCards})
	}
	if first || !diff.Equal(fragment.Cards, previous.Cards) {
		ops = append(ops, ReplaceMyCardGroups{Groups: model.GroupBySuit(fragment.Cards)})
	}
	if first || fragment.Enabled != previous.Enabled {
		ops = append(ops, SetMyCardsEnabled{Enabled: fragment.Enabled})
	}
	return ops
}
