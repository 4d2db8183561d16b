package view

import "river-client/internal/diff"

// WagersProjector owns the wager table: one row per player with wager,
// hands won, played cards and highlight flags, plus the wager selector
// offered to the local user on their wager turn.
type WagersProjector struct {
	last     WagersFragment
	rendered bool
}

func NewWagersProjector() *WagersProjector {
	return &WagersProjector{}
}

func (p *WagersProjector) Apply(fragment WagersFragment) []RenderOp {
	if p.rendered && diff.Equal(fragment, p.last) {
		return nil
	}
	first := !p.rendered
	previous := p.last
	p.last = fragment
	p.rendered = true

	if !fragment.Visible {
		if first || previous.Visible {
			return []RenderOp{HideRegion{R: RegionWagers}}
		}
		return nil
	}

	var ops []RenderOp
	if first || !previous.Visible {
		ops = append(ops, ShowRegion{R: RegionWagers})
	}
	if first || !diff.Equal(fragment.Rows, previous.Rows) {
		ops = append(ops, ReplaceWagerRows{Rows: fragment.Rows})
	}
	if first || !diff.Equal(fragment.SelectorOptions, previous.SelectorOptions) {
		if fragment.SelectorOptions != nil {
			ops = append(ops, ShowWagerSelector{Options: fragment.SelectorOptions})
		} else {
			ops = append(ops, HideWagerSelector{})
		}
	}
	return ops
}
