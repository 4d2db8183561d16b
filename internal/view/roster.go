package view

import (
	"river-client/internal/diff"
	"river-client/internal/model"
)

// RosterProjector owns the lobby region: the player table, the remove
// buttons, the cards-per-player selector and the start-round button.
type RosterProjector struct {
	last     RosterFragment
	rendered bool
}

func NewRosterProjector() *RosterProjector {
	return &RosterProjector{}
}

func (p *RosterProjector) Apply(fragment RosterFragment) []RenderOp {
	if p.rendered && diff.Equal(fragment, p.last) {
		return nil
	}
	first := !p.rendered
	previous := p.last
	p.last = fragment
	p.rendered = true

	if !fragment.Visible {
		if first || previous.Visible {
			return []RenderOp{HideRegion{R: RegionRoster}}
		}
		return nil
	}

	var ops []RenderOp
	if first || !previous.Visible {
		ops = append(ops, ShowRegion{R: RegionRoster})
	}
	playersChanged := first || !diff.Equal(fragment.Players, previous.Players)
	controlsChanged := first || fragment.ShowControls != previous.ShowControls
	if playersChanged || controlsChanged {
		ops = append(ops, ReplaceRosterRows{
			Players:    fragment.Players,
			ShowRemove: fragment.ShowControls,
		})
	}
	if playersChanged {
		// the option domain depends on the player count, so rebuild
		ops = append(ops, ReplaceCardsPerPlayerOptions{
			Options:  cardsPerPlayerOptions(len(fragment.Players)),
			Selected: fragment.CardsPerPlayer,
		})
		ops = append(ops, SetStartRoundEnabled{Enabled: len(fragment.Players) >= 2})
	} else if fragment.CardsPerPlayer != previous.CardsPerPlayer {
		ops = append(ops, SetCardsPerPlayerValue{Value: fragment.CardsPerPlayer})
	}
	return ops
}

func cardsPerPlayerOptions(playerCount int) []int {
	max := model.MaxCardsPerPlayer(playerCount)
	options := make([]int, 0, max)
	for i := 1; i <= max; i++ {
		options = append(options, i)
	}
	return options
}
