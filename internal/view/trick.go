package view

import "river-client/internal/diff"

// TrickProjector owns the trick area: trump suit, the open trick's
// play-by-play, the previous-trick summary, and the finish-hand and
// finish-round controls.
type TrickProjector struct {
	last     TrickFragment
	rendered bool
}

func NewTrickProjector() *TrickProjector {
	return &TrickProjector{}
}

func (p *TrickProjector) Apply(fragment TrickFragment) []RenderOp {
	if p.rendered && diff.Equal(fragment, p.last) {
		return nil
	}
	first := !p.rendered
	previous := p.last
	p.last = fragment
	p.rendered = true

	if !fragment.Visible {
		if first || previous.Visible {
			return []RenderOp{HideRegion{R: RegionTrick}}
		}
		return nil
	}

	var ops []RenderOp
	if first || !previous.Visible {
		ops = append(ops, ShowRegion{R: RegionTrick})
	}
	if first || fragment.TrumpSuit != previous.TrumpSuit {
		ops = append(ops, SetTrumpSuit{Suit: fragment.TrumpSuit})
	}
	trickChanged := first ||
		fragment.HasTrick != previous.HasTrick ||
		fragment.LedSuit != previous.LedSuit ||
		fragment.Leader != previous.Leader ||
		fragment.NextPlayer != previous.NextPlayer ||
		!diff.Equal(fragment.Plays, previous.Plays)
	if trickChanged {
		if fragment.HasTrick {
			ops = append(ops, ReplaceTrickPlays{
				LedSuit:    fragment.LedSuit,
				Leader:     fragment.Leader,
				NextPlayer: fragment.NextPlayer,
				Plays:      fragment.Plays,
			})
		} else {
			ops = append(ops, ClearTrickPlays{})
		}
	}
	if first || fragment.PrevTrickSuit != previous.PrevTrickSuit ||
		fragment.PrevTrickWinner != previous.PrevTrickWinner {
		ops = append(ops, SetPreviousTrick{
			Suit:   fragment.PrevTrickSuit,
			Winner: fragment.PrevTrickWinner,
		})
	}
	if first || fragment.ShowFinishHand != previous.ShowFinishHand {
		ops = append(ops, SetFinishHandVisible{Visible: fragment.ShowFinishHand})
	}
	if first || fragment.ShowFinishRound != previous.ShowFinishRound {
		ops = append(ops, SetFinishRoundVisible{Visible: fragment.ShowFinishRound})
	}
	return ops
}
