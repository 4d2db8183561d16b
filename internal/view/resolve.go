// Package view turns snapshots into minimal, idempotent render operations:
// a phase resolver decides what each region shows and who holds the turn,
// and one projector per region diffs its fragment against the last thing
// it rendered.
package view

import (
	"fmt"

	"river-client/internal/model"
)

// UnknownPhaseError means the server reported a phase outside the closed
// set. The tick's render work must be abandoned; guessing a phase is worse
// than rendering nothing.
type UnknownPhaseError struct {
	Phase string
}

func (e *UnknownPhaseError) Error() string {
	return fmt.Sprintf("unrecognized phase %q", e.Phase)
}

// Visibility is the per-phase configuration of every UI region and
// control. Every known phase maps to exactly one of these.
type Visibility struct {
	Roster         bool
	RosterControls bool // remove buttons, cards-per-player selector, start button
	WagerTable     bool
	TrickArea      bool
	MyCards        bool
	FinishHand     bool
	FinishRound    bool
}

// visibilityFor is exhaustive over the closed phase set; there is
// deliberately no default configuration.
func visibilityFor(phase model.Phase) (Visibility, error) {
	switch phase {
	case model.PhaseNotJoined:
		return Visibility{Roster: true}, nil
	case model.PhaseWaitingForPlayers:
		return Visibility{Roster: true, RosterControls: true}, nil
	case model.PhaseWagerTurn:
		return Visibility{WagerTable: true, TrickArea: true, MyCards: true}, nil
	case model.PhaseHandReady:
		return Visibility{WagerTable: true, TrickArea: true, MyCards: true}, nil
	case model.PhasePlayCardTurn:
		return Visibility{WagerTable: true, TrickArea: true, MyCards: true}, nil
	case model.PhaseHandFinished:
		return Visibility{WagerTable: true, TrickArea: true, MyCards: true, FinishHand: true}, nil
	case model.PhaseRoundFinished:
		return Visibility{WagerTable: true, TrickArea: true, MyCards: true, FinishRound: true}, nil
	}
	return Visibility{}, &UnknownPhaseError{Phase: string(phase)}
}

// Resolution is everything downstream of the phase decision: turn
// ownership, the affordances to offer the local user, and region
// visibility. WagerOptions and PlayableCards are nil unless the matching
// turn is the local user's.
type Resolution struct {
	Phase         model.Phase
	IsMyWagerTurn bool
	IsMyPlayTurn  bool
	WagerOptions  []int
	PlayableCards []model.Card
	Visibility    Visibility
}

type wagerOptionsKey struct {
	NextWagerPlayer string
	CardsPerPlayer  int
}

// Resolver is a pure function of the snapshot apart from a small cache:
// the wager option list is rebuilt only when the next wagerer or the hand
// size changes, not on every poll tick.
type Resolver struct {
	optionsKey wagerOptionsKey
	options    []int
	hasOptions bool
}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolve(snapshot *model.GameSnapshot) (*Resolution, error) {
	visibility, err := visibilityFor(snapshot.State)
	if err != nil {
		return nil, err
	}
	resolution := &Resolution{
		Phase:      snapshot.State,
		Visibility: visibility,
	}
	status := snapshot.Status
	if snapshot.State == model.PhaseWagerTurn && status != nil && snapshot.Me != "" &&
		status.NextWagerPlayer == snapshot.Me {
		resolution.IsMyWagerTurn = true
		resolution.WagerOptions = r.wagerOptions(status.NextWagerPlayer, snapshot.CardsPerPlayer())
	}
	if snapshot.State == model.PhasePlayCardTurn && status != nil && status.CurrentHand != nil &&
		snapshot.Me != "" && status.CurrentHand.NextPlayer == snapshot.Me {
		resolution.IsMyPlayTurn = true
		// the full hand: follow-suit legality is the server's call
		resolution.PlayableCards = snapshot.MyCards
	}
	return resolution, nil
}

func (r *Resolver) wagerOptions(nextWagerPlayer string, cardsPerPlayer int) []int {
	key := wagerOptionsKey{NextWagerPlayer: nextWagerPlayer, CardsPerPlayer: cardsPerPlayer}
	if r.hasOptions && r.optionsKey == key {
		return r.options
	}
	options := make([]int, 0, cardsPerPlayer+1)
	for i := 0; i <= cardsPerPlayer; i++ {
		options = append(options, i)
	}
	r.optionsKey = key
	r.options = options
	r.hasOptions = true
	return options
}
