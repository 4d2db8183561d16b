package model

// Phase is the server-reported stage of game progression. The set is
// closed: anything else coming off the wire must be surfaced as an error,
// never mapped onto a known phase.
type Phase string

const (
	PhaseNotJoined         Phase = "NotJoined"
	PhaseWaitingForPlayers Phase = "WaitingForPlayers"
	PhaseWagerTurn         Phase = "WagerTurn"
	PhaseHandReady         Phase = "HandReady"
	PhasePlayCardTurn      Phase = "PlayCardTurn"
	PhaseHandFinished      Phase = "HandFinished"
	PhaseRoundFinished     Phase = "RoundFinished"
)

// Phases in progression order. HandReady/PlayCardTurn/HandFinished repeat
// once per trick within a round.
var Phases = []Phase{
	PhaseNotJoined,
	PhaseWaitingForPlayers,
	PhaseWagerTurn,
	PhaseHandReady,
	PhasePlayCardTurn,
	PhaseHandFinished,
	PhaseRoundFinished,
}

func (p Phase) Known() bool {
	switch p {
	case PhaseNotJoined, PhaseWaitingForPlayers, PhaseWagerTurn, PhaseHandReady,
		PhasePlayCardTurn, PhaseHandFinished, PhaseRoundFinished:
		return true
	}
	return false
}

// InRound reports whether the snapshot carries a Status for this phase.
func (p Phase) InRound() bool {
	switch p {
	case PhaseNotJoined, PhaseWaitingForPlayers:
		return false
	}
	return p.Known()
}

// HasTrick reports whether the snapshot carries an open or just-completed
// trick for this phase.
func (p Phase) HasTrick() bool {
	return p == PhasePlayCardTurn || p == PhaseHandFinished
}
