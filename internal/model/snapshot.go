package model

// Wire types for the player-scoped snapshot the server returns from every
// /action round trip. Field names match the JSON exactly. A snapshot is
// immutable once decoded; nothing here is ever mutated in place.

// PlayerStatus is one row of the round's status table. The server computes
// the turn and highlight flags; the client never derives them for other
// players. Wager is nil until that player has wagered this round; HandsWon
// is nil until tricks have begun resolving.
type PlayerStatus struct {
	Player           string
	IsNextWagerer    bool
	IsNextPlayer     bool
	IsCurrentLeader  bool
	IsPreviousWinner bool
	Wager            *int
	HandsWon         *int
	PreviousCard     *Card // card played into the previous trick, if any
	CurrentCard      *Card // card played into the open trick, if any
}

// CurrentHand is present only while a trick is open or just completed.
// The per-player cards live in PlayerStatus.CurrentCard.
type CurrentHand struct {
	Suit       Suit // led suit, "" before the lead
	Leader     string
	LeaderCard *Card
	NextPlayer string // "" once everyone has played
}

// PreviousHand summarizes the last completed trick.
type PreviousHand struct {
	Suit   Suit
	Winner string
}

// Status is the in-round portion of a snapshot, nil outside a round.
type Status struct {
	PlayerStatuses  []PlayerStatus
	TrumpSuit       Suit
	NextWagerPlayer string // "" once wagering is complete
	WagerSum        int
	PreviousHand    *PreviousHand
	CurrentHand     *CurrentHand
}

// GameInfo is the lobby portion of a snapshot.
type GameInfo struct {
	Players        []string
	CardsPerPlayer int
}

// GameSnapshot is the complete server-authoritative state as seen by one
// player. Me is "" when the local user has not joined. MyCards arrives
// pre-sorted by the server and is nil outside a round.
type GameSnapshot struct {
	Me      string
	State   Phase
	Game    *GameInfo
	Status  *Status
	MyCards []Card
}

// Players returns the roster, tolerating a snapshot with no Game section.
func (s *GameSnapshot) Players() []string {
	if s.Game == nil {
		return nil
	}
	return s.Game.Players
}

// CardsPerPlayer is the lobby's agreed hand size, 0 with no Game section.
func (s *GameSnapshot) CardsPerPlayer() int {
	if s.Game == nil {
		return 0
	}
	return s.Game.CardsPerPlayer
}
