package view

import "river-client/internal/model"

// Fragments are the per-region slices of a resolved snapshot. Each
// projector sees only its own fragment, so a change in one region never
// touches another.

type RosterFragment struct {
	Visible        bool
	ShowControls   bool
	Players        []string
	CardsPerPlayer int
}

// WagerRow is one player's line in the wager table, including the
// highlight flags the renderer styles rows with.
type WagerRow struct {
	Player           string
	Wager            *int
	HandsWon         *int
	CurrentCard      *model.Card
	PreviousCard     *model.Card
	IsMe             bool
	IsNextWagerer    bool
	IsNextPlayer     bool
	IsLeader         bool
	IsPreviousWinner bool
}

type WagersFragment struct {
	Visible bool
	Rows    []WagerRow
	// SelectorOptions is non-nil only when the local user holds the wager
	// turn.
	SelectorOptions []int
}

// TrickPlay is one slot of the open trick; Card is nil until that player
// has played.
type TrickPlay struct {
	Player string
	Card   *model.Card
}

type TrickFragment struct {
	Visible         bool
	TrumpSuit       model.Suit
	HasTrick        bool
	LedSuit         model.Suit
	Leader          string
	NextPlayer      string
	Plays           []TrickPlay
	PrevTrickSuit   model.Suit
	PrevTrickWinner string
	ShowFinishHand  bool
	ShowFinishRound bool
}

type MyCardsFragment struct {
	Visible bool
	Cards   []model.Card
	Enabled bool
}

type Fragments struct {
	Roster  RosterFragment
	Wagers  WagersFragment
	Trick   TrickFragment
	MyCards MyCardsFragment
}

// BuildFragments slices a snapshot into the four region fragments under
// the resolution's visibility and turn-ownership decisions.
func BuildFragments(snapshot *model.GameSnapshot, resolution *Resolution) Fragments {
	visibility := resolution.Visibility
	fragments := Fragments{
		Roster: RosterFragment{
			Visible:      visibility.Roster,
			ShowControls: visibility.RosterControls,
			Players:      snapshot.Players(),
		},
		Wagers: WagersFragment{
			Visible:         visibility.WagerTable,
			SelectorOptions: resolution.WagerOptions,
		},
		Trick: TrickFragment{
			Visible:         visibility.TrickArea,
			ShowFinishHand:  visibility.FinishHand,
			ShowFinishRound: visibility.FinishRound,
		},
		MyCards: MyCardsFragment{
			Visible: visibility.MyCards,
			Enabled: resolution.IsMyPlayTurn,
		},
	}
	if snapshot.Game != nil {
		fragments.Roster.CardsPerPlayer = snapshot.Game.CardsPerPlayer
	}

	status := snapshot.Status
	if status == nil {
		return fragments
	}

	fragments.Wagers.Rows = buildWagerRows(snapshot)
	fragments.Trick.TrumpSuit = status.TrumpSuit
	if status.PreviousHand != nil {
		fragments.Trick.PrevTrickSuit = status.PreviousHand.Suit
		fragments.Trick.PrevTrickWinner = status.PreviousHand.Winner
	}
	if status.CurrentHand != nil {
		hand := status.CurrentHand
		fragments.Trick.HasTrick = true
		fragments.Trick.LedSuit = hand.Suit
		fragments.Trick.Leader = hand.Leader
		fragments.Trick.NextPlayer = hand.NextPlayer
		// per-player cards ride on the status rows
		plays := make([]TrickPlay, 0, len(status.PlayerStatuses))
		for _, entry := range status.PlayerStatuses {
			plays = append(plays, TrickPlay{Player: entry.Player, Card: entry.CurrentCard})
		}
		fragments.Trick.Plays = plays
	}
	fragments.MyCards.Cards = snapshot.MyCards
	return fragments
}

// buildWagerRows passes the server-computed flags through; only IsMe is a
// local decision.
func buildWagerRows(snapshot *model.GameSnapshot) []WagerRow {
	status := snapshot.Status
	rows := make([]WagerRow, 0, len(status.PlayerStatuses))
	for _, entry := range status.PlayerStatuses {
		rows = append(rows, WagerRow{
			Player:           entry.Player,
			Wager:            entry.Wager,
			HandsWon:         entry.HandsWon,
			CurrentCard:      entry.CurrentCard,
			PreviousCard:     entry.PreviousCard,
			IsMe:             entry.Player == snapshot.Me && snapshot.Me != "",
			IsNextWagerer:    entry.IsNextWagerer,
			IsNextPlayer:     entry.IsNextPlayer,
			IsLeader:         entry.IsCurrentLeader,
			IsPreviousWinner: entry.IsPreviousWinner,
		})
	}
	return rows
}
