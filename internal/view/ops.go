package view

import "river-client/internal/model"

// Region names one of the four independent UI areas. No two projectors
// share a region.
type Region string

const (
	RegionRoster  Region = "roster"
	RegionWagers  Region = "wagers"
	RegionTrick   Region = "trick"
	RegionMyCards Region = "my-cards"
)

// RenderOp is one update for a renderer to execute. Projectors emit the
// smallest op sequence that reconciles the UI with the new fragment; an
// unchanged fragment emits none.
type RenderOp interface {
	Region() Region
}

type ShowRegion struct {
	R Region
}

type HideRegion struct {
	R Region
}

func (op ShowRegion) Region() Region { return op.R }
func (op HideRegion) Region() Region { return op.R }

// ReplaceRosterRows rebuilds the lobby's player table wholesale.
type ReplaceRosterRows struct {
	Players    []string
	ShowRemove bool
}

// SetStartRoundEnabled toggles the start-round button; it stays disabled
// below two players.
type SetStartRoundEnabled struct {
	Enabled bool
}

// ReplaceCardsPerPlayerOptions rebuilds the hand-size selector. The option
// domain depends on the player count, so the selector is rebuilt rather
// than value-set whenever the roster changes.
type ReplaceCardsPerPlayerOptions struct {
	Options  []int
	Selected int
}

// SetCardsPerPlayerValue moves the selector without rebuilding it.
type SetCardsPerPlayerValue struct {
	Value int
}

func (ReplaceRosterRows) Region() Region            { return RegionRoster }
func (SetStartRoundEnabled) Region() Region         { return RegionRoster }
func (ReplaceCardsPerPlayerOptions) Region() Region { return RegionRoster }
func (SetCardsPerPlayerValue) Region() Region       { return RegionRoster }

// ReplaceWagerRows rebuilds the wager table.
type ReplaceWagerRows struct {
	Rows []WagerRow
}

// ShowWagerSelector offers the wager affordance with exactly these
// options.
type ShowWagerSelector struct {
	Options []int
}

type HideWagerSelector struct{}

func (ReplaceWagerRows) Region() Region  { return RegionWagers }
func (ShowWagerSelector) Region() Region { return RegionWagers }
func (HideWagerSelector) Region() Region { return RegionWagers }

// SetTrumpSuit updates the round's trump display.
type SetTrumpSuit struct {
	Suit model.Suit
}

// ReplaceTrickPlays rebuilds the open trick's play-by-play.
type ReplaceTrickPlays struct {
	LedSuit    model.Suit
	Leader     string
	NextPlayer string
	Plays      []TrickPlay
}

// ClearTrickPlays empties the trick area between tricks.
type ClearTrickPlays struct{}

// SetPreviousTrick updates the previous-trick summary line.
type SetPreviousTrick struct {
	Suit   model.Suit
	Winner string
}

type SetFinishHandVisible struct {
	Visible bool
}

type SetFinishRoundVisible struct {
	Visible bool
}

func (SetTrumpSuit) Region() Region          { return RegionTrick }
func (ReplaceTrickPlays) Region() Region     { return RegionTrick }
func (ClearTrickPlays) Region() Region       { return RegionTrick }
func (SetPreviousTrick) Region() Region      { return RegionTrick }
func (SetFinishHandVisible) Region() Region  { return RegionTrick }
func (SetFinishRoundVisible) Region() Region { return RegionTrick }

// ReplaceMyCardGroups rebuilds the local hand, one group per suit, cards
// ascending within each group.
type ReplaceMyCardGroups struct {
	Groups [][]model.Card
}

// SetMyCardsEnabled toggles whether the hand accepts clicks.
type SetMyCardsEnabled struct {
	Enabled bool
}

func (ReplaceMyCardGroups) Region() Region { return RegionMyCards }
func (SetMyCardsEnabled) Region() Region   { return RegionMyCards }
