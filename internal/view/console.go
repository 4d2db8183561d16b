package view

import (
	"fmt"
	"io"
	"strings"

	"river-client/internal/model"
)

// Renderer executes render ops against a concrete UI. Projectors never see
// it; they only emit ops.
type Renderer interface {
	Render(ops []RenderOp)
}

// ConsoleRenderer writes each op as a line of terminal output. It keeps no
// state: the op stream alone is enough to follow the game.
type ConsoleRenderer struct {
	Out io.Writer
}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{Out: out}
}

func (r *ConsoleRenderer) Render(ops []RenderOp) {
	for _, op := range ops {
		fmt.Fprintf(r.Out, "[%s] %s\n", op.Region(), describeOp(op))
	}
}

func describeOp(op RenderOp) string {
	switch o := op.(type) {
	case ShowRegion:
		return "show"
	case HideRegion:
		return "hide"
	case ReplaceRosterRows:
		if o.ShowRemove {
			return fmt.Sprintf("players (removable): %s", strings.Join(o.Players, ", "))
		}
		return fmt.Sprintf("players: %s", strings.Join(o.Players, ", "))
	case SetStartRoundEnabled:
		if o.Enabled {
			return "start-round enabled"
		}
		return "start-round disabled"
	case ReplaceCardsPerPlayerOptions:
		return fmt.Sprintf("cards-per-player options %s, selected %d", intList(o.Options), o.Selected)
	case SetCardsPerPlayerValue:
		return fmt.Sprintf("cards-per-player set to %d", o.Value)
	case ReplaceWagerRows:
		lines := make([]string, 0, len(o.Rows))
		for _, row := range o.Rows {
			lines = append(lines, describeWagerRow(row))
		}
		return "table:\n  " + strings.Join(lines, "\n  ")
	case ShowWagerSelector:
		return fmt.Sprintf("place your wager: %s", intList(o.Options))
	case HideWagerSelector:
		return "wager selector hidden"
	case SetTrumpSuit:
		return fmt.Sprintf("trump is %s", o.Suit)
	case ReplaceTrickPlays:
		lines := make([]string, 0, len(o.Plays))
		for _, play := range o.Plays {
			lines = append(lines, describeTrickPlay(play, o))
		}
		return fmt.Sprintf("trick (led %s):\n  %s", orDash(string(o.LedSuit)), strings.Join(lines, "\n  "))
	case ClearTrickPlays:
		return "trick cleared"
	case SetPreviousTrick:
		if o.Winner == "" {
			return "no previous trick"
		}
		return fmt.Sprintf("previous trick (%s) won by %s", o.Suit, o.Winner)
	case SetFinishHandVisible:
		if o.Visible {
			return "finish-hand shown"
		}
		return "finish-hand hidden"
	case SetFinishRoundVisible:
		if o.Visible {
			return "finish-round shown"
		}
		return "finish-round hidden"
	case ReplaceMyCardGroups:
		lines := make([]string, 0, len(o.Groups))
		for _, group := range o.Groups {
			lines = append(lines, describeSuitGroup(group))
		}
		return "hand:\n  " + strings.Join(lines, "\n  ")
	case SetMyCardsEnabled:
		if o.Enabled {
			return "your turn: pick a card"
		}
		return "waiting"
	}
	return fmt.Sprintf("%+v", op)
}

func describeWagerRow(row WagerRow) string {
	parts := []string{row.Player}
	if row.Wager != nil {
		parts = append(parts, fmt.Sprintf("wagered %d", *row.Wager))
	}
	if row.HandsWon != nil {
		parts = append(parts, fmt.Sprintf("won %d", *row.HandsWon))
	}
	if row.CurrentCard != nil {
		parts = append(parts, fmt.Sprintf("played %s", row.CurrentCard))
	}
	var marks []string
	if row.IsMe {
		marks = append(marks, "me")
	}
	if row.IsNextWagerer {
		marks = append(marks, "to wager")
	}
	if row.IsNextPlayer {
		marks = append(marks, "to play")
	}
	if row.IsLeader {
		marks = append(marks, "leading")
	}
	if row.IsPreviousWinner {
		marks = append(marks, "won last trick")
	}
	line := strings.Join(parts, ", ")
	if len(marks) > 0 {
		line += " [" + strings.Join(marks, ", ") + "]"
	}
	return line
}

func describeTrickPlay(play TrickPlay, op ReplaceTrickPlays) string {
	if play.Card == nil {
		if play.Player == op.NextPlayer && op.NextPlayer != "" {
			return fmt.Sprintf("%s: (thinking)", play.Player)
		}
		return fmt.Sprintf("%s: -", play.Player)
	}
	line := fmt.Sprintf("%s: %s", play.Player, play.Card)
	if play.Player == op.Leader {
		line += " *"
	}
	return line
}

func describeSuitGroup(group []model.Card) string {
	if len(group) == 0 {
		return "-"
	}
	numbers := make([]string, 0, len(group))
	for _, card := range group {
		numbers = append(numbers, string(card.Number))
	}
	return fmt.Sprintf("%s: %s", group[0].Suit, strings.Join(numbers, " "))
}

func intList(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
