package transport

import (
	"river-client/internal/model"

	"github.com/pkg/errors"
)

// Intent is a discrete user action bound for the server. The set of
// variants is closed; every variant carries only its own fields and all of
// them serialize through buildEnvelope.
type Intent interface {
	// Name is the wire name of the action, also used for logging and
	// metrics labels.
	Name() string
}

type Join struct{}

type RemovePlayer struct {
	Player string
}

type SetCardsPerPlayer struct {
	Count int
}

type StartRound struct{}

type MakeWager struct {
	Hands int
}

type PlayCard struct {
	Card model.Card
}

type FinishHand struct{}

type FinishRound struct{}

func (Join) Name() string              { return "Join" }
func (RemovePlayer) Name() string      { return "RemovePlayer" }
func (SetCardsPerPlayer) Name() string { return "SetCardsPerPlayer" }
func (StartRound) Name() string        { return "StartRound" }
func (MakeWager) Name() string         { return "MakeWager" }
func (PlayCard) Name() string          { return "PlayCard" }
func (FinishHand) Name() string        { return "FinishHand" }
func (FinishRound) Name() string       { return "FinishRound" }

type empty struct{}

// envelope is the /action request body: Me plus exactly one action field.
// PlayCard carries the card value directly rather than a wrapper.
type envelope struct {
	Me                string
	GetModel          *empty             `json:",omitempty"`
	Join              *empty             `json:",omitempty"`
	RemovePlayer      *RemovePlayer      `json:",omitempty"`
	SetCardsPerPlayer *SetCardsPerPlayer `json:",omitempty"`
	StartRound        *empty             `json:",omitempty"`
	MakeWager         *MakeWager         `json:",omitempty"`
	PlayCard          *model.Card        `json:",omitempty"`
	FinishHand        *empty             `json:",omitempty"`
	FinishRound       *empty             `json:",omitempty"`
}

func pollEnvelope(me string) *envelope {
	return &envelope{Me: me, GetModel: &empty{}}
}

func buildEnvelope(me string, intent Intent) (*envelope, error) {
	env := &envelope{Me: me}
	switch it := intent.(type) {
	case Join:
		env.Join = &empty{}
	case RemovePlayer:
		env.RemovePlayer = &it
	case SetCardsPerPlayer:
		env.SetCardsPerPlayer = &it
	case StartRound:
		env.StartRound = &empty{}
	case MakeWager:
		env.MakeWager = &it
	case PlayCard:
		env.PlayCard = &it.Card
	case FinishHand:
		env.FinishHand = &empty{}
	case FinishRound:
		env.FinishRound = &empty{}
	default:
		return nil, errors.Errorf("unknown intent type %T", intent)
	}
	return env, nil
}
