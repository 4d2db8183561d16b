package controller

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"river-client/internal/model"
	"river-client/internal/transport"
	"river-client/internal/view"
)

type fakeTransport struct {
	fetchResult  *model.GameSnapshot
	fetchErr     error
	fetchedAs    []string
	intentResult *model.GameSnapshot
	intentErr    error
	sentIntents  []transport.Intent
	sentAs       []string
}

func (f *fakeTransport) FetchSnapshot(me string) (*model.GameSnapshot, error) {
	f.fetchedAs = append(f.fetchedAs, me)
	return f.fetchResult, f.fetchErr
}

func (f *fakeTransport) SendIntent(me string, intent transport.Intent) (*model.GameSnapshot, error) {
	f.sentAs = append(f.sentAs, me)
	f.sentIntents = append(f.sentIntents, intent)
	return f.intentResult, f.intentErr
}

type recordingRenderer struct {
	batches [][]view.RenderOp
}

func (r *recordingRenderer) Render(ops []view.RenderOp) {
	r.batches = append(r.batches, ops)
}

func (r *recordingRenderer) opCount() int {
	count := 0
	for _, batch := range r.batches {
		count += len(batch)
	}
	return count
}

func lobbySnapshot(players ...string) *model.GameSnapshot {
	return &model.GameSnapshot{
		Me:    "alice",
		State: model.PhaseWaitingForPlayers,
		Game:  &model.GameInfo{Players: players, CardsPerPlayer: 2},
	}
}

func newTestController(trans Transport) (*Controller, *recordingRenderer) {
	renderer := &recordingRenderer{}
	return New(trans, renderer, 10*time.Millisecond), renderer
}

func TestUpdate_FirstSnapshotRenders(t *testing.T) {
	assert := assert.New(t)
	ctrl, renderer := newTestController(&fakeTransport{})

	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))

	assert.Positive(renderer.opCount())
	assert.Equal("alice", ctrl.Me())
	require.NotNil(t, ctrl.Current())
	assert.Equal(model.PhaseWaitingForPlayers, ctrl.Current().State)
}

func TestUpdate_IdenticalSnapshotIsSilent(t *testing.T) {
	assert := assert.New(t)
	ctrl, renderer := newTestController(&fakeTransport{})

	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))
	rendered := renderer.opCount()

	// a structurally equal snapshot from the next poll: zero render work
	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))
	assert.Equal(rendered, renderer.opCount())
}

func TestUpdate_ChangedSnapshotRenders(t *testing.T) {
	assert := assert.New(t)
	ctrl, renderer := newTestController(&fakeTransport{})

	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))
	rendered := renderer.opCount()

	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob", "carol")))
	assert.Greater(renderer.opCount(), rendered)
}

func TestUpdate_NilSnapshot(t *testing.T) {
	assert := assert.New(t)
	ctrl, _ := newTestController(&fakeTransport{})

	assert.Error(ctrl.Update(nil))
}

func TestUpdate_UnknownPhaseRejected(t *testing.T) {
	assert := assert.New(t)
	ctrl, renderer := newTestController(&fakeTransport{})

	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))
	rendered := renderer.opCount()
	before := ctrl.Current()

	bad := lobbySnapshot("alice", "bob", "carol")
	bad.State = model.Phase("Foo")
	err := ctrl.Update(bad)

	// surfaced loudly, and no partial projector update happened
	require.Error(t, err)
	var phaseErr *view.UnknownPhaseError
	assert.ErrorAs(err, &phaseErr)
	assert.Equal(rendered, renderer.opCount())
	assert.Same(before, ctrl.Current())

	// the pipeline still works for the next good snapshot
	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob", "carol")))
	assert.Greater(renderer.opCount(), rendered)
}

func TestDispatch_FeedsResultThroughPipeline(t *testing.T) {
	assert := assert.New(t)
	trans := &fakeTransport{intentResult: lobbySnapshot("alice", "bob")}
	ctrl, renderer := newTestController(trans)

	require.NoError(t, ctrl.Update(lobbySnapshot("alice")))
	require.NoError(t, ctrl.Dispatch(transport.SetCardsPerPlayer{Count: 2}))

	require.Len(t, trans.sentIntents, 1)
	assert.Equal("SetCardsPerPlayer", trans.sentIntents[0].Name())
	assert.Equal([]string{"alice"}, trans.sentAs)
	assert.Positive(renderer.opCount())
	assert.Equal([]string{"alice", "bob"}, ctrl.Current().Players())
}

func TestDispatch_FailureLeavesStateUntouched(t *testing.T) {
	assert := assert.New(t)
	trans := &fakeTransport{intentErr: errors.New("boom")}
	ctrl, renderer := newTestController(trans)

	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))
	before := ctrl.Current()
	rendered := renderer.opCount()

	err := ctrl.Dispatch(transport.StartRound{})
	require.Error(t, err)
	assert.Same(before, ctrl.Current())
	assert.Equal(rendered, renderer.opCount())
	// no retry: exactly one send happened
	assert.Len(trans.sentIntents, 1)
}

func TestPoll_FailureKeepsLastSnapshot(t *testing.T) {
	assert := assert.New(t)
	trans := &fakeTransport{fetchErr: errors.New("connection refused")}
	ctrl, renderer := newTestController(trans)

	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))
	before := ctrl.Current()
	rendered := renderer.opCount()

	ctrl.pollOnce()

	assert.Same(before, ctrl.Current())
	assert.Equal(rendered, renderer.opCount())
}

func TestPoll_AppliesSnapshot(t *testing.T) {
	assert := assert.New(t)
	trans := &fakeTransport{fetchResult: lobbySnapshot("alice", "bob")}
	ctrl, renderer := newTestController(trans)

	ctrl.pollOnce()

	assert.Equal([]string{""}, trans.fetchedAs)
	assert.Positive(renderer.opCount())
	assert.Equal("alice", ctrl.Me())

	// the next poll runs under the server-echoed identity
	ctrl.pollOnce()
	assert.Equal([]string{"", "alice"}, trans.fetchedAs)
}

func TestJoin_NewPlayerSendsJoin(t *testing.T) {
	assert := assert.New(t)
	joined := lobbySnapshot("alice", "bob", "carol")
	joined.Me = "carol"
	trans := &fakeTransport{intentResult: joined}
	ctrl, _ := newTestController(trans)

	require.NoError(t, ctrl.Update(&model.GameSnapshot{
		State: model.PhaseNotJoined,
		Game:  &model.GameInfo{Players: []string{"alice", "bob"}, CardsPerPlayer: 2},
	}))
	require.NoError(t, ctrl.Join("carol"))

	require.Len(t, trans.sentIntents, 1)
	assert.Equal("Join", trans.sentIntents[0].Name())
	assert.Equal([]string{"carol"}, trans.sentAs)
	assert.Equal("carol", ctrl.Me())
}

func TestJoin_FailureKeepsUnjoinedIdentity(t *testing.T) {
	assert := assert.New(t)
	trans := &fakeTransport{
		intentErr:   errors.New("game already started"),
		fetchResult: lobbySnapshot("alice", "bob"),
	}
	ctrl, _ := newTestController(trans)

	notJoined := &model.GameSnapshot{
		State: model.PhaseNotJoined,
		Game:  &model.GameInfo{Players: []string{"alice", "bob"}, CardsPerPlayer: 2},
	}
	require.NoError(t, ctrl.Update(notJoined))
	require.Error(t, ctrl.Join("carol"))

	// the failed name was never adopted, so polling continues unjoined
	assert.Equal("", ctrl.Me())
	assert.Equal([]string{"carol"}, trans.sentAs)
	ctrl.pollOnce()
	assert.Equal([]string{""}, trans.fetchedAs)
}

func TestJoin_ExistingPlayerPollsInstead(t *testing.T) {
	assert := assert.New(t)
	rejoined := lobbySnapshot("alice", "bob")
	rejoined.Me = "bob"
	trans := &fakeTransport{fetchResult: rejoined}
	ctrl, _ := newTestController(trans)

	require.NoError(t, ctrl.Update(&model.GameSnapshot{
		State: model.PhaseNotJoined,
		Game:  &model.GameInfo{Players: []string{"alice", "bob"}, CardsPerPlayer: 2},
	}))
	require.NoError(t, ctrl.Join("bob"))

	// no Join intent: a poll under the existing name picks the session up
	assert.Empty(trans.sentIntents)
	assert.Equal([]string{"bob"}, trans.fetchedAs)
	assert.Equal("bob", ctrl.Me())
}

func TestWagerFlow_EndToEnd(t *testing.T) {
	assert := assert.New(t)
	ctrl, renderer := newTestController(&fakeTransport{})

	two := 2
	wagerTurn := &model.GameSnapshot{
		Me:    "alice",
		State: model.PhaseWagerTurn,
		Game:  &model.GameInfo{Players: []string{"alice", "bob"}, CardsPerPlayer: 3},
		Status: &model.Status{
			PlayerStatuses: []model.PlayerStatus{
				{Player: "alice", IsNextWagerer: true},
				{Player: "bob", Wager: &two},
			},
			TrumpSuit:       model.Hearts,
			NextWagerPlayer: "alice",
			WagerSum:        2,
		},
		MyCards: []model.Card{
			{Suit: model.Clubs, Number: model.Four},
			{Suit: model.Hearts, Number: model.Jack},
			{Suit: model.Hearts, Number: model.King},
		},
	}
	require.NoError(t, ctrl.Update(lobbySnapshot("alice", "bob")))
	require.NoError(t, ctrl.Update(wagerTurn))

	var sawSelector bool
	for _, batch := range renderer.batches {
		for _, op := range batch {
			if selector, ok := op.(view.ShowWagerSelector); ok {
				sawSelector = true
				assert.Equal([]int{0, 1, 2, 3}, selector.Options)
			}
		}
	}
	assert.True(sawSelector, "the wager selector should have been offered")
}
