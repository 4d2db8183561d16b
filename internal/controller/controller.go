// Package controller owns the client's single source of truth: the last
// good snapshot. Everything that produces a snapshot, poll responses and
// intent responses alike, funnels through Update; there is no optimistic
// path and no prediction.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"river-client/internal/diff"
	"river-client/internal/metrics"
	"river-client/internal/model"
	"river-client/internal/transport"
	"river-client/internal/view"
)

// Transport is the request/response channel to the server. Both calls are
// one-shot; no ordering holds between a poll and a concurrent intent.
type Transport interface {
	FetchSnapshot(me string) (*model.GameSnapshot, error)
	SendIntent(me string, intent transport.Intent) (*model.GameSnapshot, error)
}

type Controller struct {
	transport Transport
	renderer  view.Renderer
	interval  time.Duration

	resolver *view.Resolver
	roster   *view.RosterProjector
	wagers   *view.WagersProjector
	trick    *view.TrickProjector
	myCards  *view.MyCardsProjector

	mu       sync.Mutex
	me       string
	current  *model.GameSnapshot
	previous *model.GameSnapshot
}

func New(trans Transport, renderer view.Renderer, pollInterval time.Duration) *Controller {
	return &Controller{
		transport: trans,
		renderer:  renderer,
		interval:  pollInterval,
		resolver:  view.NewResolver(),
		roster:    view.NewRosterProjector(),
		wagers:    view.NewWagersProjector(),
		trick:     view.NewTrickProjector(),
		myCards:   view.NewMyCardsProjector(),
	}
}

// Me is the local player id, "" before joining. The server's echo is
// authoritative, so this follows whatever the last snapshot said.
func (c *Controller) Me() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.me
}

// Current returns the last applied snapshot, or nil before the first one.
func (c *Controller) Current() *model.GameSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Update is the only way new state enters the client. An unchanged
// snapshot does no work at all; a snapshot with an unrecognized phase is
// rejected without touching any projector. Whichever caller gets here
// last wins; a stale poll response can momentarily regress the UI, and
// the next poll tick corrects it.
func (c *Controller) Update(snapshot *model.GameSnapshot) error {
	if snapshot == nil {
		return errors.New("nil snapshot")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil && diff.Equal(snapshot, c.current) {
		log.Debugf("snapshot unchanged, phase %s", snapshot.State)
		return nil
	}

	resolution, err := c.resolver.Resolve(snapshot)
	if err != nil {
		metrics.UnknownPhases.Inc()
		log.Errorf("dropping snapshot: %+v", err)
		return err
	}

	fragments := view.BuildFragments(snapshot, resolution)
	var ops []view.RenderOp
	ops = append(ops, c.roster.Apply(fragments.Roster)...)
	ops = append(ops, c.wagers.Apply(fragments.Wagers)...)
	ops = append(ops, c.trick.Apply(fragments.Trick)...)
	ops = append(ops, c.myCards.Apply(fragments.MyCards)...)
	for _, op := range ops {
		metrics.RenderOpsTotal.WithLabelValues(string(op.Region())).Inc()
	}
	if len(ops) > 0 {
		c.renderer.Render(ops)
	}

	c.previous = c.current
	c.current = snapshot
	c.me = snapshot.Me
	log.Debugf("applied snapshot: phase %s, %d render ops", snapshot.State, len(ops))
	return nil
}

// Dispatch sends one intent and feeds the resulting snapshot through the
// same pipeline as a poll. A transport failure leaves state untouched and
// is not retried here; the next scheduled poll picks up the truth. A
// rejected intent looks the same as a failure on this wire.
func (c *Controller) Dispatch(intent transport.Intent) error {
	return c.dispatchAs(c.Me(), intent)
}

func (c *Controller) dispatchAs(me string, intent transport.Intent) error {
	metrics.IntentsTotal.WithLabelValues(intent.Name()).Inc()
	snapshot, err := c.transport.SendIntent(me, intent)
	if err != nil {
		metrics.IntentFailures.WithLabelValues(intent.Name()).Inc()
		log.Errorf("intent %s failed: %+v", intent.Name(), err)
		return err
	}
	return c.Update(snapshot)
}

// Join enters the game under name. Joining a name already in the roster
// degrades to a plain poll under that name, so a dropped session can be
// picked back up. A new name is adopted only from the server's echo: a
// rejected Join must not leave the poll loop running as a player the
// server never admitted.
func (c *Controller) Join(name string) error {
	c.mu.Lock()
	alreadyJoined := false
	if c.current != nil {
		for _, player := range c.current.Players() {
			if player == name {
				alreadyJoined = true
				break
			}
		}
	}
	if alreadyJoined {
		c.me = name
		c.mu.Unlock()
		log.Infof("rejoining as %s", name)
		c.pollOnce()
		return nil
	}
	c.mu.Unlock()
	return c.dispatchAs(name, transport.Join{})
}

// Run polls until the context is done. Strictly sequential: the next
// fetch is scheduled only after the previous one settles, so at most one
// poll is ever in flight. Transport failures are logged and absorbed.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.pollOnce()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.interval):
		}
	}
}

func (c *Controller) pollOnce() {
	metrics.PollsTotal.Inc()
	snapshot, err := c.transport.FetchSnapshot(c.Me())
	if err != nil {
		metrics.PollFailures.Inc()
		log.Errorf("poll failed, keeping last snapshot: %+v", err)
		return
	}
	if err := c.Update(snapshot); err != nil {
		// already logged; nothing to do until the server behaves
		return
	}
}
