package room

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sasku-server/internal/rng"
	"sasku-server/pkg/playable"
	"sasku-server/pkg/playable/sasku"
	"sasku-server/pkg/playable/sasku/bot"
	"sasku-server/pkg/store"
)

const (
	defaultHistoryLimit = 32
	logChanSize         = 256
	saveTimeout         = 5 * time.Second
)

// Options configures a session
type Options struct {
	// ID identifies the session in the store; NewSession generates one if empty
	ID    string
	Match sasku.Options
	// Bots holds the brain of each automated seat; nil seats are played by people
	Bots [sasku.NumSeats]bot.Brain
	// Delay is the pause between bot actions
	Delay time.Duration
	// AutoAdvance starts the next round by itself once a round is over
	AutoAdvance  bool
	HistoryLimit int
	Gen          rng.Generator
	Store        store.Store
	Logger       logrus.FieldLogger
}

// Session owns the state of one table
// Every method may be called from any goroutine
type Session struct {
	id   string
	opts Options
	lock sync.Mutex

	round *sasku.Round
	// history holds the state before each human action, oldest first
	history []*sasku.Round

	logger      logrus.FieldLogger
	logChan     chan []*playable.LogMessage
	logMessages []*playable.LogMessage
}

var _ playable.Playable = (*Session)(nil)
var _ playable.Tickable = (*Session)(nil)

// NewSession starts a new match
func NewSession(opts Options) (*Session, error) {
	round, err := sasku.NewMatch(opts.Match)
	if err != nil {
		return nil, err
	}

	s := newSession(opts, round)
	s.logger.Info("new match")
	s.save()
	return s, nil
}

// Resume restores the session saved under opts.ID
// A session that was never saved or whose state is corrupt starts a new match instead
func Resume(ctx context.Context, opts Options) (*Session, error) {
	if opts.ID == "" || opts.Store == nil {
		return NewSession(opts)
	}

	logger := loggerFor(opts)
	data, err := opts.Store.Load(ctx, opts.ID)
	if errors.Is(err, store.ErrNotFound) {
		logger.Debug("no saved state")
		return NewSession(opts)
	}

	if err != nil {
		return nil, err
	}

	round, err := restore(data)
	if err != nil {
		logger.WithError(err).Warn("discarding saved state")
		return NewSession(opts)
	}

	s := newSession(opts, round)
	s.logger.WithField("phase", round.Phase()).Info("resumed session")
	return s, nil
}

func restore(data []byte) (*sasku.Round, error) {
	snap, err := sasku.DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	return sasku.Restore(snap)
}

func loggerFor(opts Options) logrus.FieldLogger {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return logger.WithField("session", opts.ID)
}

func newSession(opts Options, round *sasku.Round) *Session {
	if opts.ID == "" {
		opts.ID = uuid.New().String()
	}

	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = defaultHistoryLimit
	}

	if opts.Gen == nil {
		opts.Gen = rng.Crypto{}
	}

	return &Session{
		id:      opts.ID,
		opts:    opts,
		round:   round,
		logger:  loggerFor(opts),
		logChan: make(chan []*playable.LogMessage, logChanSize),
	}
}

// ID returns the session ID
func (s *Session) ID() string {
	return s.id
}

// Round returns the current state
// Rounds are never mutated, so the value stays valid after later actions
func (s *Session) Round() *sasku.Round {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.round
}

// IsBot returns true if the seat is automated
func (s *Session) IsBot(seat int) bool {
	return seat >= 0 && seat < sasku.NumSeats && s.opts.Bots[seat] != nil
}

// Name returns "sasku"
func (s *Session) Name() string {
	return "sasku"
}

// LogChan returns a channel for receiving log messages
func (s *Session) LogChan() <-chan []*playable.LogMessage {
	return s.logChan
}

// Delay is the pause between bot actions
func (s *Session) Delay() time.Duration {
	return s.opts.Delay
}

// Discard removes the saved state of the session
func (s *Session) Discard(ctx context.Context) error {
	if s.opts.Store == nil {
		return nil
	}

	return s.opts.Store.Delete(ctx, s.id)
}

// Run calls Tick every Delay until ctx is done
// updated is called whenever a tick changed the state
func (s *Session) Run(ctx context.Context, updated func()) {
	delay := s.Delay()
	if delay <= 0 {
		delay = time.Millisecond
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	s.logger.Debug("starting session run loop")
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("terminating session run loop")
			return
		case <-ticker.C:
			changed, err := s.Tick()
			if err != nil {
				s.logger.WithError(err).Error("could not tick")
				continue
			}

			if changed && updated != nil {
				updated()
			}
		}
	}
}

// setRound replaces the state and persists it
// NOTE: the lock must be held
func (s *Session) setRound(round *sasku.Round, human bool) {
	if human {
		s.history = append(s.history, s.round)
		if over := len(s.history) - s.opts.HistoryLimit; over > 0 {
			s.history = s.history[over:]
		}
	}

	s.round = round
	s.save()
}

// save writes the state to the store; failures are logged and play continues
// NOTE: the lock must be held
func (s *Session) save() {
	if s.opts.Store == nil {
		return
	}

	data, err := json.Marshal(s.round)
	if err != nil {
		s.logger.WithError(err).Error("could not encode state")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.opts.Store.Save(ctx, s.id, data); err != nil {
		s.logger.WithError(err).Error("could not save state")
	}
}
