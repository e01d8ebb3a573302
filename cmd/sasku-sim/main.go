package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"sasku-server/internal/config"
	"sasku-server/internal/rng"
	"sasku-server/pkg/playable"
	"sasku-server/pkg/playable/sasku"
	"sasku-server/pkg/playable/sasku/bot"
	"sasku-server/pkg/room"
	"sasku-server/pkg/store"
)

// maxTicks bounds a single match
const maxTicks = 100000

var (
	matches = flag.Int("matches", 10, "the number of matches to play")
	seed    = flag.Int64("seed", 0, "seeds the shuffle; 0 uses crypto/rand")
	bots    = flag.String("bots", "", "comma separated bot level per seat; defaults to the configured level")
	persist = flag.Bool("persist", false, "save every state to the configured store")
	watch   = flag.Bool("watch", false, "pace the bots with the configured delay and print the table log")
)

func main() {
	flag.Parse()
	cfg := config.Instance()
	setupLogger(cfg)

	brains, err := parseBots(*bots, cfg.Bots.Level)
	if err != nil {
		logrus.WithError(err).Fatal("could not create bots")
	}

	var gen rng.Generator = rng.Crypto{}
	if *seed != 0 {
		gen = rng.NewSeeded(*seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var st store.Store
	if *persist {
		st, err = store.New(ctx, cfg.Store)
		if err != nil {
			logrus.WithError(err).Fatal("could not open store")
		}
	}

	opts := sasku.Options{
		GameEndThreshold: cfg.Game.GameEndThreshold,
		PictureExchange:  cfg.Game.PictureExchange,
		PokkBonus:        cfg.Game.PokkBonus,
	}

	var delay time.Duration
	if *watch {
		delay = cfg.Bots.Delay()
	}

	var wins [2]int
	for i := 0; i < *matches; i++ {
		opts.Dealer = i % sasku.NumSeats
		details, err := playMatch(ctx, room.Options{
			Match:       opts,
			Bots:        brains,
			Delay:       delay,
			AutoAdvance: true,
			Gen:         gen,
			Store:       st,
		})

		if err != nil {
			logrus.WithError(err).WithField("match", i).Fatal("match failed")
		}

		wins[details.WinningTeam]++
		logrus.WithFields(logrus.Fields{
			"match":      i,
			"winner":     details.WinningTeam,
			"gameScores": details.GameScores,
		}).Info("match over")
	}

	logrus.WithField("wins", wins).Info("simulation finished")
}

// playMatch plays a match between bots
// With a delay the session paces itself, otherwise it is ticked as fast as possible
func playMatch(ctx context.Context, opts room.Options) (*playable.GameOverDetails, error) {
	s, err := room.NewSession(opts)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	level := logrus.DebugLevel
	if opts.Delay > 0 {
		level = logrus.InfoLevel
	}

	go drainLog(s, done, level)

	log := logrus.WithField("session", s.ID())
	if s.Delay() > 0 {
		err = runPaced(ctx, s)
	} else {
		err = runFast(s)
	}

	if err != nil {
		return nil, err
	}

	details, _ := s.GetEndOfGameDetails()
	if err := s.Discard(ctx); err != nil {
		log.WithError(err).Warn("could not discard saved state")
	}

	return details, nil
}

func runFast(s *room.Session) error {
	for ticks := 0; ticks < maxTicks; ticks++ {
		if _, over := s.GetEndOfGameDetails(); over {
			return nil
		}

		if _, err := s.Tick(); err != nil {
			return err
		}
	}

	return fmt.Errorf("match did not end, stuck in %s", s.Round().Phase())
}

func runPaced(ctx context.Context, s *room.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	finished := make(chan struct{})
	go s.Run(ctx, func() {
		if _, over := s.GetEndOfGameDetails(); over {
			close(finished)
		}
	})

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func drainLog(s *room.Session, done <-chan struct{}, level logrus.Level) {
	for {
		select {
		case msgs := <-s.LogChan():
			for _, msg := range msgs {
				logrus.WithField("seats", msg.Seats).Log(level, msg.Message)
			}
		case <-done:
			return
		}
	}
}

func parseBots(levels, fallback string) ([sasku.NumSeats]bot.Brain, error) {
	var brains [sasku.NumSeats]bot.Brain

	names := strings.Split(levels, ",")
	for seat := range brains {
		level := fallback
		if seat < len(names) && strings.TrimSpace(names[seat]) != "" {
			level = strings.TrimSpace(names[seat])
		}

		brain, err := bot.NewBrain(bot.Level(level), nil)
		if err != nil {
			return brains, err
		}

		brains[seat] = brain
	}

	return brains, nil
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: !term.IsTerminal(int(os.Stdout.Fd())),
		FullTimestamp: true,
	})
}
