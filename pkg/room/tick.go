package room

import (
	"github.com/sirupsen/logrus"

	"sasku-server/pkg/deck"
	"sasku-server/pkg/playable"
	"sasku-server/pkg/playable/sasku"
	"sasku-server/pkg/playable/sasku/bot"
)

// Tick makes one move for the bot whose turn it is
// With AutoAdvance, a finished round is followed by the next one
func (s *Session) Tick() (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	r := s.round
	switch r.Phase() {
	case sasku.PhaseGameEnd:
		return false, nil
	case sasku.PhaseRoundEnd:
		if !s.opts.AutoAdvance {
			return false, nil
		}

		next, err := r.AdvanceRound()
		if err != nil {
			return false, err
		}

		s.setRound(next, false)
		s.addLogMessages(playable.SimpleLogMessage(-1, "The next round begins"))
		return true, nil
	}

	seat := r.CurrentPlayer()
	if !s.IsBot(seat) {
		return false, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"seat":  seat,
		"phase": r.Phase(),
	})

	next, msg, err := s.botMove(log, r, seat, s.opts.Bots[seat])
	if err != nil {
		return false, err
	}

	s.setRound(next, false)
	s.addLogMessages(append([]*playable.LogMessage{msg}, describe(r, next)...)...)
	return true, nil
}

// botMove asks the brain for a move
// A bot that cannot produce a card plays the first legal one instead
func (s *Session) botMove(log logrus.FieldLogger, r *sasku.Round, seat int, brain bot.Brain) (*sasku.Round, *playable.LogMessage, error) {
	move, err := brain.Decide(r, seat)
	if err == nil {
		var next *sasku.Round
		var msg *playable.LogMessage
		next, msg, err = s.apply(r, seat, movePayload(move))
		if err == nil {
			log.WithField("move", move.Kind).Debug("bot moved")
			return next, msg, nil
		}
	}

	if r.Phase() != sasku.PhasePlaying {
		log.WithError(err).Error("bot could not move")
		return nil, nil, err
	}

	log.WithError(err).Error("bot could not pick a card, playing the first legal card")
	next, c, err := r.PlayFallback(seat)
	if err != nil {
		return nil, nil, err
	}

	return next, playable.CardLogMessage(seat, []deck.Card{c}, "{} played %s", c.ID()), nil
}

// movePayload expresses the move as the payload a person would send
func movePayload(m bot.Move) *playable.PayloadIn {
	msg := &playable.PayloadIn{Action: m.Kind.String()}
	switch m.Kind {
	case bot.MoveDeal:
		msg.Subject = m.Deal.String()
	case bot.MovePack:
		msg.AdditionalData = playable.AdditionalData{"pack": m.Pack}
	case bot.MoveBid:
		msg.AdditionalData = playable.AdditionalData{"amount": m.Amount, "reclaim": m.Reclaim}
	case bot.MoveTrump:
		msg.Subject = m.Trump.String()
	case bot.MoveExchange, bot.MovePlay:
		msg.Cards = []deck.Card{m.Card}
	}

	return msg
}
