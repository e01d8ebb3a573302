package room

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"sasku-server/pkg/deck"
	"sasku-server/pkg/playable"
	"sasku-server/pkg/playable/sasku"
)

// Action performs an action for a seat played by a person
// A rejected action returns an error response carrying the message context along with the error
func (s *Session) Action(seat int, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if message == nil {
		return nil, false, ErrNoMessage
	}

	res, update, err := s.action(seat, message)
	if err != nil {
		return playable.ErrorResponse(message.Context, err), false, err
	}

	return res, update, nil
}

func (s *Session) action(seat int, message *playable.PayloadIn) (*playable.Response, bool, error) {
	if seat < 0 || seat >= sasku.NumSeats {
		return nil, false, sasku.ErrInvalidSeat
	}

	if s.IsBot(seat) {
		return nil, false, ErrBotSeat
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"seat":   seat,
		"action": message.Action,
		"phase":  s.round.Phase(),
	})

	if message.Action == "undo" {
		if len(s.history) == 0 {
			return nil, false, ErrNothingToUndo
		}

		last := len(s.history) - 1
		s.round = s.history[last]
		s.history = s.history[:last]
		s.save()

		log.Debug("undo")
		s.addLogMessages(playable.SimpleLogMessage(seat, "{} took back the last move"))
		return playable.OK(), true, nil
	}

	prev := s.round
	next, msg, err := s.apply(prev, seat, message)
	if err != nil {
		log.WithError(err).Debug("rejected action")
		return nil, false, err
	}

	log.Debug("performed action")
	s.setRound(next, true)
	s.addLogMessages(append([]*playable.LogMessage{msg}, describe(prev, next)...)...)
	return playable.OK(), true, nil
}

// apply turns the payload into a state transition
func (s *Session) apply(r *sasku.Round, seat int, message *playable.PayloadIn) (*sasku.Round, *playable.LogMessage, error) {
	switch message.Action {
	case "chooseDeal":
		option, err := sasku.ParseDealOption(subject(message, "option"))
		if err != nil {
			return nil, nil, err
		}

		next, err := r.ChooseDeal(seat, option, s.opts.Gen)
		return next, playable.SimpleLogMessage(seat, "{} chose the %s deal", option), err
	case "choosePack":
		pack, ok := message.AdditionalData.GetInt("pack")
		if !ok {
			return nil, nil, errors.New("pack is not an integer")
		}

		next, err := r.ChoosePack(seat, pack)
		return next, playable.SimpleLogMessage(seat, "{} chose pack %d", pack+1), err
	case "bid":
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return nil, nil, errors.New("amount is not an integer")
		}

		reclaim, _ := message.AdditionalData.GetBool("reclaim")
		next, err := r.Bid(seat, amount, reclaim)
		return next, bidLogMessage(seat, amount, reclaim), err
	case "pass":
		next, err := r.Pass(seat)
		return next, playable.SimpleLogMessage(seat, "{} passed"), err
	case "chooseTrump":
		suit, err := deck.ParseSuit(subject(message, "suit"))
		if err != nil {
			return nil, nil, err
		}

		next, err := r.ChooseTrump(seat, suit)
		return next, playable.SimpleLogMessage(seat, "{} made %s trump", suit), err
	case "exchangePicture":
		c, err := singleCard(message)
		if err != nil {
			return nil, nil, err
		}

		next, err := r.ExchangePicture(seat, c)
		return next, playable.SimpleLogMessage(seat, "{} exchanged a picture with their partner"), err
	case "declineExchange":
		next, err := r.DeclineExchange(seat)
		return next, playable.SimpleLogMessage(seat, "{} kept their picture"), err
	case "playCard":
		c, err := singleCard(message)
		if err != nil {
			return nil, nil, err
		}

		next, err := r.PlayCard(seat, c)
		return next, playable.CardLogMessage(seat, []deck.Card{c}, "{} played %s", c.ID()), err
	case "nextRound":
		next, err := r.AdvanceRound()
		return next, playable.SimpleLogMessage(seat, "{} started the next round"), err
	case "nextMatch":
		next, err := r.AdvanceMatch()
		return next, playable.SimpleLogMessage(seat, "{} started a new match"), err
	}

	return nil, nil, fmt.Errorf("unknown action: %s", message.Action)
}

// subject returns the subject of the message, or the string stored under key if there is none
func subject(message *playable.PayloadIn, key string) string {
	if message.Subject != "" {
		return message.Subject
	}

	val, _ := message.AdditionalData.GetString(key)
	return val
}

func singleCard(message *playable.PayloadIn) (deck.Card, error) {
	if len(message.Cards) != 1 {
		return deck.Card{}, fmt.Errorf("expected to get 1 card, got %d", len(message.Cards))
	}

	return message.Cards[0], nil
}

func bidLogMessage(seat, amount int, reclaim bool) *playable.LogMessage {
	if reclaim {
		return playable.SimpleLogMessage(seat, "{} reclaimed the bid at %d", amount)
	}

	return playable.SimpleLogMessage(seat, "{} bid %d", amount)
}

// describe returns the messages for what the transition settled on its own
func describe(prev, next *sasku.Round) []*playable.LogMessage {
	var messages []*playable.LogMessage

	if prev.Phase() == sasku.PhaseBidding && next.Phase() == sasku.PhasePlaying && !next.HasTrumpMaker() {
		messages = append(messages, playable.SimpleLogMessage(-1, "Everyone passed, diamonds are played for the village"))
	}

	if next.Phase() == sasku.PhasePlaying && prev.Phase() == sasku.PhaseDealChoice && next.PimeRuutuBonus() {
		messages = append(messages, playable.SimpleLogMessage(next.TrumpMaker(), "{} plays blind diamonds"))
	}

	prevTricks := prev.TeamTricks(0) + prev.TeamTricks(1)
	if last, ok := next.LastTrick(); ok && next.TeamTricks(0)+next.TeamTricks(1) > prevTricks {
		messages = append(messages, playable.SimpleLogMessage(last.Winner, "{} took the trick worth %d", last.Trick.Points()))
	}

	if prev.Phase() == sasku.PhasePlaying && (next.Phase() == sasku.PhaseRoundEnd || next.Phase() == sasku.PhaseGameEnd) {
		if res, ok := next.LastResult(); ok {
			messages = append(messages, resultLogMessage(res))
		}
	}

	if next.Phase() == sasku.PhaseGameEnd && prev.Phase() != sasku.PhaseGameEnd {
		messages = append(messages, playable.SimpleLogMessage(-1, "Team %d wins the game", next.WinningTeam()+1))
	}

	return messages
}

func resultLogMessage(res sasku.Result) *playable.LogMessage {
	switch res.Outcome {
	case sasku.OutcomeUniversalTie:
		return playable.SimpleLogMessage(-1, "The village round is tied, nobody scores")
	case sasku.OutcomePokk:
		return playable.SimpleLogMessage(-1, "Pokk! 60 to 60, the round is replayed")
	}

	return playable.SimpleLogMessage(-1, "Team %d scores %d (%s)", res.Team+1, res.Points, res.Outcome)
}
