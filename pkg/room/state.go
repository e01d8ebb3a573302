package room

import (
	"sasku-server/pkg/deck"
	"sasku-server/pkg/playable"
	"sasku-server/pkg/playable/sasku"
)

// PackPreview is what the chooser sees of a draft pack
type PackPreview struct {
	Top    deck.Card `json:"top"`
	Bottom deck.Card `json:"bottom"`
}

// PlayerState is the state of the table as one seat sees it
type PlayerState struct {
	Seat          int                   `json:"seat"`
	Phase         string                `json:"phase"`
	Dealer        int                   `json:"dealer"`
	CurrentPlayer int                   `json:"currentPlayer"`
	Bots          [sasku.NumSeats]bool  `json:"bots"`
	DealOption    string                `json:"dealOption"`
	Hand          deck.Hand             `json:"hand"`
	HandSizes     [sasku.NumSeats]int   `json:"handSizes"`
	Packs         []PackPreview         `json:"packs,omitempty"`
	Bids          [sasku.NumSeats]int   `json:"bids"`
	HasPassed     [sasku.NumSeats]bool  `json:"hasPassed"`
	HighBid       int                   `json:"highBid"`
	HighBidder    int                   `json:"highBidder"`
	TrumpSuit     deck.Suit             `json:"trumpSuit"`
	TrumpMaker    int                   `json:"trumpMaker"`
	BlindTrump    bool                  `json:"blindTrump"`
	CurrentTrick  sasku.Trick           `json:"currentTrick"`
	LeadPlayer    int                   `json:"leadPlayer"`
	TeamTricks    [2]int                `json:"teamTricks"`
	LastTrick     *sasku.CompletedTrick `json:"lastTrick"`
	RoundScores   [2]int                `json:"roundScores"`
	GameScores    [2]int                `json:"gameScores"`
	MatchWins     [2]int                `json:"matchWins"`
	LastResult    *sasku.Result         `json:"lastResult"`
	PokkPending   bool                  `json:"pokkPending"`

	// only populated on the seat's turn
	BiddingValue int         `json:"biddingValue"`
	LegalTrumps  []deck.Suit `json:"legalTrumps,omitempty"`
	LegalCards   deck.Hand   `json:"legalCards,omitempty"`

	Log []*playable.LogMessage `json:"log"`
}

// GetPlayerState returns the state with every other seat's cards hidden
func (s *Session) GetPlayerState(seat int) (*playable.Response, error) {
	if seat < 0 || seat >= sasku.NumSeats {
		return nil, sasku.ErrInvalidSeat
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	r := s.round
	high, bidder := r.HighBid()
	state := &PlayerState{
		Seat:          seat,
		Phase:         r.Phase().String(),
		Dealer:        r.Dealer(),
		CurrentPlayer: r.CurrentPlayer(),
		DealOption:    r.DealOption().String(),
		Hand:          deck.SortForDisplay(r.Hand(seat), r.TrumpSuit()),
		Bids:          r.Bids(),
		HasPassed:     r.HasPassed(),
		HighBid:       high,
		HighBidder:    bidder,
		TrumpSuit:     r.TrumpSuit(),
		TrumpMaker:    r.TrumpMaker(),
		BlindTrump:    r.PimeRuutuBonus(),
		CurrentTrick:  r.CurrentTrick(),
		LeadPlayer:    r.LeadPlayer(),
		TeamTricks:    [2]int{r.TeamTricks(0), r.TeamTricks(1)},
		RoundScores:   r.RoundScores(),
		GameScores:    r.GameScores(),
		MatchWins:     r.MatchWins(),
		PokkPending:   r.PokkPending(),
		Log:           s.recentLogMessages(),
	}

	for i := 0; i < sasku.NumSeats; i++ {
		state.Bots[i] = s.IsBot(i)
		state.HandSizes[i] = len(r.Hand(i))
	}

	for i := 0; i < r.PackCount(); i++ {
		if top, bottom, ok := r.PackPreview(i); ok {
			state.Packs = append(state.Packs, PackPreview{Top: top, Bottom: bottom})
		}
	}

	if last, ok := r.LastTrick(); ok {
		state.LastTrick = &last
	}

	if res, ok := r.LastResult(); ok {
		state.LastResult = &res
	}

	if r.CurrentPlayer() == seat {
		switch {
		case r.Phase() == sasku.PhaseBidding && r.AwaitingTrump():
			state.LegalTrumps = r.LegalTrumps(seat)
		case r.Phase() == sasku.PhaseBidding:
			state.BiddingValue = r.BiddingValue(seat)
		case r.Phase() == sasku.PhasePlaying:
			state.LegalCards = r.LegalCards(seat)
		}
	}

	return &playable.Response{
		Key:   "game",
		Value: s.Name(),
		Data:  state,
	}, nil
}

// GetEndOfGameDetails returns the final scores once a team has won the game
func (s *Session) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	r := s.round
	if r.Phase() != sasku.PhaseGameEnd {
		return nil, false
	}

	details := &playable.GameOverDetails{
		WinningTeam: r.WinningTeam(),
		GameScores:  r.GameScores(),
		MatchWins:   r.MatchWins(),
	}

	if res, ok := r.LastResult(); ok {
		details.Log = res
	}

	return details, true
}
