package sasku

import "errors"

// ErrInvalidSeat is returned when a seat is not 0-3
var ErrInvalidSeat = errors.New("seat must be between 0 and 3")

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrWrongPhase is returned when an action is attempted in a phase that does not allow it
var ErrWrongPhase = errors.New("action is not allowed in the current phase")

// ErrInvalidDealOption is returned for an unknown deal option
var ErrInvalidDealOption = errors.New("unknown deal option")

// ErrInvalidPack is returned when the chosen pack does not exist
var ErrInvalidPack = errors.New("pack does not exist")

// ErrAlreadyPassed is returned when a player who passed tries to bid
var ErrAlreadyPassed = errors.New("player has already passed")

// ErrBidTooLow is returned when the bid is below the minimum bid
var ErrBidTooLow = errors.New("bid is below the minimum bid")

// ErrBidAboveValue is returned when the bid is higher than the bidding value of the player's hand
var ErrBidAboveValue = errors.New("bid exceeds the bidding value of the hand")

// ErrBidNotHigher is returned when a bid does not beat the current high bid
var ErrBidNotHigher = errors.New("bid must be higher than the current bid")

// ErrCannotReclaim is returned when a reclaim is attempted by a player without a lower bid
var ErrCannotReclaim = errors.New("player has no lower bid to reclaim from")

// ErrReclaimAmount is returned when a reclaim does not match the current high bid
var ErrReclaimAmount = errors.New("a reclaim must match the current bid")

// ErrNotTrumpMaker is returned when someone other than the trump maker chooses trump
var ErrNotTrumpMaker = errors.New("player is not the trump maker")

// ErrInvalidSuit is returned for a suit that is not one of the four suits
var ErrInvalidSuit = errors.New("invalid suit")

// ErrTrumpNotAllowed is returned when the trump maker does not hold enough cards of the suit for the bid
var ErrTrumpNotAllowed = errors.New("not enough cards of that suit to support the bid")

// ErrCardNotInHand happens when the player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrPlayOnSuit happens when a player has a card of the lead suit and plays something else
var ErrPlayOnSuit = errors.New("player has an on-suit card")

// ErrPlayTrumpClass happens when a player must play trump (a picture or the trump suit) and does not
var ErrPlayTrumpClass = errors.New("player has a trump card")

// ErrPlayToBeat happens when the player has a trump card that beats the trick and plays one that doesn't
var ErrPlayToBeat = errors.New("player has a trump card that beats the trick")

// ErrNoLegalCard is returned when the player has nothing they may play
var ErrNoLegalCard = errors.New("no legal card to play")

// ErrExchangeCard is returned when the card asked for in a picture exchange is not a plain card of the partner
var ErrExchangeCard = errors.New("partner does not hold that plain card")

// ErrRoundNotOver is an error when the next round is requested before the round is over
var ErrRoundNotOver = errors.New("the round is not over")

// ErrGameIsOver is an error when a round action is attempted on a finished match
var ErrGameIsOver = errors.New("game is over")

// ErrGameNotOver is an error when a new match is requested before the match is over
var ErrGameNotOver = errors.New("game is not over")

// ErrCorruptSnapshot is returned when a persisted state cannot be restored
var ErrCorruptSnapshot = errors.New("corrupt snapshot")
