package room

import "errors"

// ErrNothingToUndo is returned when there's no earlier state to go back to
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrBotSeat is returned when someone tries to act for an automated seat
var ErrBotSeat = errors.New("seat is played by a bot")

// ErrNoMessage is returned when an action is sent without a payload
var ErrNoMessage = errors.New("no action given")
