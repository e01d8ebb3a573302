package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"sasku-server/pkg/deck"
)

// Playable is a game that can be played
type Playable interface {
	// Action performs the message for the seat
	// If playerResponse is not nil, that's the response sent directly to the seat
	// If updateState is true, every seat should request its state again
	Action(seat int, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetPlayerState returns the current state of the game as the seat may see it
	GetPlayerState(seat int) (*Response, error)

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// Tickable is a game that moves along on its own, e.g., automated seats
type Tickable interface {
	// Delay is how long the wait between each tick should be
	Delay() time.Duration

	// Tick will be called periodically
	// Return true if the state changed
	Tick() (bool, error)
}

// LogMessage is the format a game should send log messages in
// If Seats is empty, it's a general statement, otherwise the message reads like "{seat} did X"
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Seats   []int       `json:"seats"`
	Cards   []deck.Card `json:"cards"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

// Response is a container for a message sent to a seat
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// ErrorResponse returns a response describing the error
func ErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

// PayloadIn is the format of an incoming action
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	Cards          []deck.Card    `json:"cards"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// GameOverDetails provides details on how the game ended
type GameOverDetails struct {
	WinningTeam int         `json:"winningTeam"`
	GameScores  [2]int      `json:"gameScores"`
	MatchWins   [2]int      `json:"matchWins"`
	Log         interface{} `json:"log"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
// JSON numbers decode as float64, so both are accepted
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// SimpleLogMessage returns a new LogMessage
// A negative seat makes it a general statement
func SimpleLogMessage(seat int, format string, a ...interface{}) *LogMessage {
	var seats []int
	if seat >= 0 {
		seats = []int{seat}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardLogMessage returns a log message about the seat and the cards it showed
func CardLogMessage(seat int, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	msg := SimpleLogMessage(seat, format, a...)
	msg.Cards = cards
	return msg
}
