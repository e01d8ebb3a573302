package playable

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sasku-server/pkg/deck"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(-1, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.Seats)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.Len(t, lm.UUID, 36)
}

func TestSimpleLogMessage_withSeat(t *testing.T) {
	lm := SimpleLogMessage(0, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int{0}, lm.Seats)
}

func TestCardLogMessage(t *testing.T) {
	c := deck.Card{Suit: deck.Hearts, Rank: deck.Ace}
	lm := CardLogMessage(2, []deck.Card{c}, "{} played %s", c.ID())
	assert.Equal(t, "{} played Ah", lm.Message)
	assert.Equal(t, []deck.Card{c}, lm.Cards)

	data, err := json.Marshal(lm)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"cards":["Ah"]`)
}

func TestPayloadIn_Unmarshal(t *testing.T) {
	a := assert.New(t)

	var msg PayloadIn
	err := json.Unmarshal([]byte(`{"action":"bid","cards":["10c"],"additionalData":{"amount":7,"reclaim":true,"suit":"hearts"},"context":"abc"}`), &msg)
	a.NoError(err)
	a.Equal("bid", msg.Action)
	a.Equal([]deck.Card{{Suit: deck.Clubs, Rank: deck.Ten}}, msg.Cards)

	amount, ok := msg.AdditionalData.GetInt("amount")
	a.True(ok)
	a.Equal(7, amount)

	reclaim, ok := msg.AdditionalData.GetBool("reclaim")
	a.True(ok)
	a.True(reclaim)

	suit, ok := msg.AdditionalData.GetString("suit")
	a.True(ok)
	a.Equal("hearts", suit)

	_, ok = msg.AdditionalData.GetInt("suit")
	a.False(ok)
	_, ok = msg.AdditionalData.GetBool("amount")
	a.False(ok)
	_, ok = AdditionalData{"amount": 3}.GetInt("amount")
	a.True(ok)
}

func TestResponses(t *testing.T) {
	assert.Equal(t, &Response{Key: "status", Value: "OK", Context: "ctx"}, OK("ctx"))
	assert.Equal(t, &Response{Key: "status", Value: "OK"}, OK())
	assert.Equal(t, &Response{Key: "error", Value: "boom", Context: "ctx"}, ErrorResponse("ctx", errors.New("boom")))
}
