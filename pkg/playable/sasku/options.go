package sasku

// MinBid is the lowest bid anyone can make
const MinBid = 5

// DefaultGameEndThreshold is the number of game points that wins a match
const DefaultGameEndThreshold = 16

// Options are options for creating a new match
type Options struct {
	// Dealer is the seat of the first dealer
	Dealer int `json:"dealer" yaml:"dealer"`
	// GameEndThreshold is how many game points end the match. Zero means DefaultGameEndThreshold
	GameEndThreshold int `json:"gameEndThreshold" yaml:"gameEndThreshold"`
	// PictureExchange enables the optional picture exchange after trump is chosen
	PictureExchange bool `json:"pictureExchange" yaml:"pictureExchange"`
	// PokkBonus is awarded to the next team that scores after a 60-60 pokk
	PokkBonus int `json:"pokkBonus" yaml:"pokkBonus"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Dealer:           0,
		GameEndThreshold: DefaultGameEndThreshold,
		PictureExchange:  false,
		PokkBonus:        0,
	}
}

func (o Options) withDefaults() Options {
	if o.GameEndThreshold <= 0 {
		o.GameEndThreshold = DefaultGameEndThreshold
	}

	if o.PokkBonus < 0 {
		o.PokkBonus = 0
	}

	return o
}
