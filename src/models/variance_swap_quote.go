package models

import "fmt"

// VarianceSwapQuote is one listed option row used in the variance-swap
// replication sum. ForwardPrice and ATMStrike repeat the strip-level values
// on every row, following the quote layout the replicator consumes.
type VarianceSwapQuote struct {
	Strike       float64
	StrikeWidth  float64
	MidPrice     float64
	ForwardPrice float64
	ATMStrike    float64
}

func (q VarianceSwapQuote) Validate() error {
	if q.Strike <= 0 {
		return fmt.Errorf("VarianceSwapQuote.Validate: strike must be positive, got %f", q.Strike)
	}

	if q.StrikeWidth <= 0 {
		return fmt.Errorf("VarianceSwapQuote.Validate: strike width must be positive, got %f", q.StrikeWidth)
	}

	if q.MidPrice < 0 {
		return fmt.Errorf("VarianceSwapQuote.Validate: mid price must be non-negative, got %f", q.MidPrice)
	}

	if q.ForwardPrice <= 0 {
		return fmt.Errorf("VarianceSwapQuote.Validate: forward price must be positive, got %f", q.ForwardPrice)
	}

	if q.ATMStrike <= 0 {
		return fmt.Errorf("VarianceSwapQuote.Validate: ATM strike must be positive, got %f", q.ATMStrike)
	}

	return nil
}
