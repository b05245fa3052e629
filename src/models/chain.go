package models

// ChainRow is one option-chain row handed to the batch evaluator. MarketPrice
// is the observed mid price; when zero, the implied-volatility solve is
// skipped and only price and Greeks are produced from Sigma.
type ChainRow struct {
	Contract    OptionContract
	MarketPrice float64
}

// ChainResult is the per-row output of a batch evaluation. Err carries the
// row's failure, if any; a failed row never aborts the rest of the batch.
type ChainResult struct {
	Contract   OptionContract
	Price      float64
	Greeks     Greeks
	ImpliedVol float64
	Err        error
}
