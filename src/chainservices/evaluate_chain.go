// Package chainservices evaluates whole option chains in parallel. The math
// itself lives in pricing and volatility; this layer only fans rows out to
// workers, isolates per-row failures and tags each batch for log correlation.
package chainservices

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/voltools/quant/src/models"
	"github.com/voltools/quant/src/pricing"
	"github.com/voltools/quant/src/utils"
)

// DefaultMaxParallel bounds the number of rows evaluated concurrently when
// the caller passes maxParallel <= 0.
const DefaultMaxParallel = 8

// NewChainRow builds a ChainRow from quoted terms and an expiration
// timestamp, converting the expiry to an ACT/365 year fraction.
func NewChainRow(spot, strike, marketPrice, riskFreeRate, dividendYield, sigma float64, optionType models.OptionType, expiration, now time.Time) models.ChainRow {
	return models.ChainRow{
		Contract: models.OptionContract{
			Spot:          spot,
			Strike:        strike,
			TimeToExpiry:  utils.YearFraction(now, expiration),
			RiskFreeRate:  riskFreeRate,
			DividendYield: dividendYield,
			Sigma:         sigma,
			Type:          optionType,
		},
		MarketPrice: marketPrice,
	}
}

// EvaluateChain prices every row of a chain and computes its Greeks, plus an
// implied-volatility solve for rows that carry a market price. Rows are
// independent, so they run concurrently, one worker per row bounded by
// maxParallel. A row that fails records its error on the result and the rest
// of the batch continues; results come back in input order. Cancelling the
// context stops unstarted rows, marking them with the context error.
func EvaluateChain(ctx context.Context, rows []models.ChainRow, maxParallel int) []models.ChainResult {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	batchID := uuid.New()
	logger := log.WithFields(log.Fields{
		"batchID": batchID.String(),
		"rows":    len(rows),
	})
	logger.Debug("EvaluateChain: starting batch")

	results := make([]models.ChainResult, len(rows))
	sem := make(chan struct{}, maxParallel)

	var wg sync.WaitGroup
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			results[i] = models.ChainResult{Contract: row.Contract, Err: fmt.Errorf("EvaluateChain: batch cancelled: %w", err)}
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(i int, row models.ChainRow) {
			defer wg.Done()
			defer func() { <-sem }()

			result := evaluateRow(row)
			if result.Err != nil {
				logger.WithFields(log.Fields{
					"row":    i,
					"strike": row.Contract.Strike,
					"type":   row.Contract.Type,
				}).Errorf("EvaluateChain: row failed: %v", result.Err)
			}

			results[i] = result
		}(i, row)
	}
	wg.Wait()

	logger.Debug("EvaluateChain: batch complete")

	return results
}

func evaluateRow(row models.ChainRow) models.ChainResult {
	result := models.ChainResult{Contract: row.Contract}

	price, err := pricing.Price(row.Contract)
	if err != nil {
		result.Err = fmt.Errorf("evaluateRow: price: %w", err)
		return result
	}
	result.Price = price

	greeks, err := pricing.Greeks(row.Contract)
	if err != nil {
		result.Err = fmt.Errorf("evaluateRow: greeks: %w", err)
		return result
	}
	result.Greeks = greeks

	if row.MarketPrice > 0 {
		iv, err := pricing.ImpliedVolatility(row.MarketPrice, row.Contract)
		if err != nil {
			result.Err = fmt.Errorf("evaluateRow: implied volatility: %w", err)
			return result
		}
		result.ImpliedVol = iv
	}

	return result
}
