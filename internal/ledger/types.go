package ledger

import (
	"github.com/google/uuid"
)

// EntryTrade is one put-spread entry fill as the batch trader logged it.
// Records are immutable once loaded; every derived table is computed fresh.
type EntryTrade struct {
	// ID is assigned at load time and is the preferred join handle; the
	// feed itself carries no row identifier.
	ID uuid.UUID `csv:"-"`

	Date             Time   `csv:"Date"`
	Expiration       Time   `csv:"Option expiration date"`
	StrikeShortPut   Number `csv:"Strike short put"`
	StrikeLongPut    Number `csv:"Strike long put"`
	Status           Status `csv:"Status"`
	QtyBuy           Count  `csv:"Qty Buy"`
	QtySell          Count  `csv:"Qty Sell"`
	TotalCosts       Money  `csv:"Total Costs"`
	TotalCommissions Money  `csv:"Total Commissions"`
	CurrentExpiry    Money  `csv:"Current Expiry Value"`
	AvgExpiry        Money  `csv:"AVG Expiry Value"`
}

// ExitTrade is the record written when a spread is closed early. It shares
// the entry's key fields; the association back to the entry is by synthetic
// ID once linked, with the natural key as fallback.
type ExitTrade struct {
	ID uuid.UUID `csv:"-"`
	// EntryID is stamped by LinkExits when a matching entry is found.
	EntryID uuid.UUID `csv:"-"`

	Date           Time   `csv:"Date"`
	Expiration     Time   `csv:"Option expiration date"`
	StrikeShortPut Number `csv:"Strike short put"`
	StrikeLongPut  Number `csv:"Strike long put"`
	Status         Status `csv:"Status"`
	QtyBuy         Count  `csv:"Qty Buy"`
	QtySell        Count  `csv:"Qty Sell"`
	TotalCosts     Money  `csv:"Total Costs"`
	SellLegValue   Money  `csv:"Current Value of sell leg"`
	CurrentExpiry  Money  `csv:"Current Expiry Value"`
	// ExpectedReturn has shipped under two header spellings ("Expected
	// return" with and without a trailing space); headers are trimmed at
	// decode so both land here.
	ExpectedReturn Money `csv:"Expected return"`
}

// LegTrade is an exercised long- or short-leg settlement. Long legs carry
// Return, short legs carry Payoff; the absent column decodes to zero.
type LegTrade struct {
	ID uuid.UUID `csv:"-"`

	Date           Time   `csv:"Date"`
	Expiration     Time   `csv:"Option expiration date"`
	StrikeShortPut Number `csv:"Strike short put"`
	StrikeLongPut  Number `csv:"Strike long put"`
	Status         Status `csv:"Status"`
	QtyBuy         Count  `csv:"Qty Buy"`
	QtySell        Count  `csv:"Qty Sell"`
	TotalCosts     Money  `csv:"Total Costs"`
	CurrentExpiry  Money  `csv:"Current Expiry Value"`
	AvgExpiry      Money  `csv:"AVG Expiry Value"`
	Return         Money  `csv:"Return"`
	Payoff         Money  `csv:"Payoff"`
}

// StrategySummary is one row of the backtest summary file.
type StrategySummary struct {
	File           string `csv:"File"`
	VIXThreshold   string `csv:"VIX_Threshold"`
	SellStrike     Number `csv:"Sell_Strike"`
	NumberOfTrades Count  `csv:"Number of Trades"`
	TotalReturn    Money  `csv:"Total Return"`
	MaxDrawdown    Money  `csv:"Max Drawdown"`
	RiskReward     Number `csv:"Risk/Reward Ratio"`
	Winrate        Number `csv:"Winrate (%)"`
}

// TradeDate and TradeStatus satisfy aggregate.Record.

func (e EntryTrade) TradeDate() Time     { return e.Date }
func (e EntryTrade) TradeStatus() Status { return e.Status }

func (e ExitTrade) TradeDate() Time     { return e.Date }
func (e ExitTrade) TradeStatus() Status { return e.Status }

// TradeDate for a leg is its expiration day: settlement happens at expiry,
// so all leg series are bucketed there.
func (l LegTrade) TradeDate() Time     { return l.Expiration }
func (l LegTrade) TradeStatus() Status { return l.Status }
