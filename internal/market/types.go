package market

import "time"

// Candle is one OHLCV bar. Sequences are ordered oldest-first and immutable
// once handed to the pipeline.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Position is one open holding as reported by the ingestion layer.
type Position struct {
	Symbol           string  `json:"symbol"`
	Sector           string  `json:"sector"`
	EntryPrice       float64 `json:"entry_price"`
	CurrentPrice     float64 `json:"current_price"`
	ATR              float64 `json:"atr"`
	DaysHeld         int     `json:"days_held"`
	CapitalAllocated float64 `json:"capital_allocated"`
}

type Portfolio struct {
	TotalCapital float64 `json:"total_capital"`
	Cash         float64 `json:"cash"`
	UsedCapital  float64 `json:"used_capital,omitempty"`
}

// Candidate is a hypothetical replacement trade, never a live position.
type Candidate struct {
	Symbol              string  `json:"symbol"`
	Sector              string  `json:"sector"`
	ProjectedEfficiency float64 `json:"projected_efficiency"` // [0,100]
}

// SectorHeatmap maps sector name to an intensity score in [0,100].
type SectorHeatmap map[string]float64

const (
	HotSectorMin  = 70.0
	ColdSectorMax = 40.0
)

// IsCold reports whether a sector is present in the heatmap and below the
// cold threshold. Sectors missing from the heatmap are never cold.
func (h SectorHeatmap) IsCold(sector string, coldMax float64) bool {
	v, ok := h[sector]
	return ok && v < coldMax
}

// Snapshot is the ingestion collaborator's output: everything one pipeline
// run consumes, already fetched and assembled.
type Snapshot struct {
	Portfolio  Portfolio     `json:"portfolio"`
	Positions  []Position    `json:"positions"`
	Candles    []Candle      `json:"candles"`
	Headlines  []string      `json:"headlines"`
	Heatmap    SectorHeatmap `json:"sector_heatmap"`
	Candidates []Candidate   `json:"candidates"`
}
