package signals

import (
	"strings"

	"github.com/mrhapile/BuriBuri-Trading/internal/config"
)

// SentimentReading scores headline flow on [0,100] around a neutral 50.
type SentimentReading struct {
	Score     float64 `json:"news_score"`
	Headlines int     `json:"headline_count"`
	Matched   int     `json:"matched_terms"`
}

func termWeight(term string, base float64, overrides map[string]float64) float64 {
	if w, ok := overrides[term]; ok {
		return w
	}
	return base
}

// ScoreHeadlines applies keyword-weighted matching over fixed lexicons.
// Empty input returns exactly the neutral baseline. Matching is
// case-insensitive substring search; determinism is a hard requirement, so
// there is no model beyond the keyword sets.
func ScoreHeadlines(headlines []string, cfg config.Sentiment) SentimentReading {
	reading := SentimentReading{Score: cfg.Baseline, Headlines: len(headlines)}
	if len(headlines) == 0 {
		return reading
	}

	score := cfg.Baseline
	for _, h := range headlines {
		lower := strings.ToLower(h)
		for _, term := range cfg.PositiveTerms {
			if strings.Contains(lower, term) {
				score += termWeight(term, cfg.KeywordWeight, cfg.WeightOverride)
				reading.Matched++
			}
		}
		for _, term := range cfg.NegativeTerms {
			if strings.Contains(lower, term) {
				score -= termWeight(term, cfg.KeywordWeight, cfg.WeightOverride)
				reading.Matched++
			}
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	reading.Score = score
	return reading
}
