package core

// FreshnessLabel marks how recently a pattern was born or touched, derived
// from version-control history. NEW and UPDATED are mutually exclusive; NEW
// wins when both thresholds would match.
type FreshnessLabel string

const (
	FreshnessNone    FreshnessLabel = ""
	FreshnessNew     FreshnessLabel = "NEW"
	FreshnessUpdated FreshnessLabel = "UPDATED"
)
