package model

import "github.com/google/uuid"

// ClickCount holds one aggregate row per user: six product category counters
// and five skin type counters, one column per filter label.
type ClickCount struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	MoisturizerCount int       `db:"moisturizer_count"`
	CleanserCount    int       `db:"cleanser_count"`
	TreatmentCount   int       `db:"treatment_count"`
	FaceMaskCount    int       `db:"face_mask_count"`
	EyeCreamCount    int       `db:"eye_cream_count"`
	SunProtectCount  int       `db:"sun_protect_count"`
	CombinationCount int       `db:"combination_count"`
	DryCount         int       `db:"dry_count"`
	NormalCount      int       `db:"normal_count"`
	OilyCount        int       `db:"oily_count"`
	SensitiveCount   int       `db:"sensitive_count"`
}

// counterColumns maps the filter labels the frontend sends to their counter
// columns. Labels match the dataset's category and skin type values exactly.
var counterColumns = map[string]string{
	"Moisturizer": "moisturizer_count",
	"Cleanser":    "cleanser_count",
	"Treatment":   "treatment_count",
	"Face Mask":   "face_mask_count",
	"Eye cream":   "eye_cream_count",
	"Sun protect": "sun_protect_count",
	"Combination": "combination_count",
	"Dry":         "dry_count",
	"Normal":      "normal_count",
	"Oily":        "oily_count",
	"Sensitive":   "sensitive_count",
}

// CounterColumn resolves a filter label to its column name. The returned name
// is safe to interpolate into SQL because it only ever comes from this map.
func CounterColumn(filterType string) (string, bool) {
	col, ok := counterColumns[filterType]
	return col, ok
}

// FilterTypes lists every accepted filter label.
func FilterTypes() []string {
	labels := make([]string, 0, len(counterColumns))
	for label := range counterColumns {
		labels = append(labels, label)
	}
	return labels
}
