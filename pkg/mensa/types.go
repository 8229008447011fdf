package mensa

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Component is a named part of a dish: either the main item or one
// auxiliary accompaniment, with its allergen/additive flags.
type Component struct {
	Title string `json:"title" yaml:"title" validate:"required"`
	Flags []Flag `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// NutritionalValues holds the published nutrition facts of a dish.
// Every field is independently optional: nil means not published or
// not parsable, never zero. Energy is in kJ, the rest in grams.
type NutritionalValues struct {
	Energy  *decimal.Decimal `json:"energy,omitempty" yaml:"energy,omitempty"`
	Fat     *decimal.Decimal `json:"fat,omitempty" yaml:"fat,omitempty"`
	Carbs   *decimal.Decimal `json:"carbs,omitempty" yaml:"carbs,omitempty"`
	Protein *decimal.Decimal `json:"protein,omitempty" yaml:"protein,omitempty"`
}

// Dish is a single menu entry.
type Dish struct {
	// Category is the provider's menu category label, e.g. "Tellergericht".
	Category string `json:"category" yaml:"category" validate:"required"`
	// Main is the first named component of the dish.
	Main Component `json:"main" yaml:"main" validate:"required"`
	// Aux holds accompaniments, sauces and sides in document order.
	Aux []Component `json:"aux,omitempty" yaml:"aux,omitempty"`
	// Meat is the diet classification set; empty when unclassified.
	// A dish may carry several classifications (vegan dishes are also
	// marked vegetarian on combined pages).
	Meat []MeatType `json:"meat,omitempty" yaml:"meat,omitempty"`
	// Price is the exact amount in EUR without student discount, nil
	// when not published.
	Price *decimal.Decimal `json:"price,omitempty" yaml:"price,omitempty"`
	// Nutrition holds the published nutrition facts, as far as provided.
	Nutrition NutritionalValues `json:"nutrition" yaml:"nutrition"`
}

// Menu is one canteen's offering for one day, split into the two
// structural sections of the source page.
type Menu struct {
	Mains []Dish `json:"mains" yaml:"mains"`
	Sides []Dish `json:"sides" yaml:"sides"`
}

// WarningKind tags a non-fatal extraction deviation.
type WarningKind string

const (
	WarnUnknownFlagCode    WarningKind = "unknown-flag-code"
	WarnMalformedDate      WarningKind = "malformed-date"
	WarnMalformedPrice     WarningKind = "malformed-price"
	WarnMalformedNutrition WarningKind = "malformed-nutrition"
	WarnSkippedDish        WarningKind = "skipped-dish"
	WarnInvalidDish        WarningKind = "invalid-dish"
)

// Warning describes one entry the parser skipped or degraded.
type Warning struct {
	Kind   WarningKind `json:"kind" yaml:"kind"`
	Raw    string      `json:"raw,omitempty" yaml:"raw,omitempty"`
	Detail string      `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Result is the outcome of one extraction: the date-keyed menus plus
// every non-fatal deviation encountered, in document order. A date
// missing from Days means the canteen published nothing for it.
type Result struct {
	Days     map[time.Time]Menu `json:"days" yaml:"days"`
	Warnings []Warning          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Dates returns the days of the result in ascending order.
func (r *Result) Dates() []time.Time {
	dates := make([]time.Time, 0, len(r.Days))
	for d := range r.Days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (r *Result) addWarning(kind WarningKind, raw, detail string) {
	r.Warnings = append(r.Warnings, Warning{Kind: kind, Raw: raw, Detail: detail})
}
