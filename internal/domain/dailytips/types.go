package dailytips

import (
	"context"
	"time"
)

// Canonical tip categories requested from the external tier. Responses may
// carry additional categories; those are passed through untouched.
const (
	CategoryDiet     = "diet"
	CategoryExercise = "exercise"
	CategorySleep    = "sleep"
	CategoryStress   = "stress"
)

// MaxTipsPerCategory caps every category list, whichever tier produced it.
const MaxTipsPerCategory = 3

// Tip is the value object returned to clients.
type Tip struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Category         string `json:"category"`
}

// TipsByCategory maps a category name to its ordered tips.
type TipsByCategory map[string][]Tip

// DayWindow is the 24h validity period of one generated tip set.
type DayWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, bounds included.
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DaySeed returns the day-of-year of the window start. It is embedded in the
// generation prompt so consecutive days diverge for an unchanged snapshot.
func (w DayWindow) DaySeed() int {
	return w.Start.YearDay()
}

// CachedTipSet is one persisted generation result.
type CachedTipSet struct {
	UserID    int64          `json:"userId"`
	Window    DayWindow      `json:"window"`
	Tips      TipsByCategory `json:"tips"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Cache stores at most one tip set per (user, window start). Implementations
// must enforce that invariant atomically: a Store that loses a race returns
// the winning entry instead of creating a duplicate.
type Cache interface {
	Lookup(ctx context.Context, userID int64, at time.Time) (CachedTipSet, bool, error)
	Store(ctx context.Context, userID int64, window DayWindow, tips TipsByCategory) (CachedTipSet, error)
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// UserDirectory lists the user population for the pregeneration batch.
type UserDirectory interface {
	AllUserIDs(ctx context.Context) ([]int64, error)
}

// BatchSummary aggregates one pregeneration run.
type BatchSummary struct {
	RunID             string `json:"runId"`
	Total             int    `json:"total"`
	Generated         int    `json:"generated"`
	SkippedCached     int    `json:"skippedCached"`
	SkippedNoSnapshot int    `json:"skippedNoSnapshot"`
	Failed            int    `json:"failed"`
}
