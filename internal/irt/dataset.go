package irt

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/adaptly/calibrant/internal/store"
)

// ErrEmptyDataset means the window and filters matched no usable rows.
var ErrEmptyDataset = errors.New("irt dataset is empty")

const (
	defaultTrainFrac   = 0.8
	defaultOptionCount = 5
)

// Row is one flattened observation fed to the fitter.
type Row struct {
	UserID      string
	QuestionID  string
	Correct     bool
	OccurredAt  time.Time
	OptionCount int
}

// DatasetSpec is the full recipe for rebuilding a dataset. Every field
// is persisted with the run so the identical row set can be
// reconstructed later from the run record alone.
type DatasetSpec struct {
	From    time.Time `json:"from,omitempty"`
	To      time.Time `json:"to,omitempty"`
	ThemeID string    `json:"theme_id,omitempty"`

	// Quality filters: rows from users or items with fewer total
	// observations than these are dropped.
	MinUserAttempts int `json:"min_user_attempts,omitempty"`
	MinItemAttempts int `json:"min_item_attempts,omitempty"`

	TrainFrac float64 `json:"train_frac,omitempty"`
	SplitSeed int64   `json:"split_seed"`
}

// ToMap flattens the spec for storage on the run record.
func (s DatasetSpec) ToMap() map[string]any {
	m := map[string]any{
		"split_seed": s.SplitSeed,
		"train_frac": s.trainFrac(),
	}
	if !s.From.IsZero() {
		m["from"] = s.From.UTC().Format(time.RFC3339)
	}
	if !s.To.IsZero() {
		m["to"] = s.To.UTC().Format(time.RFC3339)
	}
	if s.ThemeID != "" {
		m["theme_id"] = s.ThemeID
	}
	if s.MinUserAttempts > 0 {
		m["min_user_attempts"] = s.MinUserAttempts
	}
	if s.MinItemAttempts > 0 {
		m["min_item_attempts"] = s.MinItemAttempts
	}
	return m
}

// SpecFromMap rebuilds a spec from its persisted form. Numeric values
// arrive as int64 from memory or float64 after a JSON round trip.
func SpecFromMap(m map[string]any) (DatasetSpec, error) {
	var s DatasetSpec
	if v, ok := m["from"].(string); ok {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return s, fmt.Errorf("dataset spec from: %w", err)
		}
		s.From = t
	}
	if v, ok := m["to"].(string); ok {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return s, fmt.Errorf("dataset spec to: %w", err)
		}
		s.To = t
	}
	if v, ok := m["theme_id"].(string); ok {
		s.ThemeID = v
	}
	s.SplitSeed = specInt(m["split_seed"])
	s.MinUserAttempts = int(specInt(m["min_user_attempts"]))
	s.MinItemAttempts = int(specInt(m["min_item_attempts"]))
	s.TrainFrac = specFloat(m["train_frac"])
	return s, nil
}

func specInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func specFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case int:
		return float64(x)
	default:
		return 0
	}
}

func (s DatasetSpec) trainFrac() float64 {
	if s.TrainFrac <= 0 || s.TrainFrac >= 1 {
		return defaultTrainFrac
	}
	return s.TrainFrac
}

func (s DatasetSpec) scope() store.Scope {
	if s.ThemeID != "" {
		return store.Theme(s.ThemeID)
	}
	return store.Global()
}

// Item is one question appearing in the dataset.
type Item struct {
	QuestionID  string
	OptionCount int
	NObs        int
}

// Dataset is the materialized train/validation split plus the index
// orderings the fitter maps parameters onto. Users and Items are
// sorted by id, so the parameter layout is a pure function of the row
// set.
type Dataset struct {
	Train []Row
	Valid []Row

	Users []string
	Items []Item

	userIdx map[string]int
	itemIdx map[string]int
}

// UserIndex returns the parameter index for a user id.
func (d *Dataset) UserIndex(id string) (int, bool) {
	i, ok := d.userIdx[id]
	return i, ok
}

// ItemIndex returns the parameter index for a question id.
func (d *Dataset) ItemIndex(id string) (int, bool) {
	i, ok := d.itemIdx[id]
	return i, ok
}

// NObs returns the total number of observations.
func (d *Dataset) NObs() int { return len(d.Train) + len(d.Valid) }

// DatasetBuilder turns audit-log history into fitter-ready datasets.
type DatasetBuilder struct {
	logs store.UpdateLogRepo
}

// NewDatasetBuilder returns a builder reading from the given log.
func NewDatasetBuilder(logs store.UpdateLogRepo) *DatasetBuilder {
	return &DatasetBuilder{logs: logs}
}

// Build materializes the dataset a spec describes. The same spec
// against the same log always yields the same split.
func (b *DatasetBuilder) Build(ctx context.Context, spec DatasetSpec) (*Dataset, error) {
	scope := spec.scope()
	entries, err := b.logs.Window(ctx, store.LogWindow{
		From:  spec.From,
		To:    spec.To,
		Scope: &scope,
	})
	if err != nil {
		return nil, fmt.Errorf("read attempt history: %w", err)
	}

	rows := firstAttempts(entries)
	rows = filterSparse(rows, spec.MinUserAttempts, spec.MinItemAttempts)
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	// Canonical order before the seeded shuffle, so the split depends
	// only on the row set and the seed.
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].OccurredAt.Equal(rows[j].OccurredAt) {
			return rows[i].OccurredAt.Before(rows[j].OccurredAt)
		}
		if rows[i].UserID != rows[j].UserID {
			return rows[i].UserID < rows[j].UserID
		}
		return rows[i].QuestionID < rows[j].QuestionID
	})

	rng := rand.New(rand.NewSource(spec.SplitSeed))
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	nTrain := int(float64(len(rows)) * spec.trainFrac())
	if nTrain == 0 {
		nTrain = len(rows)
	}

	d := &Dataset{
		Train: rows[:nTrain],
		Valid: rows[nTrain:],
	}
	d.index(rows)
	return d, nil
}

// firstAttempts keeps each user's earliest attempt per question.
// Repeat exposures measure memory, not ability, and would bias the
// item curves optimistic.
func firstAttempts(entries []store.UpdateLogEntry) []Row {
	type pair struct{ user, question string }
	first := make(map[pair]Row)
	for _, e := range entries {
		k := pair{e.UserID, e.QuestionID}
		cur, ok := first[k]
		if ok && !e.OccurredAt.Before(cur.OccurredAt) {
			continue
		}
		oc := e.OptionCount
		if oc <= 0 {
			oc = defaultOptionCount
		}
		first[k] = Row{
			UserID:      e.UserID,
			QuestionID:  e.QuestionID,
			Correct:     e.Score,
			OccurredAt:  e.OccurredAt,
			OptionCount: oc,
		}
	}
	rows := make([]Row, 0, len(first))
	for _, r := range first {
		rows = append(rows, r)
	}
	return rows
}

// filterSparse drops rows from users or items below the observation
// thresholds. A single pass over counts taken on the unfiltered set;
// the thresholds are a quality floor, not a fixpoint.
func filterSparse(rows []Row, minUser, minItem int) []Row {
	if minUser <= 1 && minItem <= 1 {
		return rows
	}
	userN := make(map[string]int)
	itemN := make(map[string]int)
	for _, r := range rows {
		userN[r.UserID]++
		itemN[r.QuestionID]++
	}
	kept := rows[:0]
	for _, r := range rows {
		if minUser > 1 && userN[r.UserID] < minUser {
			continue
		}
		if minItem > 1 && itemN[r.QuestionID] < minItem {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func (d *Dataset) index(rows []Row) {
	userSet := make(map[string]struct{})
	itemObs := make(map[string]*Item)
	for _, r := range rows {
		userSet[r.UserID] = struct{}{}
		it, ok := itemObs[r.QuestionID]
		if !ok {
			it = &Item{QuestionID: r.QuestionID, OptionCount: r.OptionCount}
			itemObs[r.QuestionID] = it
		}
		it.NObs++
		if r.OptionCount > it.OptionCount {
			it.OptionCount = r.OptionCount
		}
	}

	d.Users = make([]string, 0, len(userSet))
	for u := range userSet {
		d.Users = append(d.Users, u)
	}
	sort.Strings(d.Users)

	d.Items = make([]Item, 0, len(itemObs))
	for _, it := range itemObs {
		d.Items = append(d.Items, *it)
	}
	sort.Slice(d.Items, func(i, j int) bool {
		return d.Items[i].QuestionID < d.Items[j].QuestionID
	})

	d.userIdx = make(map[string]int, len(d.Users))
	for i, u := range d.Users {
		d.userIdx[u] = i
	}
	d.itemIdx = make(map[string]int, len(d.Items))
	for i, it := range d.Items {
		d.itemIdx[it.QuestionID] = i
	}
}
