package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// InputKind is the kind of value a user submits for analysis.
type InputKind string

const (
	InputName   InputKind = "name"
	InputID     InputKind = "id"
	InputPhone  InputKind = "phone"
	InputBirth  InputKind = "birth"
	InputCustom InputKind = "custom"
)

// InputKinds lists every kind in display order.
var InputKinds = []InputKind{InputName, InputID, InputPhone, InputBirth, InputCustom}

// ParseInputKind is case-insensitive.
func ParseInputKind(s string) (InputKind, error) {
	k := InputKind(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range InputKinds {
		if v == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unsupported input kind %q (expected name|id|phone|birth|custom)", s)
}

// Input is a raw value before preprocessing.
type Input struct {
	Kind  InputKind `json:"kind"`
	Value string    `json:"value"`
}

// FieldDetail pairs an adjusted count with the field's display metadata.
type FieldDetail struct {
	Field Field `json:"field"`
	Count int   `json:"count"`
	FieldInfo
}

// Analysis is the full result payload of one pipeline invocation.
type Analysis struct {
	Input   Input           `json:"input"`
	Digits  string          `json:"digits"`
	Pairs   []DigitPair     `json:"pairs"`
	Labels  []Field         `json:"labels"`
	Result  Resolution      `json:"result"`
	Request GenerateRequest `json:"request"`

	Candidates []Candidate `json:"candidates"`

	// Empty marks an input that preprocessed to fewer than two digits.
	Empty bool `json:"empty,omitempty"`
}

// Numerals returns the candidate strings in generation order.
func (a Analysis) Numerals() []string {
	out := make([]string, 0, len(a.Candidates))
	for _, c := range a.Candidates {
		out = append(out, c.Numeral)
	}
	return out
}

// Details returns metadata for every adjusted field with a positive count,
// in catalogue order.
func (a Analysis) Details() []FieldDetail {
	var out []FieldDetail
	for _, f := range Fields {
		n := a.Result.Adjusted.Get(f)
		if n <= 0 {
			continue
		}
		out = append(out, FieldDetail{Field: f, Count: n, FieldInfo: f.Info()})
	}
	return out
}

// Record is a persisted analysis.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Analysis  Analysis  `json:"analysis"`
}

// RecordRef is a lightweight listing entry.
type RecordRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Kind      InputKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// SortRefs orders refs newest first.
func SortRefs(refs []RecordRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].CreatedAt.After(refs[j].CreatedAt)
	})
}
