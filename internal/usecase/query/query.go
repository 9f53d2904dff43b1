// Package query evaluates JSONPath expressions against saved analyses.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/Shan319/number-dna-analyze/internal/domain"
)

// Record runs expr over the JSON form of rec and formats the match.
func Record(rec domain.Record, expr string) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", &domain.OpError{Op: "query.marshal", Kind: domain.KindExecution, Err: err}
	}
	return JSON(b, expr)
}

// JSON runs expr over an arbitrary JSON document.
//
// Scalars are printed bare; objects and arrays are re-encoded as indented
// JSON. A single-element result is unwrapped.
func JSON(body []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", invalid(expr, fmt.Errorf("empty jsonpath expression"))
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", &domain.OpError{Op: "query.parse", Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", invalid(expr, err)
	}
	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "query.eval",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: no value found: %w", expr, domain.ErrNotFound),
		}
	}
	return toString(val)
}

func invalid(expr string, err error) error {
	return &domain.OpError{
		Op:   "query.eval",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidInput),
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return "", &domain.OpError{Op: "query.format", Kind: domain.KindExecution, Err: err}
		}
		return string(b), nil
	}
}
