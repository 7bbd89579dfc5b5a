// csv.go — the CSV Adapter: decodes a node-weighted or edge-weighted CSV
// stream into NodeRecord/EdgeRecord rows, auto-detecting the schema by
// column count the way the distilled format expects.
package payback

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput classifies every CSV decoding and row-validation failure:
// malformed rows, a mixed column-count schema, or a struct-tag violation.
var ErrInvalidInput = errors.New("payback: invalid input")

// NodeRecord is one row of a 2-column (identifier, balance) CSV. Weight
// carries no "required" tag: a legitimate row can have an explicitly-zero
// balance, which Input Normalization drops silently rather than rejecting
// (see newBalances) — parsing it already guarantees it's a valid int64.
type NodeRecord struct {
	Name   string `validate:"required"`
	Weight int64
}

// EdgeRecord is one row of a 3-column (from, to, weight) CSV. Weight
// likewise carries no "required" tag, for the same reason as NodeRecord.
type EdgeRecord struct {
	From   string `validate:"required"`
	To     string `validate:"required"`
	Weight int64
}

var csvValidate = validator.New()

// DecodeCSV reads every row from r and classifies the stream as
// vertex-weighted (2 columns) or edge-weighted (3 columns) by the column
// count of its first row; every subsequent row must match that same count
// or DecodeCSV fails with ErrInvalidInput. At most one of the two returned
// slices is non-empty; both are empty for an input with no rows. Blank rows
// are skipped; DecodeCSV does not itself
// build a Balance Model — callers combine its output with NewBalances or
// NewBalancesFromEdges.
func DecodeCSV(r io.Reader) ([]NodeRecord, []EdgeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated manually so the error wraps ErrInvalidInput
	cr.TrimLeadingSpace = true

	var (
		nodes    []NodeRecord
		edges    []EdgeRecord
		width    int
		rowIndex int
	)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", ErrInvalidInput, rowIndex, err)
		}
		rowIndex++
		if len(row) == 1 && row[0] == "" {
			continue // blank line
		}

		switch len(row) {
		case 2:
			if width == 0 {
				width = 2
			} else if width != 2 {
				return nil, nil, fmt.Errorf("%w: row %d: mixed schema, expected %d columns, got 2", ErrInvalidInput, rowIndex, width)
			}
			rec, err := parseNodeRecord(row)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: %v", ErrInvalidInput, rowIndex, err)
			}
			nodes = append(nodes, rec)
		case 3:
			if width == 0 {
				width = 3
			} else if width != 3 {
				return nil, nil, fmt.Errorf("%w: row %d: mixed schema, expected %d columns, got 3", ErrInvalidInput, rowIndex, width)
			}
			rec, err := parseEdgeRecord(row)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: %v", ErrInvalidInput, rowIndex, err)
			}
			edges = append(edges, rec)
		default:
			return nil, nil, fmt.Errorf("%w: row %d: expected 2 or 3 columns, got %d", ErrInvalidInput, rowIndex, len(row))
		}
	}

	logger.Debug().Int("nodes", len(nodes)).Int("edges", len(edges)).Msg("csv adapter decoded input")
	return nodes, edges, nil
}

func parseNodeRecord(row []string) (NodeRecord, error) {
	weight, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return NodeRecord{}, fmt.Errorf("balance %q: %w", row[1], err)
	}
	rec := NodeRecord{Name: row[0], Weight: weight}
	if err := csvValidate.Struct(rec); err != nil {
		return NodeRecord{}, err
	}
	return rec, nil
}

func parseEdgeRecord(row []string) (EdgeRecord, error) {
	weight, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return EdgeRecord{}, fmt.Errorf("weight %q: %w", row[2], err)
	}
	rec := EdgeRecord{From: row[0], To: row[1], Weight: weight}
	if err := csvValidate.Struct(rec); err != nil {
		return EdgeRecord{}, err
	}
	return rec, nil
}

// BalancesFromCSV decodes r and normalizes the result into a Balances
// model, dispatching to NewBalances or NewBalancesFromEdges according to
// which schema DecodeCSV detected.
func BalancesFromCSV(r io.Reader) (*Balances, error) {
	nodes, edges, err := DecodeCSV(r)
	if err != nil {
		return nil, err
	}
	if len(edges) > 0 {
		amounts := make([]EdgeAmount, len(edges))
		for i, e := range edges {
			amounts[i] = EdgeAmount{From: e.From, To: e.To, Weight: e.Weight}
		}
		return NewBalancesFromEdges(amounts)
	}
	pairs := make([]BalancePair, len(nodes))
	for i, n := range nodes {
		pairs[i] = BalancePair{ID: n.Name, Balance: n.Weight}
	}
	return NewBalances(pairs)
}
