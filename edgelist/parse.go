// Package edgelist turns "AB5"-style text records into core graphs.
// Parse accepts the raw delimited form; ParseRecords accepts pre-split
// records. Both are fail-fast and all-or-nothing.
package edgelist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/latpath/core"
)

// Parse decodes a flat record list such as "AB5, BC4 CD8" into a graph.
// Records are separated by commas and/or whitespace; each record names
// the edge endpoints with one letter rune each, followed by the edge
// latency as a non-negative decimal integer.
//
// Decoding is fail-fast: the first malformed record aborts the build
// with a wrapped ErrMalformedRecord, and input with no records at all
// yields ErrEmptyInput.
func Parse(input string) (*core.Graph[string], error) {
	return ParseRecords(strings.FieldsFunc(input, isSeparator))
}

// ParseRecords decodes pre-split records under the same rules as Parse.
func ParseRecords(records []string) (*core.Graph[string], error) {
	// 1. Reject input with nothing to build.
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	// 2. Decode every record before constructing the graph.
	edges := make([]core.Edge[string], len(records))
	var (
		rec string
		i   int
		err error
	)
	for i, rec = range records {
		edges[i], err = decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d %q: %v", ErrMalformedRecord, i+1, rec, err)
		}
	}

	// 3. Hand the decoded edges to the core constructor.
	return core.NewGraph(edges...)
}

// decodeRecord splits one record into its two node runes and latency.
func decodeRecord(rec string) (core.Edge[string], error) {
	from, n := utf8.DecodeRuneInString(rec)
	if !unicode.IsLetter(from) {
		return core.Edge[string]{}, errors.New("missing or non-letter from node")
	}

	to, m := utf8.DecodeRuneInString(rec[n:])
	if !unicode.IsLetter(to) {
		return core.Edge[string]{}, errors.New("missing or non-letter to node")
	}

	raw := rec[n+m:]
	if raw == "" {
		return core.Edge[string]{}, errors.New("missing latency")
	}
	latency, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return core.Edge[string]{}, fmt.Errorf("bad latency %q", raw)
	}
	if latency < 0 {
		return core.Edge[string]{}, fmt.Errorf("negative latency %d", latency)
	}

	return core.Edge[string]{From: string(from), To: string(to), Latency: latency}, nil
}

// isSeparator reports whether r separates two records.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
