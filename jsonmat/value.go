// SPDX-License-Identifier: MIT
// Package jsonmat: the tagged value variant.
//
// Purpose:
//   - Convert the generic tree produced by the document decoder into an
//     explicit Number | String | List variant exactly once, at the root.
//     Everything downstream switches on a closed kind tag instead of
//     type-asserting interface{} at each level.

package jsonmat

import "fmt"

// kind tags the closed set of element types the notation supports.
type kind int

const (
	kindNumber kind = iota
	kindString
	kindList
)

// value is one node of the converted document tree. Exactly one of num,
// str or list is meaningful, selected by k.
type value struct {
	k    kind
	num  float64
	str  string
	list []value
}

// convert maps a decoded generic node into the tagged variant.
// Numbers (all integer and float widths the decoder produces) normalize to
// float64; strings and lists pass through; anything else (bool, null,
// mapping) fails with ErrUnsupportedElement naming the offending type.
// Complexity: O(nodes).
func convert(raw interface{}) (value, error) {
	switch v := raw.(type) {
	case int:
		return value{k: kindNumber, num: float64(v)}, nil
	case int64:
		return value{k: kindNumber, num: float64(v)}, nil
	case uint64:
		return value{k: kindNumber, num: float64(v)}, nil
	case float64:
		return value{k: kindNumber, num: v}, nil
	case string:
		return value{k: kindString, str: v}, nil
	case []interface{}:
		list := make([]value, 0, len(v))
		for _, item := range v {
			cv, err := convert(item)
			if err != nil {
				return value{}, err
			}
			list = append(list, cv)
		}

		return value{k: kindList, list: list}, nil
	}

	return value{}, fmt.Errorf("jsonmat: element %T: %w", raw, ErrUnsupportedElement)
}

// allLists reports whether every element of list is itself a list.
// Vacuously true for an empty list — the ambiguity this creates at the
// document root is pinned by tests.
func allLists(list []value) bool {
	for _, v := range list {
		if v.k != kindList {
			return false
		}
	}

	return true
}
