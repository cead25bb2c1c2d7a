// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.

// Package worddiff computes word-level differences between two strings.
//
// Both inputs are split into alternating runs of whitespace and non-whitespace
// (see Tokenize), a longest common subsequence is computed over the tokens, and
// the result is reported as an ordered list of DiffParts. GroupDiffParts
// coalesces adjacent removals and additions into ChangeGroups that a display
// layer can toggle between the original and the modified wording.
//
// Invariants of ComputeDiff(original, modified):
//   - Original(parts) == original
//   - Modified(parts) == modified
//   - no two adjacent parts have the same Type
package worddiff

import (
	"fmt"
)

// Operation defines the kind of a DiffPart.
type Operation int8

// Operations of a DiffPart.
const (
	// DiffUnchanged is text present in both inputs.
	DiffUnchanged Operation = 0
	// DiffRemoved is text present only in the original.
	DiffRemoved Operation = -1
	// DiffAdded is text present only in the modified input.
	DiffAdded Operation = 1
)

var operationNames = map[Operation]string{
	DiffUnchanged: "unchanged",
	DiffRemoved:   "removed",
	DiffAdded:     "added",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Operation) MarshalText() ([]byte, error) {
	name, ok := operationNames[o]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, int8(o))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operation) UnmarshalText(text []byte) error {
	for op, name := range operationNames {
		if name == string(text) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownOperation, text)
}

// DiffPart is a run of tokens that share one Operation.
type DiffPart struct {
	Type Operation `json:"type"`
	Text string    `json:"text"`
}

// GroupType defines the kind of a ChangeGroup.
type GroupType int8

// Group types.
const (
	GroupUnchanged GroupType = iota
	GroupChange
)

func (g GroupType) String() string {
	switch g {
	case GroupUnchanged:
		return "unchanged"
	case GroupChange:
		return "change"
	}
	return fmt.Sprintf("GroupType(%d)", int8(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g GroupType) MarshalText() ([]byte, error) {
	switch g {
	case GroupUnchanged, GroupChange:
		return []byte(g.String()), nil
	}
	return nil, fmt.Errorf("%w: group type %d", ErrUnknownOperation, int8(g))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GroupType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unchanged":
		*g = GroupUnchanged
	case "change":
		*g = GroupChange
	default:
		return fmt.Errorf("%w: group type %q", ErrUnknownOperation, text)
	}
	return nil
}

// ChangeGroup is one displayable unit: either an unchanged run, or a removal
// and addition that replace each other.
//
// For GroupUnchanged only Unchanged is set. For GroupChange at least one of
// Removed and Added is non-empty.
type ChangeGroup struct {
	Type      GroupType `json:"type"`
	Unchanged string    `json:"unchanged,omitempty"`
	Removed   string    `json:"removed"`
	Added     string    `json:"added"`
}
