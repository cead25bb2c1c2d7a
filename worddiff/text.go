// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.

package worddiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrReconstruct is returned by Validate when the parts do not rebuild an input.
	ErrReconstruct = errors.New("worddiff: parts do not reconstruct input")
	// ErrUnknownOperation is returned for an Operation or GroupType outside the defined set.
	ErrUnknownOperation = errors.New("worddiff: unknown operation")
	// ErrUnmerged is returned by Validate when two adjacent parts share a type.
	ErrUnmerged = errors.New("worddiff: adjacent parts not merged")
)

// Original returns the original text: all unchanged and removed parts.
func Original(parts []DiffPart) string {
	var b strings.Builder
	for _, p := range parts {
		if p.Type != DiffAdded {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// Modified returns the modified text: all unchanged and added parts.
func Modified(parts []DiffPart) string {
	var b strings.Builder
	for _, p := range parts {
		if p.Type != DiffRemoved {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// Validate checks that parts is a well-formed diff of original and modified.
func Validate(original, modified string, parts []DiffPart) error {
	for i, p := range parts {
		if _, ok := operationNames[p.Type]; !ok {
			return fmt.Errorf("part[%d]: %w: %d", i, ErrUnknownOperation, int8(p.Type))
		}
		if i > 0 && parts[i-1].Type == p.Type {
			return fmt.Errorf("part[%d]: %w: two %s parts", i, ErrUnmerged, p.Type)
		}
	}
	if got := Original(parts); got != original {
		return fmt.Errorf("%w: original is %q, parts give %q", ErrReconstruct, original, got)
	}
	if got := Modified(parts); got != modified {
		return fmt.Errorf("%w: modified is %q, parts give %q", ErrReconstruct, modified, got)
	}
	return nil
}

// View selects which side of a change group is displayed.
type View int

// Views of a change group.
const (
	// ViewModified shows what the text was changed to.
	ViewModified View = iota
	// ViewOriginal shows what the text was changed from.
	ViewOriginal
)

// Text returns the text of g as seen in view.
func (g ChangeGroup) Text(view View) string {
	if g.Type == GroupUnchanged {
		return g.Unchanged
	}
	if view == ViewOriginal {
		return g.Removed
	}
	return g.Added
}

// GroupsText joins the texts of groups as seen in view. With ViewModified the
// result is the modified input, with ViewOriginal the original one.
func GroupsText(groups []ChangeGroup, view View) string {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(g.Text(view))
	}
	return b.String()
}

// Summary describes the size of a diff.
type Summary struct {
	// Changes is the number of change groups.
	Changes int `json:"changes"`
	// RemovedTokens and AddedTokens count tokens, including whitespace runs.
	RemovedTokens int `json:"removed_tokens"`
	AddedTokens   int `json:"added_tokens"`
	// RemovedWidth and AddedWidth are terminal cell widths of the changed text.
	RemovedWidth int `json:"removed_width"`
	AddedWidth   int `json:"added_width"`
}

// Stats summarizes parts.
func Stats(parts []DiffPart) Summary {
	var s Summary
	for _, g := range GroupDiffParts(parts) {
		if g.Type != GroupChange {
			continue
		}
		s.Changes++
		s.RemovedTokens += len(Tokenize(g.Removed))
		s.AddedTokens += len(Tokenize(g.Added))
		s.RemovedWidth += runewidth.StringWidth(g.Removed)
		s.AddedWidth += runewidth.StringWidth(g.Added)
	}
	return s
}
