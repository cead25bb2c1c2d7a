// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.

package worddiff

import "strings"

// GroupDiffParts coalesces parts into ChangeGroups. Every unchanged part is a
// group of its own; a run of removed parts followed by a run of added parts
// becomes a single GroupChange.
func GroupDiffParts(parts []DiffPart) []ChangeGroup {
	var groups []ChangeGroup

	for i := 0; i < len(parts); {
		if parts[i].Type == DiffUnchanged {
			groups = append(groups, ChangeGroup{Type: GroupUnchanged, Unchanged: parts[i].Text})
			i++
			continue
		}

		var removed, added strings.Builder
		start := i
		for ; i < len(parts) && parts[i].Type == DiffRemoved; i++ {
			removed.WriteString(parts[i].Text)
		}
		for ; i < len(parts) && parts[i].Type == DiffAdded; i++ {
			added.WriteString(parts[i].Text)
		}
		if i == start {
			// Unknown operation; skip it rather than loop forever.
			i++
			continue
		}

		if removed.Len() == 0 && added.Len() == 0 {
			continue
		}
		groups = append(groups, ChangeGroup{
			Type:    GroupChange,
			Removed: removed.String(),
			Added:   added.String(),
		})
	}

	return groups
}

// FlattenGroups returns the parts a group sequence was built from, so that
// GroupDiffParts(FlattenGroups(groups)) reproduces groups.
func FlattenGroups(groups []ChangeGroup) []DiffPart {
	var parts []DiffPart
	for _, g := range groups {
		switch g.Type {
		case GroupUnchanged:
			parts = append(parts, DiffPart{Type: DiffUnchanged, Text: g.Unchanged})
		case GroupChange:
			if g.Removed != "" {
				parts = append(parts, DiffPart{Type: DiffRemoved, Text: g.Removed})
			}
			if g.Added != "" {
				parts = append(parts, DiffPart{Type: DiffAdded, Text: g.Added})
			}
		}
	}
	return parts
}
