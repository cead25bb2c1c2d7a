// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.

package worddiff

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginalModified(t *testing.T) {
	parts := []DiffPart{
		{DiffUnchanged, "jumps "},
		{DiffRemoved, "over"},
		{DiffAdded, "across"},
		{DiffUnchanged, " the "},
		{DiffRemoved, "lazy "},
		{DiffUnchanged, "dog"},
	}

	assert.Equal(t, "jumps over the lazy dog", Original(parts))
	assert.Equal(t, "jumps across the dog", Modified(parts))
}

func TestValidate(t *testing.T) {
	type TestCase struct {
		Name string

		Original string
		Modified string
		Parts    []DiffPart

		Expected error
	}

	for i, tc := range []TestCase{
		{"Valid", "a b", "a c", []DiffPart{{DiffUnchanged, "a "}, {DiffRemoved, "b"}, {DiffAdded, "c"}}, nil},
		{"Empty", "", "", nil, nil},
		{"Wrong original", "a x", "a c", []DiffPart{{DiffUnchanged, "a "}, {DiffRemoved, "b"}, {DiffAdded, "c"}}, ErrReconstruct},
		{"Wrong modified", "a b", "a x", []DiffPart{{DiffUnchanged, "a "}, {DiffRemoved, "b"}, {DiffAdded, "c"}}, ErrReconstruct},
		{"Unmerged", "ab", "ab", []DiffPart{{DiffUnchanged, "a"}, {DiffUnchanged, "b"}}, ErrUnmerged},
		{"Unknown operation", "a", "a", []DiffPart{{Operation(3), "a"}}, ErrUnknownOperation},
	} {
		err := Validate(tc.Original, tc.Modified, tc.Parts)
		if tc.Expected == nil {
			assert.NoError(t, err, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
		} else {
			assert.ErrorIs(t, err, tc.Expected, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
		}
	}
}

func TestStats(t *testing.T) {
	type TestCase struct {
		Name string

		Original string
		Modified string

		Expected Summary
	}

	for i, tc := range []TestCase{
		{"No change", "same text", "same text", Summary{}},
		{"Word replacement", "The cat sat", "The dog sat", Summary{Changes: 1, RemovedTokens: 1, AddedTokens: 1, RemovedWidth: 3, AddedWidth: 3}},
		{"Insertion", "hello world", "hello big world", Summary{Changes: 1, AddedTokens: 2, AddedWidth: 4}},
		{"Wide characters", "你好 world", "再见 world", Summary{Changes: 1, RemovedTokens: 1, AddedTokens: 1, RemovedWidth: 4, AddedWidth: 4}},
	} {
		actual := Stats(ComputeDiff(tc.Original, tc.Modified))
		assert.Equal(t, tc.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestOperationText(t *testing.T) {
	for _, op := range []Operation{DiffUnchanged, DiffRemoved, DiffAdded} {
		text, err := op.MarshalText()
		require.NoError(t, err)

		var decoded Operation
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, op, decoded)
	}

	_, err := Operation(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Equal(t, "Operation(9)", Operation(9).String())

	var op Operation
	assert.ErrorIs(t, op.UnmarshalText([]byte("changed")), ErrUnknownOperation)
}

func TestJSONShape(t *testing.T) {
	parts := ComputeDiff("The cat sat", "The dog sat")

	data, err := json.Marshal(parts)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"unchanged","text":"The "},
		{"type":"removed","text":"cat"},
		{"type":"added","text":"dog"},
		{"type":"unchanged","text":" sat"}
	]`, string(data))

	data, err = json.Marshal(GroupDiffParts(parts))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"unchanged","unchanged":"The ","removed":"","added":""},
		{"type":"change","removed":"cat","added":"dog"},
		{"type":"unchanged","unchanged":" sat","removed":"","added":""}
	]`, string(data))

	var decoded []ChangeGroup
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, GroupDiffParts(parts), decoded)
}
