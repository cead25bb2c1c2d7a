// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.

package worddiff

// ComputeDiff finds the word-level differences between original and modified.
// The result is nil when both inputs are empty.
func ComputeDiff(original, modified string) []DiffPart {
	return diffTokens(Tokenize(original), Tokenize(modified), nil)
}

// diffTokens walks a and b against their common subsequence. If scan is not
// nil it receives the positions found for every common token.
func diffTokens(a, b []string, scan func(i, j int)) []DiffPart {
	var parts []DiffPart

	i, j := 0, 0
	for _, token := range lcs(a, b) {
		// Both sequences are only ever scanned forward from the last match.
		nextI := tokenIndexOf(a, token, i)
		nextJ := tokenIndexOf(b, token, j)
		if nextI < 0 || nextJ < 0 {
			// Unreachable while lcs returns a subsequence of both inputs.
			break
		}
		if scan != nil {
			scan(nextI, nextJ)
		}

		parts = appendTokens(parts, DiffRemoved, a[i:nextI])
		parts = appendTokens(parts, DiffAdded, b[j:nextJ])
		parts = appendTokens(parts, DiffUnchanged, a[nextI:nextI+1])

		i, j = nextI+1, nextJ+1
	}
	parts = appendTokens(parts, DiffRemoved, a[i:])
	parts = appendTokens(parts, DiffAdded, b[j:])

	return parts
}

// appendTokens adds tokens to parts, extending the last part when it already
// has the same Operation.
func appendTokens(parts []DiffPart, op Operation, tokens []string) []DiffPart {
	for _, t := range tokens {
		if n := len(parts); n > 0 && parts[n-1].Type == op {
			parts[n-1].Text += t
			continue
		}
		parts = append(parts, DiffPart{Type: op, Text: t})
	}
	return parts
}

// lcs returns the longest common subsequence of a and b.
//
// dp[i*(n+1)+j] holds the length of the LCS of a[:i] and b[:j]. Backtracking
// moves up only when that is strictly longer than moving left, so on ties the
// token from b is consumed first.
func lcs(a, b []string) []string {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return nil
	}

	width := n + 1
	dp := make([]int, (m+1)*width)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i*width+j] = dp[(i-1)*width+j-1] + 1
			} else {
				dp[i*width+j] = max(dp[(i-1)*width+j], dp[i*width+j-1])
			}
		}
	}

	length := dp[m*width+n]
	if length == 0 {
		return nil
	}
	common := make([]string, length)
	k := length
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			k--
			common[k] = a[i-1]
			i--
			j--
		case dp[(i-1)*width+j] > dp[i*width+j-1]:
			i--
		default:
			j--
		}
	}

	return common
}

// tokenIndexOf returns the index of the first token equal to target in
// tokens, starting at tokens[i].
func tokenIndexOf(tokens []string, target string, i int) int {
	if i < 0 {
		i = 0
	}
	for ; i < len(tokens); i++ {
		if tokens[i] == target {
			return i
		}
	}
	return -1
}
