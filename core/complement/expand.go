// core/complement/expand.go
package complement

// Expand returns every complementary string of window under a, already in
// 5'→3' orientation (the window is read 3' end first).
//
// Ordering follows the branching rule: when a symbol offers choices
// [c0, c1, ..., ck], every existing partial is extended with c0 in place,
// then for each existing partial (in order) the variants with c1..ck are
// appended. Duplicates are kept.
func Expand(window []byte, a *Alphabet) ([]string, error) {
	var out [][]byte
	for i := len(window) - 1; i >= 0; i-- {
		s := upper(window[i])
		choices := a.table[s]
		if len(choices) == 0 {
			return nil, &UnknownSymbolError{Symbol: s, Alphabet: a.name}
		}
		if out == nil {
			out = make([][]byte, 0, len(choices))
			for _, c := range choices {
				p := make([]byte, 1, len(window))
				p[0] = c
				out = append(out, p)
			}
			continue
		}
		n := len(out)
		next := make([][]byte, n, n*len(choices))
		for j, p := range out {
			next[j] = extend(p, choices[0], len(window))
		}
		for _, p := range out {
			for _, c := range choices[1:] {
				next = append(next, extend(p, c, len(window)))
			}
		}
		out = next
	}

	res := make([]string, len(out))
	for i, p := range out {
		res[i] = string(p)
	}
	return res, nil
}

// extend returns a fresh copy of p with c appended so no two partials share
// a backing array.
func extend(p []byte, c byte, capHint int) []byte {
	q := make([]byte, len(p)+1, max(capHint, len(p)+1))
	copy(q, p)
	q[len(p)] = c
	return q
}

// SetSize returns how many strings Expand would produce for window,
// without building them. Unknown symbols count as zero choices.
func SetSize(window []byte, a *Alphabet) int {
	if len(window) == 0 {
		return 0
	}
	n := 1
	for _, s := range window {
		n *= len(a.table[upper(s)])
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
