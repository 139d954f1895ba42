// Package diff computes minimal line edit scripts using the Myers
// O((N+M)D) greedy algorithm. The search is fully deterministic: for two
// equal inputs it yields an empty script, and among multiple minimal
// scripts it always prefers deletions before insertions at a given
// position, so callers get byte-identical scripts on every run.
package diff

// EditOp tags a single step of an edit script.
type EditOp int

const (
	// OpKeep marks a line present in both files. Keep edits track
	// alignment during scripting and never leave this package's callers'
	// exposed output.
	OpKeep EditOp = iota
	// OpDelete marks a line removed from file A.
	OpDelete
	// OpInsert marks a line added in file B.
	OpInsert
)

// String returns the operation name.
func (op EditOp) String() string {
	switch op {
	case OpKeep:
		return "Keep"
	case OpDelete:
		return "Delete"
	case OpInsert:
		return "Insert"
	default:
		return "Unknown"
	}
}

// Edit is one step of an edit script. AIndex and BIndex are 0-based line
// indexes into the respective inputs: for OpDelete, AIndex names the removed
// line; for OpInsert, BIndex names the added line; for OpKeep both are set.
type Edit struct {
	Op     EditOp
	AIndex int
	BIndex int
}

// Lines computes the shortest edit script transforming a into b. Lines are
// compared for exact equality. The algorithm is total: empty inputs yield
// all-insert or all-delete scripts, equal inputs an all-keep script.
func Lines(a, b []string) []Edit {
	n := len(a)
	m := len(b)
	maxD := n + m
	if maxD == 0 {
		return nil
	}

	// v[k+offset] holds the furthest x reached on diagonal k after each
	// round; the per-round snapshots in trace drive the backtrack.
	v := make([]int, 2*maxD+1)
	offset := maxD
	trace := make([][]int, 0, maxD+1)

	for d := 0; d <= maxD; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			idx := k + offset

			// Extending from the diagonal below (k+1) is an insertion,
			// from above (k-1) a deletion. Taking the k-1 path on ties
			// keeps deletions ahead of insertions in the final script.
			var x int
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1]
			} else {
				x = v[idx-1] + 1
			}

			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			v[idx] = x

			if x >= n && y >= m {
				return backtrack(trace, a, b, d)
			}
		}
	}

	return nil
}

// backtrack walks the search trace from (n, m) back to the origin and
// reconstructs the edit script in forward order.
func backtrack(trace [][]int, a, b []string, d int) []Edit {
	var edits []Edit
	x := len(a)
	y := len(b)
	offset := len(a) + len(b)

	for traceD := d; traceD >= 0; traceD-- {
		v := trace[traceD]
		k := x - y
		idx := k + offset

		var prevK int
		if k == -traceD || (k != traceD && v[idx-1] < v[idx+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := 0
		if traceD > 0 {
			prevX = v[prevK+offset]
		}
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			edits = append(edits, Edit{Op: OpKeep, AIndex: x, BIndex: y})
		}

		if traceD > 0 {
			if x > prevX {
				x--
				edits = append(edits, Edit{Op: OpDelete, AIndex: x, BIndex: y})
			} else if y > prevY {
				y--
				edits = append(edits, Edit{Op: OpInsert, AIndex: x, BIndex: y})
			}
		}
	}

	reverse(edits)
	return edits
}

func reverse(edits []Edit) {
	for i, j := 0, len(edits)-1; i < j; i, j = i+1, j-1 {
		edits[i], edits[j] = edits[j], edits[i]
	}
}
