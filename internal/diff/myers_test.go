package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyScript replays an edit script against a and returns the
// reconstructed b sequence.
func applyScript(t *testing.T, a, b []string, edits []Edit) []string {
	t.Helper()

	var out []string
	for _, edit := range edits {
		switch edit.Op {
		case OpKeep:
			out = append(out, a[edit.AIndex])
		case OpInsert:
			out = append(out, b[edit.BIndex])
		case OpDelete:
			// Removed lines contribute nothing.
		}
	}
	return out
}

func scriptLength(edits []Edit) int {
	count := 0
	for _, edit := range edits {
		if edit.Op != OpKeep {
			count++
		}
	}
	return count
}

func TestLines_EditIdentity(t *testing.T) {
	cases := []struct {
		name string
		a    []string
		b    []string
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"replace middle", []string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{"both empty", nil, nil},
		{"empty a", nil, []string{"x", "y"}},
		{"empty b", []string{"x", "y"}, nil},
		{"disjoint", []string{"a", "b"}, []string{"c", "d"}},
		{"shift", []string{"a", "b", "c", "d"}, []string{"b", "c", "d", "e"}},
		{"duplicates", []string{"a", "a", "b", "a"}, []string{"a", "b", "a", "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edits := Lines(tc.a, tc.b)
			assert.Equal(t, tc.b, applyScript(t, tc.a, tc.b, edits))
		})
	}
}

func TestLines_Minimality(t *testing.T) {
	cases := []struct {
		name     string
		a        []string
		b        []string
		distance int
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 0},
		{"single replace", []string{"a", "b", "c"}, []string{"a", "x", "c"}, 2},
		{"pure insert", []string{"a", "c"}, []string{"a", "b", "c"}, 1},
		{"pure delete", []string{"a", "b", "c"}, []string{"a", "c"}, 1},
		{"empty a", nil, []string{"x", "y", "z"}, 3},
		{"empty b", []string{"x", "y", "z"}, nil, 3},
		{"disjoint", []string{"a", "b"}, []string{"c", "d"}, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edits := Lines(tc.a, tc.b)
			assert.Equal(t, tc.distance, scriptLength(edits))
		})
	}
}

func TestLines_DeleteBeforeInsertOnReplace(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}

	edits := Lines(a, b)
	require.Len(t, edits, 4)

	assert.Equal(t, Edit{Op: OpKeep, AIndex: 0, BIndex: 0}, edits[0])
	assert.Equal(t, OpDelete, edits[1].Op)
	assert.Equal(t, 1, edits[1].AIndex)
	assert.Equal(t, OpInsert, edits[2].Op)
	assert.Equal(t, 1, edits[2].BIndex)
	assert.Equal(t, Edit{Op: OpKeep, AIndex: 2, BIndex: 2}, edits[3])
}

func TestLines_Deterministic(t *testing.T) {
	a := []string{"one", "two", "three", "four"}
	b := []string{"one", "2", "three", "4", "five"}

	first := Lines(a, b)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Lines(a, b))
	}
}

func TestLines_EqualSequencesYieldOnlyKeeps(t *testing.T) {
	a := []string{"x", "y", "z"}

	edits := Lines(a, a)
	require.Len(t, edits, 3)
	for _, edit := range edits {
		assert.Equal(t, OpKeep, edit.Op)
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line no newline", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone newline", "\n", []string{""}},
		{"blank middle line", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitLines(tc.content))
		})
	}
}
