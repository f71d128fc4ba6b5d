package rope

import (
	"slices"
	"testing"

	"github.com/dshills/cartesian/internal/engine/treap"
)

// FuzzSliceConcat tests that cutting a rope into three pieces and joining
// them back reproduces the input.
func FuzzSliceConcat(f *testing.F) {
	f.Add([]byte("hello world"), 3, 7)
	f.Add([]byte(""), 0, 0)
	f.Add([]byte("abcdefghijklmnopqrstuvwxyz0123456789"), 31, 33)

	f.Fuzz(func(t *testing.T, data []byte, i, j int) {
		i = min(max(i, 0), len(data))
		j = min(max(j, i), len(data))

		r := FromSlice(data)
		a, err := r.Slice(0, i)
		if err != nil {
			t.Fatal(err)
		}
		b, err := r.Slice(i, j)
		if err != nil {
			t.Fatal(err)
		}
		c, err := r.Range(j)
		if err != nil {
			t.Fatal(err)
		}

		joined := a.Concat(b).Concat(c)
		if !Equal(joined, data) {
			t.Fatalf("rejoined content mismatch at %d/%d", i, j)
		}
		if !slices.Equal(b.Items(), data[i:j]) {
			t.Fatalf("middle slice mismatch at %d/%d", i, j)
		}
		if err := joined.CheckInvariants(); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzIndex tests indexing against a plain slice after random concatenation.
func FuzzIndex(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5}, []byte{2, 2, 1}, 4)
	f.Add([]byte{9}, []byte{1}, 0)

	f.Fuzz(func(t *testing.T, data, cuts []byte, threshold int) {
		if threshold < 0 || threshold > 64 {
			return
		}
		prev := treap.SetDirectCopyThreshold(threshold)
		defer treap.SetDirectCopyThreshold(prev)

		var r Rope[byte]
		rest := data
		for _, c := range cuts {
			n := min(int(c), len(rest))
			r = r.Concat(FromSlice(rest[:n]))
			rest = rest[n:]
		}
		r = r.Concat(FromSlice(rest))

		for i, want := range data {
			got, err := r.Index(i)
			if err != nil || got != want {
				t.Fatalf("Index(%d) = %d, %v; want %d", i, got, err, want)
			}
		}
		if _, err := r.Index(len(data)); err == nil {
			t.Fatal("expected out of range error")
		}
	})
}
