package bank

import (
	"path/filepath"
	"testing"
)

func TestCollisionResolver(t *testing.T) {
	out := "/data/output"

	t.Run("no collision returns base name", func(t *testing.T) {
		cr := NewCollisionResolver()
		got := cr.Resolve("/in/music.bnk", out, "music")
		if want := filepath.Join(out, "music"); got != want {
			t.Errorf("Resolve = %q, want %q", got, want)
		}
	})

	t.Run("same container resolves to same directory", func(t *testing.T) {
		cr := NewCollisionResolver()
		first := cr.Resolve("/in/music.bnk", out, "music")
		second := cr.Resolve("/in/music.bnk", out, "music")
		if first != second {
			t.Errorf("repeat Resolve = %q, want %q", second, first)
		}
	})

	t.Run("colliding base names get numbered suffixes", func(t *testing.T) {
		cr := NewCollisionResolver()
		a := cr.Resolve("/in/music.bnk", out, "music")
		b := cr.Resolve("/in/music.BNK", out, "music")
		c := cr.Resolve("/in/sub/music.bnk", out, "music")

		if a != filepath.Join(out, "music") {
			t.Errorf("first = %q", a)
		}
		if b != filepath.Join(out, "music (2)") {
			t.Errorf("second = %q", b)
		}
		if c != filepath.Join(out, "music (3)") {
			t.Errorf("third = %q", c)
		}
	})

	t.Run("distinct base names never collide", func(t *testing.T) {
		cr := NewCollisionResolver()
		a := cr.Resolve("/in/a.bnk", out, "a")
		b := cr.Resolve("/in/b.bnk", out, "b")
		if a == b {
			t.Errorf("distinct inputs resolved to same directory %q", a)
		}
	})
}
