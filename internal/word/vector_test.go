package word

import "testing"

func TestVectorResizeGrowFillsInit(t *testing.T) {
	var v Vector[uint8]
	v.Resize(2, 0xAA)
	v.Resize(4, 0x11)

	want := []uint8{0xAA, 0xAA, 0x11, 0x11}
	for i, w := range want {
		if v.At(i) != w {
			t.Errorf("At(%d) = %#x, want %#x", i, v.At(i), w)
		}
	}
	if v.Len() != 4 {
		t.Errorf("Len() = %d, want 4", v.Len())
	}
}

func TestVectorResizeShrinkThenGrowKeepsPrefix(t *testing.T) {
	var v Vector[uint8]
	v.Resize(4, 0)
	v.Set(0, 1)
	v.Set(1, 2)
	v.Set(2, 3)
	v.Set(3, 4)

	v.Resize(2, 0)
	if v.At(0) != 1 || v.At(1) != 2 {
		t.Fatalf("shrink changed surviving prefix: %v", []uint8{v.At(0), v.At(1)})
	}

	v.Resize(4, 0x99)
	if v.At(0) != 1 || v.At(1) != 2 {
		t.Fatalf("regrow changed surviving prefix: %v", []uint8{v.At(0), v.At(1)})
	}
	if v.At(2) != 0x99 || v.At(3) != 0x99 {
		t.Fatalf("regrow did not fill newly exposed words: %v", []uint8{v.At(2), v.At(3)})
	}
}

func TestVectorFill(t *testing.T) {
	var v Vector[uint16]
	v.Resize(3, 0)
	v.Fill(0xBEEF)
	for i := 0; i < 3; i++ {
		if v.At(i) != 0xBEEF {
			t.Errorf("At(%d) = %#x, want 0xBEEF", i, v.At(i))
		}
	}
}

func TestVectorCloneIsIndependent(t *testing.T) {
	var v Vector[uint8]
	v.Resize(2, 7)
	c := v.Clone()
	c.Set(0, 99)
	if v.At(0) == 99 {
		t.Fatal("Clone shares storage with the original")
	}
}

func TestVectorMoveFrom(t *testing.T) {
	var src Vector[uint8]
	src.Resize(2, 5)

	var dst Vector[uint8]
	dst.MoveFrom(&src)

	if dst.Len() != 2 || dst.At(0) != 5 || dst.At(1) != 5 {
		t.Fatalf("MoveFrom did not transfer contents: len=%d", dst.Len())
	}
	if src.Len() != 0 {
		t.Fatalf("MoveFrom left source with Len() = %d, want 0", src.Len())
	}
}

func TestVectorEqual(t *testing.T) {
	var a, b Vector[uint32]
	a.Resize(3, 1)
	b.Resize(3, 1)
	if !a.Equal(&b) {
		t.Fatal("identical vectors compared unequal")
	}
	b.Set(1, 2)
	if a.Equal(&b) {
		t.Fatal("differing vectors compared equal")
	}
}

func TestVectorIterateReverse(t *testing.T) {
	var v Vector[uint8]
	v.Resize(3, 0)
	v.Set(0, 1)
	v.Set(1, 2)
	v.Set(2, 3)

	var seen []uint8
	v.IterateReverse(func(_ int, w uint8) bool {
		seen = append(seen, w)
		return true
	})
	want := []uint8{3, 2, 1}
	for i, w := range want {
		if seen[i] != w {
			t.Fatalf("IterateReverse order = %v, want %v", seen, want)
		}
	}
}
