package String_View

import (
	"testing"

	"String_View/buffer"
)

func TestEqualString(t *testing.T) {
	buf := buffer.NewFromString("abc")
	v := NewView(buf)

	if !v.EqualString("abc") {
		t.Fatal("view over \"abc\" should equal \"abc\"")
	}
	if v.EqualString("xyz") {
		t.Fatal("view over \"abc\" should not equal \"xyz\"")
	}
	if v.EqualString("ab") || v.EqualString("abcd") {
		t.Fatal("length mismatch should never compare equal")
	}

	var absent View
	if !absent.EqualString("") {
		t.Fatal("absent view should equal the empty string")
	}
	if absent.EqualString("a") {
		t.Fatal("absent view should not equal a non-empty string")
	}
}

func TestEqualByte(t *testing.T) {
	buf := buffer.NewFromString("abc")

	v := NewViewRange(buf, 1, 1)
	if !v.EqualByte('b') {
		t.Fatal("single-byte view over 'b' should equal 'b'")
	}
	if v.EqualByte('c') {
		t.Fatal("single-byte view over 'b' should not equal 'c'")
	}

	longer := NewViewRange(buf, 1, 2)
	if longer.EqualByte('b') {
		t.Fatal("two-byte view should never equal a single byte")
	}

	var absent View
	if absent.EqualByte(0) {
		t.Fatal("absent view should never equal a byte")
	}
}

func TestEqualView(t *testing.T) {
	buf1 := buffer.NewFromString("abc")
	v1 := NewView(buf1)
	v1b := NewView(buf1)
	if !v1.Equal(v1b) {
		t.Fatal("two whole-buffer views of the same buffer should be equal")
	}

	buf2 := buffer.NewFromString("xyz")
	if v1.Equal(NewView(buf2)) {
		t.Fatal("views with different bytes should not be equal")
	}

	// Empty forms are interchangeable in both directions.
	var absent View
	if !absent.Equal(View{}) {
		t.Fatal("two absent views should be equal")
	}
	if !absent.Equal(NewViewRange(buf2, 0, 0)) {
		t.Fatal("absent view should equal a zero-length view")
	}
	if !NewViewRange(buf2, 0, 0).Equal(absent) {
		t.Fatal("zero-length view should equal an absent view")
	}

	// Same buffer, different offsets, identical bytes.
	buf3 := buffer.NewFromString("abcabc")
	if !NewViewRange(buf3, 0, 3).Equal(NewViewRange(buf3, 3, 3)) {
		t.Fatal("repeated content at different offsets should be equal")
	}
	if !NewViewRange(buf3, 1, 2).Equal(NewViewRange(buf3, 4, 2)) {
		t.Fatal("repeated content at different offsets should be equal")
	}

	// Different buffers, identical visible bytes.
	a := NewViewAt(buffer.NewFromString("foobar"), 3)
	b := NewViewRange(buffer.NewFromString("xxxbar"), 3, 3)
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatal("identical visible bytes over different buffers should be equal")
	}
	if a.Compare(b) != 0 || b.Compare(a) != 0 {
		t.Fatal("identical visible bytes should compare as 0")
	}
}

func TestEqualBuffer(t *testing.T) {
	buf := buffer.NewFromString("abc")
	v := NewView(buf)

	if !v.EqualBuffer(buf) {
		t.Fatal("whole-buffer view should equal its own buffer")
	}
	if !v.EqualBuffer(buffer.NewFromString("abc")) {
		t.Fatal("view should equal a different buffer with the same bytes")
	}
	if v.EqualBuffer(buffer.New()) {
		t.Fatal("non-empty view should not equal an empty buffer")
	}
	if v.EqualBuffer(nil) {
		t.Fatal("non-empty view should not equal a nil buffer")
	}

	var absent View
	if !absent.EqualBuffer(nil) || !absent.EqualBuffer(buffer.New()) {
		t.Fatal("absent view should equal nil and empty buffers")
	}
}

func TestCompare(t *testing.T) {
	buf := buffer.NewFromString("abcdef")
	def := NewViewRange(buf, 3, 3)
	abc := NewViewRange(buf, 0, 3)

	if got := def.Compare(abc); got != 1 {
		t.Fatalf("Compare(def, abc) = %d, want 1", got)
	}
	if got := abc.Compare(def); got != -1 {
		t.Fatalf("Compare(abc, def) = %d, want -1", got)
	}

	// Equal length, equal bytes.
	if got := abc.Compare(NewView(buffer.NewFromString("abc"))); got != 0 {
		t.Fatalf("Compare of equal views = %d, want 0", got)
	}

	// Matching prefix: the shorter view is less.
	abcabc := NewView(buffer.NewFromString("abcabc"))
	if got := abc.Compare(abcabc); got != -1 {
		t.Fatalf("Compare(abc, abcabc) = %d, want -1", got)
	}
	if got := abcabc.Compare(abc); got != 1 {
		t.Fatalf("Compare(abcabc, abc) = %d, want 1", got)
	}

	// A zero-length view is equal to empty and less than anything else.
	var absent View
	if got := absent.Compare(View{}); got != 0 {
		t.Fatalf("Compare of two empty views = %d, want 0", got)
	}
	if got := absent.Compare(abc); got != -1 {
		t.Fatalf("Compare(empty, abc) = %d, want -1", got)
	}
	if got := abc.Compare(absent); got != 1 {
		t.Fatalf("Compare(abc, empty) = %d, want 1", got)
	}

	// Bytes order as unsigned values.
	hi := NewView(buffer.NewFromBytes([]byte{0xff}))
	lo := NewView(buffer.NewFromBytes([]byte{0x01}))
	if hi.Compare(lo) != 1 || lo.Compare(hi) != -1 {
		t.Fatal("comparison should order bytes as unsigned values")
	}
}

func TestCompareAntisymmetry(t *testing.T) {
	views := []View{
		{},
		NewView(buffer.NewFromString("abc")),
		NewView(buffer.NewFromString("abcabc")),
		NewViewRange(buffer.NewFromString("abcdef"), 3, 3),
		NewViewRange(buffer.NewFromString("xxxbar"), 3, 3),
		NewViewRange(buffer.NewFromString("abc"), 0, 0),
	}

	for i, a := range views {
		if got := a.Compare(a); got != 0 {
			t.Errorf("views[%d]: Compare with itself = %d, want 0", i, got)
		}
		for j, b := range views {
			if a.Compare(b) != -b.Compare(a) {
				t.Errorf("views[%d] vs views[%d]: Compare is not antisymmetric", i, j)
			}
		}
	}
}

func TestCompareBuffer(t *testing.T) {
	def := NewView(buffer.NewFromString("def"))
	abc := NewView(buffer.NewFromString("abc"))

	if got := def.CompareBuffer(buffer.NewFromString("abc")); got != 1 {
		t.Fatalf("CompareBuffer(def, abc) = %d, want 1", got)
	}
	if got := abc.CompareBuffer(buffer.NewFromString("def")); got != -1 {
		t.Fatalf("CompareBuffer(abc, def) = %d, want -1", got)
	}
	if got := abc.CompareBuffer(buffer.NewFromString("abc")); got != 0 {
		t.Fatalf("CompareBuffer(abc, abc) = %d, want 0", got)
	}
	if got := abc.CompareBuffer(buffer.NewFromString("abcabc")); got != -1 {
		t.Fatalf("CompareBuffer(abc, abcabc) = %d, want -1", got)
	}
	if got := abc.CompareBuffer(nil); got != 1 {
		t.Fatalf("CompareBuffer(abc, nil) = %d, want 1", got)
	}
}
