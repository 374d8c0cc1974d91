package markup

import "testing"

func TestPositionMapLocate(t *testing.T) {
	m := NewPositionMap()
	// "ab\ncd\nef" -- line starts after each \n, at offsets 3 and 6.
	m.NoteLineStart(3)
	m.NoteLineStart(6)

	tests := []struct {
		offset     int
		line, col  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{8, 3, 3},
	}
	for _, tt := range tests {
		line, col := m.Locate(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("Locate(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestPositionMapNoLineStarts(t *testing.T) {
	m := NewPositionMap()
	line, col := m.Locate(10)
	if line != 1 || col != 11 {
		t.Errorf("Locate(10) = (%d,%d), want (1,11)", line, col)
	}
}

func TestPositionMapRejectsOutOfOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-increasing line starts")
		}
	}()
	m := NewPositionMap()
	m.NoteLineStart(5)
	m.NoteLineStart(5)
}
