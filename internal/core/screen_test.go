package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '█', ColorMaroon)
	cell := s.GetCell(3, 2)
	if cell.Rune != '█' || cell.Color != ColorMaroon {
		t.Errorf("GetCell(3, 2) = %+v, expected red block", cell)
	}

	// Out of bounds writes are ignored and reads return blank
	s.SetColored(-1, 0, 'X', ColorNavy)
	s.SetColored(10, 0, 'X', ColorNavy)
	if got := s.GetCell(20, 20); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '#', ColorNavy)
	s.Clear()

	if got := s.GetCell(1, 1); got != blank {
		t.Errorf("after Clear() cell = %+v, expected blank", got)
	}
}

func TestScreenDrawColoredText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawColoredText(2, 1, "RED 12", ColorMaroon)

	if got := s.Row(1); !strings.HasPrefix(got, "  RED 12") {
		t.Errorf("Row(1) = %q, expected text at column 2", got)
	}
	if s.GetCell(2, 1).Color != ColorMaroon {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(1, 1, 2, 2), '#', ColorNavy)

	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' {
		t.Error("DrawRect should fill the interior")
	}
	if s.Get(3, 3) != ' ' {
		t.Error("DrawRect should not draw past its bounds")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("Resize() size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize() should clear content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q, expected %q", got, "abc\nde ")
	}
}
