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
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '●', ColorBrightYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != '●' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected ● in bright yellow", cell)
	}

	s.Clear()
	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset colour, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Player - 3")

	if got := s.Row(1); !strings.HasPrefix(got, "  Player - 3") {
		t.Errorf("Row(1) = %q, expected text at column 2", got)
	}

	// Clipped at the right edge
	s.DrawText(17, 0, "abcdef")
	if got := s.Row(0); got[17:] != "abc" {
		t.Errorf("Row(0) tail = %q, expected clipped %q", got[17:], "abc")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if s.GetCell(4, 0).Rune != 'a' || s.GetCell(5, 0).Rune != 'b' {
		t.Errorf("centered text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	corners := map[[2]int]rune{
		{0, 0}: '┌',
		{4, 0}: '┐',
		{0, 3}: '└',
		{4, 3}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.GetCell(2, 0).Rune != '─' || s.GetCell(0, 2).Rune != '│' {
		t.Error("box edges not drawn")
	}
	if s.GetCell(2, 2).Rune != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawHLine(1, 0, 3, '─', ColorGray)
	s.DrawVLine(0, 1, 4, '│', ColorGray)

	for x := 1; x < 4; x++ {
		if cell := s.GetCell(x, 0); cell.Rune != '─' || cell.Color != ColorGray {
			t.Errorf("HLine cell %d = %+v", x, cell)
		}
	}
	if s.GetCell(4, 0).Rune != ' ' {
		t.Error("HLine drew past its length")
	}
	for y := 1; y < 5; y++ {
		if s.GetCell(0, y).Rune != '│' {
			t.Errorf("VLine missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X')
	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Fatalf("Resize() gave %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Resize should discard content")
	}
	if got := s.Row(7); len(got) != 20 {
		t.Errorf("Row length = %d, expected 20", len(got))
	}
}
