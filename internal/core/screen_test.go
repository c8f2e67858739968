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
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '▬', ColorTeal)
	c := s.GetCell(3, 2)
	if c.Rune != '▬' || c.Color != ColorTeal {
		t.Errorf("GetCell(3, 2) = %+v, expected teal '▬'", c)
	}

	s.Set(4, 2, 'x')
	if s.GetCell(4, 2).Color != ColorDefault {
		t.Error("Set should use the default color")
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(10, 0, 'A', ColorRed)
	s.SetColored(0, 5, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(NewRect(0, 0, 6, 3), '#')
	s.Clear()

	for y := 0; y < 3; y++ {
		if row := s.Row(y); row != "      " {
			t.Errorf("Row %d after Clear = %q", y, row)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextColored(2, 0, "Score: 10", ColorCoral)

	if row := s.Row(0); row != "  Score: 10 " {
		t.Errorf("Row(0) = %q", row)
	}
	if s.GetCell(2, 0).Color != ColorCoral {
		t.Error("DrawTextColored should color the text")
	}

	// Clipped on the right
	s.DrawText(9, 1, "abcdef")
	if row := s.Row(1); row != "         abc" {
		t.Errorf("Row(1) = %q, expected clipped text", row)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "╭─╮")
	if s.Get(1, 0) != '─' || s.Get(2, 0) != '╮' {
		t.Errorf("multibyte runes should occupy one cell each, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "PAUSE", ColorDefault)
	if row := s.Row(0); row != "   PAUSE   " {
		t.Errorf("Row(0) = %q", row)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := []string{
		"╭───╮",
		"│   │",
		"╰───╯",
	}
	for y, want := range expected {
		if row := s.Row(y); row != want {
			t.Errorf("Row(%d) = %q, expected %q", y, row, want)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawHLine(1, 0, 4, '▬', ColorTeal)
	if row := s.Row(0); row != " ▬▬▬▬   " {
		t.Errorf("Row(0) = %q", row)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'x')
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize() = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should blank the buffer")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" || lines[1] != "def" {
		t.Errorf("String() = %q", s.String())
	}
}
