package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(31, 16)

	if s.Width() != 31 || s.Height() != 16 {
		t.Fatalf("size = %dx%d, expected 31x16", s.Width(), s.Height())
	}
	blank := strings.Repeat(" ", 31)
	for y := range s.Height() {
		if row := s.Row(y); row != blank {
			t.Fatalf("row %d = %q, expected blank", y, row)
		}
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(6, 2)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 6, 0},
		{"above", 0, -1},
		{"below", 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetWithColor(tc.x, tc.y, '#', ColorRed)
			if c := s.GetCell(tc.x, tc.y); c != (Cell{Rune: ' '}) {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tc.x, tc.y, c)
			}
		})
	}

	// Text running past the right edge is cut, not wrapped.
	s.DrawText(3, 0, "2048")
	if got := s.String(); got != "   204\n      " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(4, 3)

	s.Fill('.')
	if got := s.String(); got != "....\n....\n...." {
		t.Errorf("after Fill: %q", got)
	}

	s.DrawTextColor(0, 1, "ab", ColorGreen)
	s.Clear()
	for y := range 3 {
		for x := range 4 {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("after Clear (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		x     int
	}{
		{10, "Hi", 4},
		{11, "Hi", 4},
		{9, "GAME OVER", 0},
	}
	for _, tc := range tests {
		s := NewScreen(tc.width, 1)
		s.DrawTextCentered(0, tc.text)
		if idx := strings.Index(s.Row(0), tc.text); idx != tc.x {
			t.Errorf("width %d: %q drawn at %d, expected %d", tc.width, tc.text, idx, tc.x)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorGray)

	expected := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
	if c := s.GetCell(1, 1); c.Color != ColorGray {
		t.Errorf("border colour = %d, expected ColorGray", c.Color)
	}
	if c := s.GetCell(3, 2); c.Color != ColorDefault {
		t.Errorf("interior should stay uncoloured, got %d", c.Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawTextColor(0, 0, "Score", ColorBrightYellow)
	s.DrawText(0, 5, "footer")

	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Score") {
		t.Errorf("row 0 = %q, expected content kept", s.Row(0))
	}
	if c := s.GetCell(0, 0); c.Color != ColorBrightYellow {
		t.Errorf("colour lost on resize: %+v", c)
	}

	s.Resize(12, 6)
	if !strings.HasPrefix(s.Row(0), "Score") {
		t.Errorf("row 0 = %q after growing", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("rows cut by shrinking should come back blank, got %q", s.Row(5))
	}
	if s.Row(-1) != strings.Repeat(" ", 12) {
		t.Errorf("out of range Row = %q", s.Row(-1))
	}
}

func TestScreenGetReadsRune(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetWithColor(1, 0, '4', ColorCyan)

	if s.Get(1, 0) != '4' {
		t.Errorf("Get = %q, expected '4'", s.Get(1, 0))
	}
	if s.Get(5, 0) != ' ' {
		t.Errorf("out of range Get = %q", s.Get(5, 0))
	}
}
