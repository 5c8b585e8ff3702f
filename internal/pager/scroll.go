package pager

// Scroll is the vertical position of a Height-row window over Rows rows.
//
// Offset stays in [0, Rows-1]; moving down stops while the window's last row
// is still above the final buffer row.
type Scroll struct {
	Offset int
	Height int
	Rows   int
}

// Up moves one row up. It reports whether the offset changed.
func (s *Scroll) Up() bool {
	if s.Offset > 0 {
		s.Offset--
		return true
	}
	return false
}

// Down moves one row down. It reports whether the offset changed.
func (s *Scroll) Down() bool {
	if s.Offset+s.Height < s.Rows-1 {
		s.Offset++
		return true
	}
	return false
}

// PageUp and PageDown move by up to one window height.
func (s *Scroll) PageUp() {
	for i := 0; i < s.Height && s.Up(); i++ {
	}
}

func (s *Scroll) PageDown() {
	for i := 0; i < s.Height && s.Down(); i++ {
	}
}

func (s *Scroll) Top() { s.Offset = 0 }

func (s *Scroll) Bottom() {
	for s.Down() {
	}
}

// Clamp pulls Offset back into range after Height or Rows changed.
func (s *Scroll) Clamp() {
	upper := s.Rows - 1 - s.Height
	if upper < 0 {
		upper = 0
	}
	if s.Offset > upper {
		s.Offset = upper
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// Percent is the progress figure shown in the status line. Short documents
// can report more than 100.
func (s Scroll) Percent() int {
	if s.Rows <= 0 {
		return 100
	}
	return (s.Offset + s.Height + 1) * 100 / s.Rows
}

// Visible returns the half-open row range [from, to) inside the window.
func (s Scroll) Visible() (from, to int) {
	from = s.Offset
	to = s.Offset + s.Height
	if to > s.Rows {
		to = s.Rows
	}
	if from > to {
		from = to
	}
	return from, to
}
