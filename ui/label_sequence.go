package ui

const initialRune = 'A'

// labelSequence yields A to Z, then AA, AB and so on.
type labelSequence struct {
	count int
}

func (s *labelSequence) next() string {
	n := s.count
	s.count++
	label := ""
	for n >= 0 {
		label = string(rune(initialRune+n%26)) + label
		n = n/26 - 1
	}
	return label
}
