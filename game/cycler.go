package game

const (
	left  = -1
	right = 1
)

// Cycler tracks whose turn it is and which way play moves around the table.
type Cycler struct {
	Size      int
	Current   int
	Direction int
}

func NewCycler(size int) Cycler {
	return Cycler{
		Size:      size,
		Current:   0,
		Direction: right,
	}
}

func (c Cycler) Next() Cycler {
	c.Current = (c.Current + c.Direction + c.Size) % c.Size
	return c
}

func (c Cycler) Reverse() Cycler {
	switch c.Direction {
	case right:
		c.Direction = left
	case left:
		c.Direction = right
	}
	return c
}
