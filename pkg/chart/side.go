package chart

import "github.com/matzehuels/annotick/pkg/errors"

// Side identifies one of the four edges of a plot a tick label can belong to.
type Side int

// The four axis sides. Bottom/Top belong to the x axis, Left/Right to the y axis.
const (
	Bottom Side = iota
	Top
	Left
	Right
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Horizontal reports whether the side belongs to the x axis, i.e. whether
// labels on it run along the horizontal direction.
func (s Side) Horizontal() bool {
	return s == Bottom || s == Top
}

// Near reports whether the side is adjacent to the plot origin (bottom or
// left). Labels on near sides shift away from the plot in the negative
// perpendicular direction.
func (s Side) Near() bool {
	return s == Bottom || s == Left
}

// ParseSide converts a single side name into a Side.
func ParseSide(name string) (Side, error) {
	switch name {
	case "bottom":
		return Bottom, nil
	case "top":
		return Top, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidAxis,
		"axis %q is not valid; possible values are: xaxis, yaxis, bottom, top, left, right", name)
}

// ParseAxis converts an axis name into the sides it covers: "xaxis" maps to
// bottom and top, "yaxis" to left and right, and a single side name to that
// side alone. Unknown names yield an INVALID_AXIS error.
func ParseAxis(name string) ([]Side, error) {
	switch name {
	case "xaxis":
		return []Side{Bottom, Top}, nil
	case "yaxis":
		return []Side{Left, Right}, nil
	}
	s, err := ParseSide(name)
	if err != nil {
		return nil, err
	}
	return []Side{s}, nil
}

// Sides lists all four sides in a stable order.
func Sides() []Side {
	return []Side{Bottom, Top, Left, Right}
}
