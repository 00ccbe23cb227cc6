package detection

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the recognized shape.
type Kind int

const (
	// Unrecognized means no rule of the decision tree matched.
	Unrecognized Kind = iota

	// Triangle is reported when two of the four border points coincide.
	Triangle

	// Circle is reported when the boundary between the rightmost and
	// bottommost points is curved.
	Circle

	// Square is an axis-aligned or 45° rotated shape with equal diagonals
	// and equal sides.
	Square

	// Rectangle has equal diagonals but unequal sides.
	Rectangle
)

var kindNames = [...]string{
	Unrecognized: "unrecognized",
	Triangle:     "triangle",
	Circle:       "circle",
	Square:       "square",
	Rectangle:    "rectangle",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown shape kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape kind %q", text)
}

// Shape is the outcome of one classification. Kind selects which of the
// measurement fields are meaningful:
//
//	Triangle:  Side, AngleA, AngleB
//	Circle:    Radius
//	Square:    Side
//	Rectangle: SideX, SideY
//
// Lengths are in pixels and angles in radians.
type Shape struct {
	Kind Kind

	// Side is the measured triangle side or the square's side.
	Side float64

	// AngleA and AngleB are the triangle's angles at the two ends of Side.
	AngleA float64
	AngleB float64

	Radius float64

	// SideX is measured from the topmost to the rightmost point and SideY
	// from the bottommost to the rightmost point.
	SideX float64
	SideY float64
}

// Recognized reports whether a rule of the decision tree matched.
func (s Shape) Recognized() bool {
	return s.Kind != Unrecognized
}

// String renders the shape as a one-line report, e.g.
// "Rectangle with sides 6.00 x 3.00".
func (s Shape) String() string {
	switch s.Kind {
	case Triangle:
		return fmt.Sprintf("Triangle with side %.2f and angles %.2f, %.2f", s.Side, s.AngleA, s.AngleB)
	case Circle:
		return fmt.Sprintf("Circle with radius %.2f", s.Radius)
	case Square:
		return fmt.Sprintf("Square with side %.2f", s.Side)
	case Rectangle:
		return fmt.Sprintf("Rectangle with sides %.2f x %.2f", s.SideX, s.SideY)
	default:
		return "Unrecognized shape"
	}
}

type shapeJSON struct {
	Kind    Kind     `json:"kind"`
	Side    *float64 `json:"side,omitempty"`
	AngleA  *float64 `json:"angle_a,omitempty"`
	AngleB  *float64 `json:"angle_b,omitempty"`
	Radius  *float64 `json:"radius,omitempty"`
	SideX   *float64 `json:"side_x,omitempty"`
	SideY   *float64 `json:"side_y,omitempty"`
	Message string   `json:"message"`
}

// MarshalJSON emits the kind, the measurements of that kind only, and the
// rendered message.
func (s Shape) MarshalJSON() ([]byte, error) {
	out := shapeJSON{Kind: s.Kind, Message: s.String()}
	switch s.Kind {
	case Triangle:
		out.Side, out.AngleA, out.AngleB = &s.Side, &s.AngleA, &s.AngleB
	case Circle:
		out.Radius = &s.Radius
	case Square:
		out.Side = &s.Side
	case Rectangle:
		out.SideX, out.SideY = &s.SideX, &s.SideY
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON. The message is ignored.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var in shapeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	deref := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}

	*s = Shape{
		Kind:   in.Kind,
		Side:   deref(in.Side),
		AngleA: deref(in.AngleA),
		AngleB: deref(in.AngleB),
		Radius: deref(in.Radius),
		SideX:  deref(in.SideX),
		SideY:  deref(in.SideY),
	}
	return nil
}
