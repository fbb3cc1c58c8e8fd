package geomath

// Pose2d is a planar position plus heading, stored as (x, y, heading) in
// vector form where convenient. Heading is in radians and is not
// automatically normalized; callers needing a canonical range should use
// scalar.NormalizeAngle.
type Pose2d struct {
	Position Vector2d
	Heading  float32
}

// Vec returns the (x, y, heading) triple.
func (p Pose2d) Vec() (x, y, heading float32) {
	return p.Position.X, p.Position.Y, p.Heading
}

// VecRotated rotates only the translation component by theta; heading is
// unchanged, matching the teacher-independent contract in the data model:
// rotating a pose rotates where it is, not which way it points.
func (p Pose2d) VecRotated(theta float32) Pose2d {
	return Pose2d{Position: p.Position.Rotated(theta), Heading: p.Heading}
}

// Add composes two poses by translating and rotating o into p's frame.
func (p Pose2d) Add(o Pose2d) Pose2d {
	return Pose2d{
		Position: p.Position.Add(o.Position.Rotated(p.Heading)),
		Heading:  p.Heading + o.Heading,
	}
}
