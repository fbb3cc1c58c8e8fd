package path

import (
	"github.com/wrenfield/trajcore/pkg/curve"
	"github.com/wrenfield/trajcore/pkg/geomath"
)

// PointTurn is a stationary path segment: position is fixed while
// heading sweeps linearly from startHeading to endHeading over its
// length. positionDeriv and positionSecondDeriv are zero everywhere;
// tanAngle tracks heading, matching the data model's contract for
// point-turn paths.
type PointTurn struct {
	position                 geomath.Vector2d
	length                   float32
	startHeading, endHeading float32
}

// NewPointTurn builds a point-turn of the given arc length (conventionally
// the absolute heading sweep in radians) centered at position.
func NewPointTurn(position geomath.Vector2d, length, startHeading, endHeading float32) PointTurn {
	return PointTurn{position: position, length: length, startHeading: startHeading, endHeading: endHeading}
}

func (p PointTurn) Length() float32 { return p.length }

func (p PointTurn) PointAt(s float32) PathPoint {
	frac := float32(0)
	if p.length > 0 {
		frac = s / p.length
	}
	heading := p.startHeading + frac*(p.endHeading-p.startHeading)
	headingDeriv := float32(0)
	if p.length > 0 {
		headingDeriv = (p.endHeading - p.startHeading) / p.length
	}

	return PathPoint{
		CurvePoint: curvePointAt(p.position, s, heading, headingDeriv),
		Heading:    heading, HeadingDeriv: headingDeriv, HeadingSecondDeriv: 0,
	}
}

func (p PointTurn) Stepper() Stepper { return pointTurnStepper{p: p} }

func (p PointTurn) Reversed() Path { return reversedPath{inner: p} }

type pointTurnStepper struct{ p PointTurn }

func (s pointTurnStepper) StepTo(length float32) PathPoint { return s.p.PointAt(length) }

// curvePointAt builds the zero-translation CurvePoint a point turn
// presents at arc length s: position fixed, tangent angle and its
// derivative equal to heading and headingDeriv.
func curvePointAt(position geomath.Vector2d, s, heading, headingDeriv float32) curve.CurvePoint {
	return curve.CurvePoint{
		Length:              s,
		Position:            position,
		PositionDeriv:       geomath.Zero2d,
		PositionSecondDeriv: geomath.Zero2d,
		TanAngle:            heading,
		TanAngleDeriv:       headingDeriv,
		TanAngleSecondDeriv: 0,
	}
}
