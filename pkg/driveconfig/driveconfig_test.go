package driveconfig

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDifferentialRoundTrip(t *testing.T) {
	spec := Spec{
		Kind:        KindDifferential,
		WheelRadius: 0.05,
		TrackWidth:  0.3,
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, spec))

	d, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, d.NumMotors)
}

func TestMecanumWithElectricalRoundTrip(t *testing.T) {
	spec := Spec{
		Kind:        KindMecanum,
		WheelRadius: 0.05,
		BaseX:       0.3,
		BaseY:       0.3,
		Electrical: &ElectricalSpec{
			Inertia:                 0.002,
			VoltsPerTorque:          10,
			VoltsPerAngularVelocity: 0.1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, spec))

	d, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, d.NumMotors)
	require.Len(t, d.ElectricalModels, 4)
}

func TestSwerveRoundTrip(t *testing.T) {
	spec := Spec{
		Kind:        KindSwerve,
		WheelRadius: 0.05,
		HalfBase:    0.2,
		HalfTrack:   0.3,
		SteerAngles: [4]float32{0, 0, 0, 0},
	}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, spec))

	d, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, d.NumMotors)
}

func TestUnknownKindErrors(t *testing.T) {
	_, err := Spec{Kind: "bogus"}.Build()
	require.Error(t, err)
}
