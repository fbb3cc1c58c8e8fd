// Package driveconfig is an optional YAML round-trip for drive
// geometry: callers who keep platform geometry as data rather than Go
// literals can Load a drivemodel.DriveModel from a file and Save the
// Spec it is built from. Mirrors the teacher's x/marshaller/yaml thin Marshal/
// Unmarshal pair, scaled down to the handful of scalar fields a drive
// geometry needs instead of that package's generic model/layer/tensor
// dispatch.
package driveconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wrenfield/trajcore/pkg/drivemodel"
)

// Kind discriminates which factory Build dispatches to.
type Kind string

const (
	KindDifferential Kind = "differential"
	KindMecanum      Kind = "mecanum"
	KindSwerve       Kind = "swerve"
)

// Spec is the serializable geometry a drive platform is built from.
// Only the fields relevant to Kind are populated; Build ignores the
// rest.
type Spec struct {
	Kind Kind `yaml:"kind"`

	WheelRadius float32 `yaml:"wheelRadius"`

	// Differential
	TrackWidth float32 `yaml:"trackWidth,omitempty"`

	// Mecanum
	BaseX float32 `yaml:"baseX,omitempty"`
	BaseY float32 `yaml:"baseY,omitempty"`

	// Swerve
	HalfBase    float32    `yaml:"halfBase,omitempty"`
	HalfTrack   float32    `yaml:"halfTrack,omitempty"`
	SteerAngles [4]float32 `yaml:"steerAngles,omitempty"`

	Electrical *ElectricalSpec `yaml:"electrical,omitempty"`
}

// ElectricalSpec is the serializable form of a uniform
// drivemodel.MotorElectricalModel applied to every motor.
type ElectricalSpec struct {
	Inertia                 float32 `yaml:"inertia"`
	VoltsPerTorque          float32 `yaml:"voltsPerTorque"`
	VoltsPerAngularVelocity float32 `yaml:"voltsPerAngularVelocity"`
}

// Build constructs the DriveModel the Spec describes.
func (s Spec) Build() (drivemodel.DriveModel, error) {
	var d drivemodel.DriveModel
	switch s.Kind {
	case KindDifferential:
		d = drivemodel.NewDifferentialDrive(s.WheelRadius, s.TrackWidth)
	case KindMecanum:
		d = drivemodel.NewMecanumDrive(s.WheelRadius, s.BaseX, s.BaseY)
	case KindSwerve:
		d = drivemodel.NewSwerveDrive(s.WheelRadius, s.HalfBase, s.HalfTrack, s.SteerAngles)
	default:
		return drivemodel.DriveModel{}, fmt.Errorf("driveconfig: unknown kind %q", s.Kind)
	}

	if s.Electrical != nil {
		models := drivemodel.UniformElectricalModels(d.NumMotors, drivemodel.MotorElectricalModel{
			Inertia:                 s.Electrical.Inertia,
			VoltsPerTorque:          s.Electrical.VoltsPerTorque,
			VoltsPerAngularVelocity: s.Electrical.VoltsPerAngularVelocity,
		})
		d = d.WithElectricalModels(models)
	}

	return d, nil
}

// Load reads a Spec from YAML and builds the DriveModel it describes.
func Load(r io.Reader) (drivemodel.DriveModel, error) {
	var spec Spec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return drivemodel.DriveModel{}, fmt.Errorf("driveconfig: decode: %w", err)
	}
	return spec.Build()
}

// Save writes spec as YAML.
func Save(w io.Writer, spec Spec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("driveconfig: encode: %w", err)
	}
	return nil
}
