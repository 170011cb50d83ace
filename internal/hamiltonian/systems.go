package hamiltonian

import (
	"fmt"
	"math"

	"github.com/san-kum/flowmate/internal/phase"
)

// System is a named Hamiltonian system with adjustable parameters.
type System interface {
	Name() string
	Equations() phase.Equations
	Energy(q, p float64) float64
	Params() map[string]float64
	SetParam(name string, value float64) error
}

type HarmonicOscillator struct {
	Mass      float64
	Stiffness float64
}

func NewHarmonicOscillator() *HarmonicOscillator {
	return &HarmonicOscillator{
		Mass:      2.0,
		Stiffness: 10.0,
	}
}

func (s *HarmonicOscillator) Name() string { return "oscillator" }

func (s *HarmonicOscillator) Equations() phase.Equations {
	m, k := s.Mass, s.Stiffness
	return func(q, p float64, args ...float64) (float64, float64) {
		return p / m, -k * q
	}
}

func (s *HarmonicOscillator) Energy(q, p float64) float64 {
	return p*p/(2*s.Mass) + s.Stiffness*q*q/2
}

func (s *HarmonicOscillator) Params() map[string]float64 {
	return map[string]float64{
		"m": s.Mass,
		"k": s.Stiffness,
	}
}

func (s *HarmonicOscillator) SetParam(name string, value float64) error {
	switch name {
	case "m":
		s.Mass = value
	case "k":
		s.Stiffness = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

type Pendulum struct {
	Mass    float64
	Length  float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Mass:    1.0,
		Length:  1.0,
		Gravity: 9.81,
	}
}

func (s *Pendulum) Name() string { return "pendulum" }

func (s *Pendulum) Equations() phase.Equations {
	m, l, g := s.Mass, s.Length, s.Gravity
	return func(q, p float64, args ...float64) (float64, float64) {
		return p / (m * l * l), -m * g * l * math.Sin(q)
	}
}

func (s *Pendulum) Energy(q, p float64) float64 {
	ke := p * p / (2 * s.Mass * s.Length * s.Length)
	pe := s.Mass * s.Gravity * s.Length * (1.0 - math.Cos(q))
	return ke + pe
}

func (s *Pendulum) Params() map[string]float64 {
	return map[string]float64{
		"m": s.Mass,
		"l": s.Length,
		"g": s.Gravity,
	}
}

func (s *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "m":
		s.Mass = value
	case "l":
		s.Length = value
	case "g":
		s.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// DoubleWell is the quartic double-well oscillator. Its portrait shows
// two centers separated by a figure-eight separatrix through the origin.
type DoubleWell struct {
	Linear  float64 // a
	Quartic float64 // b
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{
		Linear:  1.0,
		Quartic: 0.5,
	}
}

func (s *DoubleWell) Name() string { return "doublewell" }

func (s *DoubleWell) Equations() phase.Equations {
	a, b := s.Linear, s.Quartic
	return func(q, p float64, args ...float64) (float64, float64) {
		return p, a*q - b*q*q*q
	}
}

func (s *DoubleWell) Energy(q, p float64) float64 {
	return p*p/2 - s.Linear*q*q/2 + s.Quartic*q*q*q*q/4
}

func (s *DoubleWell) Params() map[string]float64 {
	return map[string]float64{
		"a": s.Linear,
		"b": s.Quartic,
	}
}

func (s *DoubleWell) SetParam(name string, value float64) error {
	switch name {
	case "a":
		s.Linear = value
	case "b":
		s.Quartic = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Onion is the layered-orbit system dq/dt = q*p, dp/dt = -k.
type Onion struct {
	K float64
}

func NewOnion() *Onion {
	return &Onion{K: 3.0}
}

func (s *Onion) Name() string { return "onion" }

func (s *Onion) Equations() phase.Equations {
	k := s.K
	return func(q, p float64, args ...float64) (float64, float64) {
		return q * p, -k
	}
}

// Energy returns the conserved quantity k*q*exp(p^2/(2k)) when q > 0;
// the system has no globally smooth Hamiltonian on the whole plane.
func (s *Onion) Energy(q, p float64) float64 {
	return s.K * q * math.Exp(p*p/(2*s.K))
}

func (s *Onion) Params() map[string]float64 {
	return map[string]float64{"k": s.K}
}

func (s *Onion) SetParam(name string, value float64) error {
	if name != "k" {
		return fmt.Errorf("unknown param: %s", name)
	}
	s.K = value
	return nil
}
