// Package command maps paired per-axis accelerations to the nine keypad
// symbols of the output stream and back.
//
//	7 8 9    (-1,+1) (0,+1) (+1,+1)
//	4 5 6    (-1, 0) (0, 0) (+1, 0)
//	1 2 3    (-1,-1) (0,-1) (+1,-1)
package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAcceleration = errors.New("acceleration out of range")
	ErrInvalidSymbol       = errors.New("invalid command symbol")
)

// Acceleration is one time step's pair of per-axis accelerations.
type Acceleration struct {
	X int
	Y int
}

// Encode returns the keypad symbol for (ax, ay). Both must be in {-1, 0, 1}.
func Encode(ax, ay int) (byte, error) {
	if ax < -1 || ax > 1 || ay < -1 || ay > 1 {
		return 0, fmt.Errorf("(%d, %d): %w", ax, ay, ErrInvalidAcceleration)
	}
	return byte('5' + ax + 3*ay), nil
}

// Decode is the inverse of Encode.
func Decode(c byte) (Acceleration, error) {
	if c < '1' || c > '9' {
		return Acceleration{}, fmt.Errorf("%q: %w", c, ErrInvalidSymbol)
	}
	d := int(c - '1')
	return Acceleration{X: d%3 - 1, Y: d/3 - 1}, nil
}

// EncodeAxes zips two per-axis sequences of equal length into symbols.
func EncodeAxes(xs, ys []int) (string, error) {
	if len(xs) != len(ys) {
		return "", fmt.Errorf("axis lengths differ: x=%d y=%d", len(xs), len(ys))
	}
	var sb strings.Builder
	sb.Grow(len(xs))
	for i := range xs {
		c, err := Encode(xs[i], ys[i])
		if err != nil {
			return "", fmt.Errorf("step %d: %w", i, err)
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// DecodeString decodes a whole command stream.
func DecodeString(s string) ([]Acceleration, error) {
	out := make([]Acceleration, len(s))
	for i := range len(s) {
		a, err := Decode(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = a
	}
	return out, nil
}
