package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrTemperatureOutOfRange = errors.New("temperature out of range")
	ErrPressureOutOfRange    = errors.New("pressure out of range")
)

// Limits 输入范围，单位 ℃ 和 MPa，闭区间
type Limits struct {
	MinTemperature float64
	MaxTemperature float64
	MinPressure    float64
	MaxPressure    float64
}

func DefaultLimits() Limits {
	return Limits{
		MinTemperature: 0,
		MaxTemperature: 100,
		MinPressure:    0,
		MaxPressure:    98,
	}
}

// Validate NaN 也视为超出范围
func (l Limits) Validate(temperatureCelsius, pressureMPa float64) error {
	if !(temperatureCelsius >= l.MinTemperature && temperatureCelsius <= l.MaxTemperature) {
		return fmt.Errorf("%w: %g °C not in [%g, %g]",
			ErrTemperatureOutOfRange, temperatureCelsius, l.MinTemperature, l.MaxTemperature)
	}
	if !(pressureMPa >= l.MinPressure && pressureMPa <= l.MaxPressure) {
		return fmt.Errorf("%w: %g MPa not in [%g, %g]",
			ErrPressureOutOfRange, pressureMPa, l.MinPressure, l.MaxPressure)
	}
	return nil
}
