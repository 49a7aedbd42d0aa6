package calculator

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGas = errors.New("unknown gas type")

// 气体种类
type GasType string

const (
	Oxygen   GasType = "oxygen"
	Hydrogen GasType = "hydrogen"
)

// 气体临界参数
type GasConstants struct {
	CriticalTemperature float64 // 临界温度 K
	CriticalPressure    float64 // 临界压力 Pa
	AcentricFactor      float64 // 偏心因子
	MolarMass           float64 // 摩尔质量 kg/mol
}

var gasConstants = map[GasType]GasConstants{
	Oxygen: {
		CriticalTemperature: 154.6,
		CriticalPressure:    5.04e6,
		AcentricFactor:      0.022,
		MolarMass:           31.999e-3,
	},
	Hydrogen: {
		CriticalTemperature: 33.2,
		CriticalPressure:    1.31e6,
		AcentricFactor:      -0.216,
		MolarMass:           2.01588e-3,
	},
}

// Gases 支持的气体，顺序固定
func Gases() []GasType {
	return []GasType{Oxygen, Hydrogen}
}

func ParseGasType(s string) (GasType, error) {
	gas := GasType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := gasConstants[gas]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGas, s)
	}
	return gas, nil
}

// Constants 获取气体的临界参数
func Constants(gas GasType) (GasConstants, error) {
	c, ok := gasConstants[gas]
	if !ok {
		return GasConstants{}, fmt.Errorf("%w: %q", ErrUnknownGas, string(gas))
	}
	return c, nil
}
