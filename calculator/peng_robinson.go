package calculator

import (
	"fmt"
	"math"
)

const (
	GasConstant = 8.31446261815324 // 通用气体常数 J/(mol·K)

	ZeroCelsius = 273.15
	MPa         = 1e6
)

// Fallback 理想气体退化策略。
// 三次方程没有可用实根，或者二分法在迭代上限内没有收敛时，结果退化为理想气体近似值而不是报错。
// 此时的密度是近似值，调用方需要精确值时应检查 Result.Fallback。
type Fallback int

const (
	FallbackNone        Fallback = iota
	FallbackIdealZ               // 没有可用实根，Z = 1
	FallbackIdealVolume          // 二分法未收敛，V = max(RT/P, 区间下界)
)

func (f Fallback) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackIdealZ:
		return "ideal_z"
	case FallbackIdealVolume:
		return "ideal_volume"
	default:
		return fmt.Sprintf("fallback(%d)", int(f))
	}
}

// Settings 二分法参数
type Settings struct {
	MaxIterations     int
	Tolerance         float64 // 压力残差收敛判据 Pa
	RootImagTolerance float64 // 虚部小于该值的根视为实根
	CoVolumeEpsilon   float64 // 区间下界 b + ε
}

// DefaultSettings 默认参数：最多迭代 10000 次，残差小于 1e-10 Pa 视为收敛
func DefaultSettings() Settings {
	return Settings{
		MaxIterations:     10000,
		Tolerance:         1e-10,
		RootImagTolerance: 1e-8,
		CoVolumeEpsilon:   1e-10,
	}
}

// Result 一次求解的完整结果
type Result struct {
	Density         float64 // g/L，与 kg/m³ 数值相同
	Compressibility float64 // 三次方程选出的压缩因子 Z
	MolarVolume     float64 // m³/mol
	Iterations      int
	Converged       bool
	Fallback        Fallback
}

// Density 使用 Peng-Robinson 状态方程计算气体密度，单位 g/L。
// 温度单位 ℃，压力单位 MPa，输入范围由调用方保证。
func Density(temperatureCelsius, pressureMPa float64, gas GasType) float64 {
	return Solve(temperatureCelsius, pressureMPa, gas).Density
}

// Solve 与 Density 相同，返回包含压缩因子、摩尔体积和退化原因的完整结果。
// 未知气体视为调用错误，直接 panic。
func Solve(temperatureCelsius, pressureMPa float64, gas GasType) Result {
	c, err := Constants(gas)
	if err != nil {
		panic("calculator: " + err.Error())
	}
	return SolveWith(c, temperatureCelsius, pressureMPa, DefaultSettings())
}

// SolveWith 使用给定的物性参数和二分法参数求解
func SolveWith(gc GasConstants, temperatureCelsius, pressureMPa float64, s Settings) Result {
	t := temperatureCelsius + ZeroCelsius
	p := pressureMPa * MPa

	// 1. 状态方程参数
	tr := t / gc.CriticalTemperature
	w := gc.AcentricFactor
	kappa := 0.37464 + 1.54226*w - 0.26992*w*w
	alpha := math.Pow(1+kappa*(1-math.Sqrt(tr)), 2)
	a := 0.45724 * GasConstant * GasConstant * gc.CriticalTemperature * gc.CriticalTemperature / gc.CriticalPressure * alpha
	b := 0.0778 * GasConstant * gc.CriticalTemperature / gc.CriticalPressure

	// 2. 无量纲参数与压缩因子三次方程
	rt := GasConstant * t
	dimA := a * p / (rt * rt)
	dimB := b * p / rt
	coeffs := Coefficients{
		1,
		-(1 - dimB),
		dimA - 3*dimB*dimB - 2*dimB,
		-(dimA*dimB - dimB*dimB - dimB*dimB*dimB),
	}

	res := Result{Fallback: FallbackNone}
	z, ok := gasRoot(SolveCubic(coeffs), s.RootImagTolerance)
	if !ok {
		z = 1
		res.Fallback = FallbackIdealZ
	}
	res.Compressibility = z

	// 3. 二分法修正摩尔体积
	idealVolume := rt / p
	low := b + s.CoVolumeEpsilon
	high := math.Max(idealVolume*z, low*1.1)

	residual := func(v float64) float64 {
		return p - rt/(v-b) + a/(v*v+2*b*v-b*b)
	}

	// 区间塌缩（mid 等于端点）后状态不再变化，提前退出，Iterations 只计到此处
	volume := idealVolume * z
	for res.Iterations < s.MaxIterations {
		res.Iterations++
		mid := (low + high) / 2
		f := residual(mid)
		if math.Abs(f) < s.Tolerance {
			volume = mid
			res.Converged = true
			break
		} else if f > 0 {
			if mid == high {
				break
			}
			high = mid
		} else {
			if mid == low {
				break
			}
			low = mid
		}
	}

	// 保留最先出现的退化原因，是否收敛看 Converged
	if !res.Converged {
		volume = math.Max(idealVolume, low)
		if res.Fallback == FallbackNone {
			res.Fallback = FallbackIdealVolume
		}
	}
	if math.IsNaN(volume) || volume <= 0 {
		volume = idealVolume
		if res.Fallback == FallbackNone {
			res.Fallback = FallbackIdealVolume
		}
	}

	res.MolarVolume = volume
	res.Density = gc.MolarMass / volume
	return res
}

// gasRoot 取虚部可忽略的根中实部最大的一个，即气相根
func gasRoot(roots [3]Root, imagTolerance float64) (float64, bool) {
	z, found := 0.0, false
	for _, r := range roots {
		if math.Abs(r.Imag) >= imagTolerance || math.IsNaN(r.Real) || math.IsInf(r.Real, 0) {
			continue
		}
		if !found || r.Real > z {
			z = r.Real
			found = true
		}
	}
	return z, found
}
