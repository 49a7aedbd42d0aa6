package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 理想气体密度 g/L
func idealDensity(gas GasType, temperatureCelsius, pressureMPa float64) float64 {
	gc, _ := Constants(gas)
	return gc.MolarMass * pressureMPa * MPa / (GasConstant * (temperatureCelsius + ZeroCelsius))
}

func TestDensity_LowPressureNearIdeal(t *testing.T) {
	for _, gas := range Gases() {
		ideal := idealDensity(gas, 0, 1)
		d := Density(0, 1, gas)
		assert.InEpsilon(t, ideal, d, 0.05, "gas %s", gas)
	}

	// 0 ℃、1 MPa 下的参考值
	assert.InDelta(t, 0.885, Density(0, 1, Hydrogen), 0.02)
	assert.InDelta(t, 14.2, Density(0, 1, Oxygen), 0.3)
}

func TestDensity_HydrogenAboveIdeal(t *testing.T) {
	// 氢气在常温下 Z > 1
	for _, p := range []float64{20, 35, 70, 98} {
		res := Solve(25, p, Hydrogen)
		assert.Greater(t, res.Compressibility, 1.0)
		assert.Less(t, res.Density, idealDensity(Hydrogen, 25, p))
	}

	// 70 MPa 储氢压力下约 40 g/L，PR 方程略偏高
	assert.InDelta(t, 41, Density(15, 70, Hydrogen), 2.5)
}

func pressureSweep() []float64 {
	var ps []float64
	for p := 0.5; p <= 5; p += 0.5 {
		ps = append(ps, p)
	}
	for p := 10.0; p < 98; p += 5 {
		ps = append(ps, p)
	}
	return append(ps, 98)
}

// 0.01 MPa 步长扫描整个压力范围
func finePressureSweep() []float64 {
	ps := make([]float64, 0, 9801)
	for i := 0; i <= 9800; i++ {
		ps = append(ps, float64(i)/100)
	}
	return ps
}

func TestDensity_HydrogenMonotonicInPressure(t *testing.T) {
	for _, temp := range []float64{0, 25, 50, 75, 100} {
		prev := Density(temp, 0, Hydrogen)
		for _, p := range finePressureSweep() {
			d := Density(temp, p, Hydrogen)
			if !assert.GreaterOrEqual(t, d, prev, "%g °C, %g MPa", temp, p) {
				return
			}
			prev = d
		}
	}
}

// 氧气 Z < 1，二分法未收敛时 max(RT/P, 区间下界) 取到 RT/P，密度恰好等于理想气体密度
func TestDensity_OxygenNonConvergenceIsIdeal(t *testing.T) {
	gc, _ := Constants(Oxygen)

	res := Solve(0, 20, Oxygen)
	assert.False(t, res.Converged)
	assert.Equal(t, FallbackIdealVolume, res.Fallback)
	assert.InDelta(t, 0.883, res.Compressibility, 0.005)
	assert.InDelta(t, 281.79, res.Density, 0.01)

	fallbacks := 0
	for _, temp := range []float64{0, 50, 100} {
		for _, p := range finePressureSweep()[1:] {
			res := Solve(temp, p, Oxygen)
			if res.Compressibility >= 1 {
				continue
			}
			if res.Converged {
				assert.Greater(t, res.Density, idealDensity(Oxygen, temp, p), "%g °C, %g MPa", temp, p)
				continue
			}
			fallbacks++
			ideal := gc.MolarMass / (GasConstant * (temp + ZeroCelsius) / (p * MPa))
			if !assert.Equal(t, ideal, res.Density, "%g °C, %g MPa", temp, p) {
				return
			}
		}
	}
	assert.Greater(t, fallbacks, 0)
}

func TestDensity_Idempotent(t *testing.T) {
	for _, gas := range Gases() {
		for _, p := range []float64{0, 1, 35, 98} {
			first := Solve(42.5, p, gas)
			second := Solve(42.5, p, gas)
			assert.Equal(t, first, second)
			assert.Equal(t, first.Density, Density(42.5, p, gas))
		}
	}
}

func TestDensity_DomainBoundary(t *testing.T) {
	for _, gas := range Gases() {
		for _, temp := range []float64{0, 100} {
			for _, p := range []float64{0, 98} {
				d := Density(temp, p, gas)
				assert.False(t, math.IsNaN(d) || math.IsInf(d, 0), "gas %s, %g °C, %g MPa: %v", gas, temp, p, d)
				assert.GreaterOrEqual(t, d, 0.0)
			}
		}

		res := Solve(0, 0, gas)
		assert.Equal(t, 0.0, res.Density)
		assert.True(t, math.IsInf(res.MolarVolume, 1))
	}
}

func TestSolveWith_VolumeAboveCoVolume(t *testing.T) {
	s := DefaultSettings()
	for _, gas := range Gases() {
		gc, err := Constants(gas)
		require.NoError(t, err)
		b := 0.0778 * GasConstant * gc.CriticalTemperature / gc.CriticalPressure
		for _, p := range pressureSweep() {
			res := SolveWith(gc, 20, p, s)
			assert.Greater(t, res.MolarVolume, b)
			assert.InDelta(t, gc.MolarMass/res.MolarVolume, res.Density, 1e-12)
		}
	}
}

// 二分法迭代上限耗尽时退化为 max(RT/P, 区间下界)
func TestSolveWith_FallbackOnNonConvergence(t *testing.T) {
	gc, _ := Constants(Hydrogen)
	s := DefaultSettings()
	s.Tolerance = 0

	res := SolveWith(gc, 0, 35, s)
	assert.False(t, res.Converged)
	assert.Equal(t, FallbackIdealVolume, res.Fallback)
	// 区间塌缩后提前退出，不会跑满迭代上限
	assert.Greater(t, res.Iterations, 1)
	assert.Less(t, res.Iterations, 200)

	rt := GasConstant * ZeroCelsius
	assert.GreaterOrEqual(t, res.MolarVolume, rt/(35*MPa))
	assert.InEpsilon(t, rt*res.Compressibility/(35*MPa), res.MolarVolume, 1e-6)

	s.MaxIterations = 1
	res = SolveWith(gc, 0, 35, s)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, FallbackIdealVolume, res.Fallback)
	assert.False(t, math.IsNaN(res.Density))
	assert.Greater(t, res.Density, 0.0)
}

// 三次方程没有可用实根且二分法也不收敛时，保留 FallbackIdealZ
func TestSolveWith_IdealZKeptWhenNotConverged(t *testing.T) {
	gc, _ := Constants(Oxygen)
	gc.AcentricFactor = math.NaN()

	res := SolveWith(gc, 25, 1, DefaultSettings())
	assert.Equal(t, FallbackIdealZ, res.Fallback)
	assert.False(t, res.Converged)
	assert.Equal(t, 1.0, res.Compressibility)
	assert.Less(t, res.Iterations, 200)
	assert.InEpsilon(t, GasConstant*(25+ZeroCelsius)/MPa, res.MolarVolume, 1e-6)
	assert.InEpsilon(t, idealDensity(Oxygen, 25, 1), res.Density, 1e-6)
}

// 构造的极端临界参数使二分区间塌缩
func TestSolveWith_ContrivedConstants(t *testing.T) {
	cases := []GasConstants{
		{CriticalTemperature: 1e4, CriticalPressure: 1, AcentricFactor: 0.5, MolarMass: 0.03},
		{CriticalTemperature: 1e-3, CriticalPressure: 1e12, AcentricFactor: -0.9, MolarMass: 0.002},
		{CriticalTemperature: 5e3, CriticalPressure: 10, AcentricFactor: 3, MolarMass: 0.1},
	}
	for _, gc := range cases {
		for _, p := range []float64{0.1, 1, 98} {
			res := SolveWith(gc, 25, p, DefaultSettings())
			assert.False(t, math.IsNaN(res.Density) || math.IsInf(res.Density, 0), "%+v at %g MPa: %+v", gc, p, res)
			assert.GreaterOrEqual(t, res.Density, 0.0)
		}
	}
}

func TestGasRoot(t *testing.T) {
	z, ok := gasRoot([3]Root{{Real: 0.2}, {Real: 0.9}, {Real: 0.5}}, 1e-8)
	assert.True(t, ok)
	assert.Equal(t, 0.9, z)

	z, ok = gasRoot([3]Root{{Real: 1.1}, {Real: 3, Imag: 0.1}, {Real: 3, Imag: -0.1}}, 1e-8)
	assert.True(t, ok)
	assert.Equal(t, 1.1, z)

	_, ok = gasRoot([3]Root{{Real: math.NaN()}, {Real: 3, Imag: 0.1}, {Real: 3, Imag: -0.1}}, 1e-8)
	assert.False(t, ok)
}

func TestSolve_UnknownGasPanics(t *testing.T) {
	assert.Panics(t, func() {
		Density(20, 1, GasType("nitrogen"))
	})
}

func TestFallback_String(t *testing.T) {
	assert.Equal(t, "none", FallbackNone.String())
	assert.Equal(t, "ideal_z", FallbackIdealZ.String())
	assert.Equal(t, "ideal_volume", FallbackIdealVolume.String())
	assert.Equal(t, "fallback(7)", Fallback(7).String())
}

func BenchmarkDensity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Density(20, 35, Hydrogen)
	}
}
