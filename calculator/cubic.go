package calculator

import "math"

// Root 三次方程的根，Imag 为 0 时即为实根
type Root struct {
	Real float64
	Imag float64
}

// Coefficients a·x³ + b·x² + c·x + d = 0 的系数 [a, b, c, d]
type Coefficients [4]float64

// SolveCubic 使用卡尔丹公式求解三次方程的三个根（可能为复数），根的顺序没有意义。
// 首项系数为 0 属于调用方的编程错误，直接 panic。
func SolveCubic(c Coefficients) [3]Root {
	if c[0] == 0 {
		panic("calculator: leading cubic coefficient is zero")
	}

	// 归一化: x³ + a·x² + b·x + d = 0
	a := c[1] / c[0]
	b := c[2] / c[0]
	d := c[3] / c[0]

	q := (3*b - a*a) / 9
	r := (9*a*b - 27*d - 2*a*a*a) / 54
	disc := q*q*q + r*r
	shift := a / 3

	if disc > 0 {
		// 一个实根，两个共轭复根
		sqrtDisc := math.Sqrt(disc)
		s := math.Cbrt(r + sqrtDisc)
		t := math.Cbrt(r - sqrtDisc)
		re := -(s+t)/2 - shift
		im := math.Sqrt(3) * (s - t) / 2
		return [3]Root{
			{Real: s + t - shift},
			{Real: re, Imag: im},
			{Real: re, Imag: -im},
		}
	} else if disc == 0 {
		// 三个实根，至少两个相等
		s := math.Cbrt(r)
		return [3]Root{
			{Real: 2*s - shift},
			{Real: -s - shift},
			{Real: -s - shift},
		}
	}

	// 三个不等实根，三角形式
	theta := math.Acos(r / math.Sqrt(-q*q*q))
	m := 2 * math.Sqrt(-q)
	var roots [3]Root
	for k := 0; k < 3; k++ {
		roots[k].Real = m*math.Cos((theta+2*math.Pi*float64(k))/3) - shift
	}
	return roots
}

// Eval 计算多项式在 x 处的值
func (c Coefficients) Eval(x float64) float64 {
	return ((c[0]*x+c[1])*x+c[2])*x + c[3]
}

// EvalComplex 计算多项式在复数根处的值，返回实部和虚部
func (c Coefficients) EvalComplex(root Root) (float64, float64) {
	z := complex(root.Real, root.Imag)
	v := ((complex(c[0], 0)*z+complex(c[1], 0))*z+complex(c[2], 0))*z + complex(c[3], 0)
	return real(v), imag(v)
}
