package calculator

import "time"

// 实际气体密度表的温度、压力选项
var (
	TemperatureOptions = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	PressureOptions    = []float64{1, 1.5, 2, 2.5, 3, 3.5, 20, 35, 45, 70, 90, 98}
)

// Table 密度表，Density[i][j] 对应 Pressures[i]、Temperatures[j]，单位 g/L
type Table struct {
	Gas          GasType
	Temperatures []float64
	Pressures    []float64
	Density      [][]float64
}

func buildTable(gc GasConstants, gas GasType, temperatures, pressures []float64, s Settings, workers int) (*Table, time.Duration) {
	t := &Table{
		Gas:          gas,
		Temperatures: append([]float64(nil), temperatures...),
		Pressures:    append([]float64(nil), pressures...),
		Density:      make([][]float64, len(pressures)),
	}

	e := newExecutor(workers, func(tk task) {
		row := make([]float64, len(t.Temperatures))
		for j, temp := range t.Temperatures {
			row[j] = SolveWith(gc, temp, t.Pressures[tk.row], s).Density
		}
		t.Density[tk.row] = row
	})
	e.run()
	defer e.shutdown()
	cost := e.dispatchTask(len(t.Pressures))

	return t, cost
}

// At 查表，不存在时返回 false
func (t *Table) At(temperatureCelsius, pressureMPa float64) (float64, bool) {
	for i, p := range t.Pressures {
		if p != pressureMPa {
			continue
		}
		for j, temp := range t.Temperatures {
			if temp == temperatureCelsius {
				return t.Density[i][j], true
			}
		}
	}
	return 0, false
}
