package calculator

import (
	"fmt"
	"math"

	"gascalc/model"

	log "github.com/sirupsen/logrus"
)

// calculator 的接口定义

type Calculator interface {
	// 实际气体密度，输入超出范围时返回错误
	Density(req model.DensityReq) (model.DensityResp, error)

	// 按温度、压力选项生成密度表
	BuildTable(gas GasType) (*Table, error)

	// 支持的气体及其物性参数
	Gases() []model.GasInfo

	Limits() Limits
}

type prCalculator struct {
	settings Settings
	limits   Limits
	workers  int
}

func NewCalculator(cfg Config) Calculator {
	c := &prCalculator{
		settings: cfg.Settings,
		limits:   cfg.Limits,
		workers:  cfg.Workers,
	}
	log.WithFields(log.Fields{
		"MaxIterations": c.settings.MaxIterations,
		"Tolerance":     c.settings.Tolerance,
		"Workers":       c.workers,
		"Limits":        fmt.Sprintf("%+v", c.limits),
	}).Info("初始化计算器")
	return c
}

func (c *prCalculator) Limits() Limits {
	return c.limits
}

func (c *prCalculator) Density(req model.DensityReq) (model.DensityResp, error) {
	gas, err := ParseGasType(req.Gas)
	if err != nil {
		return model.DensityResp{}, err
	}
	if err := c.limits.Validate(req.Temperature, req.Pressure); err != nil {
		return model.DensityResp{}, err
	}

	gc, _ := Constants(gas)
	res := SolveWith(gc, req.Temperature, req.Pressure, c.settings)
	fields := log.Fields{
		"gas":         gas,
		"temperature": req.Temperature,
		"pressure":    req.Pressure,
		"z":           res.Compressibility,
		"density":     res.Density,
		"iterations":  res.Iterations,
	}
	// 残差判据接近机器精度，FallbackIdealVolume 很常见
	switch res.Fallback {
	case FallbackIdealZ:
		log.WithFields(fields).Warn("三次方程无实根，压缩因子退化为 1")
	case FallbackIdealVolume:
		log.WithFields(fields).Info("二分法未收敛，摩尔体积取 max(RT/P, 区间下界)")
	default:
		log.WithFields(fields).Debug("密度计算完成")
	}

	resp := model.DensityResp{
		Gas:             string(gas),
		Temperature:     req.Temperature,
		Pressure:        req.Pressure,
		Density:         res.Density,
		Compressibility: res.Compressibility,
		Iterations:      res.Iterations,
		Fallback:        res.Fallback.String(),
	}
	if !math.IsInf(res.MolarVolume, 0) {
		v := res.MolarVolume
		resp.MolarVolume = &v
	}
	return resp, nil
}

func (c *prCalculator) BuildTable(gas GasType) (*Table, error) {
	gc, err := Constants(gas)
	if err != nil {
		return nil, err
	}
	for _, p := range PressureOptions {
		for _, t := range TemperatureOptions {
			if err := c.limits.Validate(t, p); err != nil {
				return nil, fmt.Errorf("table option: %w", err)
			}
		}
	}

	table, cost := buildTable(gc, gas, TemperatureOptions, PressureOptions, c.settings, c.workers)
	log.WithFields(log.Fields{
		"gas":  gas,
		"rows": len(table.Pressures),
		"cols": len(table.Temperatures),
		"cost": cost,
	}).Info("密度表生成完成")
	return table, nil
}

func (c *prCalculator) Gases() []model.GasInfo {
	gases := Gases()
	infos := make([]model.GasInfo, 0, len(gases))
	for _, gas := range gases {
		gc, _ := Constants(gas)
		infos = append(infos, model.GasInfo{
			Name:                string(gas),
			CriticalTemperature: gc.CriticalTemperature,
			CriticalPressure:    gc.CriticalPressure,
			AcentricFactor:      gc.AcentricFactor,
			MolarMass:           gc.MolarMass,
		})
	}
	return infos
}
