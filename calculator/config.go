package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

type Config struct {
	Addr     string
	LogLevel string

	Workers  int
	Settings Settings
	Limits   Limits
}

func DefaultConfig() Config {
	return loadCfg(ini.Empty())
}

// LoadConfig 读取 ini 配置文件，读取失败时使用默认配置
func LoadConfig(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Warn("配置文件读取错误，使用默认配置")
		return DefaultConfig()
	}

	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	def := DefaultSettings()
	lim := DefaultLimits()
	calc := file.Section("calculator")
	return Config{
		Addr:     file.Section("server").Key("Addr").MustString(":9000"),
		LogLevel: file.Section("log").Key("Level").MustString("info"),
		Workers:  calc.Key("Workers").MustInt(4),
		Settings: Settings{
			MaxIterations:     calc.Key("MaxIterations").MustInt(def.MaxIterations),
			Tolerance:         calc.Key("Tolerance").MustFloat64(def.Tolerance),
			RootImagTolerance: calc.Key("RootImagTolerance").MustFloat64(def.RootImagTolerance),
			CoVolumeEpsilon:   calc.Key("CoVolumeEpsilon").MustFloat64(def.CoVolumeEpsilon),
		},
		Limits: Limits{
			MinTemperature: calc.Key("MinTemperature").MustFloat64(lim.MinTemperature),
			MaxTemperature: calc.Key("MaxTemperature").MustFloat64(lim.MaxTemperature),
			MinPressure:    calc.Key("MinPressure").MustFloat64(lim.MinPressure),
			MaxPressure:    calc.Key("MaxPressure").MustFloat64(lim.MaxPressure),
		},
	}
}
