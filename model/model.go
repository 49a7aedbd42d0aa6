package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 消息类型
const (
	TypeDensity = "density"
	TypeTable   = "table"
	TypeGases   = "gases"

	TypeDensityCalculated = "densityCalculated"
	TypeTableBuilt        = "tableBuilt"
	TypeGasList           = "gasList"
	TypeError             = "error"
)

// 实际气体密度请求，温度 ℃，压力 MPa
type DensityReq struct {
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Gas         string  `json:"gas"`
}

type DensityResp struct {
	Gas             string   `json:"gas"`
	Temperature     float64  `json:"temperature"`
	Pressure        float64  `json:"pressure"`
	Density         float64  `json:"density"`                // g/L
	Compressibility float64  `json:"compressibility"`        // Z
	MolarVolume     *float64 `json:"molar_volume,omitempty"` // m³/mol，压力为 0 时为空
	Iterations      int      `json:"iterations"`
	Fallback        string   `json:"fallback"`
}

// 密度表请求
type TableReq struct {
	Gas string `json:"gas"`
}

// 密度表，Density[i][j] 对应 Pressures[i]、Temperatures[j]
type TableResp struct {
	Gas          string      `json:"gas"`
	Temperatures []float64   `json:"temperatures"`
	Pressures    []float64   `json:"pressures"`
	Density      [][]float64 `json:"density"`
}

// 气体物性参数
type GasInfo struct {
	Name                string  `json:"name"`
	CriticalTemperature float64 `json:"critical_temperature"`
	CriticalPressure    float64 `json:"critical_pressure"`
	AcentricFactor      float64 `json:"acentric_factor"`
	MolarMass           float64 `json:"molar_mass"`
}
