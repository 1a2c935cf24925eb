package config

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Database 关系型数据库配置
type Database struct {
	Driver string `json:"driver" yaml:"driver"`
	Dsn    string `json:"dsn" yaml:"dsn"`
	Debug  bool   `json:"debug" yaml:"debug"`
}
