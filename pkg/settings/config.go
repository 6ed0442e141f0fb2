package settings

type Config struct {
	Logger  Logger  `mapstructure:"logger"`
	Harness Harness `mapstructure:"harness"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// Harness is the configuration for the leak-check harness
type Harness struct {
	Workers   int  `mapstructure:"workers"`
	Capacity  int  `mapstructure:"capacity"`
	Items     int  `mapstructure:"items"`
	SkipClose bool `mapstructure:"skip_close"`
}
