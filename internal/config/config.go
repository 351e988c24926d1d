package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"5000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Upstream struct {
		BaseURL string `env:"BASE_URL,required"`
		Token   string `env:"TOKEN,required"`
		// 上游要求每个请求都带上 Company-Id 头，这里按透明字符串处理
		CompanyID       string `env:"COMPANY_ID" envDefault:"4"`
		RequestTimeout  int    `env:"REQUEST_TIMEOUT" envDefault:"12"`
		RetryMaxElapsed int    `env:"RETRY_MAX_ELAPSED" envDefault:"12"`
	} `envPrefix:"UPSTREAM_"`
	Dashboard struct {
		EnableMockData       bool `env:"ENABLE_MOCK_DATA" envDefault:"true"`
		MaxConcurrentFetches int  `env:"MAX_CONCURRENT_FETCHES" envDefault:"5"`
	} `envPrefix:"DASHBOARD_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
