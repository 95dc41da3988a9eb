package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"aimax/internal/engine"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr      string       `json:"addr"`
	WebDir    string       `json:"web_dir"`
	MobileDir string       `json:"mobile_dir"`
	DataDir   string       `json:"data_dir"` // 空表示不落盘
	Search    SearchConfig `json:"search"`
}

type SearchConfig struct {
	BaseDepth    int   `json:"base_depth"`
	MaxDepth     int   `json:"max_depth"`
	FixedDepth   int   `json:"fixed_depth"`
	YieldEvery   int   `json:"yield_every"`
	Verbose      bool  `json:"verbose"`
	RandomValues bool  `json:"random_values"` // 随机浮动子力，需要配合 seed
	Seed         int64 `json:"seed"`
}

func Default() Config {
	return Config{
		Addr:   ":2888",
		WebDir: "./web",
		Search: SearchConfig{
			BaseDepth:  5,
			MaxDepth:   8,
			YieldEvery: 3,
		},
	}
}

// Load 读 JSON 配置，文件里没写的字段保留默认值
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	s := c.Search
	switch {
	case s.BaseDepth < 1:
		return fmt.Errorf("%w: base_depth %d < 1", ErrInvalidConfig, s.BaseDepth)
	case s.MaxDepth < 0 || s.FixedDepth < 0 || s.YieldEvery < 0:
		return fmt.Errorf("%w: negative search limits", ErrInvalidConfig)
	case s.MaxDepth > 0 && s.MaxDepth < s.BaseDepth:
		return fmt.Errorf("%w: max_depth %d below base_depth %d", ErrInvalidConfig, s.MaxDepth, s.BaseDepth)
	case s.RandomValues && s.Seed == 0:
		return fmt.Errorf("%w: random_values needs a seed", ErrInvalidConfig)
	}
	return nil
}

// Engine 转成引擎的搜索配置
func (s SearchConfig) Engine() engine.SearchConfig {
	cfg := engine.SearchConfig{
		BaseDepth:  s.BaseDepth,
		MaxDepth:   s.MaxDepth,
		FixedDepth: s.FixedDepth,
		YieldEvery: s.YieldEvery,
		Verbose:    s.Verbose,
	}
	if s.RandomValues {
		cfg.Values = engine.RandomizedValues(rand.New(rand.NewSource(s.Seed)))
	}
	return cfg
}
