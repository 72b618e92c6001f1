package config

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Http struct {
	Port string `mapstructure:"port"`
}

type Env struct {
	Log  string `mapstructure:"log"`  // 日志目录，空则只输出到控制台
	Mode string `mapstructure:"mode"` // gin 模式 debug/release/test
}

type Sanmei struct {
	Layout      string        `mapstructure:"layout"`       // six / five
	HiddenStems string        `mapstructure:"hidden_stems"` // nijuhachigen / simple
	Transform   bool          `mapstructure:"transform"`    // 日干是否按干合化气
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

type I18n struct {
	Default string `mapstructure:"default"`
}

type Config struct {
	Http   Http   `mapstructure:"http"`
	Env    Env    `mapstructure:"env"`
	Sanmei Sanmei `mapstructure:"sanmei"`
	I18n   I18n   `mapstructure:"i18n"`
}

var (
	cfg  *Config
	once sync.Once
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("env.log", "")
	v.SetDefault("env.mode", "debug")
	v.SetDefault("sanmei.layout", "six")
	v.SetDefault("sanmei.hidden_stems", "nijuhachigen")
	v.SetDefault("sanmei.transform", false)
	v.SetDefault("sanmei.cache_ttl", 10*time.Minute)
	v.SetDefault("i18n.default", "ja")
}

// Load 读取配置文件和 SANMEI_ 前缀的环境变量，文件不存在时只用默认值
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SANMEI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, errors.Wrap(err, "config: read")
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	return c, nil
}

// Get 进程内唯一配置，第一次调用时加载
func Get() *Config {
	once.Do(func() {
		c, err := Load("")
		if err != nil {
			panic(err)
		}
		cfg = c
	})
	return cfg
}

// Set 由命令行 --config 指定文件时提前装入
func Set(c *Config) {
	once.Do(func() {})
	cfg = c
}
