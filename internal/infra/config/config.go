package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is built once at startup and passed by reference; nothing reads ambient globals.
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Solscan  SolscanConfig  `mapstructure:"solscan"`
	App      AppConfig      `mapstructure:"app"`
}

type TelegramConfig struct {
	BotToken     string `mapstructure:"bot_token"`
	TargetChatID int64  `mapstructure:"target_chat_id"` // every report goes to this chat
}

// SolscanConfig - market-data and holders endpoints plus the static API key
type SolscanConfig struct {
	APIKey         string `mapstructure:"api_key"`
	MarketDataBase string `mapstructure:"market_data_base"`
	HoldersBase    string `mapstructure:"holders_base"`
	RequestTimeout int    `mapstructure:"request_timeout"`
}

type AppConfig struct {
	ChartsDir string `mapstructure:"charts_dir"`
}

// LoadConfig layers defaults, config.yaml, .env and flags
// 1. defaults
// 2. config.yaml
// 3. .env file / environment
// 4. command-line flags
func LoadConfig() (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.ReadInConfig() // missing file is fine

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()

	setupEnvAliases(v)

	setupFlags(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setupEnvAliases(v *viper.Viper) {
	// TELEGRAM_TOKEN -> telegram.bot_token, etc.
	v.BindEnv("telegram.bot_token", "TELEGRAM_TOKEN")
	v.BindEnv("telegram.target_chat_id", "TARGET_CHAT_ID")

	v.BindEnv("solscan.api_key", "SOLSCAN_API_KEY")
	v.BindEnv("solscan.market_data_base", "SOLSCAN_MARKET_DATA_BASE")
	v.BindEnv("solscan.holders_base", "SOLSCAN_HOLDERS_BASE")
	v.BindEnv("solscan.request_timeout", "SOLSCAN_REQUEST_TIMEOUT")

	v.BindEnv("app.charts_dir", "APP_CHARTS_DIR")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.target_chat_id", 0)

	v.SetDefault("solscan.api_key", "")
	v.SetDefault("solscan.market_data_base", "https://pro-api.solscan.io/v1.0")
	v.SetDefault("solscan.holders_base", "https://pro-api.solscan.io/v1.0")
	v.SetDefault("solscan.request_timeout", 30)

	v.SetDefault("app.charts_dir", "data_out/charts")
}

func setupFlags(v *viper.Viper) {
	pflag.String("telegram.bot_token", "", "Telegram bot token (env: TELEGRAM_TOKEN)")
	pflag.Int64("telegram.target_chat_id", 0, "Chat ID all reports are sent to (env: TARGET_CHAT_ID)")

	pflag.String("solscan.api_key", "", "Solscan API key (env: SOLSCAN_API_KEY)")
	pflag.String("solscan.market_data_base", "https://pro-api.solscan.io/v1.0", "Market-data API base URL (env: SOLSCAN_MARKET_DATA_BASE)")
	pflag.String("solscan.holders_base", "https://pro-api.solscan.io/v1.0", "Holders API base URL (env: SOLSCAN_HOLDERS_BASE)")
	pflag.Int("solscan.request_timeout", 30, "Request timeout in seconds (env: SOLSCAN_REQUEST_TIMEOUT)")

	pflag.String("app.charts_dir", "data_out/charts", "Directory for generated chart PNGs (env: APP_CHARTS_DIR)")

	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)
}

func validateConfig(cfg *Config) error {
	if cfg.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required (env: TELEGRAM_TOKEN)")
	}
	if cfg.Telegram.TargetChatID == 0 {
		return fmt.Errorf("telegram.target_chat_id is required (env: TARGET_CHAT_ID)")
	}
	return nil
}
