package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var once sync.Once

// Config is the process configuration, read once at startup and passed to constructors.
type Config struct {
	TelegramBotToken string
	TokenAPIURL      string
	PriceAPIURL      string
	PriceProvider    string
	PaprikaCoinID    string
	APIProKey        string
	ImageCDNURL      string
	SiteURL          string
	DefaultSupply    int64
	MetricsPort      int
	Debug            bool
	Lang             string
}

const (
	ProviderCoinGecko   = "coingecko"
	ProviderCoinPaprika = "coinpaprika"
)

func InitConfig() {
	once.Do(func() {
		// .env is optional; real deployments pass the environment directly.
		_ = godotenv.Load()

		viper.AutomaticEnv()

		viper.BindEnv("telegram_bot_token", "BOT_TOKEN", "TELEGRAM_BOT_TOKEN")
		viper.BindEnv("token_api_url", "TOKEN_API_URL")
		viper.BindEnv("price_api_url", "ALPH_PRICE_API")
		viper.BindEnv("price_provider", "PRICE_PROVIDER")
		viper.BindEnv("paprika_coin_id", "PAPRIKA_COIN_ID")
		viper.BindEnv("api_pro_key", "API_PRO_KEY")
		viper.BindEnv("image_cdn_url", "IMAGE_CDN_URL")
		viper.BindEnv("site_url", "SITE_URL")
		viper.BindEnv("default_supply", "DEFAULT_SUPPLY")
		viper.BindEnv("metrics_port", "METRICS_PORT")
		viper.BindEnv("debug", "DEBUG")
		viper.BindEnv("lang", "LANG")

		viper.SetDefault("token_api_url", "https://api.mainnet.myonion.fun/api/token")
		viper.SetDefault("price_api_url", "https://api.coingecko.com/api/v3/simple/price?ids=alephium&vs_currencies=usd")
		viper.SetDefault("price_provider", ProviderCoinGecko)
		viper.SetDefault("paprika_coin_id", "alph-alephium")
		viper.SetDefault("image_cdn_url", "https://file.myonion.fun")
		viper.SetDefault("site_url", "https://myonion.fun")
		viper.SetDefault("default_supply", 1_000_000_000)
		viper.SetDefault("metrics_port", 9090)
		viper.SetDefault("debug", false)
		viper.SetDefault("lang", "en")
	})
}

// Load snapshots the current settings into a Config.
func Load() Config {
	InitConfig()
	return Config{
		TelegramBotToken: viper.GetString("telegram_bot_token"),
		TokenAPIURL:      viper.GetString("token_api_url"),
		PriceAPIURL:      viper.GetString("price_api_url"),
		PriceProvider:    viper.GetString("price_provider"),
		PaprikaCoinID:    viper.GetString("paprika_coin_id"),
		APIProKey:        viper.GetString("api_pro_key"),
		ImageCDNURL:      viper.GetString("image_cdn_url"),
		SiteURL:          viper.GetString("site_url"),
		DefaultSupply:    viper.GetInt64("default_supply"),
		MetricsPort:      viper.GetInt("metrics_port"),
		Debug:            viper.GetBool("debug"),
		Lang:             viper.GetString("lang"),
	}
}

func GetBool(key string) bool {
	InitConfig()
	return viper.GetBool(key)
}
