package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Redis            Redis            `mapstructure:",squash"`
	Display          Display          `mapstructure:",squash"`
	ExchangeRate     ExchangeRate     `mapstructure:",squash"`
	ExchangeRateSync ExchangeRateSync `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr                    string `mapstructure:"redis_addr"`
	Password                string `mapstructure:"redis_password"`
	DB                      int    `mapstructure:"redis_db"`
	CampaignCacheTTLSeconds int    `mapstructure:"campaign_cache_ttl_seconds"`
}

// Enabled indica se o cache de campanhas deve ser usado
func (r Redis) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

func (r Redis) CampaignCacheTTL() time.Duration {
	return time.Duration(r.CampaignCacheTTLSeconds) * time.Second
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Display define a moeda padrão do dashboard
type Display struct {
	Currency string `mapstructure:"display_currency"`
}

type ExchangeRate struct {
	URL            string  `mapstructure:"exchange_rate_url"`
	Fallback       float64 `mapstructure:"exchange_rate_fallback"`
	TimeoutSeconds int     `mapstructure:"exchange_rate_timeout_seconds"`
	RetryCount     int     `mapstructure:"exchange_rate_retry_count"`
	RetryDelayMS   int     `mapstructure:"exchange_rate_retry_delay_ms"`
}

func (e ExchangeRate) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

func (e ExchangeRate) RetryDelay() time.Duration {
	return time.Duration(e.RetryDelayMS) * time.Millisecond
}

type ExchangeRateSync struct {
	CronSchedule         string `mapstructure:"exchange_rate_sync_cron"`
	Enabled              bool   `mapstructure:"exchange_rate_sync_enabled"`
	HistoryRetentionDays int    `mapstructure:"exchange_rate_history_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001,https://campaign-metrics-web.vercel.app")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("REDIS_ADDR", "") // vazio desabilita o cache de campanhas
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CAMPAIGN_CACHE_TTL_SECONDS", 60)

	viper.SetDefault("DISPLAY_CURRENCY", "BRL")

	viper.SetDefault("EXCHANGE_RATE_URL", "https://economia.awesomeapi.com.br/json/last/USD-BRL")
	viper.SetDefault("EXCHANGE_RATE_FALLBACK", 5.50)
	viper.SetDefault("EXCHANGE_RATE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("EXCHANGE_RATE_RETRY_COUNT", 2)
	viper.SetDefault("EXCHANGE_RATE_RETRY_DELAY_MS", 500)

	viper.SetDefault("EXCHANGE_RATE_SYNC_CRON", "0 */6 * * *")   // A cada 6 horas
	viper.SetDefault("EXCHANGE_RATE_SYNC_ENABLED", false)        // Habilitar atualização agendada da cotação
	viper.SetDefault("EXCHANGE_RATE_HISTORY_RETENTION_DAYS", 90) // Histórico de cotações mantido por 90 dias

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Display.Currency = strings.ToUpper(strings.TrimSpace(config.Display.Currency))

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
