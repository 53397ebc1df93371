// Initializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Scraper  ScraperConfig  `mapstructure:"scraper"`
	Rating   RatingConfig   `mapstructure:"rating"`
	Server   ServerConfig   `mapstructure:"server"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Output   OutputConfig   `mapstructure:"output"`
}

type ScraperConfig struct {
	HomeURL        string        `mapstructure:"home_url"`
	BaseURL        string        `mapstructure:"base_url"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	SeatStatePage  int           `mapstructure:"seat_state_page_size"`
	UserAgent      string        `mapstructure:"user_agent"`
}

type RatingConfig struct {
	PriorMean   float64 `mapstructure:"prior_mean"`
	PriorWeight int     `mapstructure:"prior_weight"`
}

type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	Port        string        `mapstructure:"port"`
	Timeout     time.Duration `mapstructure:"timeout"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	Mode        string        `mapstructure:"mode"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	MaxLen   int    `mapstructure:"max_message_len"`
	Enabled  bool   `mapstructure:"enabled"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
	Enabled bool   `mapstructure:"enabled"`
}

type WorkerConfig struct {
	Count          int           `mapstructure:"count"`
	ScrapeInterval time.Duration `mapstructure:"scrape_interval"`
}

type OutputConfig struct {
	Dir          string `mapstructure:"dir"`
	SnapshotFile string `mapstructure:"snapshot_file"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}

	// secrets come from the environment, never from the config file
	if c.Telegram.BotToken == "" {
		c.Telegram.BotToken = GetEnv("TELEGRAM_BOT_TOKEN", "")
	}
	if c.Telegram.ChatID == "" {
		c.Telegram.ChatID = GetEnv("TELEGRAM_CHAT_ID", "")
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scraper.home_url", "https://art.fidibo.com/?utm_source=homepage&utm_medium=gif&utm_campaign=theater")
	v.SetDefault("scraper.base_url", "https://art.fidibo.com/")
	v.SetDefault("scraper.api_base_url", "https://api.fidibo.com")
	v.SetDefault("scraper.request_timeout", 30*time.Second)
	v.SetDefault("scraper.seat_state_page_size", 50)
	v.SetDefault("scraper.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

	v.SetDefault("rating.prior_mean", 3.5)
	v.SetDefault("rating.prior_weight", 20)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.mode", "release")

	v.SetDefault("telegram.max_message_len", 3500)
	v.SetDefault("telegram.enabled", true)

	v.SetDefault("kafka.brokers", "localhost:9094")
	v.SetDefault("kafka.topic", "show-snapshots")
	v.SetDefault("kafka.enabled", false)

	v.SetDefault("worker.count", 4)
	v.SetDefault("worker.scrape_interval", 30*time.Minute)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.snapshot_file", "fidibo_art_shows.json")
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
