package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

// Env 应用全部环境配置，从 .env 读取
type Env struct {
	AppEnv             string `mapstructure:"APP_ENV"`
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout     int    `mapstructure:"CONTEXT_TIMEOUT"`
	MongoURI           string `mapstructure:"MONGO_URI"`
	DBName             string `mapstructure:"DB_NAME"`
	RedisURL           string `mapstructure:"REDIS_URL"`
	DataSource         string `mapstructure:"DATA_SOURCE"`
	SpotifyClientID    string `mapstructure:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSec   string `mapstructure:"SPOTIFY_CLIENT_SECRET"`
	AccessTokenSecret  string `mapstructure:"ACCESS_TOKEN_SECRET"`
	CronSpec           string `mapstructure:"CRON_SPEC"`
	CronTimezone       string `mapstructure:"CRON_TIMEZONE"`
	ArtistDelaySeconds int    `mapstructure:"ARTIST_DELAY_SECONDS"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 60)
	viper.SetDefault("DATA_SOURCE", "https://kworb.net")
	viper.SetDefault("CRON_SPEC", "30 10 * * *")
	viper.SetDefault("CRON_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("ARTIST_DELAY_SECONDS", 30)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 100)

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("Can't find the file .env : ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("Environment can't be loaded: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("The App is running in development env")
	}

	return &env
}
