package config

type Config struct {
	Telegram         Telegram
	PostgresEndpoint string `env:"POSTGRES_ENDPOINT"`
}

type Telegram struct {
	Token   string `env:"TG_TOKEN"`
	Timeout int    `env:"TIMEOUT" envDefault:"60"`
}
