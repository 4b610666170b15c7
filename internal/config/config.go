package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Database    Database
	Auth        Auth      `envPrefix:"JWT_"`
	Payment     Payment   `envPrefix:"PAYMENT_"`
	BrainTree   Braintree `envPrefix:"BRAINTREE_"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Database selects the gorm dialector. URL is a DSN for mysql/postgres and a file path for sqlite.
type Database struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"sqlite"`
	URL             string        `env:"DATABASE_URL" envDefault:"lenscraft.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"50"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

type Auth struct {
	SecretKey string        `env:"SECRET_KEY,required,notEmpty"`
	TTL       time.Duration `env:"TTL" envDefault:"48h"`
}

type Payment struct {
	Currency string `env:"CURRENCY" envDefault:"usd"`
}
