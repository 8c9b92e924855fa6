package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	config.SetDefault("APP_NAME", "auth-rest-api")
	config.SetDefault("APP_ENV", "development")
	config.SetDefault("SERVER_PORT", "3000")
	config.SetDefault("DB_HOSTNAME", "127.0.0.1")
	config.SetDefault("DB_PORT", "5432")
	config.SetDefault("DB_USER", "postgres")
	config.SetDefault("DB_PASSWORD", "postgres")
	config.SetDefault("DB_NAME", "restapi_auth")
	config.SetDefault("UPLOAD_DIR", "uploads/images")
	config.SetDefault("BCRYPT_COST", 10)

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		log.Tracef("No .env file found, falling back to defaults: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerPort() string {
	return c.Viper.GetString("SERVER_PORT")
}

func (c *Config) IsProduction() bool {
	return c.Viper.GetString("APP_ENV") == "production"
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetUploadDir() string {
	return c.Viper.GetString("UPLOAD_DIR")
}

func (c *Config) GetBcryptCost() int {
	return c.Viper.GetInt("BCRYPT_COST")
}
