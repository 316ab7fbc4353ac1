package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App      App
	Database Database
	Auth     Auth
	LogLevel string
}

type App struct {
	Title      string
	Author     string
	AboutImage string
}

type Database struct {
	Path     string
	LogLevel string
}

type Auth struct {
	BcryptCost int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.App.Title = viper.GetString("APP_TITLE")
	config.App.Author = viper.GetString("APP_AUTHOR")
	config.App.AboutImage = viper.GetString("APP_ABOUT_IMAGE")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Database.LogLevel = viper.GetString("DATABASE_LOG_LEVEL")
	config.Auth.BcryptCost = clampCost(viper.GetInt("AUTH_BCRYPT_COST"))
	config.LogLevel = viper.GetString("LOG_LEVEL")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("APP_TITLE", "Online Exam Portal")
	viper.SetDefault("APP_AUTHOR", "Gideon")
	viper.SetDefault("APP_ABOUT_IMAGE", "myphoto.jpg")
	viper.SetDefault("DATABASE_PATH", "examportal.db")
	viper.SetDefault("DATABASE_LOG_LEVEL", "warn")
	viper.SetDefault("AUTH_BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("LOG_LEVEL", "info")
}

func clampCost(cost int) int {
	switch {
	case cost < bcrypt.MinCost:
		return bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	}
	return cost
}
