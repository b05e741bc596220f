package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

const birthDateLayout = "2006-01-02"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort                  string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL               string `env:"DATABASE_URL"`
	RedisAddr                 string `env:"REDIS_ADDR"`
	RedisPassword             string `env:"REDIS_PASSWORD"`
	RedisDB                   int    `env:"REDIS_DB" envDefault:"0"`
	SessionTTLMinutes         int    `env:"SESSION_TTL_MINUTES" envDefault:"60"`
	QuestionRateWindowMinutes int    `env:"QUESTION_RATE_WINDOW_MINUTES" envDefault:"10"`
	QuestionRateMax           int    `env:"QUESTION_RATE_MAX" envDefault:"20"`
	MinBirthDate              string `env:"MIN_BIRTH_DATE" envDefault:"1800-01-01"`
	MaxBirthDate              string `env:"MAX_BIRTH_DATE" envDefault:"2200-12-31"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if _, _, err := cfg.BirthDateBounds(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BirthDateBounds devuelve el rango aceptado de fechas de nacimiento.
func (c *Config) BirthDateBounds() (time.Time, time.Time, error) {
	minDate, err := time.Parse(birthDateLayout, c.MinBirthDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("MIN_BIRTH_DATE: %w", err)
	}
	maxDate, err := time.Parse(birthDateLayout, c.MaxBirthDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("MAX_BIRTH_DATE: %w", err)
	}
	if maxDate.Before(minDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("MAX_BIRTH_DATE %s is before MIN_BIRTH_DATE %s", c.MaxBirthDate, c.MinBirthDate)
	}
	return minDate, maxDate, nil
}

// SessionTTL es la vida de una lectura guardada.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// QuestionRateWindow es la ventana del limitador de preguntas.
func (c *Config) QuestionRateWindow() time.Duration {
	return time.Duration(c.QuestionRateWindowMinutes) * time.Minute
}
