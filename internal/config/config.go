package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Config struct {
	HTTPAddr      string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionSecret string
	JoinPasscode  string
	AdminPasscode string
	SMTP          SMTP
	Kafka         Kafka
}

// Load 读取 .env（存在时）和环境变量；缺少必要密钥直接报错
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		JoinPasscode:  os.Getenv("JOIN_PASSCODE"),
		AdminPasscode: os.Getenv("ADMIN_PASSCODE"),
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "Clubhouse <no-reply@clubhouse.local>"),
		},
		Kafka: Kafka{
			Topic: getenv("KAFKA_TOPIC", "clubhouse.audit"),
		},
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("config: REDIS_DB must be an integer")
		}
		cfg.RedisDB = n
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("config: SMTP_PORT must be an integer")
		}
		cfg.SMTP.Port = n
	} else {
		cfg.SMTP.Port = 587
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}

	switch {
	case cfg.DatabaseDSN == "":
		return nil, errors.New("config: DATABASE_DSN is required")
	case cfg.SessionSecret == "":
		return nil, errors.New("config: SESSION_SECRET is required")
	case cfg.JoinPasscode == "":
		return nil, errors.New("config: JOIN_PASSCODE is required")
	case cfg.AdminPasscode == "":
		return nil, errors.New("config: ADMIN_PASSCODE is required")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
