package main

import (
	"clubhouse/internal/config"
	"clubhouse/internal/model"
	"clubhouse/internal/pkg"
	"clubhouse/internal/repository/mysql"
	"clubhouse/internal/repository/redis"
	"clubhouse/internal/router"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}

	if err := mysql.InitDB(cfg.DatabaseDSN); err != nil {
		logrus.WithError(err).Fatal("connect mysql")
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		logrus.WithError(err).Fatal("connect redis")
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(&model.Member{}, &model.Message{}); err != nil {
		logrus.WithError(err).Fatal("migrate schema")
	}

	pkg.SessionSecret = []byte(cfg.SessionSecret)

	audit := pkg.NewAuditProducer(pkg.KafkaConfig(cfg.Kafka))
	defer audit.Close()

	r := router.InitRouter(cfg, audit, "web/templates/*.html")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("http server")
	}
}
