package main

import (
	"log/slog"

	"Blogicum/internal/config"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/mysql"
	"Blogicum/internal/repository/redis"
	"Blogicum/internal/router"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}
	cfg := config.Cfg

	pkg.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQL.DSN); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Location{},
		&model.Post{},
		&model.Comment{},
	)

	// 评论事件生产者，连不上也不拦启动，通知本来就是尽力而为
	producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		slog.Warn("kafka producer init failed", "err", err)
		producer = nil
	}
	defer producer.Close()

	// Gin
	r := router.InitRouter(mysql.DB, producer)
	if err := r.Run(cfg.Server.Addr); err != nil {
		return
	}
}
