package main

import (
	"log"
	"os"

	"social_network/internal/model"
	"social_network/internal/pkg"
	"social_network/internal/repository/mysql"
	"social_network/internal/repository/redis"
	"social_network/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	dsn := getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/social?charset=utf8mb4&parseTime=True")
	if err := mysql.InitDB(dsn); err != nil {
		log.Fatal(err)
	}

	// 连接redis
	if err := redis.Init(getenv("REDIS_ADDR", "127.0.0.1:6379"), os.Getenv("REDIS_PASSWORD"), 0); err != nil {
		log.Fatal(err)
	}
	defer redis.Close()

	if s := os.Getenv("JWT_ACCESS_SECRET"); s != "" {
		pkg.AccessSecret = []byte(s)
	}
	if s := os.Getenv("JWT_REFRESH_SECRET"); s != "" {
		pkg.RefreshSecret = []byte(s)
	}

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Like{},
	); err != nil {
		log.Fatal(err)
	}

	// Gin
	r := router.InitRouter()
	if err := r.Run(getenv("LISTEN_ADDR", ":8080")); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
