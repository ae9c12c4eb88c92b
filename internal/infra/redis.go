package infra

import (
	"os"

	backend "github.com/redis/go-redis/v9"
)

func InitRedis() *backend.Client {
	return backend.NewClient(&backend.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
