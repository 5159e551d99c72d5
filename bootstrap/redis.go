package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(env *Env) *redis.Client {
	opts, err := redis.ParseURL(env.RedisURL)
	if err != nil {
		log.Fatal("Invalid REDIS_URL: ", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed: ", err)
	}

	return client
}

func CloseRedisConnection(client *redis.Client) {
	if client == nil {
		return
	}

	if err := client.Close(); err != nil {
		log.Println("Failed to close Redis connection: ", err)
		return
	}

	log.Println("Connection to Redis closed.")
}
