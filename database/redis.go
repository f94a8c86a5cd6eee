package database

import (
	"context"
	"log"

	"github.com/fishperson113/letslearn-backend/config"

	"github.com/redis/go-redis/v9"
)

// Redis is the global Redis client, used as a read-through cache by the
// demo endpoints. The server starts fine without Redis; cached endpoints
// just fall back to the database.
var Redis *redis.Client

// ConnectRedis initializes the Redis client and pings it once.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Redis not reachable at %s: %v", config.AppConfig.RedisAddr, err)
		return
	}
	log.Println("Connected to Redis.")
}
