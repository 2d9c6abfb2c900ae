package rdx

import (
	"log"
	"os"
	"time"

	"tripforge/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects to Redis. It runs from main after the environment is
// loaded; package init would read REDIS_ADDR before .env exists.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis unreachable at %s: %v", addr, err)
	}
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxExpire(key string, ttl time.Duration) error {
	return Conn.Expire(globals.Ctx, key, ttl).Err()
}
