package db

import (
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get on a cache miss, regardless of the
// underlying client implementation.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Ping() error
}
