package cache

import (
	"strings"

	"github.com/redis/go-redis/v9"
)

// Options configures the redis connection.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// NewRedis returns a client and its close func. The default port is appended when addr has none.
func NewRedis(opt Options) (*redis.Client, func() error) {
	addr := opt.Addr
	if !strings.Contains(addr, ":") {
		addr = addr + ":6379"
	}

	r := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: opt.Username,
		Password: opt.Password,
		DB:       opt.DB,
	})

	return r, r.Close
}
