package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"shareit/internal/model"
	repo "shareit/internal/user/repository"
	"shareit/pkg/log"
)

const userKeyPrefix = "shareit:user:"

// implRepository is a read-through cache in front of another user Repository.
// Lookups by id are served from redis when possible. Writes go to the wrapped
// repository and drop the cached entry. Redis errors are logged, never returned.
type implRepository struct {
	repo.Repository

	redis *redis.Client
	ttl   time.Duration
	l     log.Logger
}

// New wraps next with a redis cache.
func New(next repo.Repository, rdb *redis.Client, ttl time.Duration, l log.Logger) repo.Repository {
	return &implRepository{
		Repository: next,
		redis:      rdb,
		ttl:        ttl,
		l:          l,
	}
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	// only pure id lookups are cacheable
	if opt.ID == 0 || opt.Email != "" {
		return r.Repository.GetOneUser(ctx, opt)
	}

	key := userKey(opt.ID)
	val, err := r.redis.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// miss
	case err != nil:
		r.l.Warnf(ctx, "user/repository/cache.GetOneUser: can't get %s: %v", key, err)
	default:
		var u cachedUser
		if err := json.Unmarshal([]byte(val), &u); err != nil {
			r.l.Warnf(ctx, "user/repository/cache.GetOneUser: can't decode %s: %v", key, err)
			break
		}
		return u.toModel(), nil
	}

	u, err := r.Repository.GetOneUser(ctx, opt)
	if err != nil || u.ID == 0 {
		return u, err
	}

	r.set(ctx, u)
	return u, nil
}

func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	u, err := r.Repository.UpdateUser(ctx, opt)
	r.drop(ctx, opt.ID)
	return u, err
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	err := r.Repository.DeleteUser(ctx, id)
	r.drop(ctx, id)
	return err
}

func (r *implRepository) set(ctx context.Context, u model.User) {
	data, err := json.Marshal(newCachedUser(u))
	if err != nil {
		r.l.Warnf(ctx, "user/repository/cache.set: can't encode user %d: %v", u.ID, err)
		return
	}
	if err := r.redis.Set(ctx, userKey(u.ID), data, r.ttl).Err(); err != nil {
		r.l.Warnf(ctx, "user/repository/cache.set: can't set user %d: %v", u.ID, err)
	}
}

func (r *implRepository) drop(ctx context.Context, id int64) {
	if err := r.redis.Del(ctx, userKey(id)).Err(); err != nil {
		r.l.Warnf(ctx, "user/repository/cache.drop: can't delete user %d: %v", id, err)
	}
}

func userKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}

type cachedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newCachedUser(u model.User) cachedUser {
	return cachedUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (c cachedUser) toModel() model.User {
	return model.User{ID: c.ID, Name: c.Name, Email: c.Email}
}
