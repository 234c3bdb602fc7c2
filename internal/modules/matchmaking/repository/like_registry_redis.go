package repository

import (
	"context"

	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/tracer"
	"github.com/gomodule/redigo/redis"
)

const likeKeyPrefix = "researcher-composite:likes:"

type likeRegistryRedis struct {
	pool interfaces.RedisPool
}

// NewLikeRegistryRedis registry backed by redis sets, SADD reply is the atomic membership check
func NewLikeRegistryRedis(pool interfaces.RedisPool) LikeRegistry {
	return &likeRegistryRedis{pool: pool}
}

func (r *likeRegistryRedis) CheckAndAdd(ctx context.Context, researcherEmail, userEmail string) (alreadyLiked bool, err error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "LikeRegistryRedis:CheckAndAdd")
	defer func() { trace.SetError(err); trace.Finish() }()

	conn := r.pool.WritePool().Get()
	defer conn.Close()

	added, err := redis.Int(conn.Do("SADD", likeKeyPrefix+researcherEmail, userEmail))
	if err != nil {
		return false, err
	}
	return added == 0, nil
}

func (r *likeRegistryRedis) Likes(ctx context.Context, researcherEmail string) (users []string, err error) {
	trace, _ := tracer.StartTraceWithContext(ctx, "LikeRegistryRedis:Likes")
	defer func() { trace.SetError(err); trace.Finish() }()

	conn := r.pool.ReadPool().Get()
	defer conn.Close()

	return redis.Strings(conn.Do("SMEMBERS", likeKeyPrefix+researcherEmail))
}
