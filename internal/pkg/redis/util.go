package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// 所有辅助函数在客户端未初始化时直接退化为无缓存行为，
// 业务路径不依赖 Redis 的可用性。

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", nil
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetNX 仅当键不存在时设置，返回是否设置成功
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	if Rdb == nil {
		return true, nil
	}
	return Rdb.SetNX(ctx, key, value, expiration).Result()
}

// TryLock 带重试的分布式锁
func TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	if Rdb == nil {
		return true, nil
	}
	for i := 0; i <= retryTimes; i++ {
		success, err := Rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		time.Sleep(time.Millisecond * 200)
	}
	return false, nil
}

// UnLock 释放锁，只允许持有者删除
func UnLock(ctx context.Context, key string, value interface{}) {
	if Rdb == nil {
		return
	}
	Rdb.Eval(ctx, "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end", []string{key}, value)
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}

// GetRdbClient 获取redis客户端
func GetRdbClient() *redis.Client {
	return Rdb
}
