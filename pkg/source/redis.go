package source

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

// redisPrefix namespaces the per-device neighbor lists.
const redisPrefix = "neighbors:"

// Redis reads adjacencies from Redis, one list per device under
// "neighbors:<device>". A discovery collector can push observed neighbors
// with RPUSH and this source sees them immediately; list order is the
// collector's observation order, which is what traversal wants.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed source over an existing client. The
// caller keeps ownership of the client's lifecycle unless Close is used.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// DialRedis connects to addr (host:port) and returns a Redis-backed source.
func DialRedis(ctx context.Context, addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}
	return &Redis{client: client}, nil
}

// Neighbors returns the list stored at "neighbors:<device>". A missing key
// is an unknown device, not an empty neighbor list.
func (r *Redis) Neighbors(ctx context.Context, device string) ([]string, error) {
	key := redisPrefix + device
	neighbors, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", key, err)
	}
	if len(neighbors) == 0 {
		exists, err := r.client.Exists(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("redis exists %s: %w", key, err)
		}
		if exists == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, device)
		}
	}
	return neighbors, nil
}

// Devices scans for neighbor keys and returns the device identifiers in
// sorted order.
func (r *Redis) Devices(ctx context.Context) ([]string, error) {
	var (
		devices []string
		cursor  uint64
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, redisPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan: %w", err)
		}
		for _, k := range keys {
			devices = append(devices, strings.TrimPrefix(k, redisPrefix))
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	slices.Sort(devices)
	return devices, nil
}

// Close releases the underlying client connection.
func (r *Redis) Close() error { return r.client.Close() }

var (
	_ Source     = (*Redis)(nil)
	_ Enumerator = (*Redis)(nil)
)
