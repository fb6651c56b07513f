/*
Package rediskb provides an implementation of kb.Store that uses a
redis database as backend, with one JSON-encoded record per key.
*/
package rediskb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vicky2004-art/plant-identifier/kb"
	redis "gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
}

// New builds a kb.Store backed by a redis DB. All keys managed by the
// store are prefixed with the given prefix.
func New(rc *redis.Client, prefix string) kb.Store {
	return &redisStore{rc, prefix}
}

/*
Open takes a redis URL, parses it and returns a kb.Store backed by the
redis DB it points to, or an error if the URL cannot be parsed.
*/
func Open(redisURL, prefix string) (kb.Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL %s: %v", redisURL, err)
	}
	return New(redis.NewClient(opts), prefix), nil
}

func (rs *redisStore) Get(ctx context.Context, label string) (*kb.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rs.rc.Get(rs.keyFor(label)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving record %q: %v", label, err)
	}
	r := &kb.Record{}
	if err := json.Unmarshal([]byte(data), r); err != nil {
		return nil, fmt.Errorf("retrieving record %q: decoding %q: %v", label, data, err)
	}
	return r, nil
}

func (rs *redisStore) Put(ctx context.Context, r *kb.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("storing record %q: encoding record: %v", r.Label, err)
	}
	_, err = rs.rc.Set(rs.keyFor(r.Label), data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing record %q in redis: %v", r.Label, err)
	}
	return nil
}

func (rs *redisStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys, err := rs.rc.Keys(fmt.Sprintf("%s:*", rs.prefix)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing records from redis: %v", err)
	}
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, strings.TrimPrefix(k, rs.prefix+":"))
	}
	sort.Strings(labels)
	return labels, nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(label string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, label)
}
