/*
Package redisstore provides a forest.Store backed by a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/viggieG/ID3-Random-Forest/forest"
	"gopkg.in/redis.v5"
)

/*
ForestEncodeDecoder is an interface for objects
that allow encoding forests into slices of
bytes and decoding them back to forests.
*/
type ForestEncodeDecoder interface {

	// Encode receives a *forest.Forest
	// and returns a slice of bytes with the forest
	// encoded or an error if the encoding could not
	// be performed for some reason.
	Encode(*forest.Forest) ([]byte, error)

	// Decode receives a slice of bytes
	// and returns a *forest.Forest decoded from the
	// slice of bytes or an error if the decoding
	// could not be performed for some reason.
	Decode([]byte) (*forest.Forest, error)
}

type redisStore struct {
	rc      *redis.Client
	prefix  string
	fencdec ForestEncodeDecoder
}

// IDLength is the length of the IDs generated by Create.
const IDLength = 20

/*
New builds a forest.Store backed by a redis DB
that keeps every forest under a key made of the
given prefix and the forest ID.
*/
func New(rc *redis.Client, prefix string, fencdec ForestEncodeDecoder) forest.Store {
	return &redisStore{rc, prefix, fencdec}
}

func (rs *redisStore) Create(ctx context.Context, f *forest.Forest) (string, error) {
	data, err := rs.fencdec.Encode(f)
	if err != nil {
		return "", fmt.Errorf("creating forest: encoding forest: %w", err)
	}
	for {
		id := randString(IDLength)
		ok, err := rs.rc.SetNX(rs.keyFor(id), data, 0).Result()
		if err != nil {
			return "", fmt.Errorf("creating forest in redis: %w", err)
		}
		if ok {
			return id, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
}

func (rs *redisStore) Get(ctx context.Context, id string) (*forest.Forest, error) {
	data, err := rs.rc.Get(rs.keyFor(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving forest %q: %w", id, err)
	}
	f, err := rs.fencdec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("retrieving forest %q: decoding: %w", id, err)
	}
	return f, nil
}

func (rs *redisStore) Store(ctx context.Context, id string, f *forest.Forest) error {
	redisID := rs.keyFor(id)
	data, err := rs.fencdec.Encode(f)
	if err != nil {
		return fmt.Errorf("storing forest %q: encoding forest: %w", redisID, err)
	}
	_, err = rs.rc.Set(redisID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("storing forest %q in redis: %w", redisID, err)
	}
	return nil
}

func (rs *redisStore) Delete(ctx context.Context, id string) error {
	redisID := rs.keyFor(id)
	_, err := rs.rc.Del(redisID).Result()
	if err != nil {
		return fmt.Errorf("deleting forest %q from redis: %w", redisID, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(id string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, id)
}
