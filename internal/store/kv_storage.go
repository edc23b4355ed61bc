package store

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// KVStorage namespaces every key of the underlying storage with a prefix so
// several stores can share one redis database.
type KVStorage struct {
	fiber.Storage
	keyPrefix string
}

func (s *KVStorage) Get(key string) ([]byte, error) {
	return s.Storage.Get(s.keyPrefix + key)
}

func (s *KVStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.Storage.Set(s.keyPrefix+key, val, exp)
}

func (s *KVStorage) Delete(key string) error {
	return s.Storage.Delete(s.keyPrefix + key)
}

func NewKVStorage(storage fiber.Storage, keyPrefix string) fiber.Storage {
	return &KVStorage{
		Storage:   storage,
		keyPrefix: keyPrefix,
	}
}
