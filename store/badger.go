package store

import (
	"context"

	"github.com/dlshle/functional/errors"
	"github.com/dlshle/functional/logging"
	"github.com/dlshle/functional/utils"

	badger "github.com/dgraph-io/badger/v3"
)

type options struct {
	logger logging.Logger
}

type Option func(*options)

// WithLogger sets the logger for cache failures and badger's own messages.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// BadgerCache is an in-memory badger table that satisfies cache.Cache. Values
// live in badger's arena instead of Go maps, which keeps large memo tables
// off the garbage collected heap. Nothing is written to disk.
type BadgerCache[K comparable, V any] struct {
	db     *badger.DB
	logger logging.Logger
	SerializeHandler[K, V]
}

// NewBadgerCache opens a table that encodes keys and values as JSON. Key
// types CheckJSONKey rejects fail with errors.ErrContractViolation.
func NewBadgerCache[K comparable, V any](opts ...Option) (*BadgerCache[K, V], error) {
	return NewBadgerCacheWith(NewJSONSerializeHandler[K, V](), opts...)
}

func NewBadgerCacheWith[K comparable, V any](serializeHandler SerializeHandler[K, V], opts ...Option) (*BadgerCache[K, V], error) {
	o := &options{
		logger: logging.LibraryLogger("[BadgerCache]"),
	}
	for _, opt := range opts {
		opt(o)
	}
	if _, ok := serializeHandler.(JSONSerializeHandler[K, V]); ok {
		if err := CheckJSONKey[K](); err != nil {
			return nil, err
		}
	}
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(logging.BadgerLogger(o.logger)))
	if err != nil {
		return nil, errors.Errorf("open in-memory badger: %w", err)
	}
	return &BadgerCache[K, V]{
		db:               db,
		logger:           o.logger,
		SerializeHandler: serializeHandler,
	}, nil
}

func (s *BadgerCache[K, V]) withRead(cb func(tx *badger.Txn) error) error {
	return s.db.View(cb)
}

func (s *BadgerCache[K, V]) withWrite(cb func(tx *badger.Txn) error) error {
	return s.db.Update(cb)
}

// Get reports a miss for absent keys and for entries that fail to decode.
func (s *BadgerCache[K, V]) Get(key K) (value V, ok bool) {
	err := s.withRead(func(tx *badger.Txn) error {
		var (
			serializedKey []byte
			item          *badger.Item
			err           error
		)
		return utils.ProcessWithErrors(func() error {
			serializedKey, err = s.KeySerializer(key)
			return err
		}, func() error {
			item, err = tx.Get(serializedKey)
			return err
		}, func() error {
			return item.Value(func(val []byte) error {
				value, err = s.ValueDeserializer(val)
				return err
			})
		})
	})
	if err == nil {
		return value, true
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		s.logger.Warnf(context.Background(), "get %v: %s", key, err.Error())
	}
	var zero V
	return zero, false
}

func (s *BadgerCache[K, V]) Set(key K, value V) error {
	return s.withWrite(func(tx *badger.Txn) error {
		serializedKey, serializedValue, err := s.serializeKV(key, value)
		if err != nil {
			return err
		}
		return tx.Set(serializedKey, serializedValue)
	})
}

func (s *BadgerCache[K, V]) Delete(key K) error {
	return s.withWrite(func(tx *badger.Txn) error {
		serializedKey, err := s.KeySerializer(key)
		if err != nil {
			return err
		}
		return tx.Delete(serializedKey)
	})
}

func (s *BadgerCache[K, V]) Has(key K) bool {
	err := s.withRead(func(tx *badger.Txn) error {
		serializedKey, err := s.KeySerializer(key)
		if err != nil {
			return err
		}
		_, err = tx.Get(serializedKey)
		return err
	})
	return err == nil
}

func (s *BadgerCache[K, V]) Len() int {
	return len(s.Keys())
}

// Clear drops every entry.
func (s *BadgerCache[K, V]) Clear() error {
	return s.db.DropAll()
}

// Keys lists keys in badger's byte order. Keys that fail to decode are
// logged and skipped.
func (s *BadgerCache[K, V]) Keys() []K {
	var keys []K
	err := s.withRead(func(tx *badger.Txn) error {
		opt := badger.DefaultIteratorOptions
		opt.PrefetchValues = false
		itr := tx.NewIterator(opt)
		defer itr.Close()
		for itr.Rewind(); itr.Valid(); itr.Next() {
			key, err := s.KeyDeserializer(itr.Item().KeyCopy(nil))
			if err != nil {
				s.logger.Warnf(context.Background(), "skip key: %s", err.Error())
				continue
			}
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		s.logger.Errorf(context.Background(), "list keys: %s", err.Error())
	}
	return keys
}

func (s *BadgerCache[K, V]) Close() error {
	return s.db.Close()
}

func (s *BadgerCache[K, V]) serializeKV(key K, value V) (k, v []byte, e error) {
	e = utils.ProcessWithErrors(func() error {
		k, e = s.KeySerializer(key)
		return e
	}, func() error {
		v, e = s.ValueSerializer(value)
		return e
	})
	return
}
