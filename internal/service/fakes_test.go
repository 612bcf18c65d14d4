package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	infraES "holonet-go/internal/infra/elasticsearch"
	infraKafka "holonet-go/internal/infra/kafka"
	"holonet-go/internal/model"
)

// memoryCache 以 JSON 存值，行为与 Redis 缓存一致
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
	gets   int
	hits   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	data, ok := c.values[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = data
	return nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, errors.New("redis down")
}

func (brokenCache) Set(context.Context, string, interface{}) error {
	return errors.New("redis down")
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []infraKafka.FavoriteEvent
	err    error
}

func (p *recordingPublisher) PublishFavoriteEvent(_ context.Context, evt *infraKafka.FavoriteEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *evt)
	return p.err
}

type fakeIndex struct {
	docs []infraES.CatalogDoc
	err  error

	gotKeyword string
	gotKind    model.Kind
	gotLimit   int
}

func (f *fakeIndex) SearchCatalog(_ context.Context, keyword string, kind model.Kind, limit int) ([]infraES.CatalogDoc, error) {
	f.gotKeyword, f.gotKind, f.gotLimit = keyword, kind, limit
	return f.docs, f.err
}

type delta struct {
	Kind  model.Kind
	ID    int64
	Delta int
}

type fakeIndexer struct {
	indexed []infraES.CatalogDoc
	deltas  []delta
	err     error
}

func (f *fakeIndexer) BulkIndex(_ context.Context, docs []infraES.CatalogDoc) error {
	if f.err != nil {
		return f.err
	}
	f.indexed = append(f.indexed, docs...)
	return nil
}

func (f *fakeIndexer) ApplyFavoriteDelta(_ context.Context, kind model.Kind, id int64, d int) error {
	if f.err != nil {
		return f.err
	}
	f.deltas = append(f.deltas, delta{Kind: kind, ID: id, Delta: d})
	return nil
}
