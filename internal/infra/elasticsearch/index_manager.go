package elasticsearch

import (
	"bytes"
	"context"
	"fmt"

	"holonet-go/pkg/logger"

	"go.uber.org/zap"
)

// catalogIndexMapping 目录索引 mapping
const catalogIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"kind": {"type": "keyword"},
			"id": {"type": "long"},
			"name": {
				"type": "text",
				"analyzer": "standard",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 80}}
			},
			"favorite_count": {"type": "long"}
		}
	}
}`

// EnsureCatalogIndex 确保目录索引存在，不存在则创建
func (c *Client) EnsureCatalogIndex(ctx context.Context) error {
	exists, err := c.indicesExists(ctx)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch catalog index already exists", zap.String("index", c.index))
		return nil
	}

	resp, err := c.indicesCreate(ctx, bytes.NewReader([]byte(catalogIndexMapping)))
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch catalog index created", zap.String("index", c.index))
	return nil
}
