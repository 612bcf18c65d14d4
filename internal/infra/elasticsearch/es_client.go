package elasticsearch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"holonet-go/internal/config"
	"holonet-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// Client Elasticsearch 客户端，index 为目录索引名
type Client struct {
	es    *elasticsearch.Client
	index string
}

// New 初始化 Elasticsearch 客户端
func New(cfg *config.ElasticsearchConfig) (*Client, error) {
	hosts := make([]string, 0, len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		h = strings.TrimSpace(h)
		if h != "" && !strings.HasPrefix(h, "http") {
			h = "http://" + h
		}
		if h != "" {
			hosts = append(hosts, h)
		}
	}

	if len(hosts) == 0 {
		return nil, fmt.Errorf("elasticsearch hosts is empty")
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     hosts,
		RetryOnStatus: []int{502, 503, 504},
		MaxRetries:    3,
		RetryBackoff:  func(i int) time.Duration { return time.Duration(i) * time.Second },
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return nil, fmt.Errorf("elasticsearch ping failed: %s", resp.String())
	}

	logger.Info("Elasticsearch connected", zap.Strings("hosts", hosts))
	return &Client{es: es, index: cfg.IndexName("catalog")}, nil
}

// Index 返回目录索引名
func (c *Client) Index() string {
	return c.index
}

func (c *Client) search(ctx context.Context, body io.Reader) (*esapi.Response, error) {
	return c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(body),
	)
}

func (c *Client) update(ctx context.Context, id string, body io.Reader) (*esapi.Response, error) {
	return c.es.Update(
		c.index,
		id,
		body,
		c.es.Update.WithContext(ctx),
		c.es.Update.WithRetryOnConflict(3),
	)
}

func (c *Client) bulk(ctx context.Context, body io.Reader) (*esapi.Response, error) {
	return c.es.Bulk(
		body,
		c.es.Bulk.WithContext(ctx),
		c.es.Bulk.WithIndex(c.index),
		c.es.Bulk.WithRefresh("true"),
	)
}

func (c *Client) indicesCreate(ctx context.Context, body io.Reader) (*esapi.Response, error) {
	return c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(body),
	)
}

func (c *Client) indicesExists(ctx context.Context) (bool, error) {
	resp, err := c.es.Indices.Exists(
		[]string{c.index},
		c.es.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return !resp.IsError() && resp.StatusCode == 200, nil
}

// Close 关闭连接
func (c *Client) Close() error {
	logger.Info("Elasticsearch client closed")
	return nil
}
