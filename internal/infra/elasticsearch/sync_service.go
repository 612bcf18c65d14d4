package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"holonet-go/internal/model"
	"holonet-go/pkg/logger"

	"go.uber.org/zap"
)

// CatalogDoc ES 目录文档结构
type CatalogDoc struct {
	Kind          string `json:"kind"`
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FavoriteCount int64  `json:"favorite_count"`
}

// DocID 文档 ID，例如 planet-1
func DocID(kind model.Kind, id int64) string {
	return fmt.Sprintf("%s-%d", kind, id)
}

// BuildBulkBody 构造 bulk index 请求体（NDJSON）
func BuildBulkBody(docs []CatalogDoc) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range docs {
		meta := map[string]interface{}{
			"index": map[string]interface{}{"_id": DocID(model.Kind(doc.Kind), doc.ID)},
		}
		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return nil, err
		}
		if err := json.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// BulkIndex 批量写入目录文档
func (c *Client) BulkIndex(ctx context.Context, docs []CatalogDoc) error {
	if len(docs) == 0 {
		return nil
	}

	body, err := BuildBulkBody(docs)
	if err != nil {
		return err
	}

	resp, err := c.bulk(ctx, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("bulk index failed: %s", resp.String())
	}

	var result struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if result.Errors {
		return fmt.Errorf("bulk index reported item errors")
	}

	logger.Debug("Catalog docs synced to ES", zap.Int("count", len(docs)))
	return nil
}

// ApplyFavoriteDelta 调整文档的收藏数，文档不存在时忽略（等待全量重建）
func (c *Client) ApplyFavoriteDelta(ctx context.Context, kind model.Kind, id int64, delta int) error {
	body, err := json.Marshal(map[string]interface{}{
		"script": map[string]interface{}{
			"source": "ctx._source.favorite_count = Math.max(0, (ctx._source.favorite_count == null ? 0 : ctx._source.favorite_count) + params.delta)",
			"lang":   "painless",
			"params": map[string]interface{}{"delta": delta},
		},
	})
	if err != nil {
		return err
	}

	resp, err := c.update(ctx, DocID(kind, id), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Debug("Catalog doc missing, skip favorite delta", zap.String("doc", DocID(kind, id)))
		return nil
	}
	if resp.IsError() {
		return fmt.Errorf("update favorite count failed: %s", resp.String())
	}
	return nil
}

// BuildSearchQuery 构造目录搜索 DSL，kind 为空时不过滤类型
func BuildSearchQuery(keyword string, kind model.Kind, limit int) map[string]interface{} {
	boolQuery := map[string]interface{}{
		"should": []interface{}{
			map[string]interface{}{
				"match": map[string]interface{}{
					"name": map[string]interface{}{"query": keyword, "fuzziness": "AUTO"},
				},
			},
			map[string]interface{}{
				"match_phrase_prefix": map[string]interface{}{
					"name": map[string]interface{}{"query": keyword},
				},
			},
		},
		"minimum_should_match": 1,
	}
	if kind != "" {
		boolQuery["filter"] = []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"kind": kind.String()}},
		}
	}

	return map[string]interface{}{
		"size":  limit,
		"query": map[string]interface{}{"bool": boolQuery},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"favorite_count": map[string]interface{}{"order": "desc"}},
		},
	}
}

// SearchCatalog 搜索目录
func (c *Client) SearchCatalog(ctx context.Context, keyword string, kind model.Kind, limit int) ([]CatalogDoc, error) {
	queryJSON, err := json.Marshal(BuildSearchQuery(keyword, kind, limit))
	if err != nil {
		return nil, err
	}

	resp, err := c.search(ctx, bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source CatalogDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	docs := make([]CatalogDoc, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		docs = append(docs, h.Source)
	}
	return docs, nil
}
