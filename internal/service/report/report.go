package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"registro-clientes/internal/domain/report"
	xerrors "registro-clientes/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Runner executes a raw catalog query against the database.
type Runner interface {
	Run(ctx context.Context, query string) (*report.Result, error)
}

// Info describes a catalog entry to the presentation layer.
type Info struct {
	Slug    string   `json:"slug"`
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

type ReportService struct {
	runner Runner
	cache  *redis.Client // nil disables caching
	ttl    time.Duration
	logger *zap.Logger
}

func NewReportService(runner Runner, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *ReportService {
	return &ReportService{runner: runner, cache: cache, ttl: ttl, logger: logger}
}

// List enumerates the catalog in its fixed order.
func (s *ReportService) List() []Info {
	entries := Catalog()
	out := make([]Info, len(entries))
	for i, e := range entries {
		out[i] = Info{Slug: e.Slug, Name: e.Name, Columns: e.Columns}
	}
	return out
}

// Run executes the named report and returns its display columns plus
// rows. Results are cached with a short TTL when Redis is configured;
// a cache failure only costs the round trip, never the report.
func (s *ReportService) Run(ctx context.Context, key string) (*report.Result, error) {
	entry, ok := Lookup(key)
	if !ok {
		return nil, xerrors.Wrap(xerrors.ErrNotFound, fmt.Sprintf("no existe el reporte %q", key))
	}

	cacheKey := "report:" + entry.Slug
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	result, err := s.runner.Run(ctx, entry.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to run report %s: %w", entry.Slug, err)
	}

	// Display labels take precedence over the raw SQL column names.
	result.Columns = entry.Columns

	s.toCache(ctx, cacheKey, result)
	return result, nil
}

func (s *ReportService) fromCache(ctx context.Context, key string) *report.Result {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var result report.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		s.logger.Warn("discarding unreadable cached report", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &result
}

func (s *ReportService) toCache(ctx context.Context, key string, result *report.Result) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to cache report", zap.String("key", key), zap.Error(err))
	}
}

// Filter keeps only rows where some cell contains the term,
// case-insensitively. An empty term returns the result untouched.
func Filter(result *report.Result, term string) *report.Result {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return result
	}

	filtered := &report.Result{Columns: result.Columns}
	for _, row := range result.Rows {
		for _, cell := range row {
			if cell == nil {
				continue
			}
			if strings.Contains(strings.ToLower(fmt.Sprint(cell)), term) {
				filtered.Rows = append(filtered.Rows, row)
				break
			}
		}
	}
	return filtered
}
