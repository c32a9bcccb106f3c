package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/store"
)

const (
	taskClearCache = "clearCache"
	pageTagPrefix  = "pageId_"
)

// cacheService runs on the receiving side and flushes the page caches
// named by a clear-cache signal.
type cacheService struct {
	cache store.CacheRepository

	logger *logger.Logger
}

func NewCacheService(cache store.CacheRepository, logger *logger.Logger) CacheService {
	return &cacheService{cache: cache, logger: logger}
}

// ClearCache handles task with signal data "pages:<uid>,pages:<uid>,...".
func (s *cacheService) ClearCache(ctx context.Context, task, data string) error {
	log := logger.FromContext(ctx)

	if task != taskClearCache {
		return ErrUnknownTask
	}
	if data == "" {
		return ErrDataAbsent
	}

	tags, err := pageCacheTags(data)
	if err != nil {
		return err
	}

	removed, err := s.cache.FlushByTags(ctx, tags)
	if err != nil {
		log.Err(err).Str("func", "*cacheService.ClearCache").Strs("tags", tags).Msg("failed to flush page caches")
		return err
	}

	log.Info().Str("func", "*cacheService.ClearCache").Strs("tags", tags).Int64("removed", removed).Msg("page caches flushed")
	return nil
}

// pageCacheTags turns a clear-cache signal into unique page cache tags.
// Entries of other tables are ignored.
func pageCacheTags(data string) ([]string, error) {
	seen := make(map[string]struct{})
	var tags []string
	for _, entry := range strings.Split(data, ",") {
		table, uid, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSignal, entry)
		}
		if table != pagesTable {
			continue
		}
		id, err := strconv.ParseInt(uid, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSignal, entry)
		}

		tag := pageTagPrefix + strconv.FormatInt(id, 10)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}
