package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"barkmap/entities"
	"barkmap/interfaces"
	"barkmap/internal/config"
	"barkmap/internal/obstelemetry"
	"barkmap/internal/tilegrid"
	"barkmap/internal/vectortile"
)

// defaultTileCacheSize bounds how many compiled tiles are kept in memory at
// once before the least-recently-used entry is evicted.
const defaultTileCacheSize = 4096

// MVTService lazily compiles and caches Mapbox Vector Tiles backed by a
// record repository. A cache miss at zoom z queries records indexed at the
// finest configured zoom level that does not exceed z, then lets the tile
// compiler's Buffer discard anything that falls outside the requested
// tile's precise bounds.
type MVTService struct {
	records interfaces.RecordRepository
	tile    config.TileConfig
	cache   *lru.Cache[string, []byte]

	indexedZoomLevels []int // ascending, always starts at 0
}

// NewMVTService creates a new MVT tile service.
func NewMVTService(records interfaces.RecordRepository, tileConfig config.TileConfig) *MVTService {
	levels := append([]int(nil), tileConfig.IndexedZoomLevels...)
	sort.Ints(levels)
	if len(levels) == 0 || levels[0] != 0 {
		levels = append([]int{0}, levels...)
	}

	cache, err := lru.New[string, []byte](defaultTileCacheSize)
	if err != nil {
		// Only fails for a non-positive size, which defaultTileCacheSize never is.
		panic(fmt.Sprintf("mvt tile cache: %v", err))
	}

	return &MVTService{
		records:           records,
		tile:              tileConfig,
		cache:             cache,
		indexedZoomLevels: levels,
	}
}

// GetMinZoom implements interfaces.MVTCache.
func (s *MVTService) GetMinZoom() int { return s.tile.MinZoom }

// GetMaxZoom implements interfaces.MVTCache.
func (s *MVTService) GetMaxZoom() int { return s.tile.MaxZoom }

// GetTile implements interfaces.MVTCache: it returns the compiled tile for
// coords, compiling and caching it on a miss.
func (s *MVTService) GetTile(ctx context.Context, coords entities.TileCoordinates) ([]byte, error) {
	key := tileCacheKey(coords)
	if data, ok := s.cache.Get(key); ok {
		obstelemetry.TileCacheHits.Inc()
		return data, nil
	}
	obstelemetry.TileCacheMisses.Inc()

	start := time.Now()
	data, err := s.compileTile(ctx, coords)
	obstelemetry.TileCompileDuration.WithLabelValues(fmt.Sprintf("%d", coords.Z)).Observe(time.Since(start).Seconds())
	if err != nil {
		obstelemetry.TileCompileErrors.WithLabelValues("compile").Inc()
		return nil, err
	}

	s.cache.Add(key, data)
	return data, nil
}

// InvalidateAll implements interfaces.MVTCache: it drops every cached tile.
// A new record anywhere can affect any ancestor tile, so there is no cheaper
// correct invalidation than a full purge.
func (s *MVTService) InvalidateAll() {
	s.cache.Purge()
}

// InvalidateMVTCache implements interfaces.CacheService.
func (s *MVTService) InvalidateMVTCache(ctx context.Context) error {
	s.InvalidateAll()
	return nil
}

func (s *MVTService) compileTile(ctx context.Context, coords entities.TileCoordinates) ([]byte, error) {
	indexedCoords := s.zoomOutToIndexedLevel(coords)

	records, err := s.records.QueryByTile(ctx, indexedCoords, s.tile.MaxRecordsPerTile)
	if err != nil {
		return nil, fmt.Errorf("query records for tile %d/%d/%d: %w", coords.Z, coords.X, coords.Y, err)
	}

	buf := vectortile.NewBuffer(tilegrid.Coordinate{
		Z: uint32(coords.Z),
		X: uint32(coords.X),
		Y: uint32(coords.Y),
	})
	for _, r := range records {
		// TODO: calculate the anonymity level and filter non-advocated records
		err := buf.Append(r.ToVectortileRecord())
		switch {
		case err == nil:
			continue
		case err == vectortile.ErrOutsideOfTile:
			// Expected when the indexed zoom is coarser than the
			// requested zoom: the record belongs to a sibling tile.
			continue
		default:
			log.Error().Err(err).Str("recordId", r.ID).Msg("rejecting business record while compiling tile")
			return nil, err
		}
	}

	return vectortile.Marshal(buf.Finalize()), nil
}

// zoomOutToIndexedLevel finds the largest indexed zoom level that does not
// exceed coords.Z and rescales x/y to that level's tile grid. Zoom level 0 is
// always indexed, so this never fails to find a match.
func (s *MVTService) zoomOutToIndexedLevel(coords entities.TileCoordinates) entities.TileCoordinates {
	indexedZoom := s.indexedZoomLevels[0]
	for _, z := range s.indexedZoomLevels {
		if z > coords.Z {
			break
		}
		indexedZoom = z
	}

	shift := uint(coords.Z - indexedZoom)
	return entities.TileCoordinates{
		Z: indexedZoom,
		X: coords.X >> shift,
		Y: coords.Y >> shift,
	}
}

func tileCacheKey(coords entities.TileCoordinates) string {
	return fmt.Sprintf("%d/%d/%d", coords.Z, coords.X, coords.Y)
}

// Compile-time checks that MVTService implements the interfaces apiHandlers
// and event handlers depend on.
var (
	_ interfaces.MVTCache     = (*MVTService)(nil)
	_ interfaces.CacheService = (*MVTService)(nil)
)
