// Package obstelemetry exposes Prometheus metrics for tile compilation and
// cache behavior.
package obstelemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TileCacheHits counts lazily-served tile requests satisfied from cache.
	TileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barkmap_tile_cache_hits_total",
			Help: "Total number of vector tile cache hits",
		},
	)

	// TileCacheMisses counts tile requests that required compilation.
	TileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barkmap_tile_cache_misses_total",
			Help: "Total number of vector tile cache misses",
		},
	)

	// TileCompileDuration measures time spent building one tile, from
	// record fetch through MVT marshaling.
	TileCompileDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barkmap_tile_compile_duration_seconds",
			Help:    "Duration of tile compilation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"zoom"},
	)

	// TileCompileErrors counts tile compilations that failed, e.g. due to a
	// duplicate record ID surfacing from the record store.
	TileCompileErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barkmap_tile_compile_errors_total",
			Help: "Total number of tile compilation errors",
		},
		[]string{"reason"},
	)

	// RecordsCreatedTotal counts successfully stored business records, by
	// type ("pee"/"poo").
	RecordsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barkmap_records_created_total",
			Help: "Total number of business records created",
		},
		[]string{"business_type"},
	)
)
