package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linechart/pkg/cache"
	"github.com/matzehuels/linechart/pkg/errors"
	"github.com/matzehuels/linechart/pkg/observability"
)

// keyTypeArtifact labels artifact entries in cache hook events.
const keyTypeArtifact = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer uses [cache.DefaultKeyer], a nil
// cache disables caching and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the plan and render stages. The plan is always recomputed;
// rendered artifacts are served from cache per format unless opts.Refresh
// is set.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Plan
	planStart := time.Now()
	planned, err := r.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Plan = &planned.Plan
	result.Ticks = planned.Ticks
	result.Stats.Points = len(opts.Table.Values)
	result.Stats.Commands = planned.Plan.Len()
	result.Stats.PlanTime = time.Since(planStart)

	opts.Logger.Debug("computed plan",
		"kind", opts.Kind,
		"points", result.Stats.Points,
		"commands", result.Stats.Commands,
		"duration", result.Stats.PlanTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, planned, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Plan runs the plan stage and fires the plan hooks.
func (r *Runner) Plan(ctx context.Context, opts Options) (Planned, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Planned{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnPlanStart(ctx, opts.Kind, len(opts.Table.Values))
	start := time.Now()
	planned, err := Plan(opts)
	hooks.OnPlanComplete(ctx, opts.Kind, planned.Plan.Len(), time.Since(start), err)
	return planned, err
}

// RenderWithCacheInfo renders every format, reusing cached artifacts. The
// bool reports whether all of them came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, planned Planned, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	dataHash, err := cache.HashJSON(opts.Table)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash table")
	}
	configHash, err := cache.HashJSON(opts.Config)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash config")
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(dataHash, opts.ArtifactKeyOpts(format, configHash))

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				cacheHooks.OnCacheHit(ctx, keyTypeArtifact)
				artifacts[format] = data
				continue
			}
			cacheHooks.OnCacheMiss(ctx, keyTypeArtifact)
		}
		allCached = false

		data, err := RenderFormat(planned.Plan, format, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			cacheHooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, allCached && len(opts.Formats) > 0, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
