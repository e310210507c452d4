package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/emergentai/formdocs/internal/apperror"
	"github.com/emergentai/formdocs/internal/components"
	"github.com/emergentai/formdocs/internal/features"
	"github.com/emergentai/formdocs/internal/logger"
	"github.com/emergentai/formdocs/internal/metrics"
)

const homePage = "home"

// Options configures Pages.
type Options struct {
	Site    components.Site
	Section components.FeatureSection
	Catalog features.Catalog
	// CacheTTL bounds how long a rendered homepage is reused; 0 disables
	// the cache.
	CacheTTL time.Duration
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// Pages serves the rendered site pages.
type Pages struct {
	site    components.Site
	section components.FeatureSection
	catalog features.Catalog
	cache   *cache.Cache
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewPages(opts Options) *Pages {
	p := &Pages{
		site:    opts.Site,
		section: opts.Section,
		catalog: opts.Catalog,
		metrics: opts.Metrics,
		log:     opts.Logger,
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	p.log = p.log.With(logger.Scope("handlers"))
	if opts.CacheTTL > 0 {
		p.cache = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}
	return p
}

// RenderHome renders the full homepage document.
func (p *Pages) RenderHome() ([]byte, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := components.HomePage(p.site, p.section, p.catalog).Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render homepage: %w", err)
	}
	if p.metrics != nil {
		p.metrics.ObserveRender(homePage, time.Since(start))
	}
	return buf.Bytes(), nil
}

func (p *Pages) home() ([]byte, error) {
	if p.cache == nil {
		return p.RenderHome()
	}
	if cached, ok := p.cache.Get(homePage); ok {
		p.observeCache(metrics.CacheHit)
		return cached.([]byte), nil
	}
	p.observeCache(metrics.CacheMiss)

	body, err := p.RenderHome()
	if err != nil {
		return nil, err
	}
	p.cache.Set(homePage, body, cache.DefaultExpiration)
	return body, nil
}

func (p *Pages) observeCache(result string) {
	if p.metrics != nil {
		p.metrics.ObserveCache(homePage, result)
	}
}

func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) {
	body, err := p.home()
	if err != nil {
		p.log.Error("landing page render failed", logger.Error(err))
		apperror.Write(w, apperror.ErrRenderFailed.WithInternal(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// FeaturesResponse is the body of GET /api/features.
type FeaturesResponse struct {
	Features []features.Summary `json:"features"`
}

// FeaturesJSON encodes the catalog the way /api/features serves it.
func (p *Pages) FeaturesJSON() ([]byte, error) {
	body, err := json.Marshal(FeaturesResponse{Features: p.catalog.Summaries()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}
	return body, nil
}

func (p *Pages) Features(w http.ResponseWriter, r *http.Request) {
	body, err := p.FeaturesJSON()
	if err != nil {
		p.log.Error("features encode failed", logger.Error(err))
		apperror.Write(w, apperror.ErrEncodeFailed.WithInternal(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// NotFound answers unknown routes with the JSON error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	apperror.Write(w, apperror.ErrNotFound.WithMessage("No page at "+r.URL.Path))
}
