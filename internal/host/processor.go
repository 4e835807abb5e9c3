package host

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/logging"
	"github.com/Aman-s12345/go-routedoc/internal/source"
)

// ProcessorConfig tunes a Processor.
type ProcessorConfig struct {
	// Workers bounds how many doclets are processed at once. Zero means
	// GOMAXPROCS.
	Workers int
	// AllowUnknownTags logs and skips tags no plugin is registered for
	// instead of failing the doclet.
	AllowUnknownTags bool
}

// Processor turns records into finalized doclets.
type Processor struct {
	registry *Registry
	config   ProcessorConfig
	logger   *slog.Logger
}

func NewProcessor(registry *Registry, config ProcessorConfig, logger *slog.Logger) *Processor {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Processor{
		registry: registry,
		config:   config,
		logger:   logging.WithComponent(logger, "processor"),
	}
}

// Process builds and finalizes one doclet per record. Doclets share no
// state, so they run concurrently; the tags of each doclet are still folded
// in order by a single goroutine. The result keeps the input order.
func (p *Processor) Process(ctx context.Context, records []source.Record) ([]*doclet.Doclet, error) {
	results := make([]*doclet.Doclet, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Workers)
	for i, rec := range records {
		i, rec := i, rec
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := p.ProcessRecord(rec)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Info("processed doclets", "count", len(results))
	return results, nil
}

// ProcessRecord folds the record's tags into a new doclet and finalizes it.
func (p *Processor) ProcessRecord(rec source.Record) (*doclet.Doclet, error) {
	s, err := p.registry.Begin(rec.NewDoclet())
	if err != nil {
		return nil, err
	}
	d := s.Doclet()

	for _, t := range rec.Tags {
		err := s.Tag(t)
		if err == nil {
			continue
		}
		if p.config.AllowUnknownTags && errors.GetKind(err) == errors.KindNotFound {
			p.logger.Warn("skipping unknown tag", "doclet", d.Name, "tag", t.Title)
			continue
		}
		return nil, err
	}

	if err := s.Finish(); err != nil {
		return nil, err
	}
	return s.Doclet(), nil
}
