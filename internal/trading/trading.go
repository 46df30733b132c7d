// Package trading implements the wishlist and tradelist engine: title
// normalization, per-owner list maintenance, cross-owner matching and the
// duplicate/conflict report.
package trading

import (
	"context"
	"fmt"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/logger"
	"mangatrade/pkg/serrors"
	"mangatrade/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const meterName = "mangatrade/internal/trading"

// Options configure the service's instrumentation.
type Options struct {
	// MeterProvider receives the service counters. A no-op provider is used
	// when nil.
	MeterProvider metric.MeterProvider
}

// instruments groups the otel counters recorded by the service.
type instruments struct {
	added   metric.Int64Counter
	ignored metric.Int64Counter
	removed metric.Int64Counter
	matches metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	added, err := meter.Int64Counter("mangatrade.entries.added",
		metric.WithDescription("Number of list entries stored."))
	if err != nil {
		return nil, fmt.Errorf("could not create added counter: %w", err)
	}
	ignored, err := meter.Int64Counter("mangatrade.entries.ignored",
		metric.WithDescription("Number of add requests whose key was already listed."))
	if err != nil {
		return nil, fmt.Errorf("could not create ignored counter: %w", err)
	}
	removed, err := meter.Int64Counter("mangatrade.entries.removed",
		metric.WithDescription("Number of list entries removed by remove or clear."))
	if err != nil {
		return nil, fmt.Errorf("could not create removed counter: %w", err)
	}
	matches, err := meter.Int64Counter("mangatrade.matches.computed",
		metric.WithDescription("Number of match computations by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create matches counter: %w", err)
	}

	return &instruments{added: added, ignored: ignored, removed: removed, matches: matches}, nil
}

func kindAttr(kind domain.ListKind) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("kind", kind.String()))
}

// service is the storage-backed Service implementation.
type service struct {
	storage storage.Storage
	metrics *instruments
}

// validKind rejects list kinds that did not come from domain.ListKinds.
func validKind(kind domain.ListKind) error {
	if !kind.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown list kind %d", kind)
	}

	return nil
}

// Add normalizes title and inserts it into the owner's list. Adding a title
// whose key is already listed is a successful no-op that keeps the stored
// display title.
func (s service) Add(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind, title string) error {
	if err := validKind(kind); err != nil {
		return err
	}

	entry := domain.Entry{OwnerID: ownerID, Kind: kind, Title: title, Key: Normalize(title)}
	inserted, err := s.storage.AddEntry(ctx, entry)
	if err != nil {
		return fmt.Errorf("could not add %s entry: %w", kind, err)
	}

	if !inserted {
		s.metrics.ignored.Add(ctx, 1, kindAttr(kind))
		logger.Debug(ctx, "title already listed",
			zap.Stringer("kind", kind),
			zap.String("key", entry.Key))

		return nil
	}
	s.metrics.added.Add(ctx, 1, kindAttr(kind))

	return nil
}

// Remove deletes the entry matching the key of title, whatever spelling it
// was stored with. A zero count means nothing matched.
func (s service) Remove(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ListKind,
	title string) (int64, error) {
	if err := validKind(kind); err != nil {
		return 0, err
	}

	n, err := s.storage.DeleteEntry(ctx, ownerID, kind, Normalize(title))
	if err != nil {
		return 0, fmt.Errorf("could not remove %s entry: %w", kind, err)
	}
	s.metrics.removed.Add(ctx, n, kindAttr(kind))

	return n, nil
}

// Clear deletes every entry of the owner's list.
func (s service) Clear(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) (int64, error) {
	if err := validKind(kind); err != nil {
		return 0, err
	}

	n, err := s.storage.DeleteEntries(ctx, ownerID, kind)
	if err != nil {
		return 0, fmt.Errorf("could not clear %s: %w", kind, err)
	}
	s.metrics.removed.Add(ctx, n, kindAttr(kind))

	return n, nil
}

// List returns the owner's titles ordered case-insensitively.
func (s service) List(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) ([]string, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	titles, err := s.storage.Titles(ctx, ownerID, kind)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", kind, err)
	}

	return titles, nil
}

// Search returns the union of titles containing needle verbatim and titles
// whose key contains the key of needle.
func (s service) Search(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ListKind,
	needle string) ([]string, error) {
	if err := validKind(kind); err != nil {
		return nil, err
	}

	titles, err := s.storage.SearchTitles(ctx, ownerID, kind, needle, Normalize(needle))
	if err != nil {
		return nil, fmt.Errorf("could not search %s: %w", kind, err)
	}

	return titles, nil
}

// New creates a Service backed by the provided storage.
func New(storage storage.Storage, options Options) (Service, error) {
	metrics, err := newInstruments(options.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &service{
		storage: storage,
		metrics: metrics,
	}, nil
}
