package services

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/terminarz/terminarz/internal/domain/entities"
	"github.com/terminarz/terminarz/internal/domain/providers"
	"github.com/terminarz/terminarz/internal/infrastructure/clients/nfz"
	"github.com/terminarz/terminarz/internal/infrastructure/observability"
	"github.com/terminarz/terminarz/pkg/errors"
)

var (
	searchCountersOnce sync.Once
	searchCounter      metric.Int64Counter
	emptyResultCounter metric.Int64Counter
)

// SearchService is the search session: it runs the full pipeline from
// criteria to a ranked, summarized result. Invocations may overlap; a
// late-arriving response from a stale search never overwrites the result of
// a newer one.
type SearchService struct {
	client   nfz.Client
	ranking  *RankingService
	analyzer *ReferralAnalyzer
	origin   providers.OriginProvider

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	latest     *entities.SearchResult

	originOnce sync.Once
	originMu   sync.RWMutex
	coords     *providers.Coordinates
}

// NewSearchService creates a search session over the given registry client.
// originProvider may be nil when no geolocation capability exists.
func NewSearchService(client nfz.Client, originProvider providers.OriginProvider) *SearchService {
	return &SearchService{
		client:   client,
		ranking:  NewRankingService(),
		analyzer: NewReferralAnalyzer(),
		origin:   originProvider,
	}
}

// ResolveOrigin kicks off the one-shot geolocation lookup in the background.
// Safe to call more than once; only the first call does anything. Denial or
// failure leaves the session without an origin, which every downstream stage
// treats as a first-class case.
func (s *SearchService) ResolveOrigin(ctx context.Context) {
	if s.origin == nil {
		return
	}
	s.originOnce.Do(func() {
		go func() {
			logger := observability.LoggerFromContext(ctx)
			coords, err := s.origin.Locate(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("origin unavailable, results will not be distance-ranked")
				return
			}
			s.originMu.Lock()
			s.coords = coords
			s.originMu.Unlock()
			logger.Debug().
				Float64("latitude", coords.Latitude).
				Float64("longitude", coords.Longitude).
				Msg("origin resolved")
		}()
	})
}

// Origin returns the session origin if it has been resolved, nil otherwise.
// The read is opportunistic: a search started before resolution completes
// simply runs without distance ranking.
func (s *SearchService) Origin() *providers.Coordinates {
	s.originMu.RLock()
	defer s.originMu.RUnlock()
	if s.coords == nil {
		return nil
	}
	c := *s.coords
	return &c
}

// Search runs one full search invocation: validate, fetch, sort by date,
// summarize, then re-rank by distance when the origin is known. The summary
// always reports the earliest date across all results, even when the
// presented order is distance-ascending.
func (s *SearchService) Search(ctx context.Context, criteria entities.SearchCriteria) (*entities.SearchResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	invocationID := uuid.NewString()

	// Cancel any in-flight search; the newest invocation wins.
	s.mu.Lock()
	s.generation++
	generation := s.generation
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	logger := observability.LoggerFromContext(ctx).With().
		Str("invocation_id", invocationID).
		Str("province", criteria.Province).
		Str("benefit", criteria.Benefit).
		Logger()

	records, err := s.client.GetQueues(ctx, criteria)
	if err != nil {
		logger.Error().Err(err).Msg("queue search failed")
		return nil, err
	}

	recordSearchMetrics(ctx, criteria, len(records))

	byDate := s.ranking.SortByDate(records)
	summary := s.ranking.Summarize(byDate)

	presented := byDate
	if origin := s.Origin(); origin != nil {
		presented = s.ranking.SortByDistance(s.ranking.AnnotateDistance(byDate, origin))
	}

	result := &entities.SearchResult{
		InvocationID: invocationID,
		Records:      presented,
		Summary:      summary,
	}

	s.mu.Lock()
	if generation == s.generation {
		s.latest = result
	} else {
		logger.Debug().Msg("stale search completed after a newer invocation, result not published")
	}
	s.mu.Unlock()

	logger.Info().Int("results", len(presented)).Msg("search completed")
	return result, nil
}

// Results returns the last published result, nil before the first completed
// search. Stale invocations never appear here.
func (s *SearchService) Results() *entities.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// SuggestBenefit analyzes referral text and reconciles the guessed phrase
// against the curated benefit list. Returns "" when the text yields no
// usable guess, in which case the caller falls back to custom benefit entry.
func (s *SearchService) SuggestBenefit(text string) string {
	interp := s.analyzer.Analyze(text)
	if interp.BenefitGuess == "" {
		return ""
	}
	return entities.ResolveBenefit(interp.BenefitGuess)
}

// Analyze exposes the referral analyzer to callers that want the raw
// interpretation.
func (s *SearchService) Analyze(text string) Interpretation {
	return s.analyzer.Analyze(text)
}

// ValidateSearchTerm enforces the registry's minimum useful term length
// before any network call is made.
func ValidateSearchTerm(term string) error {
	if utf8.RuneCountInString(strings.TrimSpace(term)) < nfz.MinSearchTermLength {
		return errors.NewValidationError("search term must be at least 3 characters")
	}
	return nil
}

func recordSearchMetrics(ctx context.Context, criteria entities.SearchCriteria, results int) {
	searchCountersOnce.Do(initSearchCounters)
	attrs := metric.WithAttributes(
		attribute.String("search.province", criteria.Province),
		attribute.String("search.case", criteria.Case.String()),
	)
	if searchCounter != nil {
		searchCounter.Add(ctx, 1, attrs)
	}
	if results == 0 && emptyResultCounter != nil {
		emptyResultCounter.Add(ctx, 1, attrs)
	}
}

func initSearchCounters() {
	meter := otel.Meter("github.com/terminarz/terminarz/search")
	if counter, err := meter.Int64Counter(
		"search.invocations.count",
		metric.WithDescription("Count of queue search invocations"),
	); err == nil {
		searchCounter = counter
	}
	if counter, err := meter.Int64Counter(
		"search.empty_results.count",
		metric.WithDescription("Count of searches that matched no queues"),
	); err == nil {
		emptyResultCounter = counter
	}
}
