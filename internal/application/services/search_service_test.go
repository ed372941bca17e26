package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminarz/terminarz/internal/adapters/providers/geolocation"
	"github.com/terminarz/terminarz/internal/domain/entities"
	"github.com/terminarz/terminarz/internal/infrastructure/clients/nfz"
)

// stubClient serves canned GetQueues responses in order. A response with a
// gate blocks until the gate is closed, so tests can overlap invocations.
type stubClient struct {
	mu        sync.Mutex
	responses []stubResponse
}

type stubResponse struct {
	records []entities.Queue
	err     error
	started chan struct{}
	gate    chan struct{}
}

func (s *stubClient) GetQueues(ctx context.Context, criteria entities.SearchCriteria) ([]entities.Queue, error) {
	s.mu.Lock()
	if len(s.responses) == 0 {
		s.mu.Unlock()
		panic("stubClient: no responses left")
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	s.mu.Unlock()

	if resp.started != nil {
		close(resp.started)
	}
	if resp.gate != nil {
		<-resp.gate
	}
	return resp.records, resp.err
}

func (s *stubClient) GetQueueByID(ctx context.Context, id string) (*entities.Queue, error) {
	return nil, nil
}

func (s *stubClient) GetAlternatePlaces(ctx context.Context, id string) ([]entities.Place, error) {
	return nil, nil
}

func (s *stubClient) SearchBenefits(ctx context.Context, term string, opts nfz.SearchOptions) ([]string, error) {
	return nil, nil
}

func (s *stubClient) SearchLocalities(ctx context.Context, term string, opts nfz.SearchOptions) ([]string, error) {
	return nil, nil
}

func (s *stubClient) SearchPlaces(ctx context.Context, term string, opts nfz.SearchOptions) ([]string, error) {
	return nil, nil
}

func (s *stubClient) SearchProviders(ctx context.Context, term string, opts nfz.SearchOptions) ([]string, error) {
	return nil, nil
}

func (s *stubClient) SearchStreets(ctx context.Context, term string, opts nfz.SearchOptions) ([]string, error) {
	return nil, nil
}

func (s *stubClient) GetVersion(ctx context.Context) (*entities.Version, error) {
	return &entities.Version{Major: 1, Minor: 3}, nil
}

func stableCriteria() entities.SearchCriteria {
	return entities.SearchCriteria{
		Case:     entities.CaseStable,
		Province: "07",
		Benefit:  "PORADNIA KARDIOLOGICZNA",
	}
}

func TestSearch_SortsByDateWithoutOrigin(t *testing.T) {
	client := &stubClient{responses: []stubResponse{{
		records: []entities.Queue{
			queueWithDate("late", "2025-03-01", "SZPITAL PRASKI", "WARSZAWA"),
			queueWithDate("early", "2025-02-15", "SZPITAL WOLSKI", "WARSZAWA"),
		},
	}}}
	session := NewSearchService(client, nil)

	result, err := session.Search(context.Background(), stableCriteria())
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "early", result.Records[0].ID)
	assert.Nil(t, result.Records[0].Distance)
	assert.Contains(t, result.Summary, "2025-02-15")
	assert.Contains(t, result.Summary, "SZPITAL WOLSKI")
	assert.NotEmpty(t, result.InvocationID)

	assert.Equal(t, result, session.Results())
}

func TestSearch_DistanceOrderKeepsEarliestDateInSummary(t *testing.T) {
	// The nearest facility has the later date: the table must be ordered by
	// distance while the summary still reports the earliest date.
	near := queueWithDate("near-late", "2025-03-01", "SZPITAL PRASKI", "WARSZAWA")
	near.Attributes.Latitude = 52.2483
	near.Attributes.Longitude = 21.0118

	far := queueWithDate("far-early", "2025-02-15", "SZPITAL UNIWERSYTECKI", "KRAKÓW")
	far.Attributes.Latitude = 50.0647
	far.Attributes.Longitude = 19.9450

	client := &stubClient{responses: []stubResponse{{
		records: []entities.Queue{far, near},
	}}}
	session := NewSearchService(client, geolocation.NewStaticProvider(52.2297, 21.0122))

	session.ResolveOrigin(context.Background())
	require.Eventually(t, func() bool {
		return session.Origin() != nil
	}, time.Second, 5*time.Millisecond)

	result, err := session.Search(context.Background(), stableCriteria())
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "near-late", result.Records[0].ID)
	require.NotNil(t, result.Records[0].Distance)
	require.NotNil(t, result.Records[1].Distance)
	assert.Less(t, *result.Records[0].Distance, *result.Records[1].Distance)

	// Earliest date across all results, not the first row's date.
	assert.Contains(t, result.Summary, "2025-02-15")
	assert.Contains(t, result.Summary, "SZPITAL UNIWERSYTECKI")
}

func TestSearch_LastRequestWins(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})

	client := &stubClient{responses: []stubResponse{
		{
			records: []entities.Queue{queueWithDate("stale", "2025-02-01", "A", "X")},
			started: started,
			gate:    gate,
		},
		{
			records: []entities.Queue{queueWithDate("fresh", "2025-04-01", "B", "Y")},
		},
	}}
	session := NewSearchService(client, nil)

	firstDone := make(chan *entities.SearchResult, 1)
	go func() {
		result, err := session.Search(context.Background(), stableCriteria())
		assert.NoError(t, err)
		firstDone <- result
	}()

	<-started

	second, err := session.Search(context.Background(), stableCriteria())
	require.NoError(t, err)
	require.Equal(t, "fresh", second.Records[0].ID)

	// Let the stale invocation finish; it must not overwrite the newer result.
	close(gate)
	first := <-firstDone
	require.NotNil(t, first)
	assert.Equal(t, "stale", first.Records[0].ID)

	published := session.Results()
	require.NotNil(t, published)
	assert.Equal(t, "fresh", published.Records[0].ID)
	assert.Equal(t, second.InvocationID, published.InvocationID)
}

func TestSearch_ValidationBeforeNetwork(t *testing.T) {
	client := &stubClient{}
	session := NewSearchService(client, nil)

	_, err := session.Search(context.Background(), entities.SearchCriteria{
		Case:     entities.CaseStable,
		Province: "XX",
	})
	require.Error(t, err)
	assert.Nil(t, session.Results())
}

func TestSearch_EmptyResults(t *testing.T) {
	client := &stubClient{responses: []stubResponse{{records: []entities.Queue{}}}}
	session := NewSearchService(client, nil)

	result, err := session.Search(context.Background(), stableCriteria())
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, NoResultsMessage, result.Summary)
}

func TestSuggestBenefit(t *testing.T) {
	session := NewSearchService(&stubClient{}, nil)

	assert.Equal(t, "PORADNIA KARDIOLOGICZNA",
		session.SuggestBenefit("Proszę o skierowanie do poradni kardiologicznej"))
	assert.Equal(t, "", session.SuggestBenefit("kontrola wyników badań"))
}

func TestValidateSearchTerm(t *testing.T) {
	assert.Error(t, ValidateSearchTerm(""))
	assert.Error(t, ValidateSearchTerm("ab"))
	assert.Error(t, ValidateSearchTerm("  a  "))
	assert.NoError(t, ValidateSearchTerm("kardio"))
}
