package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/terminarz/terminarz/internal/domain/entities"
	"github.com/terminarz/terminarz/internal/domain/providers"
	"github.com/terminarz/terminarz/pkg/geo"
)

// NoResultsMessage is the fixed summary for an empty result set.
const NoResultsMessage = "No available visits found for the specified criteria."

const registryDateLayout = "2006-01-02"

// RankingService turns a raw result sequence into what the user sees.
// Every method is a pure function over copies; inputs are never mutated.
type RankingService struct{}

// NewRankingService creates a new ranking service.
func NewRankingService() *RankingService {
	return &RankingService{}
}

// SortByDate orders records ascending by earliest-available date. Records
// with an inapplicable or unparseable date sort as if infinitely far in the
// future; they are never dropped. The sort is stable and idempotent.
func (s *RankingService) SortByDate(records []entities.Queue) []entities.Queue {
	sorted := make([]entities.Queue, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, iok := queueDate(&sorted[i])
		dj, jok := queueDate(&sorted[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.Before(dj)
	})

	return sorted
}

// AnnotateDistance attaches the great-circle distance from origin to each
// record, rounded to one decimal place. A nil origin means the caller's
// location is unknown: records pass through unchanged, with no distance set.
// Absence of origin is a first-class case, never a placeholder zero.
func (s *RankingService) AnnotateDistance(records []entities.Queue, origin *providers.Coordinates) []entities.Queue {
	if origin == nil {
		return records
	}

	annotated := make([]entities.Queue, len(records))
	for i, record := range records {
		km := geo.RoundKm(geo.Distance(
			origin.Latitude, origin.Longitude,
			record.Attributes.Latitude, record.Attributes.Longitude,
		))
		record.Distance = &km
		annotated[i] = record
	}
	return annotated
}

// SortByDistance orders records ascending by annotated distance. Records
// without a distance sort last; that only happens when the origin was
// unknown for part of the sequence, which the normal flow never produces.
func (s *RankingService) SortByDistance(records []entities.Queue) []entities.Queue {
	sorted := make([]entities.Queue, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Distance, sorted[j].Distance
		if (di == nil) != (dj == nil) {
			return di != nil
		}
		if di == nil {
			return false
		}
		return *di < *dj
	})

	return sorted
}

// Summarize reports the total count and the first record's date, provider
// and locality. Callers pass the date-sorted sequence so the summary keeps
// reporting the earliest date even when the presented table is ordered by
// distance.
func (s *RankingService) Summarize(records []entities.Queue) string {
	if len(records) == 0 {
		return NoResultsMessage
	}

	first := records[0]
	date := "no confirmed date"
	if first.HasDate() {
		date = first.Attributes.Dates.Date
	}

	return fmt.Sprintf("Found %d available visits. The earliest is %s at %s in %s.",
		len(records), date, first.Attributes.Provider, first.Attributes.Locality)
}

func queueDate(q *entities.Queue) (time.Time, bool) {
	if !q.HasDate() {
		return time.Time{}, false
	}
	parsed, err := time.Parse(registryDateLayout, q.Attributes.Dates.Date)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
