package entities

import (
	"fmt"

	"github.com/terminarz/terminarz/pkg/errors"
)

// CaseType is the triage priority of a referral.
type CaseType int

const (
	// CaseStable is a routine referral.
	CaseStable CaseType = 1
	// CaseUrgent is a priority referral.
	CaseUrgent CaseType = 2
)

// String returns the display name of the case type.
func (c CaseType) String() string {
	switch c {
	case CaseStable:
		return "stable"
	case CaseUrgent:
		return "urgent"
	default:
		return fmt.Sprintf("case(%d)", int(c))
	}
}

// SearchCriteria describes one queue search. Constructed fresh per
// invocation and treated as immutable once handed to the client.
type SearchCriteria struct {
	Case                CaseType
	Province            string
	Benefit             string
	Locality            string
	Provider            string
	Place               string
	Street              string
	BenefitsForChildren bool
	Page                int
	Limit               int
}

// Validate checks the criteria before any network call is made.
func (c SearchCriteria) Validate() error {
	if c.Province == "" {
		return errors.NewValidationError("province is required")
	}
	if !ValidProvince(c.Province) {
		return errors.NewValidationError(fmt.Sprintf("unknown province code %q", c.Province))
	}
	if c.Case != CaseStable && c.Case != CaseUrgent {
		return errors.NewValidationError(fmt.Sprintf("unknown case type %d", int(c.Case)))
	}
	return nil
}

// SearchResult is the ordered outcome of one search invocation, held by the
// caller only for the duration of a search/render cycle.
type SearchResult struct {
	// InvocationID tags the search this result belongs to.
	InvocationID string

	// Records in presentation order: distance-ascending when an origin was
	// known, date-ascending otherwise.
	Records []Queue

	// Summary reports the total count and the earliest available date across
	// all records, regardless of the presentation order.
	Summary string
}
