package entities

// Queue represents one facility's waiting-list entry for a benefit and case
// type, as reported by the registry. Instances are never mutated after
// decoding; the ranking stage works on copies.
type Queue struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	Attributes QueueAttributes `json:"attributes"`

	// Distance in kilometers from the caller's origin, attached by the
	// ranking stage only when an origin is known. Never a placeholder zero.
	Distance *float64 `json:"distance,omitempty"`
}

// QueueAttributes carries the registry's dashed-key attribute payload.
type QueueAttributes struct {
	Case                int               `json:"case"`
	Benefit             string            `json:"benefit"`
	Anesthesia          string            `json:"anesthesia,omitempty"`
	ManyPlaces          string            `json:"many-places"`
	Provider            string            `json:"provider"`
	ProviderCode        string            `json:"provider-code"`
	RegonProvider       string            `json:"regon-provider"`
	NipProvider         string            `json:"nip-provider"`
	TerytProvider       string            `json:"teryt-provider"`
	Place               string            `json:"place"`
	Address             string            `json:"address"`
	Locality            string            `json:"locality"`
	Phone               string            `json:"phone"`
	TerytPlace          string            `json:"teryt-place"`
	RegistryNumber      string            `json:"registry-number"`
	IDResortPartVII     string            `json:"id-resort-part-VII"`
	IDResortPartVIII    string            `json:"id-resort-part-VIII"`
	BenefitsForChildren string            `json:"benefits-for-children"`
	AgeRange            string            `json:"age-range,omitempty"`
	Covid19             string            `json:"covid-19"`
	Toilet              string            `json:"toilet"`
	Ramp                string            `json:"ramp"`
	CarPark             string            `json:"car-park"`
	Elevator            string            `json:"elevator"`
	Latitude            float64           `json:"latitude"`
	Longitude           float64           `json:"longitude"`
	Statistics          *QueueStatistics  `json:"statistics"`
	Dates               *QueueDates       `json:"dates"`
	BenefitsProvided    *BenefitsProvided `json:"benefits-provided"`
}

// BenefitsProvided is an optional per-queue detail block; the registry
// reports it as null for most queues.
type BenefitsProvided struct {
	TypeOfBenefit int `json:"type-of-benefit"`
}

// QueueStatistics holds wait-time statistics for a queue.
type QueueStatistics struct {
	ProviderData *ProviderData `json:"provider-data"`
	ComputedData *ComputedData `json:"computed-data"`
}

// ProviderData is the facility-reported part of the statistics.
type ProviderData struct {
	Awaiting      int    `json:"awaiting"`
	Removed       int    `json:"removed"`
	AveragePeriod int    `json:"average-period"`
	Update        string `json:"update"`
}

// ComputedData is the registry-computed part of the statistics.
type ComputedData struct {
	AveragePeriod int    `json:"average-period"`
	Update        string `json:"update"`
}

// QueueDates reports the earliest available date for a queue. Applicable is
// false for queues where the registry cannot state a date.
type QueueDates struct {
	Applicable        bool   `json:"applicable"`
	Date              string `json:"date"`
	DateSituationAsAt string `json:"date-situation-as-at"`
}

// HasDate reports whether the queue carries a usable earliest-available date.
func (q *Queue) HasDate() bool {
	return q.Attributes.Dates != nil &&
		q.Attributes.Dates.Applicable &&
		q.Attributes.Dates.Date != ""
}

// Place is an alternate service location for queues flagged with
// many-places = "Y".
type Place struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Locality  string  `json:"locality"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Version is the registry protocol version.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}
