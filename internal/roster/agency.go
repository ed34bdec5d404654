package roster

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dana/castmatch/internal/domain"
)

// AgencyUnknown is the bucket for actors whose record carries no agency.
const AgencyUnknown = "unknown"

// AgencyLabels maps agency codes to their Korean display names. Codes
// outside this map are shown as-is.
var AgencyLabels = map[string]string{
	"awesome":  "어썸이엔티",
	"bh":       "BH엔터테인먼트",
	"jwide":    "J와이드컴퍼니",
	"kingkong": "킹콩by스타쉽",
	"soop":     "숲엔터테인먼트",
	"vast":     "바스트엔터테인먼트",
}

// AgencyLabel returns the display name for an agency code.
func AgencyLabel(code string) string {
	if label, ok := AgencyLabels[code]; ok {
		return label
	}
	return code
}

// GroupByAgency buckets actors by their agency code. Actors without an
// agency land in the unknown bucket.
func GroupByAgency(actors []domain.ActorRecord) map[string][]domain.ActorRecord {
	grouped := make(map[string][]domain.ActorRecord)
	for _, a := range actors {
		agency := a.Agency
		if agency == "" {
			agency = AgencyUnknown
		}
		grouped[agency] = append(grouped[agency], a)
	}
	return grouped
}

// SortedAgencies returns the agency codes ordered by the Korean collation
// of their display names.
func SortedAgencies(grouped map[string][]domain.ActorRecord) []string {
	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	c := collate.New(language.Korean)
	sort.Slice(codes, func(i, j int) bool {
		return c.CompareString(AgencyLabel(codes[i]), AgencyLabel(codes[j])) < 0
	})
	return codes
}

// FilterByAgency returns the actors belonging to the given agency code.
// The empty code and "all" return the whole roster.
func FilterByAgency(actors []domain.ActorRecord, code string) []domain.ActorRecord {
	if code == "" || code == "all" {
		return actors
	}
	filtered := make([]domain.ActorRecord, 0, len(actors))
	for _, a := range actors {
		agency := a.Agency
		if agency == "" {
			agency = AgencyUnknown
		}
		if agency == code {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
