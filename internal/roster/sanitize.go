package roster

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/dana/castmatch/internal/domain"
)

// Roster sources are scraped and occasionally carry raw control bytes or
// "<truncated>" markers left by the export pipeline. The first cleanup pass
// is conservative and keeps newlines and tabs so valid JSON survives; the
// second pass strips every control character and is only tried when the
// first parse fails.
var (
	ctrlChars       = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	truncatedSuffix = regexp.MustCompile(`\.\.\.\s*<truncated>`)
	allCtrlChars    = regexp.MustCompile(`[\x{0000}-\x{001F}\x{007F}-\x{009F}]`)
)

// Sanitize applies the conservative cleanup pass to a raw roster payload.
func Sanitize(raw string) string {
	s := ctrlChars.ReplaceAllString(raw, "")
	s = truncatedSuffix.ReplaceAllString(s, "...")
	s = strings.ReplaceAll(s, "<truncated>", "")
	return s
}

// Parse cleans and decodes a raw roster payload into actor records. A
// record without a name is dropped; duplicate names keep the later record.
// When both cleanup passes fail to yield valid JSON the source is reported
// as corrupted.
func Parse(source string, raw []byte) ([]domain.ActorRecord, error) {
	cleaned := Sanitize(string(raw))

	var records []domain.ActorRecord
	if err := json.Unmarshal([]byte(cleaned), &records); err != nil {
		aggressive := allCtrlChars.ReplaceAllString(cleaned, "")
		if err2 := json.Unmarshal([]byte(aggressive), &records); err2 != nil {
			return nil, &domain.DataCorruptionError{Source: source, Err: err2}
		}
	}

	admitted := make([]domain.ActorRecord, 0, len(records))
	seen := make(map[string]int, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue
		}
		if idx, dup := seen[r.Name]; dup {
			admitted[idx] = r
			continue
		}
		seen[r.Name] = len(admitted)
		admitted = append(admitted, r)
	}
	return admitted, nil
}
