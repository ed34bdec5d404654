package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EmotionalSpectrum describes an actor on five bounded emotional axes,
// each paired with a free-text description of how the axis shows up in
// the actor's work.
type EmotionalSpectrum struct {
	ColdWarm                      float64 `json:"cold_warm"`
	ColdWarmDescription           string  `json:"cold_warm_description"`
	ActivePassive                 float64 `json:"active_passive"`
	ActivePassiveDescription      string  `json:"active_passive_description"`
	Intensity                     float64 `json:"intensity"`
	IntensityDescription          string  `json:"intensity_description"`
	ExtrovertIntrovert            float64 `json:"extrovert_introvert"`
	ExtrovertIntrovertDescription string  `json:"extrovert_introvert_description"`
	ComicLevel                    float64 `json:"comic_level"`
	ComicLevelDescription         string  `json:"comic_level_description"`
}

// Value implements the driver.Valuer interface for database serialization.
func (s EmotionalSpectrum) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
func (s *EmotionalSpectrum) Scan(value interface{}) error {
	if value == nil {
		*s = EmotionalSpectrum{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan EmotionalSpectrum")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, s)
}

// NarrativeRole is one past role of an actor: the work it belongs to, the
// character played, and the emotional ground the role covered.
type NarrativeRole struct {
	WorkTitle            string   `json:"work_title"`
	CharacterName        string   `json:"character_name"`
	RoleType             string   `json:"role_type"`
	CharacterDescription string   `json:"character_description"`
	EmotionalExperiences []string `json:"emotional_experiences"`
}

// NarrativeRoleList is a custom type for storing the ordered role list as
// JSON in the database.
type NarrativeRoleList []NarrativeRole

// Value implements the driver.Valuer interface for database serialization.
func (l NarrativeRoleList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
func (l *NarrativeRoleList) Scan(value interface{}) error {
	if value == nil {
		*l = NarrativeRoleList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan NarrativeRoleList")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, l)
}

// ActorRecord is one actor in the curated roster. Name is the unique
// identifier; every other field is optional and treated as immutable data.
type ActorRecord struct {
	Name                string            `gorm:"type:text;primaryKey" json:"name"`
	AgeRange            string            `json:"age_range"`
	Gender              string            `json:"gender"`
	HeightBuild         string            `json:"height_build"`
	Voice               string            `json:"voice"`
	Impression          string            `json:"impression"`
	ProfileImageURL     string            `gorm:"column:profile_image_url" json:"profile_image_url,omitempty"`
	PersonalitySpectrum string            `json:"personality_spectrum"`
	EmotionalSpectrum   EmotionalSpectrum `gorm:"type:text" json:"emotional_spectrum"`
	NarrativeRoles      NarrativeRoleList `gorm:"type:text" json:"narrative_roles"`
	RecurringPattern    string            `json:"recurring_pattern"`
	Link                string            `json:"link,omitempty"`
	Agency              string            `gorm:"type:text;index:idx_actors_agency" json:"agency,omitempty"`
	Status              string            `json:"status,omitempty"`
	CreatedAt           time.Time         `json:"-"`
	UpdatedAt           time.Time         `json:"-"`
}

// TableName returns the database table name for ActorRecord.
func (ActorRecord) TableName() string {
	return "actors"
}

// Valid reports whether the record may be admitted into a roster.
// Name must be present and non-empty; everything else is optional.
func (a *ActorRecord) Valid() bool {
	return strings.TrimSpace(a.Name) != ""
}
