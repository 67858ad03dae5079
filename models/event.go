package models

import "encoding/json"

type EventType string

const (
	EventPerformance EventType = "performance"
	EventWorkshop    EventType = "workshop"
	EventSocial      EventType = "social"
)

// LocalizedText maps a language code (en, ro, fr) to translated text.
// Legacy records stored a plain string instead of a map; both forms must
// decode, so a bare string becomes {"en": s}.
type LocalizedText map[string]string

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err == nil {
		*t = m
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = LocalizedText{"en": s}
	return nil
}

// In returns the text for lang, falling back to English, then to any entry.
func (t LocalizedText) In(lang string) string {
	if s, ok := t[lang]; ok {
		return s
	}
	if s, ok := t["en"]; ok {
		return s
	}
	for _, s := range t {
		return s
	}
	return ""
}

type Event struct {
	ID          string        `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string        `bson:"title" json:"title"`
	Date        string        `bson:"date" json:"date"` // ISO calendar date, e.g. 2026-06-21
	Time        string        `bson:"time" json:"time"`
	EndTime     string        `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Location    string        `bson:"location" json:"location"`
	Description LocalizedText `bson:"description,omitempty" json:"description,omitempty"`
	Type        EventType     `bson:"type" json:"type"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"` // URI or inline data URI
	Attendees   []string      `bson:"attendees" json:"attendees"`             // user ids, no duplicates
}

// HasAttendee reports whether userID is in the attendee set.
func (e Event) HasAttendee(userID string) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}
