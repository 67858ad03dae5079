package models

// PageContent is an editable block of site copy, keyed by a semantic id such
// as "hero_subtitle". Seeded with defaults when the store is empty; admins
// update it, nobody deletes it.
type PageContent struct {
	ID          string            `bson:"_id,omitempty" json:"id,omitempty"`
	Description string            `bson:"description" json:"description"` // admin-facing label
	Text        map[string]string `bson:"text" json:"text"`               // en, ro, fr
}
