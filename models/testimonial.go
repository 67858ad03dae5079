package models

// Testimonial is user-submitted praise. Role here is a free-text label
// ("Parent", "Volunteer"), not an authorization Role. New testimonials start
// unapproved and stay hidden until an admin approves them.
type Testimonial struct {
	ID       string `bson:"_id,omitempty" json:"id,omitempty"`
	Author   string `bson:"author" json:"author"`
	Role     string `bson:"role" json:"role"`
	Text     string `bson:"text" json:"text"`
	Approved bool   `bson:"approved" json:"approved"`
}
