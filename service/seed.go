package service

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/adunare/community-site-go/models"
	"github.com/adunare/community-site-go/store"
)

// DefaultContent is the page copy seeded into an empty store. Semantic keys
// are stable; admins edit the text, never the keys.
var DefaultContent = []models.PageContent{
	{
		ID:          "hero_title",
		Description: "Landing page headline",
		Text: map[string]string{
			"en": "Our Community, Our Home",
			"ro": "Comunitatea noastră, casa noastră",
			"fr": "Notre communauté, notre maison",
		},
	},
	{
		ID:          "hero_subtitle",
		Description: "Landing page subheadline",
		Text: map[string]string{
			"en": "Bringing people together through culture, dance and friendship",
			"ro": "Aducem oamenii împreună prin cultură, dans și prietenie",
			"fr": "Rassembler les gens par la culture, la danse et l'amitié",
		},
	},
	{
		ID:          "about_text",
		Description: "About section body",
		Text: map[string]string{
			"en": "We are a volunteer-run community organization hosting performances, workshops and social gatherings all year round.",
			"ro": "Suntem o organizație comunitară de voluntari care găzduiește spectacole, ateliere și întâlniri sociale pe tot parcursul anului.",
			"fr": "Nous sommes une organisation communautaire bénévole qui organise des spectacles, des ateliers et des rencontres toute l'année.",
		},
	},
	{
		ID:          "contact_intro",
		Description: "Contact section intro",
		Text: map[string]string{
			"en": "Questions, ideas, or just want to say hello? Write to us.",
			"ro": "Întrebări, idei sau doar vrei să ne saluți? Scrie-ne.",
			"fr": "Des questions, des idées, ou juste envie de dire bonjour ? Écrivez-nous.",
		},
	},
}

// demoEvents is the starter data shown in demo mode before anyone creates
// real records.
var demoEvents = []models.Event{
	{
		Title:    "Spring Folk Performance",
		Date:     "2026-04-18",
		Time:     "18:00",
		EndTime:  "20:30",
		Location: "Community Hall",
		Description: models.LocalizedText{
			"en": "An evening of traditional dance and music.",
			"ro": "O seară de dans și muzică tradițională.",
			"fr": "Une soirée de danse et de musique traditionnelles.",
		},
		Type:      models.EventPerformance,
		Attendees: []string{},
	},
	{
		Title:    "Beginners Dance Workshop",
		Date:     "2026-05-09",
		Time:     "10:00",
		Location: "Studio B",
		Description: models.LocalizedText{
			"en": "Learn the basic steps. No experience needed.",
			"ro": "Învață pașii de bază. Nu este nevoie de experiență.",
			"fr": "Apprenez les pas de base. Aucune expérience requise.",
		},
		Type:      models.EventWorkshop,
		Attendees: []string{},
	},
}

var demoTestimonials = []models.Testimonial{
	{
		Author:   "Maria Ionescu",
		Role:     "Member",
		Text:     "The warmest community I have ever been part of.",
		Approved: true,
	},
	{
		Author:   "Claire Dubois",
		Role:     "Parent",
		Text:     "My kids look forward to every workshop.",
		Approved: true,
	},
}

// DemoSeeds builds the fallback store's starter collections. Seed records
// get deterministic ids so RSVPs and edits against them survive restarts.
func DemoSeeds(log *zap.Logger) map[string][]store.Document {
	seeds := map[string][]store.Document{}

	events := make([]store.Document, 0, len(demoEvents))
	for i, e := range demoEvents {
		doc, err := store.ToDocument(e)
		if err != nil {
			log.Warn("skipping malformed seed event", zap.Error(err))
			continue
		}
		doc["id"] = seedID("event", i)
		events = append(events, doc)
	}
	seeds[ColEvents] = events

	testimonials := make([]store.Document, 0, len(demoTestimonials))
	for i, t := range demoTestimonials {
		doc, err := store.ToDocument(t)
		if err != nil {
			log.Warn("skipping malformed seed testimonial", zap.Error(err))
			continue
		}
		doc["id"] = seedID("testimonial", i)
		testimonials = append(testimonials, doc)
	}
	seeds[ColTestimonials] = testimonials

	return seeds
}

func seedID(kind string, i int) string {
	return kind + "-seed-" + strconv.Itoa(i+1)
}
