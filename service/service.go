// Package service implements the application core: per-entity repositories
// over the selected persistence backend, the RSVP and approval state
// transitions, identity resolution, and best-effort notification
// side-effects.
package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/adunare/community-site-go/models"
	"github.com/adunare/community-site-go/store"
)

// Collection names, shared by both backends.
const (
	ColUsers        = "users"
	ColEvents       = "events"
	ColGallery      = "gallery"
	ColTestimonials = "testimonials"
	ColContent      = "content"
	ColContact      = "contact_messages"
	ColCredentials  = "credentials"
)

var (
	// ErrNotFound re-exports the store sentinel for callers that only
	// import service.
	ErrNotFound = store.ErrNotFound

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
)

// Uploader is the binary object store: it takes raw bytes or a data URI and
// returns a retrievable URL. Satisfied by utils.Cloudinary.
type Uploader interface {
	Upload(ctx context.Context, file any, folder string) (string, error)
	Destroy(ctx context.Context, url string) error
}

// Notifier is the outbound notification transport. Satisfied by
// utils.Mailer. Delivery is best-effort; the core never depends on it.
type Notifier interface {
	Send(to, name, subject, body string) error
}

// Service wires the repositories to one backend, chosen at startup. Every
// operation runs entirely against that backend; remoteActive only gates
// binary-payload handling and health reporting.
type Service struct {
	store        store.Store
	users        *store.Repo[models.User]
	events       *store.Repo[models.Event]
	gallery      *store.Repo[models.GalleryItem]
	testimonials *store.Repo[models.Testimonial]
	content      *store.Repo[models.PageContent]
	contact      *store.Repo[models.ContactMessage]
	credentials  *store.Repo[models.Credential]

	uploader     Uploader
	notifier     Notifier
	log          *zap.Logger
	remoteActive bool

	contactRecipient string
	instagramFeedURL string
	httpClient       *http.Client

	// Serializes read-negate-write toggles so two in-process toggles on the
	// same id cannot lose an update.
	toggleMu sync.Mutex

	// Tracks the async side-effect goroutines so tests can drain them.
	sideEffects sync.WaitGroup
}

// Option configures optional collaborators on a Service.
type Option func(*Service)

// WithUploader sets the binary object store used on the remote path.
func WithUploader(u Uploader) Option {
	return func(s *Service) { s.uploader = u }
}

// WithNotifier sets the outbound notification transport.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithRemoteActive records whether the injected store is the remote backend.
func WithRemoteActive(active bool) Option {
	return func(s *Service) { s.remoteActive = active }
}

// WithContactRecipient sets the address contact-form messages are relayed to.
func WithContactRecipient(addr string) Option {
	return func(s *Service) { s.contactRecipient = addr }
}

// WithInstagramFeed sets the media feed endpoint for gallery sync.
func WithInstagramFeed(url string) Option {
	return func(s *Service) { s.instagramFeedURL = url }
}

// New builds the core over the selected backend.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:        st,
		users:        store.NewRepo[models.User](st, ColUsers),
		events:       store.NewRepo[models.Event](st, ColEvents),
		gallery:      store.NewRepo[models.GalleryItem](st, ColGallery),
		testimonials: store.NewRepo[models.Testimonial](st, ColTestimonials),
		content:      store.NewRepo[models.PageContent](st, ColContent),
		contact:      store.NewRepo[models.ContactMessage](st, ColContact),
		credentials:  store.NewRepo[models.Credential](st, ColCredentials),
		log:          zap.NewNop(),
		httpClient:   &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsRemoteActive reports whether the remote document store is in use.
func (s *Service) IsRemoteActive() bool {
	return s.remoteActive
}

// fireAndForget runs a side effect in its own goroutine. Failures are logged
// and never reach the caller; the primary write has already committed.
func (s *Service) fireAndForget(kind string, fn func() error) {
	s.sideEffects.Add(1)
	go func() {
		defer s.sideEffects.Done()
		if err := fn(); err != nil {
			s.log.Warn("side effect failed", zap.String("kind", kind), zap.Error(err))
		}
	}()
}

// WaitSideEffects blocks until all in-flight side effects finish. Used by
// tests and graceful shutdown.
func (s *Service) WaitSideEffects() {
	s.sideEffects.Wait()
}
