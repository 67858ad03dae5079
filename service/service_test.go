package service

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/adunare/community-site-go/store"
)

type sentMail struct {
	To      string
	Subject string
}

// fakeNotifier records sends; failures are simulated with fail=true.
type fakeNotifier struct {
	mu   sync.Mutex
	fail bool
	sent []sentMail
}

func (f *fakeNotifier) Send(to, name, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject})
	if f.fail {
		return errAlwaysFails
	}
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

var errAlwaysFails = &notifierError{}

type notifierError struct{}

func (*notifierError) Error() string { return "notifier down" }

func newTestService(t *testing.T, opts ...Option) (*Service, *fakeNotifier) {
	t.Helper()

	notifier := &fakeNotifier{}
	st := store.NewLocal(filepath.Join(t.TempDir(), "data.json"), nil, nil)

	all := append([]Option{
		WithNotifier(notifier),
		WithContactRecipient("admin@example.org"),
	}, opts...)

	return New(st, all...), notifier
}
