// file: internals/helpers/mailer/mailer_test.go
package mailer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(values map[string]string) func(key string, def ...string) string {
	return func(key string, def ...string) string {
		if v, ok := values[key]; ok {
			return v
		}
		if len(def) > 0 {
			return def[0]
		}
		return ""
	}
}

func TestNewFromEnv(t *testing.T) {
	m := NewFromEnv(fakeEnv(map[string]string{
		"SMTP_HOST": "mail.example.edu",
		"SMTP_USER": "noreply@example.edu",
		"SMTP_PASS": "secret",
	}))
	assert.Equal(t, "mail.example.edu", m.Host)
	assert.Equal(t, "587", m.Port, "port defaults to 587")
	assert.Equal(t, "noreply@example.edu", m.From, "from falls back to the user")
}

func TestSendRejectsMissingConfig(t *testing.T) {
	m := &SMTPMailer{}
	assert.Error(t, m.Send("student@example.edu", "s", "b"))

	m.Host = "mail.example.edu"
	assert.Error(t, m.Send("", "s", "b"))
}

type recordingSender struct {
	mu    sync.Mutex
	calls []string
	done  chan struct{}
}

func (r *recordingSender) Send(to, subject, body string) error {
	r.mu.Lock()
	r.calls = append(r.calls, to+"|"+subject)
	r.mu.Unlock()
	close(r.done)
	return nil
}

func TestSendAsync(t *testing.T) {
	rec := &recordingSender{done: make(chan struct{})}
	SendAsync(rec, "student@example.edu", "Approved", "body")

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("async send never ran")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "student@example.edu|Approved", rec.calls[0])
}
