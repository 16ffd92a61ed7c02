package chat

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
)

type fakeProvider struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   int
	block   chan struct{} // when non-nil, Complete waits on it
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	reply := "ok"
	if len(f.replies) > 0 {
		reply = f.replies[0]
		f.replies = f.replies[1:]
	}
	return &CompletionResponse{Content: reply, Model: req.Model}, nil
}

type fakeKeys struct {
	has     bool
	hasErr  error
	opened  int
	openErr error
}

func (f *fakeKeys) HasSelectedKey(ctx context.Context) (bool, error) { return f.has, f.hasErr }
func (f *fakeKeys) OpenSelectKey(ctx context.Context) error {
	f.opened++
	return f.openErr
}

func newTestSession(t *testing.T, p Provider, keys KeyCapability) *Session {
	t.Helper()
	factory := func() (Provider, error) {
		if p == nil {
			return nil, errors.New("no API key configured")
		}
		return p, nil
	}
	return NewSession(factory, keys, "gemini-2.0-flash-exp", "")
}

func TestOpenWithoutCapabilityAssumesKeyPresent(t *testing.T) {
	s := newTestSession(t, &fakeProvider{}, nil)

	s.Open(context.Background())

	if got := s.KeyState(); got != KeyPresent {
		t.Fatalf("key state = %q, want %q", got, KeyPresent)
	}
	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1 greeting", len(msgs))
	}
	if msgs[0].Sender != SenderBot || !strings.Contains(msgs[0].Text, "HVAC Pro Assistant") {
		t.Fatalf("unexpected greeting: %+v", msgs[0])
	}
}

func TestOpenWithMissingKeyReplacesTranscript(t *testing.T) {
	s := newTestSession(t, &fakeProvider{}, &fakeKeys{has: false})
	s.messages = []Message{{Sender: SenderUser, Text: "stale"}}

	s.Open(context.Background())

	if got := s.KeyState(); got != KeyAbsent {
		t.Fatalf("key state = %q, want %q", got, KeyAbsent)
	}
	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want exactly 1 remediation message", len(msgs))
	}
	if !strings.Contains(msgs[0].Text, "API key is required") {
		t.Fatalf("unexpected message: %q", msgs[0].Text)
	}
	if msgs[0].Link == "" {
		t.Fatal("remediation message should carry a billing link")
	}
}

func TestOpenWithCapabilityErrorFallsBackToPresent(t *testing.T) {
	s := newTestSession(t, &fakeProvider{}, &fakeKeys{hasErr: errors.New("boom")})

	s.Open(context.Background())

	if got := s.KeyState(); got != KeyPresent {
		t.Fatalf("key state = %q, want %q", got, KeyPresent)
	}
}

func TestReopenDoesNotRepeatGreeting(t *testing.T) {
	s := newTestSession(t, &fakeProvider{}, nil)

	s.Open(context.Background())
	s.Close()
	s.Open(context.Background())

	if got := len(s.Messages()); got != 1 {
		t.Fatalf("got %d messages after reopen, want 1", got)
	}
	if s.IsOpen() != true {
		t.Fatal("session should be open")
	}
}

func TestSelectKeyReplacesTranscriptAndEnablesInput(t *testing.T) {
	keys := &fakeKeys{has: false}
	s := newTestSession(t, &fakeProvider{}, keys)

	s.Open(context.Background())
	s.SelectKey(context.Background())

	if keys.opened != 1 {
		t.Fatalf("OpenSelectKey called %d times, want 1", keys.opened)
	}
	if got := s.KeyState(); got != KeyPresent {
		t.Fatalf("key state = %q, want %q after selection", got, KeyPresent)
	}
	msgs := s.Messages()
	if len(msgs) != 1 || !strings.Contains(msgs[0].Text, "Thank you for selecting") {
		t.Fatalf("transcript not replaced with confirmation: %+v", msgs)
	}
}

func TestSelectKeyWithoutCapabilityAppendsTroubleMessage(t *testing.T) {
	s := newTestSession(t, &fakeProvider{}, nil)
	s.Open(context.Background())

	s.SelectKey(context.Background())

	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	if !strings.Contains(last.Text, "trouble accessing") {
		t.Fatalf("unexpected message: %q", last.Text)
	}
}

func TestSendAppendsUserThenBotReply(t *testing.T) {
	p := &fakeProvider{replies: []string{"We install all major AC brands."}}
	s := newTestSession(t, p, nil)
	s.Open(context.Background())

	s.Send(context.Background(), "  do you install ACs?  ")

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want greeting + user + bot", len(msgs))
	}
	if msgs[1].Sender != SenderUser || msgs[1].Text != "do you install ACs?" {
		t.Fatalf("user message not trimmed and appended: %+v", msgs[1])
	}
	if msgs[2].Sender != SenderBot || msgs[2].Text != "We install all major AC brands." {
		t.Fatalf("bot reply missing: %+v", msgs[2])
	}
	if s.Sending() {
		t.Fatal("sending flag should clear after completion")
	}
}

func TestSendIsNoOpWhenInputEmptyOrKeyMissing(t *testing.T) {
	p := &fakeProvider{}
	s := newTestSession(t, p, &fakeKeys{has: false})
	s.Open(context.Background())

	s.Send(context.Background(), "   ")
	s.Send(context.Background(), "real question")

	if p.calls != 0 {
		t.Fatalf("provider called %d times, want 0", p.calls)
	}
	if got := len(s.Messages()); got != 1 {
		t.Fatalf("got %d messages, want only the remediation message", got)
	}
}

func TestSendWhileInFlightIsNoOp(t *testing.T) {
	block := make(chan struct{})
	p := &fakeProvider{block: block}
	s := newTestSession(t, p, nil)
	s.Open(context.Background())

	done := make(chan struct{})
	go func() {
		s.Send(context.Background(), "first")
		close(done)
	}()

	// Wait until the first send holds the sending flag.
	for !s.Sending() {
		runtime.Gosched()
	}

	s.Send(context.Background(), "second")
	close(block)
	<-done

	if p.calls != 1 {
		t.Fatalf("provider called %d times, want 1", p.calls)
	}
	var userTexts []string
	for _, m := range s.Messages() {
		if m.Sender == SenderUser {
			userTexts = append(userTexts, m.Text)
		}
	}
	if len(userTexts) != 1 || userTexts[0] != "first" {
		t.Fatalf("user messages = %v, want only the first", userTexts)
	}
}

func TestSendProviderInitFailureRevertsKeyState(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.Open(context.Background())

	s.Send(context.Background(), "hello")

	if got := s.KeyState(); got != KeyAbsent {
		t.Fatalf("key state = %q, want %q", got, KeyAbsent)
	}
	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	if !strings.Contains(last.Text, "issue initializing") || last.Link == "" {
		t.Fatalf("unexpected failure message: %+v", last)
	}
	if s.Sending() {
		t.Fatal("sending flag should clear after init failure")
	}
}

func TestSendKeyRejectionRevertsKeyState(t *testing.T) {
	p := &fakeProvider{err: errors.New("gemini API error (NOT_FOUND): Requested entity was not found.")}
	s := newTestSession(t, p, nil)
	s.Open(context.Background())

	s.Send(context.Background(), "hello")

	if got := s.KeyState(); got != KeyAbsent {
		t.Fatalf("key state = %q, want %q", got, KeyAbsent)
	}
	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	if !strings.Contains(last.Text, "issue with the API key") {
		t.Fatalf("unexpected message: %q", last.Text)
	}
}

func TestSendGenericFailureKeepsKeyState(t *testing.T) {
	p := &fakeProvider{err: errors.New("gemini returned status 503")}
	s := newTestSession(t, p, nil)
	s.Open(context.Background())

	s.Send(context.Background(), "hello")

	if got := s.KeyState(); got != KeyPresent {
		t.Fatalf("key state = %q, want %q after transient failure", got, KeyPresent)
	}
	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	if !strings.Contains(last.Text, "try again later") {
		t.Fatalf("unexpected message: %q", last.Text)
	}
	if s.Sending() {
		t.Fatal("sending flag should clear after failure")
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	s := newTestSession(t, &fakeProvider{}, nil)
	s.Open(context.Background())

	msgs := s.Messages()
	msgs[0].Text = "mutated"

	if got := s.Messages()[0].Text; got == "mutated" {
		t.Fatal("Messages should return a copy of the transcript")
	}
}
