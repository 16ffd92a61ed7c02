package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry in a session transcript. Link optionally carries a
// remediation URL rendered inline with the text.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
	Link   string `json:"link,omitempty"`
}

// KeyState tracks whether a usable API credential is available.
type KeyState string

const (
	KeyUnknown KeyState = "unknown"
	KeyAbsent  KeyState = "absent"
	KeyPresent KeyState = "present"
)

// KeyCapability is the optional host-provided credential facility. A nil
// capability means the host offers none, in which case the session
// assumes a credential is pre-configured.
type KeyCapability interface {
	// HasSelectedKey reports whether a usable credential is selected.
	HasSelectedKey(ctx context.Context) (bool, error)
	// OpenSelectKey prompts the user to select one. Fire-and-forget.
	OpenSelectKey(ctx context.Context) error
}

const billingURL = "https://ai.google.dev/gemini-api/docs/billing"

// keyNotFoundMarker is the substring in provider failure text that
// distinguishes a rejected credential from a generic failure.
const keyNotFoundMarker = "Requested entity was not found."

// systemInstruction pins the assistant to HVAC topics only.
const systemInstruction = "You are 'ProBot', the friendly and knowledgeable virtual assistant for HVAC Pro. Your expertise is strictly limited to heating, ventilation, and air conditioning (HVAC) services. This includes topics like AC installation, AC repair, furnace and heating services, duct cleaning, heat pumps, our maintenance 'Comfort Plans', and financing options. Do not answer questions about any other subjects, including math, history, or general knowledge. If asked an unrelated question, you must politely decline and pivot back to how you can assist with their HVAC needs. For example, say: 'I can only assist with questions about our HVAC services. How can I help you with your heating or cooling system today?' Your goal is to provide helpful, accurate information about our services and encourage users to book an appointment."

const (
	greetingText     = "Hello! I'm the HVAC Pro Assistant. How can I help you with our heating, cooling, or air quality services today?"
	keyRequiredText  = "An API key is required to use the AI Assistant. Please select one to enable chat."
	keySelectedText  = "Thank you for selecting your API key! How can I help you with our HVAC services today?"
	keyTroubleText   = "I'm having trouble accessing the API key selection. Please try refreshing the page or contact support if the issue persists."
	initFailureText  = "Sorry, there was an issue initializing the AI. It might be due to a missing or invalid API key. Please try selecting your API key again."
	keyRejectedText  = "Sorry, there was an issue with the API key. Please select it again."
	genericRetryText = "Sorry, I'm having trouble connecting right now. Please try again later."
)

// ProviderFactory builds the provider lazily, once per send. Construction
// failures are treated as missing/invalid credentials.
type ProviderFactory func() (Provider, error)

// Session is one chat widget session: open/closed state, credential
// state, append-only transcript, and the outbound request lifecycle.
// Sends are serialized by the sending flag; a send attempted while one is
// in flight is a no-op.
type Session struct {
	mu sync.Mutex

	id       string
	open     bool
	keyState KeyState
	messages []Message
	sending  bool

	provider    ProviderFactory
	keys        KeyCapability
	model       string
	instruction string
}

// NewSession creates a closed session. keys may be nil; an empty
// instruction uses the built-in one.
func NewSession(provider ProviderFactory, keys KeyCapability, model, instruction string) *Session {
	if instruction == "" {
		instruction = systemInstruction
	}
	return &Session{
		id:          uuid.New().String(),
		keyState:    KeyUnknown,
		provider:    provider,
		keys:        keys,
		model:       model,
		instruction: instruction,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Open marks the session open and checks credential availability. With no
// capability present the credential is assumed pre-configured. When the
// check says no key is selected, a single remediation message replaces
// the transcript and input stays disabled. The greeting is queued only on
// a first open with an empty transcript.
func (s *Session) Open(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true

	if s.keys == nil {
		s.keyState = KeyPresent
	} else {
		has, err := s.keys.HasSelectedKey(ctx)
		if err != nil {
			// Capability unusable; same fallback as capability absent.
			s.keyState = KeyPresent
		} else if has {
			s.keyState = KeyPresent
		} else {
			s.keyState = KeyAbsent
			s.messages = []Message{{Sender: SenderBot, Text: keyRequiredText, Link: billingURL}}
			return
		}
	}

	if len(s.messages) == 0 {
		s.messages = append(s.messages, Message{Sender: SenderBot, Text: greetingText})
	}
}

// Close marks the session closed. The transcript persists so reopening
// does not re-greet.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// SelectKey prompts the user to pick a credential and optimistically
// marks the key present without re-verifying, to mitigate the race
// between selection and the next availability check.
func (s *Session) SelectKey(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keys == nil {
		s.messages = append(s.messages, Message{Sender: SenderBot, Text: keyTroubleText})
		return
	}

	_ = s.keys.OpenSelectKey(ctx)
	s.keyState = KeyPresent
	s.messages = []Message{{Sender: SenderBot, Text: keySelectedText}}
}

// Send runs one outbound request. Requires non-empty trimmed input, no
// send in flight, and a present credential; otherwise it is a no-op. The
// user message is appended optimistically before the request goes out,
// and the sending flag clears on every outcome.
func (s *Session) Send(ctx context.Context, input string) {
	input = strings.TrimSpace(input)

	s.mu.Lock()
	if input == "" || s.sending || s.keyState != KeyPresent {
		s.mu.Unlock()
		return
	}
	s.messages = append(s.messages, Message{Sender: SenderUser, Text: input})
	s.sending = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.sending = false
		s.mu.Unlock()
	}()

	provider, err := s.provider()
	if err != nil {
		s.mu.Lock()
		s.keyState = KeyAbsent
		s.messages = append(s.messages, Message{Sender: SenderBot, Text: initFailureText, Link: billingURL})
		s.mu.Unlock()
		return
	}

	resp, err := provider.Complete(ctx, CompletionRequest{
		Model: s.model,
		Messages: []PromptMessage{
			{Role: RoleSystem, Content: s.instruction},
			{Role: RoleUser, Content: input},
		},
		Temperature: 0.7,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if strings.Contains(err.Error(), keyNotFoundMarker) {
			s.keyState = KeyAbsent
			s.messages = append(s.messages, Message{Sender: SenderBot, Text: keyRejectedText, Link: billingURL})
		} else {
			s.messages = append(s.messages, Message{Sender: SenderBot, Text: genericRetryText})
		}
		return
	}
	s.messages = append(s.messages, Message{Sender: SenderBot, Text: resp.Content})
}

// Sending reports whether a request is in flight (the loading indicator).
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// KeyState returns the current credential state.
func (s *Session) KeyState() KeyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyState
}

// Open reports whether the widget is open.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
