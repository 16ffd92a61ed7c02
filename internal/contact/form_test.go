package contact

import (
	"context"
	"testing"
	"time"
)

// instantDeliverer succeeds without waiting.
func instantDeliverer(ctx context.Context, _ Submission) error { return nil }

func TestSubmitEmptyForm(t *testing.T) {
	f := NewForm("", instantDeliverer)

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	errs := f.Errors()
	if len(errs) != 4 {
		t.Fatalf("expected exactly 4 field errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{FieldName, FieldPhone, FieldEmail, FieldMessage} {
		if errs[field] == "" {
			t.Errorf("missing error for %s", field)
		}
	}
	if f.Status() != StatusIdle {
		t.Errorf("status %s, want idle", f.Status())
	}
}

func TestSubmitEmptyFormWithSiteKey(t *testing.T) {
	f := NewForm("site-key", instantDeliverer)

	f.Submit(context.Background())

	errs := f.Errors()
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors with captcha configured, got %d: %v", len(errs), errs)
	}
	if errs[FieldCaptcha] == "" {
		t.Error("missing captcha error")
	}
}

func TestHoneypotSilentlyDiscards(t *testing.T) {
	f := NewForm("", instantDeliverer)
	f.SetField(FieldCompany, "Totally Real Corp")

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(f.Errors()) != 0 {
		t.Errorf("honeypot submit produced errors: %v", f.Errors())
	}
	if f.Status() != StatusIdle {
		t.Errorf("honeypot submit transitioned to %s", f.Status())
	}
}

func TestValidSubmission(t *testing.T) {
	f := NewForm("", instantDeliverer)
	f.SetField(FieldName, "Jane Doe")
	f.SetField(FieldPhone, "+63 917 123 4567")
	f.SetField(FieldEmail, "jane@example.com")
	f.SetField(FieldMessage, "AC not cooling")

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if f.Status() != StatusSuccess {
		t.Fatalf("status %s, want success", f.Status())
	}
	if f.Values() != (Submission{}) {
		t.Errorf("fields not cleared: %+v", f.Values())
	}
	if f.CaptchaToken() != "" {
		t.Error("captcha token not reset")
	}
}

func TestValidSubmissionWithCaptcha(t *testing.T) {
	f := NewForm("site-key", instantDeliverer)
	f.SetField(FieldName, "Jane Doe")
	f.SetField(FieldPhone, "+63 917 123 4567")
	f.SetField(FieldEmail, "jane@example.com")
	f.SetField(FieldMessage, "AC not cooling")
	f.CaptchaSolved("tok-123")

	f.Submit(context.Background())

	if f.Status() != StatusSuccess {
		t.Fatalf("status %s, want success", f.Status())
	}
}

func TestFieldEditClearsOnlyThatError(t *testing.T) {
	f := NewForm("", instantDeliverer)
	f.Submit(context.Background())
	if len(f.Errors()) != 4 {
		t.Fatalf("setup: expected 4 errors, got %d", len(f.Errors()))
	}

	f.SetField(FieldName, "Jane Doe")

	errs := f.Errors()
	if _, ok := errs[FieldName]; ok {
		t.Error("name error not cleared by edit")
	}
	if len(errs) != 3 {
		t.Errorf("expected 3 remaining errors, got %d: %v", len(errs), errs)
	}
}

func TestPhoneValidation(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+63 917 123 4567", true},
		{"0917-123-4567", true},
		{"(02) 8123-456", true},
		{"12345", false},           // too short
		{"1234567890123456", false}, // too long
		{"0917#1234567", false},     // bad character
	}
	for _, tc := range cases {
		errs := Validate(Submission{Name: "x", Phone: tc.phone, Email: "a@b.co", Message: "x"}, "", false)
		_, hasErr := errs[FieldPhone]
		if tc.valid && hasErr {
			t.Errorf("phone %q rejected: %v", tc.phone, errs[FieldPhone])
		}
		if !tc.valid && !hasErr {
			t.Errorf("phone %q accepted", tc.phone)
		}
	}
}

func TestEmailValidation(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"a@b.co", true},
		{"jane@example", false},
		{"jane.example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		errs := Validate(Submission{Name: "x", Phone: "0917 123 4567", Email: tc.email, Message: "x"}, "", false)
		_, hasErr := errs[FieldEmail]
		if tc.valid && hasErr {
			t.Errorf("email %q rejected", tc.email)
		}
		if !tc.valid && !hasErr {
			t.Errorf("email %q accepted", tc.email)
		}
	}
}

func TestCaptchaExpiry(t *testing.T) {
	f := NewForm("site-key", instantDeliverer)
	f.CaptchaSolved("tok")
	if _, ok := f.Errors()[FieldCaptcha]; ok {
		t.Error("solved captcha should clear its error")
	}

	f.CaptchaExpired()
	if _, ok := f.Errors()[FieldCaptcha]; !ok {
		t.Error("expired captcha should restore its error")
	}
}

func TestSimulatedDelivererHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SimulatedDeliverer(time.Minute)(ctx, Submission{})
	if err == nil {
		t.Error("expected context error from cancelled delivery")
	}
}

func TestDeliveryFailureRevertsToIdle(t *testing.T) {
	fail := func(ctx context.Context, _ Submission) error { return context.DeadlineExceeded }
	f := NewForm("", fail)
	f.SetField(FieldName, "Jane Doe")
	f.SetField(FieldPhone, "+63 917 123 4567")
	f.SetField(FieldEmail, "jane@example.com")
	f.SetField(FieldMessage, "AC not cooling")

	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected delivery error")
	}
	if f.Status() != StatusIdle {
		t.Errorf("status %s, want idle after delivery failure", f.Status())
	}
	if f.Errors()["form"] == "" {
		t.Error("expected a form-level error after delivery failure")
	}
}
