package contact

import (
	"context"
	"regexp"
	"time"
)

var (
	// Permissive phone pattern: digits, spaces, hyphens, parentheses and a
	// leading +, 10-15 characters total.
	phonePattern = regexp.MustCompile(`^[0-9()+ -]{10,15}$`)
	// Deliberately simple: an @ and a dot in the domain portion, not full RFC.
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// Validate runs the synchronous submit-time validation and returns the
// field-scoped error map. captchaRequired reflects whether a CAPTCHA site
// key is configured; without one the token is never required.
func Validate(sub Submission, captchaToken string, captchaRequired bool) map[string]string {
	errs := make(map[string]string)
	if sub.Name == "" {
		errs[FieldName] = "Full name is required."
	}
	if sub.Phone == "" {
		errs[FieldPhone] = "Phone number is required."
	} else if !phonePattern.MatchString(sub.Phone) {
		errs[FieldPhone] = "Please enter a valid phone number."
	}
	if sub.Email == "" {
		errs[FieldEmail] = "Email address is required."
	} else if !emailPattern.MatchString(sub.Email) {
		errs[FieldEmail] = "Please enter a valid email address."
	}
	if sub.Message == "" {
		errs[FieldMessage] = "Please describe the issue."
	}
	if captchaRequired && captchaToken == "" {
		errs[FieldCaptcha] = "Please verify that you are human."
	}
	return errs
}

// Deliverer hands a validated submission to whatever backend accepts it.
type Deliverer func(ctx context.Context, sub Submission) error

// SimulatedDeliverer waits for the given delay and succeeds, standing in
// for a real backend.
func SimulatedDeliverer(delay time.Duration) Deliverer {
	return func(ctx context.Context, _ Submission) error {
		select {
		case <-time.After(delay):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Form is the contact form state machine: idle -> submitting -> success,
// with field-scoped validation errors while idle.
type Form struct {
	siteKey string
	deliver Deliverer

	values       Submission
	captchaToken string
	errors       map[string]string
	status       Status
}

// NewForm creates an idle form. An empty siteKey disables CAPTCHA
// enforcement entirely. A nil deliverer gets the default simulated one.
func NewForm(siteKey string, deliver Deliverer) *Form {
	if deliver == nil {
		deliver = SimulatedDeliverer(1500 * time.Millisecond)
	}
	return &Form{
		siteKey: siteKey,
		deliver: deliver,
		errors:  make(map[string]string),
		status:  StatusIdle,
	}
}

// SetField updates one field value. If the field previously had a
// validation error, only that field's error is cleared.
func (f *Form) SetField(field, value string) {
	switch field {
	case FieldName:
		f.values.Name = value
	case FieldPhone:
		f.values.Phone = value
	case FieldEmail:
		f.values.Email = value
	case FieldMessage:
		f.values.Message = value
	case FieldCompany:
		f.values.Company = value
	default:
		return
	}
	delete(f.errors, field)
}

// CaptchaSolved records a verification token and clears the captcha error.
func (f *Form) CaptchaSolved(token string) {
	f.captchaToken = token
	delete(f.errors, FieldCaptcha)
}

// CaptchaExpired drops the token; with a site key configured the captcha
// error comes back so the user re-verifies before submitting.
func (f *Form) CaptchaExpired() {
	f.captchaToken = ""
	if f.siteKey != "" {
		f.errors[FieldCaptcha] = "Please verify that you are human."
	}
}

// Submit runs the submission lifecycle. A non-empty honeypot field is
// silently discarded: no state transition and no errors shown. Validation
// failures keep the form idle with the error map populated. Otherwise the
// form moves to submitting, delivers, and on success clears every field
// and resets the captcha.
func (f *Form) Submit(ctx context.Context) error {
	if f.values.Company != "" {
		return nil
	}

	errs := Validate(f.values, f.captchaToken, f.siteKey != "")
	if len(errs) > 0 {
		f.errors = errs
		return nil
	}

	f.status = StatusSubmitting
	if err := f.deliver(ctx, f.values); err != nil {
		// The simulated deliverer cannot fail; a real backend can. Degrade
		// back to idle with a form-level error rather than a dead end.
		f.status = StatusIdle
		f.errors["form"] = "Something went wrong sending your request. Please try again."
		return err
	}

	f.status = StatusSuccess
	f.values = Submission{}
	f.captchaToken = ""
	return nil
}

// Status returns the current lifecycle state.
func (f *Form) Status() Status { return f.status }

// Values returns the current field values.
func (f *Form) Values() Submission { return f.values }

// Errors returns a copy of the field-scoped error map.
func (f *Form) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// CaptchaToken returns the currently held verification token.
func (f *Form) CaptchaToken() string { return f.captchaToken }
