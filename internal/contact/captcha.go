package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const siteverifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks reCAPTCHA tokens against Google's siteverify endpoint.
// A Verifier with an empty secret accepts every token, mirroring the
// fail-open behavior of an unconfigured site key.
type Verifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

// NewVerifier creates a Verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret:   secret,
		endpoint: siteverifyURL,
		client:   &http.Client{},
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify returns whether the token passed verification. Transport errors
// are returned as errors; a clean "no" is (false, nil).
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if v.secret == "" {
		return true, nil
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("building siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("reading siteverify response: %w", err)
	}

	var result siteverifyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, fmt.Errorf("decoding siteverify response: %w", err)
	}
	return result.Success, nil
}
