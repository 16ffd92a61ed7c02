package contact

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// submitRequest is the JSON body for POST /api/contact.
type submitRequest struct {
	Submission
	CaptchaToken string `json:"captcha_token,omitempty"`
	SourcePage   string `json:"source_page,omitempty"`
}

// RegisterRoutes mounts the contact API. siteKey gates whether a captcha
// token is required at all; verifier checks it server-side.
func RegisterRoutes(r chi.Router, store *Store, verifier *Verifier, siteKey string) {
	r.Post("/api/contact", handleSubmit(store, verifier, siteKey))
}

func handleSubmit(store *Store, verifier *Verifier, siteKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		// Honeypot filled: discard silently. The response is shaped like a
		// success so automated senders learn nothing.
		if req.Company != "" {
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(map[string]string{"status": "received"})
			return
		}

		errs := Validate(req.Submission, req.CaptchaToken, siteKey != "")
		if len(errs) == 0 && siteKey != "" && verifier != nil {
			ok, err := verifier.Verify(r.Context(), req.CaptchaToken, r.RemoteAddr)
			if err != nil {
				log.Printf("contact: captcha verify: %v", err)
				http.Error(w, `{"error":"captcha verification unavailable"}`, http.StatusBadGateway)
				return
			}
			if !ok {
				errs = map[string]string{FieldCaptcha: "Please verify that you are human."}
			}
		}
		if len(errs) > 0 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{"errors": errs})
			return
		}

		lead, err := store.Create(r.Context(), req.Submission, req.SourcePage)
		if err != nil {
			log.Printf("contact: storing lead: %v", err)
			http.Error(w, `{"error":"could not store submission"}`, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "received", "id": lead.ID})
	}
}
