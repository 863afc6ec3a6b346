package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type APIError struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError pinpoints a rejected request field and the reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

const errInvalidPayload = "invalid payload"

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, details interface{}) {
	s.writeJSON(w, status, APIError{Error: message, Details: details})
}

func (s *Server) decodeAndValidate(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := s.validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// validationDetails flattens a decode or validation failure into field errors
// suitable for an APIError details payload.
func validationDetails(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Reason: validationReason(fe)})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{Field: typeErr.Field, Reason: "invalid type: got " + typeErr.Value}}
	}

	return []FieldError{{Field: "body", Reason: err.Error()}}
}

func validationReason(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "field is required"
	}
	return "failed " + fe.Tag() + " validation"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
