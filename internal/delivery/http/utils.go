package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// respondJSON envoie une réponse JSON
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondSuccess(w http.ResponseWriter, code int, data interface{}) {
	respondJSON(w, code, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// respondError envoie une réponse JSON d'erreur
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// statusFor associe une erreur du domaine à un code HTTP
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoAssociation),
		errors.Is(err, domain.ErrPlannedDateRequired),
		errors.Is(err, domain.ErrMileageRequired),
		errors.Is(err, domain.ErrMissingID),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError traduit l'erreur d'un cas d'utilisation; les erreurs
// internes sont journalisées et masquées.
func respondServiceError(w http.ResponseWriter, log logger.Logger, action string, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Error("Failed to "+action, map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, code, "Failed to "+action)
		return
	}
	respondError(w, code, err.Error())
}

// decodeRequest lit le corps JSON puis applique les tags validate
func decodeRequest(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	return validate.Struct(dst)
}

var (
	errInvalidBody = errors.New("invalid request body")
	errInvalidID   = errors.New("invalid id")
)

// idParam extrait le paramètre {id} du chemin
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// queryID lit un identifiant optionnel dans la query string; 0 si absent
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, errInvalidID
	}
	return id, nil
}
