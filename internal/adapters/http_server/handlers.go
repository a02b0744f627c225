package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lucas-palmeida/drivent-3/internal/app"
	"github.com/lucas-palmeida/drivent-3/internal/domain"
)

type Handlers struct{ Q *app.HotelQueryService }

func (s *Server) MountHandlers(h *Handlers, auth Authenticator) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Group(func(r chi.Router) {
		r.Use(Auth(auth))
		r.Get("/hotels", h.getHotels)
		r.Get("/hotels/{hotelId}", h.getHotelByID)
	})
}

// writeError is the single taxonomy-to-status mapping point. Failure bodies
// are empty; clients key off the status code alone. Anything outside the
// taxonomy (storage faults included) collapses to 400.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, domain.ErrPaymentRequired):
		w.WriteHeader(http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
	default:
		log.Error().Err(err).Msg("unclassified failure")
		w.WriteHeader(http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) getHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	hotels, err := h.Q.GetHotels(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, hotels)
}

func (h *Handlers) getHotelByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	// malformed path id never reaches the service
	hotelID, err := strconv.ParseInt(chi.URLParam(r, "hotelId"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	hotel, err := h.Q.GetHotelByID(r.Context(), userID, hotelID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, hotel)
}
