package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Str("id", resp.User.ID).Str("email", resp.User.Email).Msg("user successfully logged in")

	// The token travels both ways: header for browsers, body for
	// everything else.
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	utils.WriteJSON(w, resp, http.StatusOK)
}
