// Package settings serves the per-user pick list endpoints.
package settings

import (
	"context"
	"encoding/json"
	"net/http"

	settingsstore "github.com/dalemusser/invtrack/internal/app/store/usersettings"
	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/invtrack/internal/app/system/httputil"
	"github.com/dalemusser/invtrack/internal/app/system/timeouts"
	"github.com/dalemusser/invtrack/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds dependencies for the settings endpoints.
type Handler struct {
	Settings *settingsstore.Store
	Log      *zap.Logger
}

func NewHandler(settings *settingsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Settings: settings, Log: logger}
}

// ServeGet handles GET /api/settings. Owners with no saved document get
// empty lists.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	settings, err := h.Settings.Get(ctx, email)
	if err != nil {
		httputil.Internal(w, h.Log, "settings get", err)
		return
	}
	httputil.JSON(w, http.StatusOK, settings)
}

type saveRequest struct {
	InventoryTypes *[]string `json:"inventoryTypes"`
	Locations      *[]string `json:"locations"`
	Descriptions   *[]string `json:"descriptions"`
}

// ServeSave handles POST /api/settings. Lists absent from the body keep
// their stored values; present lists are replaced wholesale.
func (h *Handler) ServeSave(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merge := settingsstore.Merge{
		InventoryTypes: cleanList(req.InventoryTypes),
		Locations:      cleanList(req.Locations),
		Descriptions:   cleanList(req.Descriptions),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	saved, err := h.Settings.Upsert(ctx, email, merge)
	if err != nil {
		httputil.Internal(w, h.Log, "settings save", err)
		return
	}
	httputil.JSON(w, http.StatusOK, saved)
}

type deleteRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ServeDelete handles DELETE /api/settings, removing one value from one
// list. Both key and value are required.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" || req.Value == "" {
		httputil.Error(w, http.StatusBadRequest, "Missing key or value")
		return
	}

	field, ok := models.SettingsField(req.Key)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "unknown settings key")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	saved, err := h.Settings.RemoveValue(ctx, email, field, req.Value)
	if err != nil {
		httputil.Internal(w, h.Log, "settings delete", err)
		return
	}
	httputil.JSON(w, http.StatusOK, saved)
}

func cleanList(vals *[]string) *[]string {
	if vals == nil {
		return nil
	}
	cleaned := htmlsanitize.CleanAll(*vals)
	return &cleaned
}
