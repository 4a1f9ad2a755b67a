package todos

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/invtrack/internal/app/system/httputil"
	"github.com/dalemusser/invtrack/internal/app/system/inputval"
	"github.com/dalemusser/invtrack/internal/app/system/timeouts"
	"github.com/dalemusser/invtrack/internal/domain/models"
)

type createRequest struct {
	InventoryType     string `json:"inventoryType"`
	ModalName         string `json:"modalName"`
	Location          string `json:"location"`
	SubLocation       string `json:"subLocation"`
	Description       string `json:"description"`
	CustomDescription string `json:"customDescription"`
	Image             string `json:"image"`
}

// validate checks the payload and returns a client-facing message on the
// first failure.
func (req *createRequest) validate() error {
	if err := inputval.RequireString("inventoryType", req.InventoryType, 0); err != nil {
		return err
	}
	if err := inputval.RequireString("modalName", req.ModalName, inputval.MaxModalNameLen); err != nil {
		return err
	}
	if err := inputval.RequireString("location", req.Location, 0); err != nil {
		return err
	}
	if err := inputval.OptionalString("subLocation", req.SubLocation, inputval.MaxSubLocationLen); err != nil {
		return err
	}
	if err := inputval.RequireString("description", req.Description, 0); err != nil {
		return err
	}
	return inputval.ValidateImage(req.Image)
}

// ServeCreate handles POST /api/todos. The server assigns the id, creation
// time, and completion flag; any client-sent values for those are ignored.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Todos.Create(ctx, email, models.Todo{
		InventoryType:     htmlsanitize.Clean(req.InventoryType),
		ModalName:         htmlsanitize.Clean(req.ModalName),
		Location:          htmlsanitize.Clean(req.Location),
		SubLocation:       htmlsanitize.Clean(req.SubLocation),
		Description:       htmlsanitize.Clean(req.Description),
		CustomDescription: htmlsanitize.Clean(req.CustomDescription),
		Image:             req.Image,
	})
	if err != nil {
		httputil.Internal(w, h.Log, "todo create", err)
		return
	}

	httputil.JSON(w, http.StatusOK, created)
}
