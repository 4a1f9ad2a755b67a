package todos

import (
	"context"
	"encoding/json"
	"net/http"

	todostore "github.com/dalemusser/invtrack/internal/app/store/todos"
	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/invtrack/internal/app/system/httputil"
	"github.com/dalemusser/invtrack/internal/app/system/inputval"
	"github.com/dalemusser/invtrack/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type updateRequest struct {
	ID string `json:"id"`

	InventoryType     *string `json:"inventoryType"`
	ModalName         *string `json:"modalName"`
	Location          *string `json:"location"`
	SubLocation       *string `json:"subLocation"`
	Description       *string `json:"description"`
	CustomDescription *string `json:"customDescription"`
	Image             *string `json:"image"`
	Completed         *bool   `json:"completed"`
}

func (req *updateRequest) validate() error {
	if req.InventoryType != nil {
		if err := inputval.RequireString("inventoryType", *req.InventoryType, 0); err != nil {
			return err
		}
	}
	if req.ModalName != nil {
		if err := inputval.RequireString("modalName", *req.ModalName, inputval.MaxModalNameLen); err != nil {
			return err
		}
	}
	if req.Location != nil {
		if err := inputval.RequireString("location", *req.Location, 0); err != nil {
			return err
		}
	}
	if req.SubLocation != nil {
		if err := inputval.OptionalString("subLocation", *req.SubLocation, inputval.MaxSubLocationLen); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if err := inputval.RequireString("description", *req.Description, 0); err != nil {
			return err
		}
	}
	if req.Image != nil {
		return inputval.ValidateImage(*req.Image)
	}
	return nil
}

func cleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := htmlsanitize.Clean(*s)
	return &c
}

// ServeUpdate handles PUT /api/todos. Absent fields keep their stored
// values. An id the caller does not own responds 404.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid todo id")
		return
	}
	if err := req.validate(); err != nil {
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := h.Todos.Update(ctx, email, id, todostore.Update{
		InventoryType:     cleanPtr(req.InventoryType),
		ModalName:         cleanPtr(req.ModalName),
		Location:          cleanPtr(req.Location),
		SubLocation:       cleanPtr(req.SubLocation),
		Description:       cleanPtr(req.Description),
		CustomDescription: cleanPtr(req.CustomDescription),
		Image:             req.Image,
		Completed:         req.Completed,
	})
	if err != nil {
		httputil.Internal(w, h.Log, "todo update", err)
		return
	}
	if !matched {
		httputil.Error(w, http.StatusNotFound, "todo not found")
		return
	}

	updated, err := h.Todos.GetByID(ctx, email, id)
	if err != nil {
		httputil.Internal(w, h.Log, "todo update", err)
		return
	}
	httputil.JSON(w, http.StatusOK, updated)
}
