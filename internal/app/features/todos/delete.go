package todos

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/httputil"
	"github.com/dalemusser/invtrack/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type deleteRequest struct {
	ID  string   `json:"id"`
	IDs []string `json:"ids"`
}

// ServeDelete handles DELETE /api/todos. The body carries either a single
// {"id": "..."} or a bulk {"ids": [...]}. A malformed single id is a 400;
// in a bulk list, unparseable entries are skipped. Missing and foreign ids
// delete nothing, silently.
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

	if len(req.IDs) > 0 {
		ids := make([]primitive.ObjectID, 0, len(req.IDs))
		for _, raw := range req.IDs {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
		defer cancel()

		deleted, err := h.Todos.DeleteMany(ctx, email, ids)
		if err != nil {
			httputil.Internal(w, h.Log, "todos delete", err)
			return
		}
		httputil.JSON(w, http.StatusOK, map[string]any{
			"success": true,
			"deleted": deleted,
		})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid todo id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Todos.Delete(ctx, email, id)
	if err != nil {
		httputil.Internal(w, h.Log, "todo delete", err)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}
