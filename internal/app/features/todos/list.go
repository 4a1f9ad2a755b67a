package todos

import (
	"context"
	"net/http"
	"time"

	todostore "github.com/dalemusser/invtrack/internal/app/store/todos"
	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/invtrack/internal/app/system/httputil"
	"github.com/dalemusser/invtrack/internal/app/system/normalize"
	"github.com/dalemusser/invtrack/internal/app/system/timeouts"
)

const dateLayout = "2006-01-02"

// ServeList handles GET /api/todos. Optional query params: modalName
// (case-insensitive substring), createdAtStart and createdAtEnd
// (YYYY-MM-DD, both inclusive). Results are newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.CurrentUser(r)
	if !ok {
		httputil.Unauthorized(w)
		return
	}

	f := todostore.Filter{
		ModalName: normalize.QueryParam(r.URL.Query().Get("modalName")),
	}

	if raw := normalize.QueryParam(r.URL.Query().Get("createdAtStart")); raw != "" {
		start, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "createdAtStart must be YYYY-MM-DD")
			return
		}
		f.CreatedAtStart = &start
	}
	if raw := normalize.QueryParam(r.URL.Query().Get("createdAtEnd")); raw != "" {
		end, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "createdAtEnd must be YYYY-MM-DD")
			return
		}
		f.CreatedAtEnd = &end
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	todos, err := h.Todos.List(ctx, email, f)
	if err != nil {
		httputil.Internal(w, h.Log, "todos list", err)
		return
	}

	httputil.JSON(w, http.StatusOK, todos)
}
