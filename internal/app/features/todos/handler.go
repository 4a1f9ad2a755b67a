// Package todos serves the JSON task endpoints. Every operation is scoped
// to the verified caller; ids from other accounts behave as if they do not
// exist.
package todos

import (
	todostore "github.com/dalemusser/invtrack/internal/app/store/todos"
	"go.uber.org/zap"
)

// Handler holds dependencies for the task endpoints.
type Handler struct {
	Todos *todostore.Store
	Log   *zap.Logger
}

func NewHandler(todos *todostore.Store, logger *zap.Logger) *Handler {
	return &Handler{Todos: todos, Log: logger}
}
