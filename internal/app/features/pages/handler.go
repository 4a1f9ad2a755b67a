// Package pages serves the HTML shell pages. The route guard decides who
// may see which page; handlers only render.
package pages

import (
	"net/http"

	"github.com/dalemusser/invtrack/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	Title      string
	IsLoggedIn bool
	Email      string
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) data(r *http.Request, title string) pageData {
	email, signedIn := auth.CurrentUser(r)
	return pageData{
		Title:      title,
		IsLoggedIn: signedIn,
		Email:      email,
	}
}

// ServeHome handles GET /.
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "home", h.data(r, "Inventory Tasks"))
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "login", h.data(r, "Log In"))
}

// ServeSignup handles GET /signup.
func (h *Handler) ServeSignup(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "signup", h.data(r, "Sign Up"))
}

// ServeTodos handles GET /todos.
func (h *Handler) ServeTodos(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "todos", h.data(r, "Tasks"))
}

// ServeSettings handles GET /settings.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "settings", h.data(r, "Settings"))
}
