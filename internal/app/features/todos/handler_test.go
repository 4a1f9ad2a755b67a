package todos_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/invtrack/internal/app/features/todos"
	todostore "github.com/dalemusser/invtrack/internal/app/store/todos"
	"github.com/dalemusser/invtrack/internal/domain/models"
	"github.com/dalemusser/invtrack/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*todos.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return todos.NewHandler(todostore.New(db), zap.NewNop()), testutil.NewFixtures(t, db)
}

func validCreateBody() map[string]any {
	return map[string]any{
		"inventoryType": "Tools",
		"modalName":     "Drill Press",
		"location":      "Warehouse A",
		"subLocation":   "Shelf 3",
		"description":   "Needs Repair",
	}
}

func TestServeCreate(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeCreate(rec, testutil.NewAuthenticatedJSONRequest(t, "POST", "/api/todos", "owner@example.com", validCreateBody()))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var created models.Todo
	testutil.DecodeJSON(t, rec, &created)
	if created.ID.IsZero() {
		t.Error("id not assigned")
	}
	if created.ModalName != "Drill Press" {
		t.Errorf("modalName: got %q, want %q", created.ModalName, "Drill Press")
	}
	if created.Completed {
		t.Error("completed: got true, want false on create")
	}
	if created.CreatedAt.IsZero() {
		t.Error("createdAt not stamped")
	}
}

func TestServeCreate_SanitizesMarkup(t *testing.T) {
	h, _ := newHandler(t)

	body := validCreateBody()
	body["modalName"] = `<script>alert(1)</script>Bench Vise`
	body["description"] = `<b>Broken</b> handle`

	rec := httptest.NewRecorder()
	h.ServeCreate(rec, testutil.NewAuthenticatedJSONRequest(t, "POST", "/api/todos", "owner@example.com", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var created models.Todo
	testutil.DecodeJSON(t, rec, &created)
	if strings.Contains(created.ModalName, "<") {
		t.Errorf("modalName kept markup: %q", created.ModalName)
	}
	if created.ModalName != "Bench Vise" {
		t.Errorf("modalName: got %q, want %q", created.ModalName, "Bench Vise")
	}
	if created.Description != "Broken handle" {
		t.Errorf("description: got %q, want %q", created.Description, "Broken handle")
	}
}

func TestServeCreate_Validation(t *testing.T) {
	h, _ := newHandler(t)

	longName := strings.Repeat("x", 56)

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing modalName", func(m map[string]any) { delete(m, "modalName") }},
		{"blank modalName", func(m map[string]any) { m["modalName"] = "   " }},
		{"modalName too long", func(m map[string]any) { m["modalName"] = longName }},
		{"subLocation too long", func(m map[string]any) { m["subLocation"] = longName }},
		{"missing inventoryType", func(m map[string]any) { delete(m, "inventoryType") }},
		{"missing location", func(m map[string]any) { delete(m, "location") }},
		{"missing description", func(m map[string]any) { delete(m, "description") }},
		{"image not a data url", func(m map[string]any) { m["image"] = "https://example.com/a.png" }},
		{"image wrong encoding", func(m map[string]any) { m["image"] = "data:image/png;base32,AAAA" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validCreateBody()
			tc.mutate(body)

			rec := httptest.NewRecorder()
			h.ServeCreate(rec, testutil.NewAuthenticatedJSONRequest(t, "POST", "/api/todos", "owner@example.com", body))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d (body %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
		})
	}

	// An anonymous request never reaches validation.
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/todos", validCreateBody()))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestServeList_FiltersAndScope(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	fx.CreateTodo(ctx, "owner@example.com", "Drill Press", base)
	fx.CreateTodo(ctx, "owner@example.com", "Bench Vise", base.Add(24*time.Hour))
	fx.CreateTodo(ctx, "other@example.com", "Drill Bits", base)

	rec := httptest.NewRecorder()
	h.ServeList(rec, testutil.NewAuthenticatedJSONRequest(t, "GET", "/api/todos", "owner@example.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var listed []models.Todo
	testutil.DecodeJSON(t, rec, &listed)
	if len(listed) != 2 {
		t.Fatalf("list: got %d todos, want 2", len(listed))
	}
	// Newest first.
	if listed[0].ModalName != "Bench Vise" || listed[1].ModalName != "Drill Press" {
		t.Errorf("order: got [%q, %q], want newest first", listed[0].ModalName, listed[1].ModalName)
	}

	// Case-insensitive substring match on the name.
	rec = httptest.NewRecorder()
	h.ServeList(rec, testutil.NewAuthenticatedJSONRequest(t, "GET", "/api/todos?modalName=DRILL", "owner@example.com", nil))
	testutil.DecodeJSON(t, rec, &listed)
	if len(listed) != 1 || listed[0].ModalName != "Drill Press" {
		t.Errorf("modalName filter: got %+v, want only Drill Press", listed)
	}

	// createdAtEnd is inclusive of the whole day.
	rec = httptest.NewRecorder()
	h.ServeList(rec, testutil.NewAuthenticatedJSONRequest(t, "GET",
		"/api/todos?createdAtStart=2026-03-11&createdAtEnd=2026-03-11", "owner@example.com", nil))
	testutil.DecodeJSON(t, rec, &listed)
	if len(listed) != 1 || listed[0].ModalName != "Bench Vise" {
		t.Errorf("date filter: got %+v, want only Bench Vise", listed)
	}
}

func TestServeList_BadDates(t *testing.T) {
	h, _ := newHandler(t)

	for _, target := range []string{
		"/api/todos?createdAtStart=03-10-2026",
		"/api/todos?createdAtEnd=yesterday",
	} {
		rec := httptest.NewRecorder()
		h.ServeList(rec, testutil.NewAuthenticatedJSONRequest(t, "GET", target, "owner@example.com", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestServeList_EmptyIsArray(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeList(rec, testutil.NewAuthenticatedJSONRequest(t, "GET", "/api/todos", "empty@example.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty list body: got %q, want %q", got, "[]")
	}
}

func TestServeUpdate(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	todo := fx.CreateTodo(ctx, "owner@example.com", "Drill Press", time.Now().UTC())

	newName := "Floor Drill Press"
	done := true
	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, testutil.NewAuthenticatedJSONRequest(t, "PUT", "/api/todos", "owner@example.com", map[string]any{
		"id":        todo.ID.Hex(),
		"modalName": newName,
		"completed": done,
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var updated models.Todo
	testutil.DecodeJSON(t, rec, &updated)
	if updated.ModalName != newName {
		t.Errorf("modalName: got %q, want %q", updated.ModalName, newName)
	}
	if !updated.Completed {
		t.Error("completed: got false, want true")
	}
	// Untouched fields survive a partial update.
	if updated.Location != todo.Location {
		t.Errorf("location: got %q, want %q", updated.Location, todo.Location)
	}
	if updated.UpdatedAt == nil {
		t.Error("updatedAt not stamped")
	}
}

func TestServeUpdate_Failures(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	todo := fx.CreateTodo(ctx, "owner@example.com", "Drill Press", time.Now().UTC())

	// Malformed id.
	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, testutil.NewAuthenticatedJSONRequest(t, "PUT", "/api/todos", "owner@example.com", map[string]any{
		"id": "not-a-hex-id",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: got %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Someone else's todo looks like a missing one.
	rec = httptest.NewRecorder()
	h.ServeUpdate(rec, testutil.NewAuthenticatedJSONRequest(t, "PUT", "/api/todos", "intruder@example.com", map[string]any{
		"id":        todo.ID.Hex(),
		"modalName": "Hijacked",
	}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("cross-owner: got %d, want %d", rec.Code, http.StatusNotFound)
	}

	// Well-formed id with no document behind it.
	rec = httptest.NewRecorder()
	h.ServeUpdate(rec, testutil.NewAuthenticatedJSONRequest(t, "PUT", "/api/todos", "owner@example.com", map[string]any{
		"id":        primitive.NewObjectID().Hex(),
		"modalName": "Ghost",
	}))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id: got %d, want %d", rec.Code, http.StatusNotFound)
	}

	// Blanking a required field is rejected.
	rec = httptest.NewRecorder()
	h.ServeUpdate(rec, testutil.NewAuthenticatedJSONRequest(t, "PUT", "/api/todos", "owner@example.com", map[string]any{
		"id":        todo.ID.Hex(),
		"modalName": "  ",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank modalName: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeDelete_Single(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	todo := fx.CreateTodo(ctx, "owner@example.com", "Drill Press", time.Now().UTC())

	rec := httptest.NewRecorder()
	h.ServeDelete(rec, testutil.NewAuthenticatedJSONRequest(t, "DELETE", "/api/todos", "owner@example.com", map[string]any{
		"id": todo.ID.Hex(),
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool  `json:"success"`
		Deleted int64 `json:"deleted"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if !resp.Success || resp.Deleted != 1 {
		t.Errorf("response: got %+v, want success with 1 deleted", resp)
	}

	// Deleting an id that is already gone is a silent no-op.
	rec = httptest.NewRecorder()
	h.ServeDelete(rec, testutil.NewAuthenticatedJSONRequest(t, "DELETE", "/api/todos", "owner@example.com", map[string]any{
		"id": todo.ID.Hex(),
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat delete: got %d, want 200", rec.Code)
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Deleted != 0 {
		t.Errorf("repeat delete count: got %d, want 0", resp.Deleted)
	}

	// A malformed single id is a client error.
	rec = httptest.NewRecorder()
	h.ServeDelete(rec, testutil.NewAuthenticatedJSONRequest(t, "DELETE", "/api/todos", "owner@example.com", map[string]any{
		"id": "zzz",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeDelete_Bulk(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	a := fx.CreateTodo(ctx, "owner@example.com", "Drill Press", now)
	b := fx.CreateTodo(ctx, "owner@example.com", "Bench Vise", now)
	foreign := fx.CreateTodo(ctx, "other@example.com", "Drill Bits", now)

	// Unparseable entries are skipped, foreign ids silently ignored.
	rec := httptest.NewRecorder()
	h.ServeDelete(rec, testutil.NewAuthenticatedJSONRequest(t, "DELETE", "/api/todos", "owner@example.com", map[string]any{
		"ids": []string{a.ID.Hex(), "not-an-id", b.ID.Hex(), foreign.ID.Hex()},
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Deleted int64 `json:"deleted"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Deleted != 2 {
		t.Errorf("deleted: got %d, want 2", resp.Deleted)
	}

	// The foreign owner's todo is untouched.
	rec = httptest.NewRecorder()
	h.ServeList(rec, testutil.NewAuthenticatedJSONRequest(t, "GET", "/api/todos", "other@example.com", nil))
	var remaining []models.Todo
	testutil.DecodeJSON(t, rec, &remaining)
	if len(remaining) != 1 {
		t.Errorf("other owner's todos: got %d, want 1", len(remaining))
	}
}
