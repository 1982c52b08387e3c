package event_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/clubhouse/internal/event"
	"github.com/saulo-duarte/clubhouse/internal/recordstore"
)

func newService(t *testing.T) event.Service {
	t.Helper()
	store := recordstore.New(filepath.Join(t.TempDir(), "events.csv"), event.Schema)
	return event.NewContainer(store).Service
}

func strPtr(s string) *string { return &s }

func TestCreateAndCalendar(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, event.CreateEventDTO{
		Name:        "Whodunit night",
		Date:        "2026-10-31",
		Time:        "19:30:00",
		Location:    "Library, back room",
		Description: "Bring a magnifying glass",
	})
	require.NoError(t, err)
	assert.Equal(t, "19:30", e.Time)

	entries, err := svc.Calendar(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, event.CalendarEntry{
		ID:          e.ID,
		Title:       "Whodunit night",
		Start:       "2026-10-31T19:30",
		Description: "Bring a magnifying glass",
		Location:    "Library, back room",
	}, entries[0])
}

func TestCreateValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, dto := range []event.CreateEventDTO{
		{Name: "", Date: "2026-10-31", Time: "19:00"},
		{Name: "x", Date: "31/10/2026", Time: "19:00"},
		{Name: "x", Date: "2026-10-31", Time: "evening"},
	} {
		_, err := svc.Create(ctx, dto)
		assert.ErrorIs(t, err, recordstore.ErrValidation)
	}
}

func TestUpdateKeepsOrder(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, event.CreateEventDTO{Name: "first", Date: "2026-01-01", Time: "10:00"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, event.CreateEventDTO{Name: "second", Date: "2026-01-02", Time: "10:00"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, first.ID, event.UpdateEventDTO{Location: strPtr("Town hall"), Time: strPtr("11:15")})
	require.NoError(t, err)
	assert.Equal(t, "first", updated.Name)
	assert.Equal(t, "Town hall", updated.Location)
	assert.Equal(t, "11:15", updated.Time)

	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, second.ID, events[1].ID)

	moved, err := svc.Update(ctx, second.ID, event.UpdateEventDTO{Date: strPtr(" 2026-01-09\n")})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-09", moved.Date)

	_, err = svc.Update(ctx, second.ID, event.UpdateEventDTO{Date: strPtr("soon")})
	assert.ErrorIs(t, err, recordstore.ErrValidation)

	_, err = svc.Update(ctx, "00000000-0000-0000-0000-000000000000", event.UpdateEventDTO{})
	assert.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestEventRoutes(t *testing.T) {
	router := event.Routes(event.NewHandler(newService(t)))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Quiz","date":"2026-04-01","time":"18:00"}`)))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created event.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/calendar", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"start":"2026-04-01T18:00"`)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/"+created.ID, strings.NewReader(`{"name":"Pub quiz"}`)))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Pub quiz"`)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/"+created.ID, nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestEventRoutes_StorageFault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	store := recordstore.New(path, event.Schema)
	require.NoError(t, store.EnsureInitialized())
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
	router := event.Routes(event.NewContainer(store).Handler)

	for _, target := range []string{"/", "/calendar"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rr.Code, target)
		assert.JSONEq(t, `[]`, rr.Body.String(), target)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Quiz","date":"2026-04-01","time":"18:00"}`)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"storage unavailable"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/download", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Disposition"))
}

func TestEventRoutes_UppercaseID(t *testing.T) {
	svc := newService(t)
	router := event.Routes(event.NewHandler(svc))

	e, err := svc.Create(context.Background(), event.CreateEventDTO{Name: "Quiz", Date: "2026-04-01", Time: "18:00"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/"+strings.ToUpper(e.ID), strings.NewReader(`{"location":"Upstairs"}`)))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"location":"Upstairs"`)
}
