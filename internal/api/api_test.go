package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/events-api/internal/core/domain"
	"github.com/eventhub/events-api/internal/core/service"
)

// In-memory repositories with the same error contracts as the postgres ones,
// so the full middleware/handler/service chain can be exercised over HTTP
// without a database.

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	r.seq++
	cp := *user
	cp.ID = fmt.Sprintf("user-%d", r.seq)
	cp.CreatedAt = time.Now().UTC()
	r.users[cp.Email] = &cp
	out := cp
	return &out, nil
}

type memEventRepo struct {
	events map[string]*domain.Event
	seq    int
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[string]*domain.Event)}
}

func (r *memEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.seq++
	event.ID = fmt.Sprintf("event-%d", r.seq)
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *memEventRepo) List(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEventRepo) Update(_ context.Context, event *domain.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *memEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type memRegistrationRepo struct {
	regs   []domain.Registration
	users  *memUserRepo
	events *memEventRepo
	seq    int
}

func (r *memRegistrationRepo) Create(_ context.Context, reg *domain.Registration) error {
	for _, existing := range r.regs {
		if existing.UserID == reg.UserID && existing.EventID == reg.EventID {
			return domain.ErrAlreadyRegistered
		}
	}
	if _, ok := r.events.events[reg.EventID]; !ok {
		return domain.ErrEventNotFound
	}
	r.seq++
	reg.ID = fmt.Sprintf("reg-%d", r.seq)
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *memRegistrationRepo) Delete(_ context.Context, userID, eventID string) error {
	for i, reg := range r.regs {
		if reg.UserID == userID && reg.EventID == eventID {
			r.regs = append(r.regs[:i], r.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrRegistrationNotFound
}

func (r *memRegistrationRepo) ListEventsByUser(_ context.Context, userID string) ([]domain.Event, error) {
	out := make([]domain.Event, 0)
	for _, reg := range r.regs {
		if reg.UserID != userID {
			continue
		}
		if e, ok := r.events.events[reg.EventID]; ok {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memRegistrationRepo) ListParticipants(_ context.Context, eventID string) ([]domain.UserSummary, error) {
	out := make([]domain.UserSummary, 0)
	for _, reg := range r.regs {
		if reg.EventID != eventID {
			continue
		}
		for _, u := range r.users.users {
			if u.ID == reg.UserID {
				out = append(out, u.Summary())
			}
		}
	}
	return out, nil
}

type testServer struct {
	handler http.Handler
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (int, map[string]any, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	raw := rec.Body.Bytes()
	var obj map[string]any
	_ = json.Unmarshal(raw, &obj)
	return rec.Code, obj, raw
}

// The prometheus middleware registers collectors in the default registry, so
// the router is built exactly once and the subtests run as one journey.
func TestAPI(t *testing.T) {
	log := zerolog.Nop()
	users := newMemUserRepo()
	events := newMemEventRepo()
	regs := &memRegistrationRepo{users: users, events: events}

	tokens := service.NewTokenService("test-secret", time.Hour)
	hasher := service.NewBcryptHasher()
	authSvc := service.NewAuthService(users, hasher, tokens, log)
	eventSvc := service.NewEventService(events, log)
	regSvc := service.NewRegistrationService(regs, events, log)

	ctx := context.Background()
	if err := authSvc.EnsureAdmin(ctx, "Admin", "admin@example.com", "admin123"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	srv := &testServer{handler: NewRouter(Deps{
		Tokens:        tokens,
		Auth:          authSvc,
		Events:        eventSvc,
		Registrations: regSvc,
		Log:           log,
	})}

	var aliceToken, adminToken, eventID string

	t.Run("register user", func(t *testing.T) {
		code, obj, _ := srv.do(t, http.MethodPost, "/api/register", "",
			`{"name":"Alice","email":"alice@x.com","password":"pw123456"}`)
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%v)", code, obj)
		}
		aliceToken, _ = obj["token"].(string)
		if aliceToken == "" {
			t.Fatalf("no token in response: %v", obj)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		code, obj, _ := srv.do(t, http.MethodPost, "/api/register", "",
			`{"name":"Alice Again","email":"alice@x.com","password":"other"}`)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d (%v)", code, obj)
		}
		if obj["error"] == "" {
			t.Fatalf("expected error body, got %v", obj)
		}
	})

	t.Run("register missing fields", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodPost, "/api/register", "", `{"name":"Bob"}`)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		code, obj, _ := srv.do(t, http.MethodPost, "/api/login", "",
			`{"email":"alice@x.com","password":"wrong"}`)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d (%v)", code, obj)
		}
	})

	t.Run("login unknown email", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodPost, "/api/login", "",
			`{"email":"nobody@x.com","password":"pw"}`)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
	})

	t.Run("login admin", func(t *testing.T) {
		code, obj, _ := srv.do(t, http.MethodPost, "/api/login", "",
			`{"email":"admin@example.com","password":"admin123"}`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%v)", code, obj)
		}
		adminToken, _ = obj["token"].(string)
		if adminToken == "" {
			t.Fatalf("no token in response: %v", obj)
		}
	})

	t.Run("create event requires token", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodPost, "/api/events", "",
			`{"title":"Conf","date":"2025-06-01T18:00:00Z"}`)
		if code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", code)
		}
	})

	t.Run("create event requires admin", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodPost, "/api/events", aliceToken,
			`{"title":"Conf","date":"2025-06-01T18:00:00Z"}`)
		if code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})

	t.Run("admin creates event", func(t *testing.T) {
		code, obj, _ := srv.do(t, http.MethodPost, "/api/events", adminToken,
			`{"title":"Conf","description":"annual","date":"2025-06-01T18:00:00Z","location":"Berlin"}`)
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%v)", code, obj)
		}
		eventID, _ = obj["id"].(string)
		if eventID == "" {
			t.Fatalf("no event id in response: %v", obj)
		}
	})

	t.Run("events are public", func(t *testing.T) {
		code, _, raw := srv.do(t, http.MethodGet, "/api/events", "", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var list []domain.Event
		if err := json.Unmarshal(raw, &list); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(list) != 1 || list[0].Title != "Conf" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("get unknown event", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodGet, "/api/events/nope", "", "")
		if code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}
	})

	t.Run("register for event", func(t *testing.T) {
		code, obj, _ := srv.do(t, http.MethodPost, "/api/registration", aliceToken,
			`{"event_id":"`+eventID+`"}`)
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%v)", code, obj)
		}
		if obj["event_id"] != eventID {
			t.Fatalf("unexpected registration payload: %v", obj)
		}
	})

	t.Run("register twice rejected", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodPost, "/api/registration", aliceToken,
			`{"event_id":"`+eventID+`"}`)
		if code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", code)
		}
	})

	t.Run("register for unknown event", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodPost, "/api/registration", aliceToken,
			`{"event_id":"nope"}`)
		if code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}
	})

	t.Run("list own events", func(t *testing.T) {
		code, _, raw := srv.do(t, http.MethodGet, "/api/user/events", aliceToken, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var list []domain.Event
		if err := json.Unmarshal(raw, &list); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(list) != 1 || list[0].ID != eventID {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("participants admin only", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodGet, "/api/events/"+eventID+"/registrations", aliceToken, "")
		if code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", code)
		}
	})

	t.Run("participants", func(t *testing.T) {
		code, _, raw := srv.do(t, http.MethodGet, "/api/events/"+eventID+"/registrations", adminToken, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		var list []domain.UserSummary
		if err := json.Unmarshal(raw, &list); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(list) != 1 || list[0].Email != "alice@x.com" {
			t.Fatalf("unexpected participants: %+v", list)
		}
	})

	t.Run("cancel registration", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodDelete, "/api/registration/"+eventID, aliceToken, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("cancel absent registration", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodDelete, "/api/registration/"+eventID, aliceToken, "")
		if code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}
	})

	t.Run("update event", func(t *testing.T) {
		code, obj, _ := srv.do(t, http.MethodPut, "/api/events/"+eventID, adminToken,
			`{"title":"Conf 2025","date":"2025-06-02T18:00:00Z"}`)
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%v)", code, obj)
		}
		if obj["title"] != "Conf 2025" {
			t.Fatalf("unexpected event payload: %v", obj)
		}
	})

	t.Run("delete event", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodDelete, "/api/events/"+eventID, adminToken, "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		code, _, _ = srv.do(t, http.MethodDelete, "/api/events/"+eventID, adminToken, "")
		if code != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", code)
		}
	})

	t.Run("liveness", func(t *testing.T) {
		code, _, _ := srv.do(t, http.MethodGet, "/health", "", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})
}
