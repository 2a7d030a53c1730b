package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/eventhub/events-api/internal/core/domain"
)

// In-memory repositories mirroring the store-level semantics the postgres
// implementations provide: unique email, unique (user, event) pair, zero-rows
// deletes reported as not found.

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email, exact match
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

type stubEventRepo struct {
	events map[string]*domain.Event
	seq    int
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.seq++
	event.ID = fmt.Sprintf("event-%d", r.seq)
	clone := *event
	r.events[event.ID] = &clone
	return nil
}

func (r *stubEventRepo) List(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *stubEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	if e, ok := r.events[id]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, domain.ErrEventNotFound
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	clone := *event
	r.events[event.ID] = &clone
	return nil
}

func (r *stubEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type stubRegistrationRepo struct {
	regs   []domain.Registration
	events *stubEventRepo
	users  *stubUserRepo
	seq    int
}

func newStubRegistrationRepo(events *stubEventRepo, users *stubUserRepo) *stubRegistrationRepo {
	return &stubRegistrationRepo{events: events, users: users}
}

func (r *stubRegistrationRepo) Create(_ context.Context, reg *domain.Registration) error {
	for _, existing := range r.regs {
		if existing.UserID == reg.UserID && existing.EventID == reg.EventID {
			return domain.ErrAlreadyRegistered
		}
	}
	r.seq++
	reg.ID = fmt.Sprintf("reg-%d", r.seq)
	r.regs = append(r.regs, *reg)
	return nil
}

func (r *stubRegistrationRepo) Delete(_ context.Context, userID, eventID string) error {
	for i, existing := range r.regs {
		if existing.UserID == userID && existing.EventID == eventID {
			r.regs = append(r.regs[:i], r.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrRegistrationNotFound
}

func (r *stubRegistrationRepo) ListEventsByUser(_ context.Context, userID string) ([]domain.Event, error) {
	var out []domain.Event
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

func (r *stubRegistrationRepo) ListParticipants(_ context.Context, eventID string) ([]domain.UserSummary, error) {
	var out []domain.UserSummary
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
