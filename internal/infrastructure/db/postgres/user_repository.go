package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventhub/events-api/internal/core/domain"
)

// UserRepository persists credentials in the users table.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks a user up by exact email match.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	parsed, ok := domain.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("find user by email: stored role %q outside the role enum", role)
	}
	u.Role = parsed
	return &u, nil
}

// FindByID looks a user up by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	parsed, ok := domain.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("find user by id: stored role %q outside the role enum", role)
	}
	u.Role = parsed
	return &u, nil
}

// Create inserts the user with a generated UUID. The email unique constraint
// is the race-free duplicate check: a violation surfaces as ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	created.ID = uuid.New().String()

	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		created.ID, created.Name, created.Email, created.PasswordHash, string(created.Role), created.CreatedAt,
	)
	if err != nil {
		if isPgError(err, codeUniqueViolation) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}
