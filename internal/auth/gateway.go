package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyRegistered  = errors.New("account already exists, please sign in")
)

// Gateway is the identity provider. The rest of the system only consumes the
// returned identity string as a persistence key; credential checking lives
// entirely behind this interface.
type Gateway interface {
	SignUp(ctx context.Context, email, name, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context, identity string) error
}

// PostgresGateway keeps credentials in the users table with bcrypt hashes.
type PostgresGateway struct {
	db *sql.DB
}

func NewPostgresGateway(db *sql.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

func (g *PostgresGateway) SignUp(ctx context.Context, email, name, password string) (string, error) {
	email = normalize(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	_, err = g.db.ExecContext(ctx,
		"INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3)",
		email, name, string(hash),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return "", ErrAlreadyRegistered
		}
		return "", fmt.Errorf("create identity: %w", err)
	}
	return email, nil
}

func (g *PostgresGateway) SignIn(ctx context.Context, email, password string) (string, error) {
	email = normalize(email)

	var hash string
	err := g.db.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE email = $1", email,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup identity: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return email, nil
}

// SignOut is stateless server-side; session state lives in the cache tier
// and is cleared by the caller.
func (g *PostgresGateway) SignOut(ctx context.Context, identity string) error {
	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
