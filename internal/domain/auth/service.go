package auth

import (
	"context"
	"log/slog"
	"time"

	"ems/internal/domain/model"
	"ems/internal/storage"
)

// LoginResponse is the flat shape returned by /auth/login.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service verifies credentials and issues access tokens.
type Service struct {
	store *storage.Store
	cfg   TokenConfig
}

func NewService(store *storage.Store, cfg TokenConfig) *Service {
	return &Service{store: store, cfg: cfg}
}

// Login looks the user up by exact username, verifies the password against
// the stored hash and issues a token carrying username, email and role. The
// last-login stamp is best effort: a failed commit is logged, not surfaced.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return LoginResponse{}, err
	}
	defer uow.Rollback(ctx)

	users, err := uow.Users().Find(ctx, storage.Eq("username", username))
	if err != nil {
		return LoginResponse{}, err
	}
	if len(users) == 0 {
		slog.Warn("login failed, unknown username", "username", username)
		return LoginResponse{}, ErrInvalidCredentials
	}
	user := users[0]

	if err := CheckPassword(user.PasswordHash, password); err != nil {
		slog.Warn("login failed, bad password", "username", username)
		return LoginResponse{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := uow.Users().Update(ctx, &user); err != nil {
		slog.Warn("last login stamp failed", "username", username, "err", err)
	} else if _, err := uow.Complete(ctx); err != nil {
		slog.Warn("last login commit failed", "username", username, "err", err)
	}

	token, expiresAt, err := GenerateToken(s.cfg, Claims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return LoginResponse{}, err
	}

	slog.Info("user logged in", "username", user.Username, "role", user.Role)
	return LoginResponse{
		Token:     token,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// Register creates a user with role User. Uniqueness is checked up front
// and backstopped by the store constraints; a race between the check and
// the insert surfaces as a unique violation on commit.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	taken, err := uow.Users().Exists(ctx, storage.EqFold("username", username))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateUsername
	}

	taken, err = uow.Users().Exists(ctx, storage.EqFold("email", email))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := model.User{
		Base: model.Base{
			CreatedAt: time.Now().UTC(),
			CreatedBy: "System",
			IsActive:  true,
		},
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err := uow.Users().Add(ctx, &user); err != nil {
		return err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return err
	}

	slog.Info("user registered", "username", username)
	return nil
}
