package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Rithanya77-05/ecofinds/models"
	"github.com/Rithanya77-05/ecofinds/store"
)

var (
	// ErrDuplicateEmail means another account already uses the email.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidCredentials means no stored user matches both fields.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned by UpdateProfile for unknown ids.
	ErrUserNotFound = errors.New("user not found")
)

// Every fresh signup gets the same placeholder avatar, replaceable from
// the dashboard later.
const defaultProfileImage = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	Username     string
	Email        string
	ProfileImage string
}

// Service owns the users bucket and the session record. Credentials are
// stored and compared in plaintext; the session record never carries the
// password.
type Service struct {
	buckets *store.Buckets
	log     *slog.Logger
}

func New(buckets *store.Buckets, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{buckets: buckets, log: log}
}

func (s *Service) users(ctx context.Context) []models.User {
	var users []models.User
	s.buckets.Load(ctx, store.BucketUsers, &users)
	return users
}

// SignUp creates an account and establishes it as the current session.
func (s *Service) SignUp(ctx context.Context, email, username, password string) (models.User, error) {
	users := s.users(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Password:     password,
		ProfileImage: defaultProfileImage,
	}
	if err := s.buckets.Save(ctx, store.BucketUsers, append(users, user)); err != nil {
		return models.User{}, err
	}
	if err := s.setSession(ctx, user); err != nil {
		return models.User{}, err
	}
	s.log.Info("account created", "user_id", user.ID)
	return user.WithoutPassword(), nil
}

// LogIn matches email and password exactly against the users bucket and
// establishes the session on success.
func (s *Service) LogIn(ctx context.Context, email, password string) (models.User, error) {
	for _, u := range s.users(ctx) {
		if u.Email == email && u.Password == password {
			if err := s.setSession(ctx, u); err != nil {
				return models.User{}, err
			}
			return u.WithoutPassword(), nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// LogOut clears the session record.
func (s *Service) LogOut(ctx context.Context) error {
	return s.buckets.Clear(ctx, store.BucketSession)
}

// Current returns the session user, if any.
func (s *Service) Current(ctx context.Context) (models.User, bool) {
	var user models.User
	s.buckets.Load(ctx, store.BucketSession, &user)
	return user, user.ID != ""
}

// UpdateProfile overwrites the mutable fields on the stored user and,
// when the user is the session user, on the session record too.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.User, error) {
	users := s.users(ctx)
	for i, u := range users {
		if u.ID != userID {
			continue
		}
		u.Username = update.Username
		u.Email = update.Email
		u.ProfileImage = update.ProfileImage
		users[i] = u
		if err := s.buckets.Save(ctx, store.BucketUsers, users); err != nil {
			return models.User{}, err
		}
		if current, ok := s.Current(ctx); ok && current.ID == userID {
			if err := s.setSession(ctx, u); err != nil {
				return models.User{}, err
			}
		}
		return u.WithoutPassword(), nil
	}
	return models.User{}, ErrUserNotFound
}

func (s *Service) setSession(ctx context.Context, u models.User) error {
	return s.buckets.Save(ctx, store.BucketSession, u.WithoutPassword())
}
