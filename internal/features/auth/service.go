package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/tasklists/internal/pkg/token"
	"github.com/xyz-asif/tasklists/internal/pkg/validator"
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"
)

// Store is the persistence the auth service needs. Find methods return
// (nil, nil) when nothing matches.
type Store interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByToken(ctx context.Context, token string) (*User, error)
}

// Hasher turns passwords into one-way digests and checks them
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// BcryptHasher is the production Hasher. Passwords are reduced with
// SHA-256 before bcrypt, which only reads the first 72 bytes of its input.
type BcryptHasher struct {
	Cost int
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword(prehash(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), prehash(password)) == nil
}

type Service struct {
	store  Store
	hasher Hasher
	issue  func() (string, error)
}

func NewService(store Store, hasher Hasher) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		issue:  token.Issue,
	}
}

// Register validates the request, stores a new user and returns its token
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := ValidateRegister(&req); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRequestInvalid, "Failed to process password", err)
	}

	accessToken, err := s.issue()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRequestInvalid, "Failed to issue access token", err)
	}

	user := &User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    digest,
		AccessToken: accessToken,
	}

	if err := s.store.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateUsername):
			return nil, apperrors.Wrap(apperrors.ErrConflict, "Username is already taken", err)
		case errors.Is(err, ErrDuplicateEmail):
			return nil, apperrors.Wrap(apperrors.ErrConflict, "Email is already registered", err)
		}
		return nil, apperrors.Wrap(apperrors.ErrRequestInvalid, "Invalid request", err)
	}

	return newAuthResponse(user), nil
}

// Login checks the password and hands back the user's existing token
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := ValidateLogin(&req); err != nil {
		return nil, err
	}

	user, err := s.store.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRequestInvalid, "Invalid request", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, apperrors.New(apperrors.ErrUnauthenticated, "Invalid username or password")
	}

	return newAuthResponse(user), nil
}

// Authenticate resolves a presented access token to its user
func (s *Service) Authenticate(ctx context.Context, presented string) (*User, error) {
	if presented == "" {
		return nil, apperrors.New(apperrors.ErrUnauthenticated, "Not authenticated")
	}

	user, err := s.store.FindByToken(ctx, presented)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRequestInvalid, "Invalid request", err)
	}
	if user == nil || !token.Equal(user.AccessToken, presented) {
		return nil, apperrors.New(apperrors.ErrUnauthenticated, "Not authenticated")
	}

	return user, nil
}

// FindByUsername looks up another user, e.g. to share a list with them
func (s *Service) FindByUsername(ctx context.Context, username string) (*User, error) {
	user, err := s.store.FindByUsername(ctx, validator.NormalizeUsername(username))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRequestInvalid, "Invalid request", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
	}
	return user, nil
}

// FindByID resolves a user id, e.g. a list collaborator
func (s *Service) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRequestInvalid, "Invalid request", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
	}
	return user, nil
}
