// Package profile implements the account use cases: register, login, read
// profile and update profile. It is the only layer that sees both plaintext
// and ciphertext; callers only ever get plaintext, the store only ever gets
// ciphertext.
package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/auth"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/logging"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/models"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/store"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type FieldCipher interface {
	EncryptField(plaintext string) (string, error)
	DecryptField(stored string) (string, error)
}

type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
	Verify(token string) (auth.Identity, bool)
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
	Location string
	Gender   string
}

// UpdateInput carries the new plaintext values. Empty fields are stored as
// empty; an empty Gender keeps the current one.
type UpdateInput struct {
	Email    string
	Phone    string
	Location string
	Bio      string
	Post     string
	Gender   string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

type Service struct {
	store  store.Store
	hasher PasswordHasher
	cipher FieldCipher
	tokens TokenIssuer
	log    logging.Logger
	now    func() time.Time
}

func NewService(s store.Store, h PasswordHasher, c FieldCipher, t TokenIssuer, log logging.Logger) *Service {
	return &Service{store: s, hasher: h, cipher: c, tokens: t, log: log.With("component", "profile"), now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return apperr.ErrMissingCredentials
	}
	gender, ok := models.ParseGender(in.Gender)
	if !ok {
		return apperr.ErrInvalidGender
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindValidation {
			return err
		}
		s.log.Error(ctx, "hash password", "error", err)
		return apperr.Internal("registration failed", err)
	}

	user := &models.User{Username: username, Password: hash, Gender: gender}
	fields := []struct {
		dst   *string
		value string
	}{
		{&user.Email, in.Email},
		{&user.Phone, in.Phone},
		{&user.Location, in.Location},
	}
	for _, f := range fields {
		if *f.dst, err = s.cipher.EncryptField(f.value); err != nil {
			s.log.Error(ctx, "encrypt field on register", "error", err)
			return apperr.Internal("registration failed", err)
		}
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			s.log.Info(ctx, "registration rejected: username taken")
			return apperr.ErrRegistrationFailed
		}
		s.log.Error(ctx, "create user", "error", err)
		return apperr.ErrRegistrationStorage(err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return nil
}

// Login returns the same error for an unknown username and a wrong password.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		s.log.Error(ctx, "lookup user on login", "error", err)
		return nil, apperr.Storage(err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	issuedAt := s.now()
	token, err := s.tokens.Issue(auth.Identity{ID: user.ID, Username: user.Username})
	if err != nil {
		s.log.Error(ctx, "issue token", "error", err)
		return nil, apperr.Internal("login failed", err)
	}

	return &LoginResult{Token: token, ExpiresAt: issuedAt.Add(auth.TokenTTL)}, nil
}

func (s *Service) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	user, err := s.authorize(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.decrypt(ctx, user)
}

// UpdateProfile writes the fields for the token's owner. The username is
// taken from the token only, so a profile can never be renamed or another
// user's record targeted.
func (s *Service) UpdateProfile(ctx context.Context, token string, in UpdateInput) (*models.Profile, error) {
	user, err := s.authorize(ctx, token)
	if err != nil {
		return nil, err
	}

	gender := user.Gender
	if strings.TrimSpace(in.Gender) != "" {
		g, ok := models.ParseGender(in.Gender)
		if !ok {
			return nil, apperr.ErrInvalidGender
		}
		gender = g
	}

	fields := models.ProfileFields{Gender: gender}
	plain := []struct {
		dst   *string
		value string
	}{
		{&fields.Email, in.Email},
		{&fields.Phone, in.Phone},
		{&fields.Location, in.Location},
		{&fields.Bio, in.Bio},
		{&fields.Post, in.Post},
	}
	for _, p := range plain {
		if *p.dst, err = s.cipher.EncryptField(p.value); err != nil {
			s.log.Error(ctx, "encrypt field on update", "error", err)
			return nil, apperr.Internal("Something went wrong", err)
		}
	}

	updated, err := s.store.UpdateUserProfile(ctx, user.Username, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrInvalidToken
		}
		s.log.Error(ctx, "update user", "error", err)
		return nil, apperr.ErrProfileStorage(err)
	}

	s.log.Info(ctx, "profile updated", "user_id", updated.ID)
	return &models.Profile{
		Username: updated.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		Location: in.Location,
		Bio:      in.Bio,
		Post:     in.Post,
		Gender:   updated.Gender,
	}, nil
}

// authorize resolves a token to its stored user. Every failure, including a
// user deleted after the token was issued, is ErrInvalidToken.
func (s *Service) authorize(ctx context.Context, token string) (*models.User, error) {
	id, ok := s.tokens.Verify(token)
	if !ok {
		return nil, apperr.ErrInvalidToken
	}

	user, err := s.store.GetUserByUsername(ctx, id.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrInvalidToken
		}
		s.log.Error(ctx, "lookup user for token", "error", err)
		return nil, apperr.Storage(err)
	}
	return user, nil
}

func (s *Service) decrypt(ctx context.Context, user *models.User) (*models.Profile, error) {
	p := &models.Profile{Username: user.Username, Gender: user.Gender}
	fields := []struct {
		dst    *string
		stored string
	}{
		{&p.Email, user.Email},
		{&p.Phone, user.Phone},
		{&p.Location, user.Location},
		{&p.Bio, user.Bio},
		{&p.Post, user.Post},
	}
	for _, f := range fields {
		v, err := s.cipher.DecryptField(f.stored)
		if err != nil {
			s.log.Error(ctx, "decrypt stored field", "user_id", user.ID, "error", err)
			return nil, err
		}
		*f.dst = v
	}
	return p, nil
}
