package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/MaxFerr/hair-cut-api/internal/repo"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the user repository the auth and reset services
// need. *repo.UserRepo satisfies it.
type UserStore interface {
	CreateWithCredential(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error)
	GetCredentialByResetToken(ctx context.Context, token string) (*models.Credential, error)
	SetResetToken(ctx context.Context, email, token string, expires time.Time) error
	UpdatePasswordByResetToken(ctx context.Context, token, passwordHash string) (string, error)
}

// AdminChecker is the capability check for privileged mutations. The identity
// is the shared admin identifier carried in the request.
type AdminChecker interface {
	IsAdmin(id string) bool
}

type AuthService struct {
	users   UserStore
	adminID string
}

func NewAuthService(users UserStore, adminID string) *AuthService {
	return &AuthService{users: users, adminID: adminID}
}

func (s *AuthService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if utils.AnyInvalidField(email, name, password) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeValidation, utils.MsgIncorrectForm, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.CodeInternal, "could not secure password", nil)
	}

	user, err := s.users.CreateWithCredential(ctx, email, name, string(hash))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Email or username already used.", nil)
		}
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Email or username already used.", nil)
	}
	return user, nil
}

// Login deliberately answers every failure mode with the same message, so the
// response does not reveal whether the email exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if utils.AnyInvalidField(email, password) {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.CodeValidation, utils.MsgIncorrectForm, nil)
	}

	badCredentials := utils.NewAppError(http.StatusBadRequest, utils.CodeNotAllowed, "Wrong password or email.", nil)

	cred, err := s.users.GetCredentialByEmail(ctx, email)
	if err != nil {
		return nil, badCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, badCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, cred.Email)
	if err != nil {
		return nil, badCredentials
	}
	return user, nil
}

// IsAdmin compares the request-supplied identifier against the configured
// admin identifier. Any holder of that value is fully privileged.
func (s *AuthService) IsAdmin(id string) bool {
	return id != "" && id == s.adminID
}
