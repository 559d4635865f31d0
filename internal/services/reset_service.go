package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/mail"
	"github.com/MaxFerr/hair-cut-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Reset-flow response literals the frontend matches on.
const (
	MsgResetSent    = "data sent."
	MsgWrongEmail   = "Wrong email !"
	MsgTokenExpired = "Password reset token has expired."
	MsgTokenInvalid = "Password reset token is invalid"
)

const resetTokenBytes = 20

type ResetService struct {
	users   UserStore
	mailer  mail.Sender
	log     *slog.Logger
	baseURL string
	ttl     time.Duration
}

func NewResetService(users UserStore, mailer mail.Sender, log *slog.Logger, baseURL string, ttl time.Duration) *ResetService {
	return &ResetService{users: users, mailer: mailer, log: log, baseURL: baseURL, ttl: ttl}
}

// Forgot issues a fresh token for a known email and mails the reset link.
// The token is committed before the mail goes out; a delivery failure is
// logged and never rolls the token back. An unknown email gets a distinct
// reply, which does reveal account existence (kept as-is, see DESIGN.md).
func (s *ResetService) Forgot(ctx context.Context, email string) (string, error) {
	if utils.InvalidField(email) {
		return "", utils.NewAppError(http.StatusBadRequest, utils.CodeValidation, utils.MsgIncorrectInfo, nil)
	}

	exists, err := s.users.UserExistsByEmail(ctx, email)
	if err != nil {
		return "", utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to process that request.", nil)
	}
	if !exists {
		return MsgWrongEmail, nil
	}

	token, err := generateResetToken()
	if err != nil {
		return "", utils.NewAppError(http.StatusInternalServerError, utils.CodeInternal, "could not generate token", nil)
	}

	expires := time.Now().Add(s.ttl)
	if err := s.users.SetResetToken(ctx, email, token, expires); err != nil {
		return "", utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to process that request.", nil)
	}

	if err := s.mailer.Send(mail.Message{
		To:      email,
		Subject: "Password reset",
		Body:    s.resetMailBody(token),
	}); err != nil {
		s.log.Error("reset email not delivered", "email", email, "error", err)
	}

	return MsgResetSent, nil
}

type ResetLookup struct {
	// Email is set only for a live token; otherwise Message explains why.
	Email   string
	Message string
}

// Lookup resolves a token to its email if the token exists and has not
// expired. Expired tokens stay in place (inert, not purged).
func (s *ResetService) Lookup(ctx context.Context, token string) (*ResetLookup, error) {
	cred, err := s.users.GetCredentialByResetToken(ctx, token)
	if err != nil {
		return &ResetLookup{Message: MsgTokenInvalid}, nil
	}
	if cred.ResetExpires == nil || !cred.ResetExpires.After(time.Now()) {
		return &ResetLookup{Message: MsgTokenExpired}, nil
	}
	return &ResetLookup{Email: cred.Email}, nil
}

// UpdatePassword consumes the token: one update sets the new hash and nulls
// both reset fields. Expiry is not re-checked here, matching the legacy flow;
// only the lookup step enforces it.
func (s *ResetService) UpdatePassword(ctx context.Context, token, password string) (string, error) {
	if utils.InvalidField(password) {
		return "", utils.NewAppError(http.StatusBadRequest, utils.CodeValidation, utils.MsgIncorrectInfo, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", utils.NewAppError(http.StatusInternalServerError, utils.CodeInternal, "could not secure password", nil)
	}

	email, err := s.users.UpdatePasswordByResetToken(ctx, token, string(hash))
	if err != nil {
		return "", utils.NewAppError(http.StatusBadRequest, utils.CodeStore, "Unable to reset your password.", nil)
	}
	return email, nil
}

func (s *ResetService) resetMailBody(token string) string {
	return fmt.Sprintf("You are receiving this because you (or someone else) have requested the reset of the password for your account.\n\n"+
		"Please click on the following link, or paste this into your browser to complete the process:\n\n"+
		"%s/ResetPassword/%s\n\n"+
		"If you did not request this, please ignore this email and your password will remain unchanged.\n",
		s.baseURL, token)
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
