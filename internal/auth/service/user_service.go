package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	autherror "github.com/farberstyle-netizen/holistic-dog-site/internal/errors"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/dto"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/mailer"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

type UserService struct {
	repo        domain.UserRepository
	resetTokens domain.ResetTokenRepository
	sessions    SessionManager
	mail        mailer.Sender
	siteBaseURL string
	logger      zerolog.Logger
}

func NewUserService(
	repo domain.UserRepository,
	resetTokens domain.ResetTokenRepository,
	sessions SessionManager,
	mail mailer.Sender,
	siteBaseURL string,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		resetTokens: resetTokens,
		sessions:    sessions,
		mail:        mail,
		siteBaseURL: siteBaseURL,
		logger:      logger,
	}
}

// AuthResult pairs a persisted user with a freshly issued session token.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*AuthResult, error) {
	email := NormalizeEmail(input.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || !VerifyPassword(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	// Migrate pre-PBKDF2 credentials the first time they verify. Losing the
	// write only means the next login migrates instead.
	if IsLegacyCredential(user.PasswordHash) {
		if newHash, hashErr := HashPassword(input.Password); hashErr == nil {
			if updErr := s.repo.UpdatePasswordHash(ctx, user.ID, newHash); updErr != nil {
				s.logger.Warn().Err(updErr).Str("user_id", user.ID).Msg("failed to rehash legacy credential")
			}
		}
	}

	token, expiresAt, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the presented session. Revocation failures are logged but not
// surfaced: the caller clears the cookie either way.
func (s *UserService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete session on logout")
	}
}

// RequestPasswordReset creates a short-lived single-use token and emails a
// reset link. A nonexistent email is indistinguishable from a real one to the
// caller: no token row, no email, same nil result.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := randomToken(constant.ResetTokenBytes)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.resetTokens.Create(ctx, &domain.ResetToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(constant.ResetTokenTTL),
		CreatedAt: now,
	}); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.siteBaseURL, token)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset the password for your account.</p>
		<p>If you made this request, click the link below to create a new password:</p>
		<p><a href="%s">%s</a></p>
		<p>This link expires in 1 hour. If you did not request a reset, you can
		safely ignore this email.</p>
		<p>Holistic Therapy Dog Association</p>
	`, user.FirstName, resetLink, resetLink)

	if err := s.mail.SendHTML([]string{user.Email}, "Password Reset Request", body); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to send reset email")
		return err
	}

	return nil
}

// ResetPassword spends a reset token, rehashes the credential, and revokes
// every session the user holds. The token spend is a conditional update so two
// concurrent calls with the same token cannot both succeed.
func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	reset, err := s.resetTokens.GetValid(ctx, input.Token)
	if err != nil {
		return err
	}
	if reset == nil {
		return autherror.ErrResetTokenInvalid
	}

	spent, err := s.resetTokens.Consume(ctx, input.Token)
	if err != nil {
		return err
	}
	if !spent {
		return autherror.ErrResetTokenInvalid
	}

	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, reset.UserID, hash); err != nil {
		return err
	}

	if err := s.sessions.RevokeAll(ctx, reset.UserID); err != nil {
		s.logger.Error().Err(err).Str("user_id", reset.UserID).Msg("failed to revoke sessions after reset")
	}

	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if !VerifyPassword(input.CurrentPassword, user.PasswordHash) {
		return autherror.ErrWrongCurrentPassword
	}

	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePasswordHash(ctx, userID, hash)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input dto.ProfileUpdateInput) error {
	return s.repo.UpdateProfile(ctx, userID, domain.ProfileUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Zip:       input.Zip,
	})
}

func (s *UserService) UpdateBilling(ctx context.Context, userID string, input dto.BillingUpdateInput) error {
	return s.repo.UpdateBilling(ctx, userID, domain.BillingUpdate{
		BillingName:    input.BillingName,
		BillingAddress: input.BillingAddress,
		BillingCity:    input.BillingCity,
		BillingState:   input.BillingState,
		BillingZip:     input.BillingZip,
	})
}

func (s *UserService) ListAddresses(ctx context.Context, userID string) ([]domain.SavedAddress, error) {
	return s.repo.ListAddresses(ctx, userID)
}

func (s *UserService) CreateAddress(ctx context.Context, userID string, input dto.SavedAddressInput) (int64, error) {
	return s.repo.CreateAddress(ctx, &domain.SavedAddress{
		UserID:  userID,
		Label:   input.Label,
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Zip:     input.Zip,
	})
}

func (s *UserService) UpdateAddress(ctx context.Context, userID string, input dto.SavedAddressInput) error {
	ok, err := s.repo.UpdateAddress(ctx, userID, &domain.SavedAddress{
		ID:      input.ID,
		Label:   input.Label,
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Zip:     input.Zip,
	})
	if err != nil {
		return err
	}
	if !ok {
		return autherror.ErrAddressNotFound
	}
	return nil
}

func (s *UserService) DeleteAddress(ctx context.Context, userID string, id int64) error {
	ok, err := s.repo.DeleteAddress(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return autherror.ErrAddressNotFound
	}
	return nil
}

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
