package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"varmepumpe/internal/auth"
	apperrors "varmepumpe/internal/errors"
	"varmepumpe/internal/metrics"
	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/validation"
)

// RegisterInput is the public registration form. Installer fields are only
// read when Role is installer.
type RegisterInput struct {
	Username string     `json:"username" validate:"required,min=3"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6,max=72"`
	Role     model.Role `json:"role" validate:"omitempty,oneof=customer installer"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	CompanyName  string `json:"companyName"`
	OrgNumber    string `json:"orgNumber"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	County       string `json:"county"`
	Municipality string `json:"municipality"`
	Website      string `json:"website"`
}

type installerRegistration struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	OrgNumber   string `json:"orgNumber" validate:"required,orgnr"`
	Phone       string `json:"phone" validate:"required,min=8"`
}

// LoginResult is a started session.
type LoginResult struct {
	User  *model.User
	Token string
}

// ResetTokenSender delivers password reset tokens to users.
type ResetTokenSender interface {
	SendResetToken(ctx context.Context, user *model.User, token string) error
}

// AuthOptions tunes account behaviour.
type AuthOptions struct {
	AutoApproveInstallers bool
	ResetTokenTTL         time.Duration
}

// AuthService handles accounts, sessions and passwords.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	StartSession(ctx context.Context, user *model.User) (string, error)
	Logout(ctx context.Context, sessionID string) error
	RefreshSession(ctx context.Context, sessionID string, userID uint) error
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	AdminSetPassword(ctx context.Context, userID uint, newPassword string) error
	CreateAdmin(ctx context.Context, username, email, password string) (*model.User, error)
}

type authService struct {
	store        repository.Store
	hasher       *auth.Hasher
	sessions     *auth.SessionService
	sessionStore auth.SessionStore
	sender       ResetTokenSender
	opts         AuthOptions
	metrics      *metrics.Collector
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	store repository.Store,
	hasher *auth.Hasher,
	sessions *auth.SessionService,
	sessionStore auth.SessionStore,
	sender ResetTokenSender,
	opts AuthOptions,
	collector *metrics.Collector,
	logger *slog.Logger,
) AuthService {
	if opts.ResetTokenTTL <= 0 {
		opts.ResetTokenTTL = time.Hour
	}
	return &authService{
		store:        store,
		hasher:       hasher,
		sessions:     sessions,
		sessionStore: sessionStore,
		sender:       sender,
		opts:         opts,
		metrics:      collector,
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates a customer or installer account. For installers the user
// and installer rows are written in one transaction.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Role == "" {
		input.Role = model.RoleCustomer
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}
	if input.Role == model.RoleInstaller {
		if err := validation.Struct(installerRegistration{
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			CompanyName: input.CompanyName,
			OrgNumber:   input.OrgNumber,
			Phone:       input.Phone,
		}); err != nil {
			return nil, err
		}
	}

	if err := s.checkUserUnique(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}
	if input.Role == model.RoleInstaller {
		if err := checkInstallerUnique(ctx, s.store.Installers(), input.CompanyName, input.OrgNumber, 0); err != nil {
			return nil, err
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
	}
	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if user.Role != model.RoleInstaller {
			return nil
		}
		installer := &model.Installer{
			UserID:        user.ID,
			CompanyName:   input.CompanyName,
			OrgNumber:     input.OrgNumber,
			ContactPerson: input.FirstName + " " + input.LastName,
			Email:         input.Email,
			Phone:         input.Phone,
			Address:       input.Address,
			PostalCode:    input.PostalCode,
			City:          input.City,
			County:        input.County,
			Municipality:  input.Municipality,
			Website:       input.Website,
			Approved:      s.opts.AutoApproveInstallers,
			Active:        true,
		}
		if err := tx.Installers().Create(ctx, installer); err != nil {
			return fmt.Errorf("create installer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

// CreateAdmin creates an administrator account. It is not reachable from public registration.
func (s *authService) CreateAdmin(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := validation.Struct(struct {
		Username string `json:"username" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6,max=72"`
	}{username, email, password}); err != nil {
		return nil, err
	}
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	if err := s.checkUserUnique(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	s.logger.Info("admin created", "user_id", user.ID, "username", username)
	return user, nil
}

// Login checks credentials and starts a session. Unknown users and wrong
// passwords produce the same error.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		s.logger.Warn("login failed", "username", username, "reason", "unknown user")
		s.metrics.Login("invalid")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !s.hasher.Check(password, user.PasswordHash) {
		s.logger.Warn("login failed", "username", username, "reason", "wrong password")
		s.metrics.Login("invalid")
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role == model.RoleInstaller {
		installer, err := s.store.Installers().FindByUserID(ctx, user.ID)
		if err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("find installer: %w", err)
		}
		if installer != nil && !installer.Active {
			s.logger.Warn("login refused", "username", username, "reason", "deactivated")
			s.metrics.Login("deactivated")
			return nil, apperrors.ErrAccountDeactivated
		}
	}

	token, err := s.StartSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.metrics.Login("success")
	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return &LoginResult{User: user, Token: token}, nil
}

// StartSession stores a server-side session for user and returns the signed cookie value.
func (s *authService) StartSession(ctx context.Context, user *model.User) (string, error) {
	sessionID, token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	session := auth.Session{UserID: user.ID, Role: user.Role}
	if err := s.sessionStore.Save(ctx, sessionID, session, s.sessions.TTL()); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Logout destroys the server-side session. An empty id is a no-op.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionStore.Delete(ctx, sessionID)
}

// RefreshSession rewrites a session from the current user row, so a role
// change applies without logging in again. An empty id is a no-op.
func (s *authService) RefreshSession(ctx context.Context, sessionID string, userID uint) error {
	if sessionID == "" {
		return nil
	}
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	session := auth.Session{UserID: user.ID, Role: user.Role}
	if err := s.sessionStore.Save(ctx, sessionID, session, s.sessions.TTL()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// CurrentUser loads the user behind a session.
func (s *authService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset stores a one-hour reset token for the account with
// email and hands it to the sender. Unknown addresses succeed silently.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := validation.Struct(struct {
		Email string `json:"email" validate:"required,email"`
	}{email}); err != nil {
		return err
	}

	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			s.logger.Info("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}
	expiry := s.now().Add(s.opts.ResetTokenTTL)
	if err := s.store.Users().UpdateFields(ctx, user.ID, map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := s.sender.SendResetToken(ctx, user, token); err != nil {
		s.logger.Error("send reset token", "user_id", user.ID, "error", err)
	}
	return nil
}

// ResetPassword sets a new password for the holder of a valid reset token.
// The token and its expiry are cleared in the same update.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apperrors.ErrInvalidResetToken
	}
	if err := checkPassword(newPassword); err != nil {
		return err
	}

	user, err := s.store.Users().FindByResetToken(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrInvalidResetToken
		}
		return fmt.Errorf("find reset token: %w", err)
	}
	if user.ResetTokenExpiry == nil || !user.ResetTokenExpiry.After(s.now()) {
		return apperrors.ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.Users().UpdateFields(ctx, user.ID, map[string]interface{}{
		"password_hash":      hash,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	s.logger.Info("password reset", "user_id", user.ID)
	return nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *authService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if err := checkPassword(newPassword); err != nil {
		return err
	}
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return notFound(err, "user")
	}
	if !s.hasher.Check(currentPassword, user.PasswordHash) {
		return apperrors.ErrWrongPassword
	}
	return s.setPassword(ctx, user.ID, newPassword)
}

// AdminSetPassword replaces any user's password.
func (s *authService) AdminSetPassword(ctx context.Context, userID uint, newPassword string) error {
	if err := checkPassword(newPassword); err != nil {
		return err
	}
	if _, err := s.store.Users().FindByID(ctx, userID); err != nil {
		return notFound(err, "user")
	}
	return s.setPassword(ctx, userID, newPassword)
}

func (s *authService) setPassword(ctx context.Context, userID uint, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	if err := s.store.Users().UpdateFields(ctx, userID, map[string]interface{}{"password_hash": hash}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *authService) checkUserUnique(ctx context.Context, username, email string) error {
	if _, err := s.store.Users().FindByUsername(ctx, username); err == nil {
		return apperrors.Conflict("username", "username is already taken")
	} else if !isNotFound(err) {
		return fmt.Errorf("check username: %w", err)
	}
	if _, err := s.store.Users().FindByEmail(ctx, email); err == nil {
		return apperrors.Conflict("email", "email is already registered")
	} else if !isNotFound(err) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}

// checkInstallerUnique rejects a company name or org number used by another
// installer than selfID.
func checkInstallerUnique(ctx context.Context, installers repository.InstallerRepository, companyName, orgNumber string, selfID uint) error {
	if existing, err := installers.FindByCompanyName(ctx, companyName); err == nil && existing.ID != selfID {
		return apperrors.Conflict("companyName", "company name is already registered")
	} else if err != nil && !isNotFound(err) {
		return fmt.Errorf("check company name: %w", err)
	}
	if existing, err := installers.FindByOrgNumber(ctx, orgNumber); err == nil && existing.ID != selfID {
		return apperrors.Conflict("orgNumber", "org number "+orgNumber+" is already registered")
	} else if err != nil && !isNotFound(err) {
		return fmt.Errorf("check org number: %w", err)
	}
	return nil
}

func checkPassword(password string) error {
	if len(password) < validation.MinPasswordLength {
		return apperrors.Invalid("password", fmt.Sprintf("must be at least %d characters", validation.MinPasswordLength))
	}
	if len(password) > validation.MaxPasswordLength {
		return apperrors.Invalid("password", fmt.Sprintf("must be at most %d bytes", validation.MaxPasswordLength))
	}
	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// LogResetSender writes reset tokens to the log instead of e-mailing them.
type LogResetSender struct {
	logger *slog.Logger
}

// NewLogResetSender creates a sender that logs tokens.
func NewLogResetSender(logger *slog.Logger) *LogResetSender {
	return &LogResetSender{logger: logger}
}

// SendResetToken logs the token for the user.
func (s *LogResetSender) SendResetToken(_ context.Context, user *model.User, token string) error {
	s.logger.Info("password reset token issued", "user_id", user.ID, "email", user.Email, "token", token)
	return nil
}
