package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// AuthService implements signup, login, sessions and user CRUD.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	activity   ports.ActivityRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	activity ports.ActivityRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	bcryptCost int,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		activity:   activity,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Avatar:       input.Avatar,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.audit(ctx, user.Name, "user.created", "user", user.ID, "")
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

// Login checks email, then password, then the claimed role, in that order.
// A matching password with a mismatched role fails with ErrRoleMismatch, not
// ErrInvalidCredentials, so the caller can show the specific message.
func (s *AuthService) Login(ctx context.Context, email, password, claimedRole string) (string, *domain.Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.Role != claimedRole {
		return "", nil, domain.ErrRoleMismatch
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		User:      user.Public(),
		Timestamp: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user, session.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login")
	return token, session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AuthService) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *AuthService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.Update(ctx, id, ports.UserPatch{
		Name:   input.Name,
		Email:  input.Email,
		Avatar: input.Avatar,
		Role:   input.Role,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	s.audit(ctx, "", "user.updated", "user", id, "")
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	// no cascade: the user's jobs keep their assignedTo reference
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, "", "user.deleted", "user", id, "")
	return nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, sessionID, userID string, input ports.ProfileInput) (*domain.User, error) {
	patch := ports.UserPatch{}
	if input.Name != "" {
		patch.Name = &input.Name
	}
	if input.Email != "" {
		patch.Email = &input.Email
	}
	if input.Avatar != "" {
		patch.Avatar = &input.Avatar
	}

	if input.NewPassword != "" {
		current, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(input.CurrentPassword)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	user, err := s.users.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	// keep the session record in sync so /auth/me reflects the edit
	if session, err := s.sessions.Get(ctx, sessionID); err == nil && session != nil {
		session.User = user.Public()
		if err := s.sessions.Save(ctx, session); err != nil {
			s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to refresh session")
		}
	}

	s.audit(ctx, user.Name, "user.profile_updated", "user", userID, "")
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid":    sessionID,
		"sub":    user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"role":   user.Role,
		"avatar": user.Avatar,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) audit(ctx context.Context, actor, action, entityType, entityID, detail string) {
	recordActivity(ctx, s.activity, s.logger, actor, action, entityType, entityID, detail)
}
