package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lifetree-app/lifetree-backend/internal/domain"
	"github.com/lifetree-app/lifetree-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	sessions   repository.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessions repository.SessionStore,
	jwtSecret string,
	sessionTTLDay int,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: time.Duration(sessionTTLDay) * 24 * time.Hour,
	}
}

// Claims are the JWT claims carried by a session token.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// RegisterRequest carries sign-up credentials plus the optional profile
// metadata collected during onboarding.
type RegisterRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8,max=72"`
	FullName   string  `json:"full_name" binding:"required,min=2,max=100"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Profession *string `json:"profession" binding:"omitempty,oneof=engineer doctor teacher artist athlete scientist writer musician chef other"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
	IsNewUser bool         `json:"is_new_user"`
}

// Register creates a new user and opens a session for it.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	}

	if req.BirthDate != nil {
		birthDate, err := domain.ParseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = &birthDate
	}
	if req.Profession != nil {
		profession := domain.Profession(*req.Profession)
		if !profession.IsValid() {
			return nil, domain.ErrInvalidProfession
		}
		user.Profession = &profession
	}
	// Onboarding is complete once all three theme-driving fields are present.
	user.IsOnboardingComplete = user.BirthDate != nil && user.Profession != nil

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.createSession(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		IsNewUser: true,
	}, nil
}

// Login verifies credentials and opens a session.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.createSession(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// VerifyToken verifies a JWT and its live session, returning the user ID.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	// The session must still exist in the store; logout revokes it before
	// the JWT itself expires.
	userID, err := uc.sessions.GetUserID(ctx, hashToken(tokenString))
	if err != nil {
		return 0, domain.ErrSessionNotFound
	}
	if userID != claims.UserID {
		return 0, domain.ErrInvalidToken
	}

	return claims.UserID, nil
}

// Logout revokes the session behind the token.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	return uc.sessions.Delete(ctx, hashToken(tokenString))
}

// Me returns the authenticated user's record.
func (uc *AuthUseCase) Me(ctx context.Context, userID int) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *AuthUseCase) createSession(ctx context.Context, userID int) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.sessionTTL)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	if err := uc.sessions.Save(ctx, hashToken(tokenString), userID, uc.sessionTTL); err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// hashToken creates a SHA-256 hash of the token for storage
func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}
