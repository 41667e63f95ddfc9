package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spis_backend/internals/configs"
	adminModel "spis_backend/internals/features/academics/advisers/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidGoogleToken = errors.New("google id token verification failed")
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// TokenPair carries the freshly issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// LoginGoogle verifies the Google ID token against our client ID, then finds
// or creates the matching admin account by email. First-time sign-ins get an
// account with no role; an admin must assign one before the protected routes
// accept the user.
func (s *AuthService) LoginGoogle(idToken string) (*adminModel.AdminModel, *TokenPair, error) {
	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, nil, ErrInvalidGoogleToken
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || claims.Email == "" {
		return nil, nil, ErrInvalidGoogleToken
	}

	email := strings.ToLower(claims.Email)

	var admin adminModel.AdminModel
	err = s.DB.Where("LOWER(email) = ?", email).First(&admin).Error
	switch {
	case err == nil:
		// existing account
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = adminModel.AdminModel{
			FirstName: claims.GivenName,
			LastName:  claims.FamilyName,
			Email:     &email,
		}
		if claims.Picture != "" {
			picture := claims.Picture
			admin.ImagePath = &picture
		}
		if admin.FirstName == "" {
			admin.FirstName = email
		}
		if err := s.DB.Create(&admin).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create admin account: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("admin lookup failed: %w", err)
	}

	tokens, err := s.issueTokens(&admin)
	if err != nil {
		return nil, nil, err
	}
	return &admin, tokens, nil
}

// Login authenticates an email+password admin account.
func (s *AuthService) Login(email, password string) (*adminModel.AdminModel, *TokenPair, error) {
	var admin adminModel.AdminModel
	err := s.DB.Where("LOWER(email) = ?", strings.ToLower(email)).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("admin lookup failed: %w", err)
	}
	if admin.Password == nil {
		// google-only account
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*admin.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(&admin)
	if err != nil {
		return nil, nil, err
	}
	return &admin, tokens, nil
}

// Register creates an email+password admin account. The account starts with
// no role; an existing admin has to promote it before protected routes accept
// the login.
func (s *AuthService) Register(firstName, lastName, email, password string) (*adminModel.AdminModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing adminModel.AdminModel
	err := s.DB.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("admin lookup failed: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	admin := adminModel.AdminModel{
		FirstName: firstName,
		LastName:  lastName,
		Email:     &email,
		Password:  &hashedStr,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin account: %w", err)
	}
	return &admin, nil
}

// Refresh validates a refresh token and issues a new pair.
func (s *AuthService) Refresh(refreshToken string) (*adminModel.AdminModel, *TokenPair, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	adminID, ok := claims["admin_id"].(float64)
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}

	var admin adminModel.AdminModel
	if err := s.DB.First(&admin, "admin_id = ?", int(adminID)).Error; err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(&admin)
	if err != nil {
		return nil, nil, err
	}
	return &admin, tokens, nil
}

func (s *AuthService) issueTokens(admin *adminModel.AdminModel) (*TokenPair, error) {
	now := time.Now()

	role := ""
	if admin.Role != nil {
		role = *admin.Role
	}

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.AdminID,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTokenTTL).Unix(),
	})
	accessStr, err := access.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.AdminID,
		"iat":      now.Unix(),
		"exp":      now.Add(refreshTokenTTL).Unix(),
	})
	refreshStr, err := refresh.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessStr, RefreshToken: refreshStr}, nil
}
