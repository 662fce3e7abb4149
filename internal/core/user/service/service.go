package userapp

import (
	"context"
	"errors"
	"time"

	"snapline/internal/core/session"
	userEntity "snapline/internal/core/user"
	userPort "snapline/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type UserService struct {
	Accounts userPort.AccountRepository
	Users    userPort.UserRepository
	Logger   *zap.Logger
	jwtKey   []byte
}

func NewUserService(accounts userPort.AccountRepository, users userPort.UserRepository, logger *zap.Logger, jwtKey []byte) *UserService {
	return &UserService{
		Accounts: accounts,
		Users:    users,
		Logger:   logger,
		jwtKey:   jwtKey,
	}
}

// Register creates the profile document and the credential row for a new user.
func (s *UserService) Register(ctx context.Context, username, password, bio, url string) (*userPort.UserDTO, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}

	existing, err := s.Accounts.FindByUsername(username)
	if err == nil && existing != nil {
		return nil, errors.New("username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &userEntity.User{
		Username: username,
		Bio:      bio,
		URL:      url,
	}
	saved, err := s.Users.Save(ctx, profile)
	if err != nil {
		return nil, err
	}

	account := &userEntity.Account{
		ID:             uuid.Must(uuid.NewV4()),
		Username:       username,
		Password:       string(hashedPassword),
		UserIdentifier: saved.Identifier,
	}
	if _, err := s.Accounts.Create(account); err != nil {
		return nil, err
	}

	dto := userPort.NewUserDTO(*saved)
	return &dto, nil
}

// Login verifies the password and issues a signed session token.
func (s *UserService) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	account, err := s.Accounts.FindByUsername(username)
	if err != nil {
		s.Logger.Info("login: unknown username", zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		s.Logger.Info("login: invalid password", zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.generateJWT(account, expiresAt)
	if err != nil {
		s.Logger.Error("login: could not generate token", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *UserService) generateJWT(account *userEntity.Account, expiresAt time.Time) (string, error) {
	claims := &session.Claims{
		Username: account.Username,
		StandardClaims: jwt.StandardClaims{
			Subject:   account.UserIdentifier,
			Issuer:    "snapline",
			ExpiresAt: expiresAt.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

func (s *UserService) ByIdentifier(ctx context.Context, id string) (*userPort.UserDTO, error) {
	u, err := s.Users.ByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := userPort.NewUserDTO(*u)
	return &dto, nil
}

func (s *UserService) ByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.Users.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	dto := userPort.NewUserDTO(*u)
	return &dto, nil
}
