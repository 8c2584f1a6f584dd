package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/clientdesk/internal/domain/user"
	"github.com/linskybing/clientdesk/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPasswordHashFailure = errors.New("failed to hash password")

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uint, username string) (string, error)
}

type UserService struct {
	Repos  *repository.Repos
	tokens TokenIssuer
}

func NewUserService(repos *repository.Repos, tokens TokenIssuer) *UserService {
	return &UserService{
		Repos:  repos,
		tokens: tokens,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	username := strings.TrimSpace(input.Username)
	_, err := s.Repos.User.GetUserByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Username: username,
		Password: string(hashed),
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		// A concurrent registration can win the unique index after the lookup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	return usr, nil
}

// ObtainToken checks the credentials and issues a token bound to the user.
func (s *UserService) ObtainToken(username, password string) (string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(usr.ID, usr.Username)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}
