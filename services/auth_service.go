package services

import (
	"errors"
	"fmt"
	"time"

	"gin-todo/models"
	"gin-todo/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// トークンの有効期間は7日間固定
const tokenValidity = 7 * 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
)

type IAuthService interface {
	Register(firstName string, lastName string, email string, password string) (*models.User, string, error)
	Login(email string, password string) (*models.User, string, error)
	CreateToken(userID string, email string) (string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IUserRepository
	secret     []byte
}

// NewAuthService 署名鍵は起動時に設定から注入する（グローバル参照しない）
func NewAuthService(repository repositories.IUserRepository, secret []byte) IAuthService {
	return &AuthService{
		repository: repository,
		secret:     secret,
	}
}

func (s *AuthService) Register(firstName string, lastName string, email string, password string) (*models.User, string, error) {
	// 事前チェックと一意制約の両方で重複メールを検出する
	if _, err := s.repository.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repository.CreateUser(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(email string, password string) (*models.User, string, error) {
	foundUser, err := s.repository.FindByEmail(email)
	if err != nil {
		// 存在しないメールとパスワード不一致は同じエラーにする
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.CreateToken(foundUser.ID, foundUser.Email)
	if err != nil {
		return nil, "", err
	}
	return foundUser, token, nil
}

func (s *AuthService) CreateToken(userID string, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(tokenValidity).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, err
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := s.repository.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
