package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"local-guide/models"
	"local-guide/repositories"
)

const tokenLifetime = time.Hour

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingSecret      = errors.New("SECRET_KEY is not configured")
	ErrInvalidToken       = errors.New("token is invalid or expired")
)

type IAuthService interface {
	Register(name string, email string, password string) error
	Login(email string, password string) (*string, error)
	ParseToken(tokenString string) (*models.AuthUser, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
}

func NewAuthService(repository repositories.IAuthRepository) IAuthService {
	return &AuthService{repository: repository}
}

func (s *AuthService) Register(name string, email string, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.repository.CreateUser(user); err != nil {
		if repositories.IsDuplicateKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Login verifies the credentials and issues a signed session token. An
// unknown email and a wrong password both yield ErrInvalidCredentials so
// the response never reveals which one failed.
func (s *AuthService) Login(email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return CreateToken(foundUser.ID, foundUser.Name, foundUser.Email)
}

func CreateToken(userID string, name string, email string) (*string, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, ErrMissingSecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"name":  name,
		"email": email,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

// ParseToken verifies the signature and expiry and returns the identity
// embedded in the claims. It never touches the database.
func (s *AuthService) ParseToken(tokenString string) (*models.AuthUser, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	if id == "" {
		return nil, ErrInvalidToken
	}

	return &models.AuthUser{ID: id, Name: name, Email: email}, nil
}
