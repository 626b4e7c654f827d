package services

import (
	"errors"
	"time"

	"storefront/entity"
	"storefront/repository"
	"storefront/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterIn struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthOut struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Register(in *RegisterIn) (*AuthOut, error) {
	if _, err := s.Repo.FindByEmail(in.Email); err == nil {
		return nil, errors.New("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Role:      "customer",
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *AuthService) Login(in *LoginIn) (*AuthOut, error) {
	u, err := s.Repo.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return nil, errors.New("invalid credentials")
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthOut, error) {
	token, err := utils.GenerateToken(u.ID, u.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{Token: token, User: u}, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.Repo.FindByID(userID)
}

type UpdateMeIn struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func (s *AuthService) UpdateMe(userID uint, in *UpdateMeIn) (*entity.User, error) {
	u, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
