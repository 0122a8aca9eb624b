package service

import (
	"errors"

	"Blogicum/internal/model"
	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/mysql"
	"Blogicum/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

type UserService interface {
	Register(username, email, password string) error
	Login(username, password string) (*pkg.Pair, error)
	Logout(userID uint64) error
	Refresh(refreshToken string) (*pkg.Pair, error)
	Profile(userID uint64) (*model.User, error)
	UpdateProfile(userID uint64, in *ProfileInput) (*model.User, error)
}

type userService struct {
	repo     *mysql.UserRepository
	rSession *redis.SessionRepository
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{
		repo:     &mysql.UserRepository{DB: db},
		rSession: &redis.SessionRepository{},
	}
}

func (s *userService) Register(username, email, password string) error {
	// 唯一性预检，给出可读错误；并发兜底仍靠唯一索引
	if _, err := s.repo.FindByUsername(username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.repo.FindByEmail(email); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	return s.repo.Create(user)
}

func (s *userService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, orNotFound(err, ErrUserNotFound)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}
	// 将token写入redis，单点登录
	token, err := pkg.GeneratePair(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	if err = s.rSession.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *userService) Logout(userID uint64) error {
	return s.rSession.DeleteUserToken(userID)
}

func (s *userService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

func (s *userService) Profile(userID uint64) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, orNotFound(err, ErrUserNotFound)
	}
	return user, nil
}

// UpdateProfile 只能改自己的资料字段
func (s *userService) UpdateProfile(userID uint64, in *ProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, orNotFound(err, ErrUserNotFound)
	}

	user.Username = in.Username
	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	if err := s.repo.UpdateProfile(user); err != nil {
		return nil, err
	}
	return user, nil
}
