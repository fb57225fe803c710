package service

import (
	"errors"
	"time"

	"social_network/internal/model"
	"social_network/internal/pkg"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserRepo 用户存储接口，mysql.UserRepository 实现
type UserRepo interface {
	Create(user *model.User) error
	FindByID(id uint64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	UpdateLastLogin(id uint64, t time.Time) error
	TouchLastRequest(id uint64, t time.Time) error
	Delete(id uint64) error
}

// TokenStore 会话 token 的写入与删除，redis.SessionRepository 实现
type TokenStore interface {
	AddUserToken(usrID uint64, token string) error
	DeleteUserToken(usrID uint64) error
}

type UserService struct {
	repo   UserRepo
	tokens TokenStore
}

func NewUserService(repo UserRepo, tokens TokenStore) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// SignUp 用户名冲突靠唯一索引兜底
func (s *UserService) SignUp(username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:        username,
		Password:        string(hash),
		LastRequestTime: time.Now(),
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login 校验通过后记录 last_login，并把 access token 写入 redis
func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		return nil, err
	}

	token, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) error {
	return s.tokens.DeleteUserToken(usrID)
}

// Refresh 换发新的一对 token，并把新 access 写进 redis，
// 否则单会话校验还认旧 token，新 token 形同作废
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// Activity 查询用户的登录/活跃时间
func (s *UserService) Activity(id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount 注销当前用户并踢掉会话；级联语义在仓储事务里
func (s *UserService) DeleteAccount(usrID uint64) error {
	if err := s.repo.Delete(usrID); err != nil {
		return err
	}
	return s.tokens.DeleteUserToken(usrID)
}
