package service

import (
	"errors"

	"social_network/internal/model"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("not the post owner")
)

// PostRepo 帖子存储接口，mysql.PostRepository 实现
type PostRepo interface {
	Create(post *model.Post) error
	FindByID(id uint64) (*model.Post, error)
	ListByOwner(ownerID uint64) ([]model.Post, error)
	UpdateFields(id uint64, fields map[string]any) error
	Delete(id uint64) error
}

type PostService struct {
	posts PostRepo
	users UserRepo
}

func NewPostService(posts PostRepo, users UserRepo) *PostService {
	return &PostService{posts: posts, users: users}
}

func (s *PostService) Create(ownerID uint64, title, body string) (*model.Post, error) {
	post := &model.Post{
		Title:   title,
		Body:    body,
		OwnerID: &ownerID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(id uint64) (*model.Post, error) {
	post, err := s.posts.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListByUsername 先按用户名找人，再取该用户的全部帖子
func (s *PostService) ListByUsername(username string) ([]model.Post, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.posts.ListByOwner(user.ID)
}

// Update 只有当前 owner 能改；owner 已注销的帖子谁也改不了
func (s *PostService) Update(usrID, postID uint64, fields map[string]any) error {
	post, err := s.posts.FindByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if post.OwnerID == nil || *post.OwnerID != usrID {
		return ErrNotOwner
	}
	return s.posts.UpdateFields(postID, fields)
}

func (s *PostService) Delete(usrID, postID uint64) error {
	post, err := s.posts.FindByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if post.OwnerID == nil || *post.OwnerID != usrID {
		return ErrNotOwner
	}
	return s.posts.Delete(postID)
}
