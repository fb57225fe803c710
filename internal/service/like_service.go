package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// LikeRepo 点赞存储接口，mysql.LikeRepository 实现
type LikeRepo interface {
	Like(ctx context.Context, userID, postID uint64) (bool, error)
	Unlike(ctx context.Context, userID, postID uint64) (bool, error)
	CountBetween(ctx context.Context, userID uint64, from, to time.Time) (int64, error)
}

type LikeService struct {
	likes LikeRepo
	posts PostRepo
}

func NewLikeService(likes LikeRepo, posts PostRepo) *LikeService {
	return &LikeService{likes: likes, posts: posts}
}

// Like 帖子必须存在；changed=false 表示早就点过，幂等
func (s *LikeService) Like(ctx context.Context, userID, postID uint64) (bool, error) {
	if err := s.ensurePost(postID); err != nil {
		return false, err
	}
	return s.likes.Like(ctx, userID, postID)
}

// Unlike changed=false 表示本来就没点过
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint64) (bool, error) {
	if err := s.ensurePost(postID); err != nil {
		return false, err
	}
	return s.likes.Unlike(ctx, userID, postID)
}

func (s *LikeService) ensurePost(postID uint64) error {
	_, err := s.posts.FindByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	return err
}
