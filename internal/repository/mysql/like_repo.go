package mysql

import (
	"context"
	"time"

	"social_network/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	DB *gorm.DB
}

// Like 条件插入：唯一键 (post_id, user_id) 冲突时不报错也不写入。
// 返回本次是否真的新增，靠存储层约束挡掉并发重复。
func (r *LikeRepository) Like(ctx context.Context, userID, postID uint64) (bool, error) {
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.Like{UserID: userID, PostID: postID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Unlike 未删除任何行 -> 本来就没点过，幂等
func (r *LikeRepository) Unlike(ctx context.Context, userID, postID uint64) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountBetween 半开区间 [from, to)，避免边界重复计数
func (r *LikeRepository) CountBetween(ctx context.Context, userID uint64, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Count(&count).Error
	return count, err
}
