package mysql

import (
	"time"

	"social_network/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdateLastLogin(id uint64, t time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login", t).Error
}

// TouchLastRequest 盲写活跃时间，不读旧值
func (r *UserRepository) TouchLastRequest(id uint64, t time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("last_request_time", t).Error
}

// Delete 注销用户：点赞级联删除，帖子保留但 owner 置空
func (r *UserRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Post{}).
			Where("owner_id = ?", id).
			Update("owner_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}
