package mysql

import (
	"social_network/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

func (r *PostRepository) ListByOwner(ownerID uint64) ([]model.Post, error) {
	list := make([]model.Post, 0)
	err := r.DB.Where("owner_id = ?", ownerID).Order("id").Find(&list).Error
	return list, err
}

// UpdateFields 只接收白名单字段，由 service 层组装
func (r *PostRepository) UpdateFields(id uint64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.DB.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 连同帖子下的点赞一起删
func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
