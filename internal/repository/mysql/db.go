package mysql

import (
	driver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB 打开连接；TranslateError 让唯一键冲突变成 gorm.ErrDuplicatedKey
func InitDB(dsn string) error {
	db, err := gorm.Open(driver.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}
	DB = db
	return nil
}
