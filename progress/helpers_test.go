package progress

import "gorm.io/gorm"

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}
