package repository

import (
	"edu_record_backend/internal/model"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeacherXPRepository struct {
	DB *gorm.DB
}

func NewTeacherXPRepository(db *gorm.DB) *TeacherXPRepository {
	return &TeacherXPRepository{DB: db}
}

func (r *TeacherXPRepository) FindByTeacherID(teacherID uint) (*model.TeacherXP, error) {
	var record model.TeacherXP
	err := r.DB.Where("teacher_id = ?", teacherID).First(&record).Error
	return &record, err
}

// FindOrCreateLocked 在事务内按行锁读取教师XP记录，不存在则初始化 (0, 1, 250)。
// 并发奖励对同一教师串行化，避免读-改-写丢失更新。
func (r *TeacherXPRepository) FindOrCreateLocked(tx *gorm.DB, teacherID uint) (*model.TeacherXP, error) {
	var record model.TeacherXP
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("teacher_id = ?", teacherID).
		First(&record).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = model.TeacherXP{
			TeacherID:    teacherID,
			XP:           0,
			Level:        1,
			NextXPTarget: 250,
		}
		if err := tx.Create(&record).Error; err != nil {
			return nil, err
		}
		return &record, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *TeacherXPRepository) Save(tx *gorm.DB, record *model.TeacherXP) error {
	return tx.Save(record).Error
}

func (r *TeacherXPRepository) TopByXP(limit int) ([]model.TeacherXP, error) {
	var records []model.TeacherXP
	err := r.DB.Order("level DESC, xp DESC").Limit(limit).Find(&records).Error
	return records, err
}
