package repository

import (
	"edu_record_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.First(&student, id).Error
	return &student, err
}

func (r *StudentRepository) FindByUserID(userID uint) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("user_id = ?", userID).First(&student).Error
	return &student, err
}

func (r *StudentRepository) Update(student *model.Student) error {
	return r.DB.Save(student).Error
}

func (r *StudentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Student{}, id).Error
}

func (r *StudentRepository) FindByBatch(batchID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Where("batch_id = ?", batchID).Order("roll_no ASC").Find(&students).Error
	return students, err
}

// FindIDsByBatch 返回班级内全部学生ID，供批量写入前做归属校验
func (r *StudentRepository) FindIDsByBatch(batchID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Student{}).
		Where("batch_id = ?", batchID).
		Pluck("id", &ids).
		Error
	return ids, err
}
