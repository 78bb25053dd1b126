package repository

import (
	"edu_record_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BatchRepository struct {
	DB *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{DB: db}
}

func (r *BatchRepository) Create(batch *model.Batch) error {
	return r.DB.Create(batch).Error
}

func (r *BatchRepository) FindByID(id uint) (*model.Batch, error) {
	var batch model.Batch
	err := r.DB.First(&batch, id).Error
	return &batch, err
}

func (r *BatchRepository) FindAll() ([]model.Batch, error) {
	var batches []model.Batch
	err := r.DB.Order("year DESC, name ASC").Find(&batches).Error
	return batches, err
}

func (r *BatchRepository) Update(batch *model.Batch) error {
	return r.DB.Save(batch).Error
}

func (r *BatchRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Batch{}, id).Error
}

// AssignTeacher 幂等：重复分配同一教师到同一班级不报错
func (r *BatchRepository) AssignTeacher(teacherID, batchID uint) error {
	assignment := model.TeacherBatchAssignment{
		TeacherID: teacherID,
		BatchID:   batchID,
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error
}

func (r *BatchRepository) UnassignTeacher(teacherID, batchID uint) error {
	return r.DB.
		Where("teacher_id = ? AND batch_id = ?", teacherID, batchID).
		Delete(&model.TeacherBatchAssignment{}).
		Error
}

// IsTeacherAssigned 教师是否被分配到该班级，考勤/成绩写入的授权依据
func (r *BatchRepository) IsTeacherAssigned(teacherID, batchID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.TeacherBatchAssignment{}).
		Where("teacher_id = ? AND batch_id = ?", teacherID, batchID).
		Count(&count).
		Error
	return count > 0, err
}

func (r *BatchRepository) FindBatchesByTeacher(teacherID uint) ([]model.Batch, error) {
	var batches []model.Batch
	err := r.DB.
		Joins("JOIN teacher_batch_assignments tba ON tba.batch_id = batches.id AND tba.deleted_at IS NULL").
		Where("tba.teacher_id = ?", teacherID).
		Order("batches.year DESC, batches.name ASC").
		Find(&batches).
		Error
	return batches, err
}

func (r *BatchRepository) FindTeacherIDsByBatch(batchID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.TeacherBatchAssignment{}).
		Where("batch_id = ?", batchID).
		Pluck("teacher_id", &ids).
		Error
	return ids, err
}
