package repository

import (
	"edu_record_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MarkRepository struct {
	DB *gorm.DB
}

func NewMarkRepository(db *gorm.DB) *MarkRepository {
	return &MarkRepository{DB: db}
}

// UpsertBatch 整批写入包在一个事务里，任何一条失败全部回滚。
// (student_id, batch_id, exam_name) 冲突时覆盖分数与录入人。
func (r *MarkRepository) UpsertBatch(records []model.MarkRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "student_id"},
					{Name: "batch_id"},
					{Name: "exam_name"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"subject", "score", "max_score", "semester", "exam_date", "recorded_by", "updated_at",
				}),
			}).Create(&records[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MarkRepository) FindByBatchAndExam(batchID uint, examName string) ([]model.MarkRecord, error) {
	var records []model.MarkRecord
	query := r.DB.Where("batch_id = ?", batchID)
	if examName != "" {
		query = query.Where("exam_name = ?", examName)
	}
	err := query.Order("exam_name ASC, student_id ASC").Find(&records).Error
	return records, err
}

func (r *MarkRepository) FindByStudent(studentID uint, semester string) ([]model.MarkRecord, error) {
	var records []model.MarkRecord
	query := r.DB.Where("student_id = ?", studentID)
	if semester != "" {
		query = query.Where("semester = ?", semester)
	}
	err := query.Order("exam_date DESC").Find(&records).Error
	return records, err
}
