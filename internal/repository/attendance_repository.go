package repository

import (
	"edu_record_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// BulkUpsert 单条多行语句写入，(student_id, date) 冲突时覆盖状态与录入人。
// 原子性由数据库的单语句保证，不做应用层加锁。
func (r *AttendanceRepository) BulkUpsert(records []model.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "recorded_by", "batch_id", "updated_at"}),
	}).Create(&records).Error
}

func (r *AttendanceRepository) FindByBatchAndDate(batchID uint, date time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.DB.
		Where("batch_id = ? AND date = ?", batchID, date.Format("2006-01-02")).
		Order("student_id ASC").
		Find(&records).
		Error
	return records, err
}

func (r *AttendanceRepository) FindByStudent(studentID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	query := r.DB.Where("student_id = ?", studentID)
	if !from.IsZero() {
		query = query.Where("date >= ?", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		query = query.Where("date <= ?", to.Format("2006-01-02"))
	}
	err := query.Order("date DESC").Find(&records).Error
	return records, err
}

// CountPresentByStudent 出勤统计（学生端概览用）
func (r *AttendanceRepository) CountPresentByStudent(studentID uint) (present int64, total int64, err error) {
	err = r.DB.Model(&model.AttendanceRecord{}).
		Where("student_id = ?", studentID).
		Count(&total).
		Error
	if err != nil {
		return 0, 0, err
	}
	err = r.DB.Model(&model.AttendanceRecord{}).
		Where("student_id = ? AND status = ?", studentID, model.Present).
		Count(&present).
		Error
	return present, total, err
}
