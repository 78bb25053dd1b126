package model

import "time"

type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
)

// AttendanceRecord 考勤记录，(student_id, date) 唯一：同一学生同一天只保留一条，
// 重复写入覆盖状态与录入人
// swagger:model AttendanceRecord
type AttendanceRecord struct {
	BaseModel
	StudentID  uint             `gorm:"not null;uniqueIndex:idx_attendance_student_date" json:"studentId"`
	Date       time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_student_date" json:"date"`
	BatchID    uint             `gorm:"not null;index" json:"batchId"`
	Status     AttendanceStatus `gorm:"type:enum('Present','Absent');not null" json:"status"`
	RecordedBy uint             `gorm:"not null" json:"recordedBy"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
