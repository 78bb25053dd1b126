package model

import "time"

// MarkRecord 成绩记录，(student_id, batch_id, exam_name) 唯一：
// 同一学生同一场考试只保留一条，重复写入覆盖分数与录入人
// swagger:model MarkRecord
type MarkRecord struct {
	BaseModel
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_mark_student_exam" json:"studentId"`
	BatchID    uint      `gorm:"not null;uniqueIndex:idx_mark_student_exam" json:"batchId"`
	ExamName   string    `gorm:"size:100;not null;uniqueIndex:idx_mark_student_exam" json:"examName"`
	Subject    string    `gorm:"size:100;not null" json:"subject"`
	Score      float64   `gorm:"not null" json:"score"`
	MaxScore   float64   `gorm:"not null" json:"maxScore"`
	Semester   string    `gorm:"size:20" json:"semester"`
	ExamDate   time.Time `gorm:"type:date" json:"examDate"`
	RecordedBy uint      `gorm:"not null" json:"recordedBy"`
}

func (MarkRecord) TableName() string {
	return "mark_records"
}
