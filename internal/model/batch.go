package model

// Batch 班级：一届/一班的学生分组，考勤与成绩均按班级录入
// swagger:model Batch
type Batch struct {
	BaseModel
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Course  string `gorm:"size:100" json:"course"`
	Year    int    `gorm:"not null" json:"year"`
	Section string `gorm:"size:20" json:"section"`
}

func (Batch) TableName() string {
	return "batches"
}

// TeacherBatchAssignment 教师-班级多对多关联，教师只能为已分配的班级写入考勤/成绩
// 仅由管理员创建和删除
type TeacherBatchAssignment struct {
	BaseModel
	TeacherID uint `gorm:"not null;uniqueIndex:idx_teacher_batch" json:"teacherId"`
	BatchID   uint `gorm:"not null;uniqueIndex:idx_teacher_batch" json:"batchId"`
}

func (TeacherBatchAssignment) TableName() string {
	return "teacher_batch_assignments"
}
