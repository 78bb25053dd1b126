package model

// swagger:model Student
type Student struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	RollNo  string `gorm:"size:50;not null;uniqueIndex:idx_student_batch_roll" json:"rollNo"`
	BatchID uint   `gorm:"not null;uniqueIndex:idx_student_batch_roll;index" json:"batchId"`
	UserID  uint   `gorm:"default:0" json:"userId"` // 关联登录账号，0 表示尚未开通
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
}

func (Student) TableName() string {
	return "students"
}
