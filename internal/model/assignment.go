package model

import "time"

// Assignment 作业/任务，教师面向班级发布，可附带附件
// swagger:model Assignment
type Assignment struct {
	BaseModel
	BatchID     uint      `gorm:"not null;index" json:"batchId"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Subject     string    `gorm:"size:100" json:"subject"`
	DueDate     time.Time `gorm:"type:date" json:"dueDate"`
	FileURL     string    `gorm:"size:255" json:"fileUrl"`
	CreatedBy   uint      `gorm:"not null" json:"createdBy"`
}

func (Assignment) TableName() string {
	return "assignments"
}
