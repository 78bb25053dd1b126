package model

// Notification 通知：按角色或按班级投递，BatchID 为 0 时按角色投递
// swagger:model Notification
type Notification struct {
	UUIDBase
	Title     string   `gorm:"size:200;not null" json:"title"`
	Body      string   `gorm:"type:text" json:"body"`
	Audience  UserRole `gorm:"type:enum('student','teacher','admin')" json:"audience"`
	BatchID   uint     `gorm:"default:0;index" json:"batchId"`
	CreatedBy uint     `gorm:"not null" json:"createdBy"`
}

func (Notification) TableName() string {
	return "notifications"
}
