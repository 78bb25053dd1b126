package model

// TeacherXP 教师经验/等级，每位教师一条。等级上限 10，
// 升级阈值每级 +150，达到上限后冻结。仅由 XPService 修改。
// swagger:model TeacherXP
type TeacherXP struct {
	BaseModel
	TeacherID    uint `gorm:"not null;uniqueIndex" json:"teacherId"`
	XP           int  `gorm:"default:0" json:"xp"`
	Level        int  `gorm:"default:1" json:"level"`
	NextXPTarget int  `gorm:"default:250" json:"nextXpTarget"`
}

func (TeacherXP) TableName() string {
	return "teacher_xp"
}
