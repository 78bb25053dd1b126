package service

import (
	"edu_record_backend/internal/model"
	"testing"
)

func TestCanWriteBatch(t *testing.T) {
	tests := []struct {
		name            string
		role            model.UserRole
		userID          uint
		actingTeacherID uint
		assigned        bool
		want            bool
	}{
		{"管理员无需分配", model.Admin, 1, 0, false, true},
		{"管理员可代任何教师", model.Admin, 1, 99, false, true},
		{"已分配教师本人", model.Teacher, 5, 0, true, true},
		{"已分配教师显式声明本人", model.Teacher, 5, 5, true, true},
		{"未分配教师", model.Teacher, 5, 0, false, false},
		{"教师冒用他人身份", model.Teacher, 5, 6, true, false},
		{"学生一律拒绝", model.RoleStudent, 5, 0, true, false},
		{"未知角色拒绝", model.UserRole("guest"), 5, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canWriteBatch(tt.role, tt.userID, tt.actingTeacherID, tt.assigned)
			if got != tt.want {
				t.Errorf("canWriteBatch(%q, %d, %d, %v) = %v, want %v",
					tt.role, tt.userID, tt.actingTeacherID, tt.assigned, got, tt.want)
			}
		})
	}
}
