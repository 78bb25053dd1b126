package service

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/util"
)

// BatchWriteGuard 考勤/成绩写入的授权判定：管理员放行，
// 教师只能以本人身份为已分配的班级写入，其他角色一律拒绝
type BatchWriteGuard struct {
	BatchRepo *repository.BatchRepository
}

func NewBatchWriteGuard(batchRepo *repository.BatchRepository) *BatchWriteGuard {
	return &BatchWriteGuard{BatchRepo: batchRepo}
}

// Authorize actingTeacherID 为路径参数中声明的教师ID，0 表示未声明（默认本人）
func (g *BatchWriteGuard) Authorize(claims *util.Claims, batchID uint, actingTeacherID uint) error {
	if claims == nil {
		return util.ErrPermissionDenied
	}
	if claims.Role == model.Admin {
		return nil
	}
	if claims.Role != model.Teacher {
		return util.ErrPermissionDenied
	}
	// 教师不能冒用其他教师的身份
	if actingTeacherID != 0 && actingTeacherID != claims.UserID {
		return util.ErrPermissionDenied
	}
	assigned, err := g.BatchRepo.IsTeacherAssigned(claims.UserID, batchID)
	if err != nil {
		return err
	}
	if !assigned {
		return util.ErrPermissionDenied
	}
	return nil
}

// canWriteBatch 纯判定部分，便于单测
func canWriteBatch(role model.UserRole, userID, actingTeacherID uint, assigned bool) bool {
	if role == model.Admin {
		return true
	}
	if role != model.Teacher {
		return false
	}
	if actingTeacherID != 0 && actingTeacherID != userID {
		return false
	}
	return assigned
}
