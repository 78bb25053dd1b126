package service

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type NotificationRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience"`
	BatchID  uint   `json:"batch_id"`
}

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
	StudentRepo      *repository.StudentRepository
	BatchRepo        *repository.BatchRepository
	Guard            *BatchWriteGuard
}

func NewNotificationService(
	notificationRepo *repository.NotificationRepository,
	studentRepo *repository.StudentRepository,
	batchRepo *repository.BatchRepository,
	guard *BatchWriteGuard,
) *NotificationService {
	return &NotificationService{
		NotificationRepo: notificationRepo,
		StudentRepo:      studentRepo,
		BatchRepo:        batchRepo,
		Guard:            guard,
	}
}

// Publish 管理员可按角色或班级投递；教师只能向已分配的班级投递
func (s *NotificationService) Publish(claims *util.Claims, req NotificationRequest) (*model.Notification, error) {
	if req.Audience == "" && req.BatchID == 0 {
		return nil, util.NewValidationError("audience", "either audience or batch_id is required")
	}

	audience := model.UserRole(req.Audience)
	if req.Audience != "" {
		switch audience {
		case model.RoleStudent, model.Teacher, model.Admin:
		default:
			return nil, util.NewValidationError("audience", "audience must be student, teacher or admin")
		}
		// 按角色广播只有管理员能发
		if req.BatchID == 0 && claims.Role != model.Admin {
			return nil, util.ErrPermissionDenied
		}
	}

	if req.BatchID != 0 {
		if err := s.Guard.Authorize(claims, req.BatchID, 0); err != nil {
			return nil, err
		}
		if _, err := s.BatchRepo.FindByID(req.BatchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.NewValidationError("batch_id", "batch not found")
			}
			return nil, err
		}
	}

	n := &model.Notification{
		Title:     req.Title,
		Body:      req.Body,
		Audience:  audience,
		BatchID:   req.BatchID,
		CreatedBy: claims.UserID,
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		return nil, err
	}
	return n, nil
}

// GetMyNotifications 按当前用户角色（学生还叠加所在班级）取最近通知
func (s *NotificationService) GetMyNotifications(claims *util.Claims, limit int) ([]model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	if claims.Role == model.Admin {
		return s.NotificationRepo.FindAll(limit)
	}

	var batchID uint
	if claims.Role == model.RoleStudent {
		student, err := s.StudentRepo.FindByUserID(claims.UserID)
		if err == nil {
			batchID = student.BatchID
		}
	}

	return s.NotificationRepo.FindForAudience(claims.Role, batchID, limit)
}

func (s *NotificationService) Delete(claims *util.Claims, id string) error {
	n, err := s.NotificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRecordNotFound
		}
		return err
	}

	if claims.Role != model.Admin && n.CreatedBy != claims.UserID {
		return util.ErrPermissionDenied
	}

	return s.NotificationRepo.Delete(id)
}
