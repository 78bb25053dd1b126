package service

import (
	"context"
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/util"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRequest struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Description string `json:"description" form:"description"`
	Subject     string `json:"subject" form:"subject"`
	DueDate     string `json:"due_date" form:"due_date" binding:"required"`
}

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	BatchRepo      *repository.BatchRepository
	Guard          *BatchWriteGuard
	Storage        *StorageService
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	batchRepo *repository.BatchRepository,
	guard *BatchWriteGuard,
	storage *StorageService,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		BatchRepo:      batchRepo,
		Guard:          guard,
		Storage:        storage,
	}
}

// CreateAssignment 教师为已分配的班级发布作业，附件可选
func (s *AssignmentService) CreateAssignment(
	ctx context.Context,
	claims *util.Claims,
	batchID uint,
	req AssignmentRequest,
	file *multipart.FileHeader,
) (*model.Assignment, error) {
	if err := s.Guard.Authorize(claims, batchID, 0); err != nil {
		return nil, err
	}

	dueDate, err := util.ParseDateFlexible(req.DueDate)
	if err != nil {
		return nil, util.NewValidationError("due_date", "invalid date, expected YYYY-MM-DD or DD-MM-YYYY")
	}

	if _, err := s.BatchRepo.FindByID(batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewValidationError("batch_id", "batch not found")
		}
		return nil, err
	}

	assignment := &model.Assignment{
		BatchID:     batchID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     dueDate,
		CreatedBy:   claims.UserID,
	}

	if file != nil {
		url, err := s.uploadAttachment(ctx, file)
		if err != nil {
			return nil, err
		}
		assignment.FileURL = url
	}

	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) uploadAttachment(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	objectName := fmt.Sprintf("assignments/%s/%s%s",
		time.Now().Format("2006-01"), uuid.New().String(), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.Storage.Upload(ctx, objectName, src, file.Size, contentType)
}

func (s *AssignmentService) GetBatchAssignments(claims *util.Claims, batchID uint) ([]model.Assignment, error) {
	// 学生也可以查看本班作业，这里只校验教师身份的分配关系
	if claims.Role == model.Teacher {
		if err := s.Guard.Authorize(claims, batchID, 0); err != nil {
			return nil, err
		}
	}
	return s.AssignmentRepo.FindByBatch(batchID)
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, claims *util.Claims, id uint) error {
	assignment, err := s.AssignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRecordNotFound
		}
		return err
	}

	// 仅发布者本人或管理员可删除
	if claims.Role != model.Admin && assignment.CreatedBy != claims.UserID {
		return util.ErrPermissionDenied
	}

	return s.AssignmentRepo.Delete(id)
}
