package service

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/util"
	"edu_record_backend/pkg/logger"
	"edu_record_backend/pkg/monitoring"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MarkRecordInput struct {
	StudentID uint    `json:"student_id" binding:"required"`
	Marks     float64 `json:"marks"`
}

type EnterMarksRequest struct {
	ExamName string            `json:"exam_name" binding:"required"`
	Subject  string            `json:"subject" binding:"required"`
	Semester string            `json:"semester"`
	MaxMarks float64           `json:"max_marks" binding:"required"`
	ExamDate string            `json:"exam_date" binding:"required"`
	Records  []MarkRecordInput `json:"records"`
}

type MarkService struct {
	MarkRepo    *repository.MarkRepository
	StudentRepo *repository.StudentRepository
	BatchRepo   *repository.BatchRepository
	Guard       *BatchWriteGuard
	XP          *XPService
}

func NewMarkService(
	markRepo *repository.MarkRepository,
	studentRepo *repository.StudentRepository,
	batchRepo *repository.BatchRepository,
	guard *BatchWriteGuard,
	xp *XPService,
) *MarkService {
	return &MarkService{
		MarkRepo:    markRepo,
		StudentRepo: studentRepo,
		BatchRepo:   batchRepo,
		Guard:       guard,
		XP:          xp,
	}
}

// buildMarkRecords 校验并构造成绩记录，任何一条不合法则整批拒绝
func buildMarkRecords(
	batchID uint,
	req EnterMarksRequest,
	examDate time.Time,
	recordedBy uint,
	enrolled map[uint]bool,
) ([]model.MarkRecord, *util.ValidationError) {
	if len(req.Records) == 0 {
		return nil, util.NewValidationError("records", "at least one record is required")
	}

	fields := make(map[string]string)
	if req.MaxMarks <= 0 {
		fields["max_marks"] = "max_marks must be positive"
	}

	records := make([]model.MarkRecord, 0, len(req.Records))
	for i, input := range req.Records {
		if input.StudentID == 0 {
			fields[fmt.Sprintf("records[%d].student_id", i)] = "student_id is required"
			continue
		}
		if !enrolled[input.StudentID] {
			fields[fmt.Sprintf("records[%d].student_id", i)] = fmt.Sprintf("student %d does not belong to batch %d", input.StudentID, batchID)
			continue
		}
		if input.Marks < 0 || (req.MaxMarks > 0 && input.Marks > req.MaxMarks) {
			fields[fmt.Sprintf("records[%d].marks", i)] = fmt.Sprintf("marks must be between 0 and %g", req.MaxMarks)
			continue
		}
		records = append(records, model.MarkRecord{
			StudentID:  input.StudentID,
			BatchID:    batchID,
			ExamName:   req.ExamName,
			Subject:    req.Subject,
			Score:      input.Marks,
			MaxScore:   req.MaxMarks,
			Semester:   req.Semester,
			ExamDate:   examDate,
			RecordedBy: recordedBy,
		})
	}

	if len(fields) > 0 {
		return nil, &util.ValidationError{Fields: fields}
	}
	return records, nil
}

// EnterMarks 授权 -> 校验 -> 事务内整批覆盖写入 -> 提交后钩子（XP奖励）
func (s *MarkService) EnterMarks(claims *util.Claims, batchID uint, req EnterMarksRequest) (int, error) {
	if err := s.Guard.Authorize(claims, batchID, 0); err != nil {
		return 0, err
	}

	// 兼容 YYYY-MM-DD 与 DD-MM-YYYY 两种历史格式
	examDate, err := util.ParseDateFlexible(req.ExamDate)
	if err != nil {
		return 0, util.NewValidationError("exam_date", "invalid date, expected YYYY-MM-DD or DD-MM-YYYY")
	}

	if _, err := s.BatchRepo.FindByID(batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.NewValidationError("batch_id", "batch not found")
		}
		return 0, err
	}

	ids, err := s.StudentRepo.FindIDsByBatch(batchID)
	if err != nil {
		return 0, err
	}
	enrolled := make(map[uint]bool, len(ids))
	for _, id := range ids {
		enrolled[id] = true
	}

	records, verr := buildMarkRecords(batchID, req, examDate, claims.UserID, enrolled)
	if verr != nil {
		return 0, verr
	}

	if err := s.MarkRepo.UpsertBatch(records); err != nil {
		return 0, err
	}

	monitoring.RecordsWritten.WithLabelValues("marks").Observe(float64(len(records)))
	s.runPostCommitHooks(claims, batchID, len(records))
	return len(records), nil
}

func (s *MarkService) runPostCommitHooks(claims *util.Claims, batchID uint, count int) {
	hooks := []struct {
		name string
		fn   func() error
	}{
		{"xp_award", func() error {
			if claims.Role != model.Teacher {
				return nil
			}
			return s.XP.AwardForMarks(claims.UserID)
		}},
	}

	for _, hook := range hooks {
		if err := hook.fn(); err != nil {
			logger.Log.Warn("marks post-commit hook failed",
				zap.String("hook", hook.name),
				zap.Uint("batch_id", batchID),
				zap.Int("count", count),
				zap.Error(err),
			)
		}
	}
}

func (s *MarkService) GetBatchMarks(claims *util.Claims, batchID uint, examName string) ([]model.MarkRecord, error) {
	if err := s.Guard.Authorize(claims, batchID, 0); err != nil {
		return nil, err
	}
	return s.MarkRepo.FindByBatchAndExam(batchID, examName)
}

// GetStudentMarks 学生只能看自己的成绩，教师需分配到学生所在班级，管理员放行
func (s *MarkService) GetStudentMarks(claims *util.Claims, studentID uint, semester string) ([]model.MarkRecord, error) {
	student, err := s.StudentRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	switch claims.Role {
	case model.Admin:
	case model.Teacher:
		if err := s.Guard.Authorize(claims, student.BatchID, 0); err != nil {
			return nil, err
		}
	case model.RoleStudent:
		if student.UserID == 0 || student.UserID != claims.UserID {
			return nil, util.ErrPermissionDenied
		}
	default:
		return nil, util.ErrPermissionDenied
	}

	return s.MarkRepo.FindByStudent(studentID, semester)
}
