package service

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/util"
	"edu_record_backend/pkg/logger"
	"edu_record_backend/pkg/monitoring"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AttendanceRecordInput struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Status    string `json:"status"`
}

type MarkAttendanceRequest struct {
	Date    string                  `json:"date" binding:"required"`
	Records []AttendanceRecordInput `json:"records"`
}

type AttendanceService struct {
	AttendanceRepo *repository.AttendanceRepository
	StudentRepo    *repository.StudentRepository
	BatchRepo      *repository.BatchRepository
	Guard          *BatchWriteGuard
	XP             *XPService
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	studentRepo *repository.StudentRepository,
	batchRepo *repository.BatchRepository,
	guard *BatchWriteGuard,
	xp *XPService,
) *AttendanceService {
	return &AttendanceService{
		AttendanceRepo: attendanceRepo,
		StudentRepo:    studentRepo,
		BatchRepo:      batchRepo,
		Guard:          guard,
		XP:             xp,
	}
}

// normalizeStatus 非 Present 的任何输入都按 Absent 处理（沿用宽松默认，不拒绝）
func normalizeStatus(s string) model.AttendanceStatus {
	if strings.EqualFold(strings.TrimSpace(s), "present") {
		return model.Present
	}
	return model.Absent
}

// buildAttendanceRecords 校验并构造待写入记录，任何一条学生不属于该班级则整批拒绝
func buildAttendanceRecords(
	batchID uint,
	date time.Time,
	recordedBy uint,
	inputs []AttendanceRecordInput,
	enrolled map[uint]bool,
) ([]model.AttendanceRecord, *util.ValidationError) {
	if len(inputs) == 0 {
		return nil, util.NewValidationError("records", "at least one record is required")
	}

	fields := make(map[string]string)
	records := make([]model.AttendanceRecord, 0, len(inputs))
	for i, input := range inputs {
		if input.StudentID == 0 {
			fields[fmt.Sprintf("records[%d].student_id", i)] = "student_id is required"
			continue
		}
		if !enrolled[input.StudentID] {
			fields[fmt.Sprintf("records[%d].student_id", i)] = fmt.Sprintf("student %d does not belong to batch %d", input.StudentID, batchID)
			continue
		}
		records = append(records, model.AttendanceRecord{
			StudentID:  input.StudentID,
			Date:       date,
			BatchID:    batchID,
			Status:     normalizeStatus(input.Status),
			RecordedBy: recordedBy,
		})
	}

	if len(fields) > 0 {
		return nil, &util.ValidationError{Fields: fields}
	}
	return records, nil
}

// MarkAttendance 授权 -> 校验 -> 批量覆盖写入 -> 提交后钩子（XP奖励）
func (s *AttendanceService) MarkAttendance(claims *util.Claims, batchID uint, req MarkAttendanceRequest) (int, error) {
	if err := s.Guard.Authorize(claims, batchID, 0); err != nil {
		return 0, err
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		return 0, util.NewValidationError("date", "invalid date, expected YYYY-MM-DD")
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

	records, verr := buildAttendanceRecords(batchID, date, claims.UserID, req.Records, enrolled)
	if verr != nil {
		return 0, verr
	}

	if err := s.AttendanceRepo.BulkUpsert(records); err != nil {
		return 0, err
	}

	monitoring.RecordsWritten.WithLabelValues("attendance").Observe(float64(len(records)))
	s.runPostCommitHooks(claims, batchID, len(records))
	return len(records), nil
}

// runPostCommitHooks 主写入成功后依次执行，单个钩子失败只记日志，
// 绝不影响已成功的写入结果
func (s *AttendanceService) runPostCommitHooks(claims *util.Claims, batchID uint, count int) {
	hooks := []struct {
		name string
		fn   func() error
	}{
		{"xp_award", func() error {
			if claims.Role != model.Teacher {
				return nil
			}
			return s.XP.AwardForAttendance(claims.UserID)
		}},
	}

	for _, hook := range hooks {
		if err := hook.fn(); err != nil {
			logger.Log.Warn("attendance post-commit hook failed",
				zap.String("hook", hook.name),
				zap.Uint("batch_id", batchID),
				zap.Int("count", count),
				zap.Error(err),
			)
		}
	}
}

// GetBatchAttendance 查询某班级某天的考勤，读也走同一套授权
func (s *AttendanceService) GetBatchAttendance(claims *util.Claims, batchID uint, dateStr string) ([]model.AttendanceRecord, error) {
	if err := s.Guard.Authorize(claims, batchID, 0); err != nil {
		return nil, err
	}
	date, err := util.ParseDate(dateStr)
	if err != nil {
		return nil, util.NewValidationError("date", "invalid date, expected YYYY-MM-DD")
	}
	return s.AttendanceRepo.FindByBatchAndDate(batchID, date)
}

// GetStudentAttendance 学生只能看自己的记录，教师需分配到学生所在班级，管理员放行
func (s *AttendanceService) GetStudentAttendance(claims *util.Claims, studentID uint, fromStr, toStr string) ([]model.AttendanceRecord, error) {
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

	var from, to time.Time
	if fromStr != "" {
		if from, err = util.ParseDate(fromStr); err != nil {
			return nil, util.NewValidationError("from", "invalid date, expected YYYY-MM-DD")
		}
	}
	if toStr != "" {
		if to, err = util.ParseDate(toStr); err != nil {
			return nil, util.NewValidationError("to", "invalid date, expected YYYY-MM-DD")
		}
	}

	return s.AttendanceRepo.FindByStudent(studentID, from, to)
}

// AttendanceSummary 学生出勤概览
type AttendanceSummary struct {
	StudentID uint    `json:"studentId"`
	Present   int64   `json:"present"`
	Total     int64   `json:"total"`
	Rate      float64 `json:"rate"`
}

// GetStudentAttendanceSummary 授权规则与明细查询一致
func (s *AttendanceService) GetStudentAttendanceSummary(claims *util.Claims, studentID uint) (*AttendanceSummary, error) {
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

	present, total, err := s.AttendanceRepo.CountPresentByStudent(studentID)
	if err != nil {
		return nil, err
	}

	summary := &AttendanceSummary{StudentID: studentID, Present: present, Total: total}
	if total > 0 {
		summary.Rate = float64(present) / float64(total)
	}
	return summary, nil
}
