package service

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type BatchRequest struct {
	Name    string `json:"name" binding:"required"`
	Course  string `json:"course"`
	Year    int    `json:"year" binding:"required"`
	Section string `json:"section"`
}

type BatchService struct {
	BatchRepo   *repository.BatchRepository
	StudentRepo *repository.StudentRepository
	UserRepo    *repository.UserRepository
}

func NewBatchService(
	batchRepo *repository.BatchRepository,
	studentRepo *repository.StudentRepository,
	userRepo *repository.UserRepository,
) *BatchService {
	return &BatchService{
		BatchRepo:   batchRepo,
		StudentRepo: studentRepo,
		UserRepo:    userRepo,
	}
}

func (s *BatchService) CreateBatch(req BatchRequest) (*model.Batch, error) {
	batch := &model.Batch{
		Name:    req.Name,
		Course:  req.Course,
		Year:    req.Year,
		Section: req.Section,
	}
	if err := s.BatchRepo.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *BatchService) GetBatch(id uint) (*model.Batch, error) {
	batch, err := s.BatchRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrBatchNotFound
	}
	return batch, err
}

func (s *BatchService) GetBatches() ([]model.Batch, error) {
	return s.BatchRepo.FindAll()
}

// GetBatchesForTeacher 教师只能看到分配给自己的班级
func (s *BatchService) GetBatchesForTeacher(teacherID uint) ([]model.Batch, error) {
	return s.BatchRepo.FindBatchesByTeacher(teacherID)
}

func (s *BatchService) UpdateBatch(id uint, req BatchRequest) (*model.Batch, error) {
	batch, err := s.BatchRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBatchNotFound
		}
		return nil, err
	}

	batch.Name = req.Name
	batch.Course = req.Course
	batch.Year = req.Year
	batch.Section = req.Section

	if err := s.BatchRepo.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// DeleteBatch 班级下还有学生时拒绝删除
func (s *BatchService) DeleteBatch(id uint) error {
	if _, err := s.BatchRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrBatchNotFound
		}
		return err
	}

	students, err := s.StudentRepo.FindByBatch(id)
	if err != nil {
		return err
	}
	if len(students) > 0 {
		return util.NewValidationError("batch_id", "batch still has enrolled students")
	}

	return s.BatchRepo.Delete(id)
}

// AssignTeacher 仅能分配教师角色的用户，重复分配幂等
func (s *BatchService) AssignTeacher(teacherID, batchID uint) error {
	user, err := s.UserRepo.FindByID(teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewValidationError("teacher_id", "teacher not found")
		}
		return err
	}
	if user.Role != model.Teacher {
		return util.NewValidationError("teacher_id", "user is not a teacher")
	}

	if _, err := s.BatchRepo.FindByID(batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrBatchNotFound
		}
		return err
	}

	return s.BatchRepo.AssignTeacher(teacherID, batchID)
}

func (s *BatchService) UnassignTeacher(teacherID, batchID uint) error {
	return s.BatchRepo.UnassignTeacher(teacherID, batchID)
}

func (s *BatchService) GetBatchTeachers(batchID uint) ([]model.User, error) {
	ids, err := s.BatchRepo.FindTeacherIDsByBatch(batchID)
	if err != nil {
		return nil, err
	}

	teachers := make([]model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.UserRepo.FindByID(id)
		if err != nil {
			continue
		}
		teachers = append(teachers, *user)
	}
	return teachers, nil
}
