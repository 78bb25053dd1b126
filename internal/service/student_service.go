package service

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type StudentRequest struct {
	Name    string `json:"name" binding:"required"`
	RollNo  string `json:"roll_no" binding:"required"`
	BatchID uint   `json:"batch_id" binding:"required"`
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type StudentService struct {
	StudentRepo *repository.StudentRepository
	BatchRepo   *repository.BatchRepository
}

func NewStudentService(studentRepo *repository.StudentRepository, batchRepo *repository.BatchRepository) *StudentService {
	return &StudentService{
		StudentRepo: studentRepo,
		BatchRepo:   batchRepo,
	}
}

func (s *StudentService) CreateStudent(req StudentRequest) (*model.Student, error) {
	if _, err := s.BatchRepo.FindByID(req.BatchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewValidationError("batch_id", "batch not found")
		}
		return nil, err
	}

	student := &model.Student{
		Name:    req.Name,
		RollNo:  req.RollNo,
		BatchID: req.BatchID,
		UserID:  req.UserID,
		Email:   req.Email,
		Phone:   req.Phone,
	}
	if err := s.StudentRepo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) GetStudent(id uint) (*model.Student, error) {
	student, err := s.StudentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	return student, err
}

func (s *StudentService) GetStudentsByBatch(batchID uint) ([]model.Student, error) {
	return s.StudentRepo.FindByBatch(batchID)
}

func (s *StudentService) UpdateStudent(id uint, req StudentRequest) (*model.Student, error) {
	student, err := s.StudentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	if req.BatchID != 0 && req.BatchID != student.BatchID {
		if _, err := s.BatchRepo.FindByID(req.BatchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.NewValidationError("batch_id", "batch not found")
			}
			return nil, err
		}
		student.BatchID = req.BatchID
	}

	student.Name = req.Name
	student.RollNo = req.RollNo
	student.Email = req.Email
	student.Phone = req.Phone
	if req.UserID != 0 {
		student.UserID = req.UserID
	}

	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) DeleteStudent(id uint) error {
	if _, err := s.StudentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStudentNotFound
		}
		return err
	}
	return s.StudentRepo.Delete(id)
}
