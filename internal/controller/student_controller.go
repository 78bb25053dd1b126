package controller

import (
	"edu_record_backend/internal/service"
	"edu_record_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{
		StudentService: studentService,
	}
}

// CreateStudent godoc
// @Summary 创建学生（管理员）
// @Tags 学生
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.StudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=model.Student} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/admin/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req service.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.StudentService.CreateStudent(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, student)
}

// GetStudent godoc
// @Summary 学生详情
// @Tags 学生
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=model.Student} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.StudentService.GetStudent(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// GetBatchStudents godoc
// @Summary 班级学生列表
// @Tags 学生
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response{data=[]model.Student} "成功"
// @Router /api/batches/{id}/students [get]
func (c *StudentController) GetBatchStudents(ctx *gin.Context) {
	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.StudentService.GetStudentsByBatch(batchID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// UpdateStudent godoc
// @Summary 更新学生（管理员）
// @Tags 学生
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Param   body body service.StudentRequest true "学生信息"
// @Success 200 {object} util.Response{data=model.Student} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/admin/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.StudentService.UpdateStudent(id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// DeleteStudent godoc
// @Summary 删除学生（管理员）
// @Tags 学生
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/admin/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.StudentService.DeleteStudent(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
