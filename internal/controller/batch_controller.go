package controller

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/service"
	"edu_record_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BatchController struct {
	BatchService *service.BatchService
}

func NewBatchController(batchService *service.BatchService) *BatchController {
	return &BatchController{
		BatchService: batchService,
	}
}

// CreateBatch godoc
// @Summary 创建班级（管理员）
// @Tags 班级
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.BatchRequest true "班级信息"
// @Success 201 {object} util.Response{data=model.Batch} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/admin/batches [post]
func (c *BatchController) CreateBatch(ctx *gin.Context) {
	var req service.BatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	batch, err := c.BatchService.CreateBatch(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, batch)
}

// GetBatches godoc
// @Summary 班级列表
// @Description 教师只返回分配给自己的班级，管理员返回全部
// @Tags 班级
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Batch} "成功"
// @Router /api/batches [get]
func (c *BatchController) GetBatches(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var batches []model.Batch
	var err error
	if claims.Role == model.Teacher {
		batches, err = c.BatchService.GetBatchesForTeacher(claims.UserID)
	} else {
		batches, err = c.BatchService.GetBatches()
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, batches)
}

// GetBatch godoc
// @Summary 班级详情
// @Tags 班级
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response{data=model.Batch} "成功"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/batches/{id} [get]
func (c *BatchController) GetBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	batch, err := c.BatchService.GetBatch(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, batch)
}

// UpdateBatch godoc
// @Summary 更新班级（管理员）
// @Tags 班级
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   body body service.BatchRequest true "班级信息"
// @Success 200 {object} util.Response{data=model.Batch} "成功"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/admin/batches/{id} [put]
func (c *BatchController) UpdateBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.BatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	batch, err := c.BatchService.UpdateBatch(id, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, batch)
}

// DeleteBatch godoc
// @Summary 删除班级（管理员）
// @Description 班级下还有学生时拒绝删除
// @Tags 班级
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "班级非空"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/admin/batches/{id} [delete]
func (c *BatchController) DeleteBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.BatchService.DeleteBatch(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AssignTeacherRequest 分配教师请求
type AssignTeacherRequest struct {
	TeacherID uint `json:"teacher_id" binding:"required"`
}

// AssignTeacher godoc
// @Summary 分配教师到班级（管理员）
// @Description 幂等操作，重复分配不报错
// @Tags 班级
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   body body AssignTeacherRequest true "教师ID"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "用户不是教师"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/admin/batches/{id}/teachers [post]
func (c *BatchController) AssignTeacher(ctx *gin.Context) {
	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req AssignTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BatchService.AssignTeacher(req.TeacherID, batchID); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UnassignTeacher godoc
// @Summary 取消教师的班级分配（管理员）
// @Tags 班级
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   teacherId path int true "教师ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/admin/batches/{id}/teachers/{teacherId} [delete]
func (c *BatchController) UnassignTeacher(ctx *gin.Context) {
	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	teacherID, ok := parseIDParam(ctx, "teacherId")
	if !ok {
		return
	}

	if err := c.BatchService.UnassignTeacher(teacherID, batchID); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// GetBatchTeachers godoc
// @Summary 班级的教师列表
// @Tags 班级
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response{data=[]model.User} "成功"
// @Router /api/batches/{id}/teachers [get]
func (c *BatchController) GetBatchTeachers(ctx *gin.Context) {
	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teachers, err := c.BatchService.GetBatchTeachers(batchID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, teachers)
}
