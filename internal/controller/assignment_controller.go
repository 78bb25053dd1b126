package controller

import (
	"edu_record_backend/internal/service"
	"edu_record_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{
		AssignmentService: assignmentService,
	}
}

// CreateAssignment godoc
// @Summary 发布班级作业
// @Description 教师为已分配的班级发布作业，支持 multipart 上传附件
// @Tags 作业
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   title formData string true "标题"
// @Param   description formData string false "说明"
// @Param   subject formData string false "科目"
// @Param   due_date formData string true "截止日期 YYYY-MM-DD"
// @Param   file formData file false "附件"
// @Success 201 {object} util.Response{data=model.Assignment} "创建成功"
// @Failure 403 {object} util.Response "教师未分配到该班级"
// @Router /api/teacher/batches/{id}/assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.AssignmentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 附件可选，拿不到就按无附件处理
	file, _ := ctx.FormFile("file")

	assignment, err := c.AssignmentService.CreateAssignment(ctx.Request.Context(), claims, batchID, req, file)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// GetBatchAssignments godoc
// @Summary 班级作业列表
// @Tags 作业
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Success 200 {object} util.Response{data=[]model.Assignment} "成功"
// @Router /api/batches/{id}/assignments [get]
func (c *AssignmentController) GetBatchAssignments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.AssignmentService.GetBatchAssignments(claims, batchID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// DeleteAssignment godoc
// @Summary 删除作业
// @Description 仅发布者本人或管理员可删除
// @Tags 作业
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "作业ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "作业不存在"
// @Router /api/teacher/assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.AssignmentService.DeleteAssignment(ctx.Request.Context(), claims, id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
