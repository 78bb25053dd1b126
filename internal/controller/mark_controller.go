package controller

import (
	"edu_record_backend/internal/service"
	"edu_record_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MarkController struct {
	MarkService *service.MarkService
}

func NewMarkController(markService *service.MarkService) *MarkController {
	return &MarkController{
		MarkService: markService,
	}
}

// EnterMarks godoc
// @Summary 录入班级成绩
// @Description 教师为已分配的班级录入一次考试的成绩，同一学生同一考试重复录入按覆盖处理；
// @Description 分数必须在 [0, max_marks] 范围内，任何一条不合法则整批拒绝
// @Tags 成绩
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   body body service.EnterMarksRequest true "成绩记录"
// @Success 200 {object} util.Response{data=object} "成功，返回写入条数"
// @Failure 400 {object} util.Response "校验失败，fields 列出问题字段"
// @Failure 403 {object} util.Response "教师未分配到该班级"
// @Router /api/teacher/batches/{id}/marks [post]
func (c *MarkController) EnterMarks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.EnterMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.MarkService.EnterMarks(claims, batchID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// GetBatchMarks godoc
// @Summary 查询班级成绩
// @Tags 成绩
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   exam_name query string false "按考试名称筛选"
// @Success 200 {object} util.Response{data=[]model.MarkRecord} "成功"
// @Failure 403 {object} util.Response "教师未分配到该班级"
// @Router /api/teacher/batches/{id}/marks [get]
func (c *MarkController) GetBatchMarks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.MarkService.GetBatchMarks(claims, batchID, ctx.Query("exam_name"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetStudentMarks godoc
// @Summary 查询学生成绩
// @Description 学生只能查自己的成绩，教师需分配到学生所在班级，管理员不受限
// @Tags 成绩
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Param   semester query string false "按学期筛选"
// @Success 200 {object} util.Response{data=[]model.MarkRecord} "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/students/{id}/marks [get]
func (c *MarkController) GetStudentMarks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.MarkService.GetStudentMarks(claims, studentID, ctx.Query("semester"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, records)
}
