package controller

import (
	"edu_record_backend/internal/service"
	"edu_record_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *service.AttendanceService
}

func NewAttendanceController(attendanceService *service.AttendanceService) *AttendanceController {
	return &AttendanceController{
		AttendanceService: attendanceService,
	}
}

// MarkAttendance godoc
// @Summary 录入班级考勤
// @Description 教师为已分配的班级按天录入考勤，同一学生同一天重复录入按覆盖处理；
// @Description 任何一条记录的学生不属于该班级则整批拒绝
// @Tags 考勤
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   body body service.MarkAttendanceRequest true "考勤记录"
// @Success 200 {object} util.Response{data=object} "成功，返回写入条数"
// @Failure 400 {object} util.Response "校验失败，fields 列出问题字段"
// @Failure 403 {object} util.Response "教师未分配到该班级"
// @Router /api/teacher/batches/{id}/attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	count, err := c.AttendanceService.MarkAttendance(claims, batchID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// GetBatchAttendance godoc
// @Summary 查询班级某天考勤
// @Tags 考勤
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "班级ID"
// @Param   date query string true "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord} "成功"
// @Failure 403 {object} util.Response "教师未分配到该班级"
// @Router /api/teacher/batches/{id}/attendance [get]
func (c *AttendanceController) GetBatchAttendance(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.AttendanceService.GetBatchAttendance(claims, batchID, ctx.Query("date"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetStudentAttendance godoc
// @Summary 查询学生考勤记录
// @Description 学生只能查自己的记录，教师需分配到学生所在班级，管理员不受限
// @Tags 考勤
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Param   from query string false "起始日期 YYYY-MM-DD"
// @Param   to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord} "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/students/{id}/attendance [get]
func (c *AttendanceController) GetStudentAttendance(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.AttendanceService.GetStudentAttendance(claims, studentID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetStudentAttendanceSummary godoc
// @Summary 学生出勤概览
// @Description 出勤/总记录数与出勤率，授权规则与明细查询一致
// @Tags 考勤
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=service.AttendanceSummary} "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/students/{id}/attendance/summary [get]
func (c *AttendanceController) GetStudentAttendanceSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.AttendanceService.GetStudentAttendanceSummary(claims, studentID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
