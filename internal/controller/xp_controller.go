package controller

import (
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/service"
	"edu_record_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type XPController struct {
	XPService *service.XPService
}

func NewXPController(xpService *service.XPService) *XPController {
	return &XPController{
		XPService: xpService,
	}
}

// GetMyXP godoc
// @Summary 查询自己的经验值与等级
// @Description 教师查看自己的 XP、等级和升级所需经验
// @Tags 经验值
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.TeacherXP} "成功"
// @Failure 403 {object} util.Response "仅教师可用"
// @Router /api/teacher/xp [get]
func (c *XPController) GetMyXP(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if claims.Role != model.Teacher {
		util.Forbidden(ctx)
		return
	}

	record, err := c.XPService.GetTeacherXP(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// GetTeacherXP godoc
// @Summary 查询指定教师的经验值（管理员）
// @Tags 经验值
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "教师ID"
// @Success 200 {object} util.Response{data=model.TeacherXP} "成功"
// @Router /api/admin/teachers/{id}/xp [get]
func (c *XPController) GetTeacherXP(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	record, err := c.XPService.GetTeacherXP(teacherID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// GetLeaderboard godoc
// @Summary 教师经验值排行榜
// @Description 按等级和经验值排序，结果缓存5分钟
// @Tags 经验值
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry} "成功"
// @Router /api/teacher/xp/leaderboard [get]
func (c *XPController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	entries, err := c.XPService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
