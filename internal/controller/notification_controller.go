package controller

import (
	"edu_record_backend/internal/service"
	"edu_record_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{
		NotificationService: notificationService,
	}
}

// Publish godoc
// @Summary 发布通知
// @Description 管理员可按角色或班级投递；教师只能向已分配的班级投递
// @Tags 通知
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.NotificationRequest true "通知内容"
// @Success 201 {object} util.Response{data=model.Notification} "创建成功"
// @Failure 403 {object} util.Response "权限不足"
// @Router /api/notifications [post]
func (c *NotificationController) Publish(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.NotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	n, err := c.NotificationService.Publish(claims, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, n)
}

// GetMyNotifications godoc
// @Summary 我的通知
// @Description 按当前用户角色（学生叠加所在班级）返回最近通知
// @Tags 通知
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "返回数量" default(50)
// @Success 200 {object} util.Response{data=[]model.Notification} "成功"
// @Router /api/notifications [get]
func (c *NotificationController) GetMyNotifications(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	notifications, err := c.NotificationService.GetMyNotifications(claims, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notifications)
}

// Delete godoc
// @Summary 删除通知
// @Description 仅发布者本人或管理员可删除
// @Tags 通知
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "通知ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "通知不存在"
// @Router /api/notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := ctx.Param("id")
	if id == "" {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.NotificationService.Delete(claims, id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
