package controller

import (
	"edu_record_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的数字 ID 参数
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// handleServiceError 统一错误映射：
// 校验错误 -> 400（带字段明细），权限错误 -> 403，未找到 -> 404，其余 -> 500
func handleServiceError(ctx *gin.Context, err error) {
	if ve, ok := util.AsValidationError(err); ok {
		util.ValidationFailed(ctx, ve.Fields)
		return
	}
	if errors.Is(err, util.ErrPermissionDenied) {
		util.Forbidden(ctx)
		return
	}
	if errors.Is(err, util.ErrBatchNotFound) ||
		errors.Is(err, util.ErrStudentNotFound) ||
		errors.Is(err, util.ErrUserNotFound) ||
		errors.Is(err, util.ErrRecordNotFound) {
		util.NotFound(ctx)
		return
	}
	util.LogInternalError(ctx, err)
}
