package util

import (
	"errors"
	"time"
)

const (
	DateLayoutISO = "2006-01-02"
	DateLayoutDMY = "02-01-2006"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ParseDate 解析 YYYY-MM-DD 日历日期，丢弃时间与时区信息
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayoutISO, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseDateFlexible 兼容 YYYY-MM-DD 和 DD-MM-YYYY 两种写法（成绩导入的历史格式），
// 内部统一为日历日期
func ParseDateFlexible(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayoutISO, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayoutDMY, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
