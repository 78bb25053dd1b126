package service

import (
	"context"
	"edu_record_backend/internal/model"
	"edu_record_backend/internal/repository"
	"edu_record_backend/pkg/logger"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// MaxTeacherLevel 等级上限，达到后不再升级，阈值冻结
	MaxTeacherLevel = 10
	// LevelTargetStep 每次升级后阈值的固定增量
	LevelTargetStep = 150

	// AttendanceReward 提交一批考勤的固定奖励，与批量大小无关
	AttendanceReward = 10
	// MarkReward 提交一批成绩的固定奖励，与批量大小无关
	MarkReward = 15

	leaderboardCacheKey = "xp:leaderboard"
	leaderboardCacheTTL = 5 * time.Minute
)

type XPService struct {
	XPRepo   *repository.TeacherXPRepository
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewXPService(xpRepo *repository.TeacherXPRepository, userRepo *repository.UserRepository, rdb *redis.Client) *XPService {
	return &XPService{
		XPRepo:   xpRepo,
		UserRepo: userRepo,
		Redis:    rdb,
	}
}

// advance 等级状态机：加上奖励后循环结算升级，
// 升到上限后阈值冻结，剩余积分继续累计但不再触发升级
func advance(xp, level, target, amount int) (int, int, int) {
	xp += amount
	for level < MaxTeacherLevel && xp >= target {
		xp -= target
		level++
		if level < MaxTeacherLevel {
			target += LevelTargetStep
		}
	}
	return xp, level, target
}

// Award 行锁内读-改-写，同一教师的并发奖励串行化
func (s *XPService) Award(teacherID uint, amount int) error {
	err := s.XPRepo.DB.Transaction(func(tx *gorm.DB) error {
		record, err := s.XPRepo.FindOrCreateLocked(tx, teacherID)
		if err != nil {
			return err
		}
		record.XP, record.Level, record.NextXPTarget = advance(record.XP, record.Level, record.NextXPTarget, amount)
		return s.XPRepo.Save(tx, record)
	})
	if err != nil {
		return err
	}
	s.invalidateLeaderboard()
	return nil
}

func (s *XPService) AwardForAttendance(teacherID uint) error {
	return s.Award(teacherID, AttendanceReward)
}

func (s *XPService) AwardForMarks(teacherID uint) error {
	return s.Award(teacherID, MarkReward)
}

// GetTeacherXP 查询教师当前经验，尚无记录时返回初始状态（不落库）
func (s *XPService) GetTeacherXP(teacherID uint) (*model.TeacherXP, error) {
	record, err := s.XPRepo.FindByTeacherID(teacherID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.TeacherXP{
			TeacherID:    teacherID,
			XP:           0,
			Level:        1,
			NextXPTarget: 250,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	Teacher string `json:"teacher"`
	Level   int    `json:"level"`
	XP      int    `json:"xp"`
}

// GetLeaderboard 教师等级排行榜，Redis 缓存5分钟，奖励发生时失效
func (s *XPService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil && len(entries) >= limit {
				return entries[:limit], nil
			}
		}
	}

	records, err := s.XPRepo.TopByXP(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(records))
	for i, record := range records {
		name := ""
		if user, err := s.UserRepo.FindByID(record.TeacherID); err == nil {
			name = user.Name
		}
		entries[i] = LeaderboardEntry{
			Rank:    i + 1,
			Teacher: name,
			Level:   record.Level,
			XP:      record.XP,
		}
	}

	if s.Redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

func (s *XPService) invalidateLeaderboard() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), leaderboardCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate leaderboard cache", zap.Error(err))
	}
}
