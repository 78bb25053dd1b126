package service

import "testing"

func TestAdvance(t *testing.T) {
	tests := []struct {
		name       string
		xp         int
		level      int
		target     int
		amount     int
		wantXP     int
		wantLevel  int
		wantTarget int
	}{
		{"初始状态小额奖励", 0, 1, 250, 10, 10, 1, 250},
		{"刚好到达阈值升一级", 0, 1, 250, 250, 0, 2, 400},
		{"超过阈值结转余额", 240, 1, 250, 15, 5, 2, 400},
		{"一次奖励连升多级", 0, 1, 250, 650, 0, 3, 550},
		{"大额奖励", 0, 1, 250, 1000, 350, 3, 550},
		{"接近上限正常升级", 500, 8, 1300, 800, 0, 9, 1450},
		{"升到上限后阈值冻结", 1400, 9, 1450, 100, 50, 10, 1450},
		{"上限后继续累计但不升级", 2000, 10, 1450, 100, 2100, 10, 1450},
		{"零奖励不变", 100, 3, 550, 0, 100, 3, 550},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xp, level, target := advance(tt.xp, tt.level, tt.target, tt.amount)
			if xp != tt.wantXP || level != tt.wantLevel || target != tt.wantTarget {
				t.Errorf("advance(%d, %d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.xp, tt.level, tt.target, tt.amount,
					xp, level, target,
					tt.wantXP, tt.wantLevel, tt.wantTarget)
			}
		})
	}
}

// 阈值序列：250, 400, 550, ... 每级固定 +150
func TestAdvanceTargetProgression(t *testing.T) {
	xp, level, target := 0, 1, 250
	wantTargets := []int{400, 550, 700, 850, 1000, 1150, 1300, 1450}

	for i, want := range wantTargets {
		xp, level, target = advance(xp, level, target, target-xp)
		if level != i+2 {
			t.Fatalf("step %d: level = %d, want %d", i, level, i+2)
		}
		if target != want {
			t.Fatalf("step %d: target = %d, want %d", i, target, want)
		}
		if xp != 0 {
			t.Fatalf("step %d: xp = %d, want 0", i, xp)
		}
	}

	// 此时应到达上限前一级的边界，再升一级即封顶
	if level != 9 {
		t.Fatalf("level = %d, want 9", level)
	}
	xp, level, target = advance(xp, level, target, 1450)
	if level != MaxTeacherLevel || target != 1450 {
		t.Errorf("after final level-up: level = %d, target = %d, want %d, 1450", level, target, MaxTeacherLevel)
	}
	if xp != 0 {
		t.Errorf("after final level-up: xp = %d, want 0", xp)
	}
}

func TestAdvanceIdempotentOrder(t *testing.T) {
	// 两次小额奖励与一次等额奖励结果一致
	xp1, level1, target1 := advance(0, 1, 250, AttendanceReward)
	xp1, level1, target1 = advance(xp1, level1, target1, MarkReward)

	xp2, level2, target2 := advance(0, 1, 250, AttendanceReward+MarkReward)

	if xp1 != xp2 || level1 != level2 || target1 != target2 {
		t.Errorf("split rewards = (%d, %d, %d), combined = (%d, %d, %d)",
			xp1, level1, target1, xp2, level2, target2)
	}
}
