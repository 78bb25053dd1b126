package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"标准日期", "2024-04-05", time.Date(2024, 4, 5, 0, 0, 0, 0, time.Local), false},
		{"闰日", "2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), false},
		{"非闰年闰日", "2023-02-29", time.Time{}, true},
		{"DMY写法不接受", "05-04-2024", time.Time{}, true},
		{"空字符串", "", time.Time{}, true},
		{"带时间", "2024-04-05T10:00:00", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateFlexible(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"ISO写法", "2024-04-05", time.Date(2024, 4, 5, 0, 0, 0, 0, time.Local), false},
		{"DMY写法", "05-04-2024", time.Date(2024, 4, 5, 0, 0, 0, 0, time.Local), false},
		{"DMY闰日", "29-02-2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), false},
		{"两种都不是", "2024/04/05", time.Time{}, true},
		{"空字符串", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateFlexible(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateFlexible(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDateFlexible(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
