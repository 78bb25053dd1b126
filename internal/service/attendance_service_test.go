package service

import (
	"edu_record_backend/internal/model"
	"testing"
	"time"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input string
		want  model.AttendanceStatus
	}{
		{"Present", model.Present},
		{"present", model.Present},
		{"PRESENT", model.Present},
		{" present ", model.Present},
		{"Absent", model.Absent},
		{"absent", model.Absent},
		{"", model.Absent},
		{"late", model.Absent},
		{"p", model.Absent},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeStatus(tt.input); got != tt.want {
				t.Errorf("normalizeStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildAttendanceRecords(t *testing.T) {
	date := time.Date(2024, 4, 5, 0, 0, 0, 0, time.Local)
	enrolled := map[uint]bool{1: true, 2: true, 3: true}

	t.Run("正常构造", func(t *testing.T) {
		inputs := []AttendanceRecordInput{
			{StudentID: 1, Status: "present"},
			{StudentID: 2, Status: "absent"},
			{StudentID: 3, Status: ""},
		}

		records, verr := buildAttendanceRecords(10, date, 7, inputs, enrolled)
		if verr != nil {
			t.Fatalf("unexpected validation error: %v", verr)
		}
		if len(records) != 3 {
			t.Fatalf("len(records) = %d, want 3", len(records))
		}
		if records[0].Status != model.Present {
			t.Errorf("records[0].Status = %q, want present", records[0].Status)
		}
		if records[1].Status != model.Absent || records[2].Status != model.Absent {
			t.Errorf("records[1,2] should be absent, got %q, %q", records[1].Status, records[2].Status)
		}
		for _, r := range records {
			if r.BatchID != 10 || r.RecordedBy != 7 || !r.Date.Equal(date) {
				t.Errorf("record %+v missing batch/recorder/date", r)
			}
		}
	})

	t.Run("空记录拒绝", func(t *testing.T) {
		_, verr := buildAttendanceRecords(10, date, 7, nil, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for empty records")
		}
		if _, ok := verr.Fields["records"]; !ok {
			t.Errorf("expected field error on records, got %v", verr.Fields)
		}
	})

	t.Run("非本班学生整批拒绝", func(t *testing.T) {
		inputs := []AttendanceRecordInput{
			{StudentID: 1, Status: "present"},
			{StudentID: 99, Status: "present"},
		}

		_, verr := buildAttendanceRecords(10, date, 7, inputs, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for non-enrolled student")
		}
		if _, ok := verr.Fields["records[1].student_id"]; !ok {
			t.Errorf("expected field error on records[1].student_id, got %v", verr.Fields)
		}
	})

	t.Run("缺学生ID整批拒绝", func(t *testing.T) {
		inputs := []AttendanceRecordInput{
			{StudentID: 0, Status: "present"},
			{StudentID: 2, Status: "present"},
		}

		_, verr := buildAttendanceRecords(10, date, 7, inputs, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for missing student_id")
		}
		if _, ok := verr.Fields["records[0].student_id"]; !ok {
			t.Errorf("expected field error on records[0].student_id, got %v", verr.Fields)
		}
	})
}
