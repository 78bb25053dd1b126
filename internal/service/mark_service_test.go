package service

import (
	"testing"
	"time"
)

func TestBuildMarkRecords(t *testing.T) {
	examDate := time.Date(2024, 4, 5, 0, 0, 0, 0, time.Local)
	enrolled := map[uint]bool{1: true, 2: true}

	base := EnterMarksRequest{
		ExamName: "期中考试",
		Subject:  "数学",
		Semester: "2024-1",
		MaxMarks: 100,
	}

	t.Run("正常构造", func(t *testing.T) {
		req := base
		req.Records = []MarkRecordInput{
			{StudentID: 1, Marks: 88.5},
			{StudentID: 2, Marks: 0},
		}

		records, verr := buildMarkRecords(10, req, examDate, 7, enrolled)
		if verr != nil {
			t.Fatalf("unexpected validation error: %v", verr)
		}
		if len(records) != 2 {
			t.Fatalf("len(records) = %d, want 2", len(records))
		}
		r := records[0]
		if r.StudentID != 1 || r.BatchID != 10 || r.ExamName != "期中考试" ||
			r.Score != 88.5 || r.MaxScore != 100 || r.RecordedBy != 7 {
			t.Errorf("unexpected record: %+v", r)
		}
	})

	t.Run("满分边界允许", func(t *testing.T) {
		req := base
		req.Records = []MarkRecordInput{{StudentID: 1, Marks: 100}}

		records, verr := buildMarkRecords(10, req, examDate, 7, enrolled)
		if verr != nil {
			t.Fatalf("unexpected validation error: %v", verr)
		}
		if records[0].Score != 100 {
			t.Errorf("Score = %g, want 100", records[0].Score)
		}
	})

	t.Run("超出满分拒绝", func(t *testing.T) {
		req := base
		req.Records = []MarkRecordInput{{StudentID: 1, Marks: 100.5}}

		_, verr := buildMarkRecords(10, req, examDate, 7, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for marks above max")
		}
		if _, ok := verr.Fields["records[0].marks"]; !ok {
			t.Errorf("expected field error on records[0].marks, got %v", verr.Fields)
		}
	})

	t.Run("负分拒绝", func(t *testing.T) {
		req := base
		req.Records = []MarkRecordInput{{StudentID: 1, Marks: -1}}

		_, verr := buildMarkRecords(10, req, examDate, 7, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for negative marks")
		}
	})

	t.Run("满分非正数拒绝", func(t *testing.T) {
		req := base
		req.MaxMarks = 0
		req.Records = []MarkRecordInput{{StudentID: 1, Marks: 0}}

		_, verr := buildMarkRecords(10, req, examDate, 7, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for non-positive max_marks")
		}
		if _, ok := verr.Fields["max_marks"]; !ok {
			t.Errorf("expected field error on max_marks, got %v", verr.Fields)
		}
	})

	t.Run("非本班学生整批拒绝", func(t *testing.T) {
		req := base
		req.Records = []MarkRecordInput{
			{StudentID: 1, Marks: 80},
			{StudentID: 99, Marks: 90},
		}

		_, verr := buildMarkRecords(10, req, examDate, 7, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for non-enrolled student")
		}
		if _, ok := verr.Fields["records[1].student_id"]; !ok {
			t.Errorf("expected field error on records[1].student_id, got %v", verr.Fields)
		}
	})

	t.Run("空记录拒绝", func(t *testing.T) {
		req := base
		req.Records = nil

		_, verr := buildMarkRecords(10, req, examDate, 7, enrolled)
		if verr == nil {
			t.Fatal("expected validation error for empty records")
		}
	})
}
