package handlers

import (
	"testing"
	"time"
)

func TestFmtDate(t *testing.T) {
	// 2026-09-01 00:30 KST is still 2026-08-31 UTC
	utc := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	if got := fmtDate(utc); got != "2026년 9월 1일" {
		t.Errorf("fmtDate = %q", got)
	}
	if got := fmtDateTime(utc); got != "2026년 9월 1일 00:30" {
		t.Errorf("fmtDateTime = %q", got)
	}
}
