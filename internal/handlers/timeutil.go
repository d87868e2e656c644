package handlers

import (
	"fmt"
	"time"
)

// Asia/Seoul for all display formatting
var tzSeoul *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		tzSeoul = time.FixedZone("KST", 9*3600)
		return
	}
	tzSeoul = loc
}

// Date-only friendly string, e.g. "2026년 9월 1일"
func fmtDate(t time.Time) string {
	t = t.In(tzSeoul)
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// Date with wall-clock time, e.g. "2026년 9월 1일 18:00"
func fmtDateTime(t time.Time) string {
	return fmtDate(t) + t.In(tzSeoul).Format(" 15:04")
}
