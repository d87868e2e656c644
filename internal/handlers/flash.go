package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"saved":      "저장되었습니다.",
	"registered": "참가 신청이 성공적으로 완료되었습니다.",
	"status_set": "신청 상태가 변경되었습니다.",
	"signed_up":  "가입이 완료되었습니다. 로그인해주세요.",
	"logged_out": "로그아웃되었습니다.",
}

var errText = map[string]string{
	"missing":             "필수 항목을 입력해주세요.",
	"bad_login":           "이메일 또는 비밀번호가 올바르지 않습니다.",
	"email_in_use":        "이미 사용 중인 이메일입니다.",
	"invalid_email":       "올바른 이메일 주소를 입력해주세요.",
	"weak_password":       "비밀번호는 8자 이상이어야 합니다.",
	"no_open_competition": "현재 참가 가능한 대회가 없습니다.",
	"already_registered":  "이미 참가 신청한 내역이 있습니다.",
	"invalid_track":       "트랙을 선택해주세요.",
	"bad_status":          "알 수 없는 신청 상태입니다.",
	"db":                  "저장 중 오류가 발생했습니다.",
}

// MakeFlash reads ?ok= / ?error= keys (or explicit strings) and maps them to
// localized messages. Unknown keys pass through verbatim.
func MakeFlash(r *http.Request, errStr, msgStr string) *Flash {
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("error")); raw != "" {
		if t, ok := errText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: raw}
	}
	if raw := strings.TrimSpace(q.Get("ok")); raw != "" {
		if t, ok := okText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: raw}
	}

	if errStr != "" {
		return &Flash{Kind: "error", Text: errStr}
	}
	if msgStr != "" {
		return &Flash{Kind: "ok", Text: msgStr}
	}
	return nil
}
