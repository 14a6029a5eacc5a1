package model

import "encoding/json"

// Status AppState 当前所处的分支
type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// ErrorDetail 展示层使用的错误信息，Code 为可判定的错误码
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AppState 页面状态：Loading / Loaded(Report) / Failed(ErrorDetail) 三选一。
// 零值为 Loading；每次状态变化都整体替换，不在原值上修改。
type AppState struct {
	status  Status
	report  *Report
	failure ErrorDetail
}

// Loading 加载中
func Loading() AppState {
	return AppState{status: StatusLoading}
}

// Loaded 已加载，report 为 nil 时退化为 Loading
func Loaded(report *Report) AppState {
	if report == nil {
		return Loading()
	}
	return AppState{status: StatusLoaded, report: report}
}

// Failed 加载失败
func Failed(detail ErrorDetail) AppState {
	return AppState{status: StatusFailed, failure: detail}
}

// Resolve 一次拉取结束后的状态迁移
func Resolve(report *Report, detail *ErrorDetail) AppState {
	if detail != nil {
		return Failed(*detail)
	}
	return Loaded(report)
}

// Status 当前分支
func (s AppState) Status() Status {
	if s.status == "" {
		return StatusLoading
	}
	return s.status
}

// Report 仅在 Loaded 时返回 true
func (s AppState) Report() (*Report, bool) {
	return s.report, s.Status() == StatusLoaded
}

// Failure 仅在 Failed 时返回 true
func (s AppState) Failure() (ErrorDetail, bool) {
	return s.failure, s.Status() == StatusFailed
}

type appStateJSON struct {
	Status Status       `json:"status"`
	Report *Report      `json:"report,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

// MarshalJSON 输出 {"status": ..., "report"|"error": ...}
func (s AppState) MarshalJSON() ([]byte, error) {
	out := appStateJSON{Status: s.Status()}
	switch out.Status {
	case StatusLoaded:
		out.Report = s.report
	case StatusFailed:
		detail := s.failure
		out.Error = &detail
	}
	return json.Marshal(out)
}

// UnmarshalJSON 与 MarshalJSON 对应
func (s *AppState) UnmarshalJSON(data []byte) error {
	var in appStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Status {
	case StatusLoaded:
		*s = Loaded(in.Report)
	case StatusFailed:
		var detail ErrorDetail
		if in.Error != nil {
			detail = *in.Error
		}
		*s = Failed(detail)
	default:
		*s = Loading()
	}
	return nil
}
