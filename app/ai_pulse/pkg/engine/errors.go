package engine

import (
	"strings"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

// 展示层根据 reason 区分处理方式
const (
	ReasonMissingCredential = "MISSING_API_KEY"
	ReasonProviderError     = "PROVIDER_ERROR"
	ReasonMalformedResponse = "MALFORMED_RESPONSE"
)

// ErrMissingCredential 未配置可用的 API Key。用 errors.Is 判断
var ErrMissingCredential = errors.Unauthorized(ReasonMissingCredential, "未配置有效的 API Key")

// ProviderError 调用 provider 失败，保留原始信息
func ProviderError(cause error) *errors.Error {
	return errors.New(502, ReasonProviderError, cause.Error()).WithCause(cause)
}

// MalformedResponse 无法从回复中解析出报告
func MalformedResponse(detail string, cause error) *errors.Error {
	e := errors.New(502, ReasonMalformedResponse, "数据格式解析失败，请刷新重试。").
		WithMetadata(map[string]string{"detail": detail})
	if cause != nil {
		e = e.WithCause(cause)
	}
	return e
}

// IsMissingCredential 是否为凭证缺失
func IsMissingCredential(err error) bool {
	return errors.Reason(err) == ReasonMissingCredential
}

// IsProviderError 是否为 provider 调用失败
func IsProviderError(err error) bool {
	return errors.Reason(err) == ReasonProviderError
}

// IsMalformedResponse 是否为回复解析失败
func IsMalformedResponse(err error) bool {
	return errors.Reason(err) == ReasonMalformedResponse
}

// Detail 转换为展示层使用的错误信息
func Detail(err error) *model.ErrorDetail {
	if err == nil {
		return nil
	}
	e := errors.FromError(err)
	code := e.Reason
	if code == "" {
		code = ReasonProviderError
	}
	return &model.ErrorDetail{Code: code, Message: e.Message}
}

// credentialRejected provider 返回的凭证类错误
func credentialRejected(msg string) bool {
	if strings.Contains(msg, "API_KEY") {
		return true
	}
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "api key not valid") ||
		strings.Contains(lower, "not found")
}

// isPlaceholderCredential 空值或构建期注入的占位字符串
func isPlaceholderCredential(key string) bool {
	switch strings.TrimSpace(key) {
	case "", "undefined", "null":
		return true
	}
	return false
}
