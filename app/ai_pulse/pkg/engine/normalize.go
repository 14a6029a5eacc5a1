package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/logger"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

// DefaultSourceTitle 引用缺少标题时的展示文字
const DefaultSourceTitle = "参考来源"

// requiredFields 报告必须包含的顶层字段
var requiredFields = []string{"date", "headline", "summary", "events", "tools", "playstyles", "businessCases"}

// arrayFields 必须为数组（可以为空）的顶层字段
var arrayFields = []string{"events", "tools", "playstyles", "businessCases"}

// strategy 从文本中取出一个 JSON 对象，失败返回 false
type strategy struct {
	name    string
	extract func(text string) (string, bool)
}

// strategies 按顺序尝试，第一个成功的结果生效，不合并多个结果
var strategies = []strategy{
	{name: "fenced", extract: fencedObject},
	{name: "outermost-braces", extract: outermostObject},
}

// Normalizer 将 provider 的原始回复整理为 Report
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer now 为 nil 时使用 time.Now
func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Normalize 解析回复文本并合并更新时间与引用。失败时不返回任何 Report
func (n *Normalizer) Normalize(text string, citations []model.Source) (*model.Report, error) {
	raw, err := ExtractObject(text)
	if err != nil {
		return nil, err
	}

	var fields object
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, MalformedResponse("not a json object", err)
	}
	if err := checkShape(fields); err != nil {
		return nil, err
	}

	return &model.Report{
		Date:          fields.text("date"),
		LastUpdated:   n.now(),
		Headline:      fields.text("headline"),
		Summary:       fields.text("summary"),
		Events:        decodeItems(fields["events"], toEvent),
		Tools:         decodeItems(fields["tools"], toTool),
		Playstyles:    decodeItems(fields["playstyles"], toPlaystyle),
		BusinessCases: decodeItems(fields["businessCases"], toBusinessCase),
		Sources:       FilterSources(citations),
	}, nil
}

// ExtractObject 依次尝试各提取策略，返回第一个能解析为 JSON 对象的片段
func ExtractObject(text string) (string, error) {
	for _, s := range strategies {
		if obj, ok := s.extract(text); ok {
			logger.Log.Debugf("回复解析成功，策略: %s", s.name)
			return obj, nil
		}
	}
	logger.Log.Warnf("无法从回复中提取 JSON，长度 %d", len(text))
	return "", MalformedResponse("no json object found", nil)
}

// StripFences 去掉首尾的 ``` 或 ```json 标记与空白
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func fencedObject(text string) (string, bool) {
	s := StripFences(text)
	return s, isObject(s)
}

func outermostObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	s := text[start : end+1]
	return s, isObject(s)
}

func isObject(s string) bool {
	if !strings.HasPrefix(s, "{") {
		return false
	}
	var obj map[string]json.RawMessage
	return json.Unmarshal([]byte(s), &obj) == nil
}

func checkShape(fields object) error {
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return MalformedResponse(fmt.Sprintf("missing field %q", name), nil)
		}
	}
	for _, name := range arrayFields {
		if !bytes.HasPrefix(bytes.TrimSpace(fields[name]), []byte("[")) {
			return MalformedResponse(fmt.Sprintf("field %q is not an array", name), nil)
		}
	}
	return nil
}

// FilterSources 去掉空 URI 与占位符 "#"，按 URI 去重并保持顺序
func FilterSources(citations []model.Source) []model.Source {
	sources := make([]model.Source, 0, len(citations))
	seen := make(map[string]struct{}, len(citations))
	for _, c := range citations {
		uri := strings.TrimSpace(c.URI)
		if uri == "" || uri == "#" {
			continue
		}
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}

		title := strings.TrimSpace(c.Title)
		if title == "" {
			title = DefaultSourceTitle
		}
		sources = append(sources, model.Source{Title: title, URI: uri})
	}
	return sources
}
