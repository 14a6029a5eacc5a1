package engine

import (
	"bytes"
	"encoding/json"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

// object 未解码的 JSON 对象。条目内的字段按宽松规则读取，类型不符时转为文本而不是报错
type object map[string]json.RawMessage

// text 字符串原样返回，null 或缺失为空，数字、布尔与嵌套结构取其 JSON 文本
func (o object) text(name string) string {
	return looseText(o[name])
}

// list 数组逐项转为文本，单个值视为只有一项的数组
func (o object) list(name string) []string {
	raw := bytes.TrimSpace(o[name])
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		if s := looseText(raw); s != "" {
			return []string{s}
		}
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, looseText(item))
	}
	return out
}

func looseText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// decodeItems 解析板块数组。非对象条目按文本处理，作为条目标题
func decodeItems[T any](raw json.RawMessage, convert func(object) T) []T {
	var elems []json.RawMessage
	_ = json.Unmarshal(raw, &elems)

	items := make([]T, 0, len(elems))
	for _, elem := range elems {
		var o object
		if err := json.Unmarshal(elem, &o); err != nil || o == nil {
			o = object{"title": elem, "name": elem}
		}
		items = append(items, convert(o))
	}
	return items
}

func toEvent(o object) model.Event {
	return model.Event{
		Title:   o.text("title"),
		Summary: o.text("summary"),
		Impact:  o.text("impact"),
	}
}

func toTool(o object) model.Tool {
	return model.Tool{
		Name:        o.text("name"),
		Category:    model.ToolCategory(o.text("category")),
		Description: o.text("description"),
		URL:         o.text("url"),
		Highlight:   o.text("highlight"),
	}
}

func toPlaystyle(o object) model.Playstyle {
	return model.Playstyle{
		Title:         o.text("title"),
		Description:   o.text("description"),
		CommunityCase: o.text("communityCase"),
		TutorialSteps: o.list("tutorialSteps"),
	}
}

func toBusinessCase(o object) model.BusinessCase {
	return model.BusinessCase{
		Title:           o.text("title"),
		Industry:        o.text("industry"),
		Solution:        o.text("solution"),
		Result:          o.text("result"),
		MonetizationTip: o.text("monetizationTip"),
	}
}
