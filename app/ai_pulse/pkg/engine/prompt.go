package engine

import (
	"fmt"
	"strings"
	"time"
)

// 每个板块要求的条目数
const (
	EventCount        = 3
	ToolCount         = 4
	PlaystyleCount    = 2
	BusinessCaseCount = 2
)

// FormatDate 中文长日期，例如 2024年5月1日
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// BuildPrompt 构造当天的报告 prompt，包含四个板块的要求与 JSON 格式
func BuildPrompt(today string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "你是一位顶尖的 AI 行业分析师。请通过 Google Search 深度搜索今天（%s）全球最前沿的 AI 动态。\n\n", today)

	sb.WriteString("内容要求：\n")
	fmt.Fprintf(&sb, "1. 【全球 AI 大事件】：包含 %d 条今日最有影响力的 AI 新闻。\n", EventCount)
	fmt.Fprintf(&sb, "2. 【热门新工具雷达】：推荐 %d 个最新发布的 AI 工具，必须包含真实的官网 URL，分类只能是 语言、图像、视频、音频、其他 之一。\n", ToolCount)
	fmt.Fprintf(&sb, "3. 【前沿玩法指南】：提供 %d 个具体的 AI 创作、办公或生活的实用新玩法，每个玩法附带分步教程。\n", PlaystyleCount)
	fmt.Fprintf(&sb, "4. 【商业成功案例】：挖掘 %d 个 AI 变现或企业落地的真实成功案例。\n\n", BusinessCaseCount)

	sb.WriteString("请严格按照以下 JSON 格式输出，不要输出 JSON 以外的内容：\n")
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  \"date\": \"%s\",\n", today)
	sb.WriteString(`  "headline": "今日 AI 全球情报站",
  "summary": "一句话概括今日最核心的趋势",
  "events": [{"title": "事件", "summary": "简述", "impact": "影响"}],
  "tools": [{"name": "工具", "category": "分类", "description": "简介", "url": "URL", "highlight": "亮点"}],
  "playstyles": [{"title": "玩法", "description": "简介", "communityCase": "案例", "tutorialSteps": ["步骤1", "步骤2", "步骤3"]}],
  "businessCases": [{"title": "标题", "industry": "行业", "solution": "方案", "result": "效果", "monetizationTip": "建议"}]
}
`)

	return sb.String()
}
