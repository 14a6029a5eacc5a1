package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

const minimalReport = `{"date":"2024年5月1日","headline":"H","summary":"S","events":[],"tools":[],"playstyles":[],"businessCases":[]}`

const fullReport = `{
  "date": "2024年5月1日",
  "headline": "今日 AI 全球情报站",
  "summary": "多模态模型进入日常办公",
  "events": [{"title": "Gemini 3 发布", "summary": "Google 发布新模型", "impact": "推理能力大幅提升"}],
  "tools": [{"name": "Sora", "category": "视频", "description": "文生视频", "url": "https://openai.com/sora", "highlight": "一分钟长镜头"}],
  "playstyles": [{"title": "AI 播客", "description": "用 AI 生成播客", "communityCase": "小红书博主", "tutorialSteps": ["写稿", "配音", "剪辑"]}],
  "businessCases": [{"title": "AI 客服", "industry": "电商", "solution": "大模型客服", "result": "人力成本下降 40%", "monetizationTip": "按坐席收费"}],
  "lastUpdated": "1999-01-01T00:00:00Z",
  "sources": [{"title": "伪造", "uri": "https://fake.example"}]
}`

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"plain", minimalReport},
		{"json fence", "```json\n" + minimalReport + "\n```"},
		{"bare fence", "```\n" + minimalReport + "\n```"},
		{"upper tag", "```JSON\n" + minimalReport + "```"},
		{"surrounding whitespace", "\n\n  ```json\n" + minimalReport + "\n```  \n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stripped := StripFences(tc.in)
			assert.Equal(t, minimalReport, stripped)
			assert.Equal(t, stripped, StripFences(stripped))
		})
	}
}

func TestExtractObject_FencedEquivalentToDirect(t *testing.T) {
	inputs := []string{minimalReport, fullReport}
	for _, in := range inputs {
		var direct, fenced any
		require.NoError(t, json.Unmarshal([]byte(in), &direct))

		obj, err := ExtractObject("```json\n" + in + "\n```")
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal([]byte(obj), &fenced))
		assert.Equal(t, direct, fenced)
	}
}

func TestExtractObject_ProseRecovery(t *testing.T) {
	text := "好的，以下是今天的 AI 日报：\n" + fullReport + "\n希望对你有帮助！如需调整 {格式} 请告诉我"
	_, err := ExtractObject(text)
	// 最后一个 } 在尾部说明里，最外层截取无法解析
	require.Error(t, err)

	text = "好的，以下是今天的 AI 日报：\n" + fullReport + "\n希望对你有帮助！"
	obj, err := ExtractObject(text)
	require.NoError(t, err)

	var got, want any
	require.NoError(t, json.Unmarshal([]byte(obj), &got))
	require.NoError(t, json.Unmarshal([]byte(fullReport), &want))
	assert.Equal(t, want, got)
}

func TestExtractObject_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"抱歉，我无法完成这个请求。",
		"```json\n{\"headline\": \n```",
		"} 反向的括号 {",
		"[1, 2, 3]",
		`"just a string"`,
	}
	for _, in := range inputs {
		_, err := ExtractObject(in)
		require.Error(t, err, in)
		assert.True(t, IsMalformedResponse(err), in)
	}
}

func TestNormalize_EndToEndScenario(t *testing.T) {
	n := NewNormalizer(nil)
	raw := "```json\n" + minimalReport + "\n```"

	report, err := n.Normalize(raw, nil)
	require.NoError(t, err)

	assert.Equal(t, "2024年5月1日", report.Date)
	assert.Equal(t, "H", report.Headline)
	assert.Equal(t, "S", report.Summary)
	assert.Empty(t, report.Events)
	assert.Empty(t, report.Tools)
	assert.Empty(t, report.Playstyles)
	assert.Empty(t, report.BusinessCases)
	assert.NotNil(t, report.Sources)
	assert.Empty(t, report.Sources)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sources":[]`)
	assert.Contains(t, string(data), `"events":[]`)
}

func TestNormalize_PassesSectionsThrough(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	n := NewNormalizer(fixedClock(now))

	report, err := n.Normalize(fullReport, []model.Source{{Title: "Google", URI: "https://blog.google"}})
	require.NoError(t, err)

	assert.Equal(t, now, report.LastUpdated)
	assert.Equal(t, []model.Source{{Title: "Google", URI: "https://blog.google"}}, report.Sources)
	require.Len(t, report.Tools, 1)
	assert.Equal(t, model.CategoryVideo, report.Tools[0].Category)
	require.Len(t, report.Playstyles, 1)
	assert.Equal(t, []string{"写稿", "配音", "剪辑"}, report.Playstyles[0].TutorialSteps)
	assert.Equal(t, "小红书博主", report.Playstyles[0].CommunityCase)
	require.Len(t, report.BusinessCases, 1)
	assert.Equal(t, "按坐席收费", report.BusinessCases[0].MonetizationTip)
}

func TestNormalize_LastUpdatedIsLocal(t *testing.T) {
	n := NewNormalizer(nil)
	before := time.Now()

	report, err := n.Normalize(fullReport, nil)
	require.NoError(t, err)

	assert.False(t, report.LastUpdated.Before(before))
	assert.NotEqual(t, 1999, report.LastUpdated.Year())
}

func TestNormalize_RequiredFields(t *testing.T) {
	n := NewNormalizer(nil)
	cases := map[string]string{
		"missing tools":     `{"date":"d","headline":"H","summary":"S","events":[],"playstyles":[],"businessCases":[]}`,
		"missing headline":  `{"date":"d","summary":"S","events":[],"tools":[],"playstyles":[],"businessCases":[]}`,
		"null events":       `{"date":"d","headline":"H","summary":"S","events":null,"tools":[],"playstyles":[],"businessCases":[]}`,
		"object as array":   `{"date":"d","headline":"H","summary":"S","events":{},"tools":[],"playstyles":[],"businessCases":[]}`,
		"string as section": `{"date":"d","headline":"H","summary":"S","events":[],"tools":"Sora","playstyles":[],"businessCases":[]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			report, err := n.Normalize(raw, nil)
			assert.Nil(t, report)
			assert.True(t, IsMalformedResponse(err))
		})
	}
}

func TestNormalize_LooseNestedItems(t *testing.T) {
	n := NewNormalizer(nil)
	raw := `{"date":"d","headline":"H","summary":"S","events":[{"title":"只有标题"}],"tools":[{"name":"X","category":"Agent"}],"playstyles":[{"title":"P"}],"businessCases":[]}`

	report, err := n.Normalize(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "只有标题", report.Events[0].Title)
	assert.Empty(t, report.Events[0].Impact)
	assert.Equal(t, model.CategoryOther, report.Tools[0].Category.Label())
	assert.Nil(t, report.Playstyles[0].TutorialSteps)
}

func TestNormalize_MistypedNestedFields(t *testing.T) {
	n := NewNormalizer(nil)
	raw := `{
  "date": null,
  "headline": 5,
  "summary": "S",
  "events": [{"title": "发布会", "summary": "新模型", "impact": 9}, "纯文本事件", null],
  "tools": [{"name": "X", "category": "视频", "url": null, "highlight": {"speed": "2x"}}],
  "playstyles": [
    {"title": "播客", "tutorialSteps": "打开应用后一键生成"},
    {"title": "绘画", "tutorialSteps": ["构图", 2, true]},
    {"title": "空", "tutorialSteps": null}
  ],
  "businessCases": [{"title": "客服", "result": 0.4, "monetizationTip": false}]
}`

	report, err := n.Normalize(raw, nil)
	require.NoError(t, err)

	assert.Empty(t, report.Date)
	assert.Equal(t, "5", report.Headline)

	require.Len(t, report.Events, 3)
	assert.Equal(t, "9", report.Events[0].Impact)
	assert.Equal(t, "纯文本事件", report.Events[1].Title)
	assert.Equal(t, model.Event{}, report.Events[2])

	require.Len(t, report.Tools, 1)
	assert.Equal(t, model.CategoryVideo, report.Tools[0].Category)
	assert.Empty(t, report.Tools[0].URL)
	assert.Equal(t, `{"speed": "2x"}`, report.Tools[0].Highlight)

	require.Len(t, report.Playstyles, 3)
	assert.Equal(t, []string{"打开应用后一键生成"}, report.Playstyles[0].TutorialSteps)
	assert.Equal(t, []string{"构图", "2", "true"}, report.Playstyles[1].TutorialSteps)
	assert.Nil(t, report.Playstyles[2].TutorialSteps)

	require.Len(t, report.BusinessCases, 1)
	assert.Equal(t, "0.4", report.BusinessCases[0].Result)
	assert.Equal(t, "false", report.BusinessCases[0].MonetizationTip)
}

func TestFilterSources(t *testing.T) {
	got := FilterSources([]model.Source{
		{Title: "A", URI: "#"},
		{Title: "B", URI: ""},
		{Title: "C", URI: "http://x"},
	})
	assert.Equal(t, []model.Source{{Title: "C", URI: "http://x"}}, got)

	got = FilterSources([]model.Source{
		{Title: "", URI: "https://a.example"},
		{Title: "重复", URI: "https://a.example"},
		{Title: "B", URI: "  https://b.example "},
		{Title: "空白", URI: "   "},
	})
	assert.Equal(t, []model.Source{
		{Title: DefaultSourceTitle, URI: "https://a.example"},
		{Title: "B", URI: "https://b.example"},
	}, got)

	assert.Empty(t, FilterSources(nil))
}
