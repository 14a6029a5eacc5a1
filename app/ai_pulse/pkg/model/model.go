package model

import "time"

// ToolCategory 工具分类，取值限定在固定标签集合内
type ToolCategory string

const (
	CategoryLanguage ToolCategory = "语言"
	CategoryImage    ToolCategory = "图像"
	CategoryVideo    ToolCategory = "视频"
	CategoryAudio    ToolCategory = "音频"
	CategoryOther    ToolCategory = "其他"
)

// Categories 全部合法分类，按展示顺序排列
var Categories = []ToolCategory{CategoryLanguage, CategoryImage, CategoryVideo, CategoryAudio, CategoryOther}

// Known 是否属于固定标签集合
func (c ToolCategory) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Label 展示用标签，未知分类归入「其他」
func (c ToolCategory) Label() ToolCategory {
	if c.Known() {
		return c
	}
	return CategoryOther
}

// Event 全球 AI 大事件
type Event struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Impact  string `json:"impact"` // 影响力描述
}

// Tool 热门新工具
type Tool struct {
	Name        string       `json:"name"`
	Category    ToolCategory `json:"category"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Highlight   string       `json:"highlight"` // 核心亮点
}

// Playstyle 前沿玩法指南
type Playstyle struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CommunityCase string   `json:"communityCase"` // 社区真实案例
	TutorialSteps []string `json:"tutorialSteps"`
}

// BusinessCase 商业成功案例
type BusinessCase struct {
	Title           string `json:"title"`
	Industry        string `json:"industry"`
	Solution        string `json:"solution"`
	Result          string `json:"result"`          // 商业效果或变现逻辑
	MonetizationTip string `json:"monetizationTip"` // 赚钱建议
}

// Source 引用来源
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Report 每日报告。构造后不再修改
type Report struct {
	Date          string         `json:"date"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	Headline      string         `json:"headline"`
	Summary       string         `json:"summary"`
	Events        []Event        `json:"events"`
	Tools         []Tool         `json:"tools"`
	Playstyles    []Playstyle    `json:"playstyles"`
	BusinessCases []BusinessCase `json:"businessCases"`
	Sources       []Source       `json:"sources"`
}
