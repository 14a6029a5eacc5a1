package render

import (
	"bytes"
	"html/template"
	"io"
	"time"

	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/engine"
	"github.com/iWorld-y/ai_pulse/app/ai_pulse/pkg/model"
)

// KeyHelpURL 申请 Gemini API Key 的地址
const KeyHelpURL = "https://aistudio.google.com/app/apikey"

// PollSeconds loading 页面自动重新加载的间隔
const PollSeconds = 5

var pageTpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"datetime": func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
	"label":    func(c model.ToolCategory) string { return string(c.Label()) },
	"inc":      func(i int) int { return i + 1 },
}).Parse(pageHTML))

// Options 页面选项
type Options struct {
	// RefreshPath 刷新表单提交地址；为空表示静态页面，不展示刷新入口
	RefreshPath string
}

// pageData 模板数据
type pageData struct {
	Status            model.Status
	Report            *model.Report
	Failure           model.ErrorDetail
	MissingCredential bool
	KeyHelpURL        string
	RefreshPath       string
	PollSeconds       int
}

// Page 按状态渲染完整页面
func Page(w io.Writer, state model.AppState, opts Options) error {
	data := pageData{
		Status:      state.Status(),
		KeyHelpURL:  KeyHelpURL,
		RefreshPath: opts.RefreshPath,
		PollSeconds: PollSeconds,
	}
	if r, ok := state.Report(); ok {
		data.Report = r
	}
	if d, ok := state.Failure(); ok {
		data.Failure = d
		data.MissingCredential = d.Code == engine.ReasonMissingCredential
	}
	return pageTpl.Execute(w, data)
}

// PageBytes 渲染为字节，便于写文件或作为 HTTP 响应
func PageBytes(state model.AppState, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Page(&buf, state, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
