package render

const pageHTML = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>AI 脉搏 | 每日趋势</title>
    {{- if and (eq .Status "loading") .RefreshPath}}
    <meta http-equiv="refresh" content="{{.PollSeconds}}">
    {{- end}}
    <style>
        :root {
            --primary-color: #2563eb;
            --bg-color: #f8fafc;
            --card-bg: #ffffff;
            --text-main: #1e293b;
            --text-secondary: #64748b;
            --border-color: #e2e8f0;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background-color: var(--bg-color);
            color: var(--text-main);
            line-height: 1.6;
            margin: 0;
            padding: 20px;
        }
        .container { max-width: 960px; margin: 0 auto; }
        header { text-align: center; margin-bottom: 40px; padding: 20px 0; }
        h1 { font-size: 2.4rem; margin: 0 0 10px 0; }
        .date-info { color: var(--text-secondary); }
        .summary { font-size: 1.1rem; margin-top: 12px; }
        section {
            background: var(--card-bg);
            border-radius: 12px;
            padding: 24px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.05);
            border: 1px solid var(--border-color);
        }
        section h2 { margin-top: 0; font-size: 1.4rem; }
        .grid { display: grid; gap: 20px; grid-template-columns: 1fr; }
        @media (min-width: 768px) { .grid { grid-template-columns: 1fr 1fr; } }
        .item { background: #f8fafc; padding: 16px; border-radius: 8px; border-left: 4px solid #cbd5e1; }
        .item h3 { margin: 0 0 8px 0; font-size: 1.1rem; }
        .impact { color: #991b1b; font-size: 0.9rem; }
        .badge { background: #eff6ff; color: var(--primary-color); padding: 2px 10px; border-radius: 20px; font-size: 0.8rem; }
        .tip { background: #f0fdf4; color: #166534; padding: 8px; border-radius: 6px; }
        .ref-list { list-style: none; padding: 0; font-size: 0.9rem; }
        .ref-list li { margin-bottom: 6px; }
        a { color: var(--primary-color); text-decoration: none; }
        a:hover { text-decoration: underline; }
        .state { text-align: center; padding: 80px 20px; }
        .error { border-left: 4px solid #ef4444; background: #fef2f2; text-align: left; }
        button { background: var(--primary-color); color: #fff; border: none; padding: 8px 20px; border-radius: 6px; cursor: pointer; }
    </style>
</head>
<body>
<div class="container">
{{- if eq .Status "loading"}}
    <div class="state" id="loading">
        <h1>📡 AI 脉搏</h1>
        <p>正在联网检索今日 AI 动态，请稍候...</p>
    </div>
{{- else if eq .Status "failed"}}
    <section class="state error" id="failed" data-code="{{.Failure.Code}}">
        {{- if .MissingCredential}}
        <h2>🔑 未检测到可用的 API Key</h2>
        <p>请设置环境变量 <code>API_KEY</code> 后重试。可以在 <a href="{{.KeyHelpURL}}" target="_blank">{{.KeyHelpURL}}</a> 免费申请。</p>
        {{- else}}
        <h2>⚠️ 获取失败</h2>
        <p>{{.Failure.Message}}</p>
        {{- end}}
        {{template "retry" .}}
    </section>
{{- else}}
{{- with .Report}}
    <header>
        <h1>📡 {{.Headline}}</h1>
        <div class="date-info">{{.Date}} • 更新于 {{datetime .LastUpdated}}</div>
        <div class="summary">{{.Summary}}</div>
    </header>

    <section id="events">
        <h2>🌍 全球 AI 大事件</h2>
        <div class="grid">
        {{- range .Events}}
            <div class="item">
                <h3>{{.Title}}</h3>
                <p>{{.Summary}}</p>
                <div class="impact">影响：{{.Impact}}</div>
            </div>
        {{- end}}
        </div>
    </section>

    <section id="tools">
        <h2>🛠️ 热门新工具雷达</h2>
        <div class="grid">
        {{- range .Tools}}
            <div class="item">
                <h3>{{if .URL}}<a href="{{.URL}}" target="_blank">{{.Name}}</a>{{else}}{{.Name}}{{end}} <span class="badge">{{label .Category}}</span></h3>
                <p>{{.Description}}</p>
                <div>✨ {{.Highlight}}</div>
            </div>
        {{- end}}
        </div>
    </section>

    <section id="playstyles">
        <h2>🎮 前沿玩法指南</h2>
        {{- range .Playstyles}}
        <div class="item">
            <h3>{{.Title}}</h3>
            <p>{{.Description}}</p>
            {{- if .CommunityCase}}
            <p>社区案例：{{.CommunityCase}}</p>
            {{- end}}
            <ol>
            {{- range $i, $step := .TutorialSteps}}
                <li data-step="{{inc $i}}">{{$step}}</li>
            {{- end}}
            </ol>
        </div>
        {{- end}}
    </section>

    <section id="business">
        <h2>💰 商业成功案例</h2>
        <div class="grid">
        {{- range .BusinessCases}}
            <div class="item">
                <h3>{{.Title}} <span class="badge">{{.Industry}}</span></h3>
                <p>方案：{{.Solution}}</p>
                <p>效果：{{.Result}}</p>
                <div class="tip">💡 {{.MonetizationTip}}</div>
            </div>
        {{- end}}
        </div>
    </section>

    {{- if .Sources}}
    <section id="sources">
        <h2>🔗 参考来源</h2>
        <ul class="ref-list">
        {{- range .Sources}}
            <li><a href="{{.URI}}" target="_blank">{{.Title}}</a></li>
        {{- end}}
        </ul>
    </section>
    {{- end}}
{{- end}}
    {{template "retry" .}}
{{- end}}
</div>
</body>
</html>
{{define "retry"}}
    {{- if .RefreshPath}}
    <form method="post" action="{{.RefreshPath}}" style="text-align:center"><button type="submit">刷新</button></form>
    {{- else}}
    <p class="date-info" style="text-align:center">重新运行 <code>ai_pulse fetch</code> 以更新本页</p>
    {{- end}}
{{- end}}
`
