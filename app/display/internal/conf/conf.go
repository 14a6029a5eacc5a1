package conf

type Bootstrap struct {
	Server *Server
	Pulse  *Pulse
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Pulse struct {
	Provider      string   `json:"provider"`
	Gemini        *Gemini  `json:"gemini"`
	Llm           *LLM     `json:"llm"`
	Search        *Search  `json:"search"`
	CredentialEnv []string `json:"credential_env"`
	Log           *Log     `json:"log"`
}

type Gemini struct {
	Model          string `json:"model"`
	ThinkingBudget int32  `json:"thinking_budget"`
}

type LLM struct {
	BaseUrl string `json:"base_url"`
	Model   string `json:"model"`
}

type Search struct {
	Provider      string   `json:"provider"`
	Tavily        *Tavily  `json:"tavily"`
	Searxng       *SearXNG `json:"searxng"`
	MaxResults    int32    `json:"max_results"`
	EnrichContent bool     `json:"enrich_content"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}
