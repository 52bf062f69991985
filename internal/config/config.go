package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text or json
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr            string   `mapstructure:"addr"`
	GinMode         string   `mapstructure:"gin_mode"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	ReadTimeout     string   `mapstructure:"read_timeout"`     // duration string, e.g., "30s"
	WriteTimeout    string   `mapstructure:"write_timeout"`    // duration string
	ShutdownTimeout string   `mapstructure:"shutdown_timeout"` // duration string
}

// RedisConfig holds redis connection settings.
// When disabled, usage statistics are kept in process memory.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OpenAIConfig configures the chat-model classifier.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // optional
	Timeout string `mapstructure:"timeout"`  // duration string
}

// ClassifierConfig selects the sentiment classifier implementation.
type ClassifierConfig struct {
	Provider     string `mapstructure:"provider"` // lexicon or openai
	BatchWorkers int    `mapstructure:"batch_workers"`
}

// GeneratorConfig controls synthetic post generation.
type GeneratorConfig struct {
	Query        string `mapstructure:"query"` // echoed back by the posts endpoint
	DefaultLimit int    `mapstructure:"default_limit"`
	MaxPosts     int    `mapstructure:"max_posts"`
	TopTopics    int    `mapstructure:"top_topics"`
}

// StatsConfig controls the periodic usage report.
type StatsConfig struct {
	ReportSchedule string `mapstructure:"report_schedule"` // cron spec, e.g., "@every 5m"
}

// DashboardConfig points the terminal dashboard at a running API.
type DashboardConfig struct {
	APIURL     string `mapstructure:"api_url"`
	Timeout    string `mapstructure:"timeout"` // duration string
	PostLimit  int    `mapstructure:"post_limit"`
	RecentRows int    `mapstructure:"recent_rows"`
}

// ReportConfig controls markdown report generation.
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	Title     string `mapstructure:"title"` // supports {.CurrentDate} and {.CurrentTime}
}

// Config is the top-level configuration structure.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Redis      RedisConfig      `mapstructure:"redis"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Stats      StatsConfig      `mapstructure:"stats"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard"`
	Report     ReportConfig     `mapstructure:"report"`
}

// MaxPostsCap is the hard upper bound on posts per request.
const MaxPostsCap = 100

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.LogFormat == "" {
		c.App.LogFormat = "text"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "0.0.0.0:8000"
	}
	if c.Server.GinMode == "" {
		c.Server.GinMode = "release"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"http://localhost:8501", "http://127.0.0.1:8501"}
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "30s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "30s"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.Timeout == "" {
		c.OpenAI.Timeout = "30s"
	}
	if c.Classifier.Provider == "" {
		c.Classifier.Provider = "lexicon"
	}
	if c.Classifier.BatchWorkers <= 0 {
		c.Classifier.BatchWorkers = 4
	}
	if c.Generator.Query == "" {
		c.Generator.Query = "artificial intelligence OR machine learning OR AI"
	}
	if c.Generator.DefaultLimit == 0 {
		c.Generator.DefaultLimit = 20
	}
	if c.Generator.MaxPosts <= 0 || c.Generator.MaxPosts > MaxPostsCap {
		c.Generator.MaxPosts = MaxPostsCap
	}
	if c.Generator.TopTopics == 0 {
		c.Generator.TopTopics = 5
	}
	if c.Stats.ReportSchedule == "" {
		c.Stats.ReportSchedule = "@every 5m"
	}
	if c.Dashboard.APIURL == "" {
		c.Dashboard.APIURL = "http://localhost:8000"
	}
	if c.Dashboard.Timeout == "" {
		c.Dashboard.Timeout = "5s"
	}
	if c.Dashboard.PostLimit == 0 {
		c.Dashboard.PostLimit = 30
	}
	if c.Dashboard.RecentRows == 0 {
		c.Dashboard.RecentRows = 20
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "./out"
	}
	if c.Report.Title == "" {
		c.Report.Title = "Sentiment Report {.CurrentDate}"
	}
}
