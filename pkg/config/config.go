package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/warpmint/framepay/pkg/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server" validate:"required"`
	Frame      FrameConfig      `yaml:"frame" validate:"required"`
	Glide      GlideConfig      `yaml:"glide" validate:"required"`
	Neynar     NeynarConfig     `yaml:"neynar" validate:"required"`
	SimpleHash SimpleHashConfig `yaml:"simplehash"`
	Eth        EthConfig        `yaml:"eth" validate:"required"`
	Mint       MintConfig       `yaml:"mint" validate:"required"`
	Cache      CacheConfig      `yaml:"cache"`
	WebSocket  WebSocketConfig  `yaml:"websocket"`
	Logger     logger.Config    `yaml:"logger"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port" validate:"required"`
	Environment string `yaml:"environment"`
}

// FrameConfig covers the frame-protocol surface: where static and rendered
// images live, where browsers land when they open the frame URL directly,
// and which explorer the settlement link points at.
type FrameConfig struct {
	ImageBaseURL    string `yaml:"image_base_url" validate:"required,url"`
	BrowserLocation string `yaml:"browser_location"`
	ExplorerBaseURL string `yaml:"explorer_base_url" validate:"required,url"`
	AspectRatio     string `yaml:"aspect_ratio"`
}

// GlideConfig configures the payment-abstraction session API client.
// Timeout is in seconds, the delay/interval fields in milliseconds.
// PollIntervalMs/PollTimeoutMs bound the internal wait-for-session loop.
type GlideConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	ProjectID      string `yaml:"project_id"`
	Timeout        int    `yaml:"timeout"`
	MaxRetries     int    `yaml:"max_retries"`
	RetryDelayMs   int    `yaml:"retry_delay_ms"`
	PollIntervalMs int    `yaml:"poll_interval_ms"`
	PollTimeoutMs  int    `yaml:"poll_timeout_ms"`
	PaymentChain   string `yaml:"payment_chain" validate:"required"`
}

func (c GlideConfig) HTTPTimeout() time.Duration { return time.Duration(c.Timeout) * time.Second }
func (c GlideConfig) RetryDelay() time.Duration  { return time.Duration(c.RetryDelayMs) * time.Millisecond }
func (c GlideConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}
func (c GlideConfig) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutMs) * time.Millisecond
}

type NeynarConfig struct {
	BaseURL      string `yaml:"base_url" validate:"required,url"`
	APIKey       string `yaml:"api_key"`
	Timeout      int    `yaml:"timeout"`
	MaxRetries   int    `yaml:"max_retries"`
	RetryDelayMs int    `yaml:"retry_delay_ms"`
}

func (c NeynarConfig) HTTPTimeout() time.Duration { return time.Duration(c.Timeout) * time.Second }
func (c NeynarConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

type SimpleHashConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout int    `yaml:"timeout"`
}

func (c SimpleHashConfig) HTTPTimeout() time.Duration { return time.Duration(c.Timeout) * time.Second }

type EthConfig struct {
	RPCURL                string `yaml:"rpc_url" validate:"required"`
	Timeout               int    `yaml:"timeout"`
	ReceiptPollIntervalMs int    `yaml:"receipt_poll_interval_ms"`
	ReceiptTimeout        int    `yaml:"receipt_timeout"`
}

func (c EthConfig) ReceiptPollInterval() time.Duration {
	return time.Duration(c.ReceiptPollIntervalMs) * time.Millisecond
}
func (c EthConfig) ReceiptWait() time.Duration { return time.Duration(c.ReceiptTimeout) * time.Second }

type MintConfig struct {
	ContractAddress string `yaml:"contract_address" validate:"required"`
	PriceWei        string `yaml:"price_wei" validate:"required"`
	PaymentCurrency string `yaml:"payment_currency" validate:"required"`
	BatchSize       int    `yaml:"batch_size"`
}

type CacheConfig struct {
	UserCapacity int `yaml:"user_capacity"`
}

type WebSocketConfig struct {
	ReadBufferSize  int  `yaml:"read_buffer_size"`
	WriteBufferSize int  `yaml:"write_buffer_size"`
	CheckOrigin     bool `yaml:"check_origin"`
}

func Load() (*Config, error) {
	// .env is optional; deployment environments inject variables directly.
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config.yaml"
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(configData, &config); err != nil {
		return nil, err
	}

	config.applyEnvOverrides()
	config.applyDefaults()

	if err := validator.New().Struct(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyEnvOverrides pulls secrets from the environment so they never have
// to live in config.yaml.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GLIDE_PROJECT_ID"); v != "" {
		c.Glide.ProjectID = v
	}
	if v := os.Getenv("NEYNAR_API_KEY"); v != "" {
		c.Neynar.APIKey = v
	}
	if v := os.Getenv("SIMPLEHASH_API_KEY"); v != "" {
		c.SimpleHash.APIKey = v
	}
	if v := os.Getenv("ETH_RPC_URL"); v != "" {
		c.Eth.RPCURL = v
	}
}

func (c *Config) applyDefaults() {
	if c.Glide.Timeout == 0 {
		c.Glide.Timeout = 15
	}
	if c.Glide.MaxRetries == 0 {
		c.Glide.MaxRetries = 3
	}
	if c.Glide.RetryDelayMs == 0 {
		c.Glide.RetryDelayMs = 1000
	}
	if c.Glide.PollIntervalMs == 0 {
		c.Glide.PollIntervalMs = 2000
	}
	if c.Glide.PollTimeoutMs == 0 {
		c.Glide.PollTimeoutMs = 30000
	}
	if c.Neynar.Timeout == 0 {
		c.Neynar.Timeout = 10
	}
	if c.Neynar.MaxRetries == 0 {
		c.Neynar.MaxRetries = 5
	}
	if c.Neynar.RetryDelayMs == 0 {
		c.Neynar.RetryDelayMs = 1000
	}
	if c.SimpleHash.Timeout == 0 {
		c.SimpleHash.Timeout = 10
	}
	if c.Eth.Timeout == 0 {
		c.Eth.Timeout = 15
	}
	if c.Eth.ReceiptPollIntervalMs == 0 {
		c.Eth.ReceiptPollIntervalMs = 2000
	}
	if c.Eth.ReceiptTimeout == 0 {
		c.Eth.ReceiptTimeout = 60
	}
	if c.Mint.BatchSize == 0 {
		c.Mint.BatchSize = 10
	}
	if c.Cache.UserCapacity == 0 {
		c.Cache.UserCapacity = 1024
	}
	if c.Frame.AspectRatio == "" {
		c.Frame.AspectRatio = "1:1"
	}
	if c.WebSocket.ReadBufferSize == 0 {
		c.WebSocket.ReadBufferSize = 1024
	}
	if c.WebSocket.WriteBufferSize == 0 {
		c.WebSocket.WriteBufferSize = 1024
	}
}
