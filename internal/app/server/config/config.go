package config

import (
	"log"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultAppName = "opsboard"
	defaultTheme   = "dark"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger

	// app is mutated at runtime through UpdateApp while request
	// handlers read it, so access goes through the mutex.
	mu  sync.RWMutex
	app App
}

// App holds the display settings that used to live in ambient storage.
// Injected explicitly at startup, read through App() and replaced
// through UpdateApp.
type App struct {
	Name  string
	Theme string
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		app: App{
			Name:  viper.GetString("app_name"),
			Theme: viper.GetString("app_theme"),
		},
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	if config.app.Name == "" {
		config.app.Name = defaultAppName
	}
	if config.app.Theme == "" {
		config.app.Theme = defaultTheme
	}
	if config.Server.RunAddress == "" {
		config.Server.RunAddress = ":8080"
	}

	return &config
}

// App returns a copy of the current display settings.
func (c *Config) App() App {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.app
}

// UpdateApp replaces the display settings; empty fields keep their
// current value. Safe to call while other goroutines read through App.
func (c *Config) UpdateApp(app App) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if app.Name != "" {
		c.app.Name = app.Name
	}
	if app.Theme != "" {
		c.app.Theme = app.Theme
	}
}
