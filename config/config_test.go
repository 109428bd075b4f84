package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when only the API key is set.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("RATE_LIMIT_PER_MINUTE")
	_ = os.Unsetenv("RAPIDAPI_BASE_URL")
	_ = os.Unsetenv("RAPIDAPI_HOST")
	_ = os.Unsetenv("RAPIDAPI_TIMEOUT")
	t.Setenv("RAPIDAPI_KEY", "test-key")

	LoadConfig()

	if AppConfig.Server.Port != "8080" || AppConfig.Server.RateLimitPerMinute != 60 {
		t.Fatalf("unexpected server defaults: %+v", AppConfig.Server)
	}
	want := RapidAPIConfig{
		Key:     "test-key",
		BaseURL: "https://latest-stock-price.p.rapidapi.com",
		Host:    "latest-stock-price.p.rapidapi.com",
		Timeout: 15 * time.Second,
	}
	if AppConfig.RapidAPI != want {
		t.Fatalf("unexpected rapidapi config: %+v", AppConfig.RapidAPI)
	}
}

// TestLoadConfig_EnvOverrides verifies environment variables take precedence over defaults.
func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RAPIDAPI_KEY", "k")
	t.Setenv("RAPIDAPI_BASE_URL", "http://localhost:9999")
	t.Setenv("RAPIDAPI_TIMEOUT", "2s")

	LoadConfig()

	if AppConfig.Server.Port != "9090" {
		t.Fatalf("expected SERVER_PORT=9090, got %q", AppConfig.Server.Port)
	}
	if AppConfig.RapidAPI.BaseURL != "http://localhost:9999" || AppConfig.RapidAPI.Timeout != 2*time.Second {
		t.Fatalf("unexpected rapidapi config: %+v", AppConfig.RapidAPI)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
