package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/insertion/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.SourceBaseURL, convey.ShouldEqual, "http://127.0.0.1:5000")
				convey.So(cfg.MaxConcurrentFetches, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("INSERTION_ADDR", ":8080")
			_ = os.Setenv("INSERTION_SOURCE_KIND", "dir")
			_ = os.Setenv("INSERTION_SOURCE_DIR", "/srv/data")
			_ = os.Setenv("INSERTION_TOP_DOMAINS", "5")
			_ = os.Setenv("INSERTION_LOG_FORMAT", "json")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.SourceKind, convey.ShouldEqual, config.SourceDir)
				convey.So(cfg.SourceDir, convey.ShouldEqual, "/srv/data")
				convey.So(cfg.TopDomains, convey.ShouldEqual, 5)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
source_base_url: "https://data.example.org"
top_academies: 12
fetch_timeout_ms: 2000
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INSERTION_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.SourceBaseURL, convey.ShouldEqual, "https://data.example.org")
				convey.So(cfg.TopAcademies, convey.ShouldEqual, 12)
				convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 2000)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
top_domains: 8
top_conclusion: 3
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INSERTION_CONFIG", tmpFile)
			_ = os.Setenv("INSERTION_ADDR", ":8080")
			_ = os.Setenv("INSERTION_TOP_DOMAINS", "30")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.TopDomains, convey.ShouldEqual, 30)
				convey.So(cfg.TopConclusion, convey.ShouldEqual, 3)
				convey.So(cfg.TopAcademies, convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INSERTION_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("INSERTION_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("INSERTION_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("INSERTION_TOP_DOMAINS", "many")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "insertion-config-*.yaml")
	if err != nil {
		panic(err)
	}
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"INSERTION_CONFIG",
		"INSERTION_ADDR",
		"INSERTION_LOG_LEVEL",
		"INSERTION_LOG_FORMAT",
		"INSERTION_SOURCE_KIND",
		"INSERTION_SOURCE_BASE_URL",
		"INSERTION_SOURCE_DIR",
		"INSERTION_FETCH_TIMEOUT_MS",
		"INSERTION_MAX_CONCURRENT_FETCHES",
		"INSERTION_TOP_DOMAINS",
		"INSERTION_TOP_ACADEMIES",
		"INSERTION_TOP_CONCLUSION",
	} {
		_ = os.Unsetenv(key)
	}
}
