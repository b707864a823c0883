// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	PDFSourceDir string  `yaml:"pdf_source_dir"`
	OutputDir    string  `yaml:"output_dir"`
	Provider     string  `yaml:"provider"`
	TargetLang   string  `yaml:"target_lang"`
	Scale        float64 `yaml:"scale"`
	UseOCR       bool    `yaml:"use_ocr"`
	OCRLang      string  `yaml:"ocr_lang"`
	PageRange    string  `yaml:"page_range"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		PDFSourceDir: "./pdfs",
		OutputDir:    "./translated",
		Provider:     "free",
		TargetLang:   "es",
		Scale:        1.5,
		OCRLang:      "eng",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.PDFSourceDir == "" {
		cfg.PDFSourceDir = "./pdfs"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./translated"
	}
	if cfg.Provider == "" {
		cfg.Provider = "free"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "es"
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1.5
	}
	if cfg.OCRLang == "" {
		cfg.OCRLang = "eng"
	}

	return &cfg, nil
}

// APIKey reads the translation provider key from the environment; .env files
// are loaded by the entry point before this is called.
func APIKey() string {
	if key := os.Getenv("TRANSLATOR_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}
