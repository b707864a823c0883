package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/calG1/PDF-Translator/internal/config"
	"github.com/calG1/PDF-Translator/internal/engine"
	"github.com/calG1/PDF-Translator/internal/export"
	"github.com/calG1/PDF-Translator/internal/ocr"
	"github.com/calG1/PDF-Translator/internal/scanner"
	"github.com/calG1/PDF-Translator/internal/translate"
	"github.com/calG1/PDF-Translator/pkg/logger"
	"github.com/calG1/PDF-Translator/pkg/version"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	pdfDir := flag.String("pdf-dir", "", "directory containing PDF files (overrides config)")
	outputDir := flag.String("output-dir", "", "directory to save translated documents (overrides config)")
	targetLang := flag.String("lang", "", "target language code (overrides config)")
	provider := flag.String("provider", "", "translation provider: openai, gemini, free, mock (overrides config)")
	useOCR := flag.Bool("ocr", false, "extract text via OCR instead of the native text layer")
	pageRange := flag.String("pages", "", "page range to translate, e.g. 1-3,5 (default all)")
	archiveName := flag.String("archive", "translated_files.zip", "name of the zip bundling all exported documents")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[pdftranslator] "))
	log.SetVerbose(*verbose)
	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal("Error loading config: %v", err)
		}
		cfg = config.Default()
	}
	if *pdfDir != "" {
		cfg.PDFSourceDir = *pdfDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *targetLang != "" {
		cfg.TargetLang = *targetLang
	}
	if *provider != "" {
		cfg.Provider = *provider
	}
	if *useOCR {
		cfg.UseOCR = true
	}
	if *pageRange != "" {
		cfg.PageRange = *pageRange
	}

	if _, err := os.Stat(cfg.PDFSourceDir); os.IsNotExist(err) {
		log.Fatal("PDF directory does not exist: %s", cfg.PDFSourceDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatal("Error creating output directory: %v", err)
	}

	apiKey := config.APIKey()
	providerTag := translate.DetectProvider(cfg.Provider, apiKey)
	if providerTag != cfg.Provider {
		log.Info("Provider switched to %s based on API key format", providerTag)
	}
	translator, err := translate.NewProvider(providerTag, apiKey)
	if err != nil {
		log.Fatal("Error configuring translation provider: %v", err)
	}

	var recognizer ocr.Recognizer
	if cfg.UseOCR {
		tess := ocr.NewTesseract()
		defer tess.Close()
		recognizer = tess
	}

	eng, err := engine.New(engine.Options{
		Recognizer: recognizer,
		Provider:   translator,
		TargetLang: cfg.TargetLang,
		OCRLang:    cfg.OCRLang,
		Scale:      cfg.Scale,
		Logger:     log,
		Progress: func(ev engine.ProgressEvent) {
			log.Debug("%s %s (page %d/%d)", ev.Stage, ev.Filename, ev.Page, ev.PageCount)
		},
	})
	if err != nil {
		log.Fatal("Error initializing engine: %v", err)
	}
	defer eng.Close()

	ctx := context.Background()

	dirScanner := scanner.New(log)
	log.Info("Scanning directory: %s", cfg.PDFSourceDir)
	pdfs, err := dirScanner.FindPDFs(ctx, cfg.PDFSourceDir)
	if err != nil {
		log.Fatal("Error finding PDFs: %v", err)
	}
	log.Info("Found %d PDFs to translate", len(pdfs))

	for _, pdf := range pdfs {
		data, err := os.ReadFile(pdf.AbsolutePath)
		if err != nil {
			log.Info("Error reading %s: %v", pdf.RelativePath, err)
			continue
		}
		doc := eng.Add(pdf.RelativePath, data, cfg.UseOCR)
		if cfg.PageRange != "" {
			if err := eng.SetPageRange(doc.ID, cfg.PageRange); err != nil {
				log.Info("Error setting page range for %s: %v", pdf.RelativePath, err)
			}
		}
	}

	if err := eng.ProcessQueue(ctx); err != nil {
		log.Fatal("Processing aborted: %v", err)
	}
	if err := eng.TranslateAll(ctx); err != nil {
		log.Fatal("Translation aborted: %v", err)
	}

	artifacts, err := eng.ExportAll(ctx)
	if err != nil {
		log.Fatal("Export aborted: %v", err)
	}
	if len(artifacts) == 0 {
		log.Fatal("No documents were exported")
	}

	for _, artifact := range artifacts {
		name := export.TranslatedName(filepath.Base(artifact.Filename))
		path := filepath.Join(cfg.OutputDir, name)
		if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
			log.Info("Error writing %s: %v", path, err)
		}
	}

	archivePath := filepath.Join(cfg.OutputDir, *archiveName)
	f, err := os.Create(archivePath)
	if err != nil {
		log.Fatal("Error creating archive: %v", err)
	}
	defer f.Close()
	if err := export.WriteArchive(f, artifacts); err != nil {
		log.Fatal("Error writing archive: %v", err)
	}

	log.Info("Translation complete:")
	log.Info("- Documents translated: %d/%d", len(artifacts), len(pdfs))
	log.Info("- Output saved to: %s", cfg.OutputDir)
	log.Info("- Archive: %s", archivePath)
}
