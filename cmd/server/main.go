// Command server runs the interview-coach HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/interview-coach/analysis"
	"github.com/skillsenselab/interview-coach/config"
	"github.com/skillsenselab/interview-coach/interview"
	"github.com/skillsenselab/interview-coach/logger"
	"github.com/skillsenselab/interview-coach/server"
	"github.com/skillsenselab/interview-coach/transcription"
	"github.com/skillsenselab/interview-coach/transcription/assemblyai"
	"github.com/skillsenselab/interview-coach/transcription/whisper"
	"github.com/skillsenselab/interview-coach/util"
	"github.com/skillsenselab/interview-coach/version"
)

const serviceName = "interview-coach"

func main() {
	var (
		configFile  = flag.String("config", "", "path to config file (default: auto-discover)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get().String())
		return
	}

	if err := run(*configFile); err != nil {
		logger.Error("Service failed", logger.ErrorFields("run", err))
		os.Exit(1)
	}
}

func run(configFile string) error {
	var cfg config.Config
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if err := config.LoadAndValidate(serviceName, &cfg, opts...); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("main")
	log.Info("Starting service", map[string]interface{}{
		"service":     cfg.Name,
		"environment": cfg.Environment,
		"version":     version.Get().Version,
	})
	log.Debug("Credentials loaded", map[string]interface{}{
		"groq_api_key":       util.MaskSecret(cfg.Analysis.APIKey, 4),
		"assemblyai_api_key": util.MaskSecret(cfg.Transcription.AssemblyAI.APIKey, 4),
	})

	transcriber, err := newTranscriber(cfg.Transcription)
	if err != nil {
		return fmt.Errorf("create transcription provider: %w", err)
	}
	log.Info("Transcription provider ready", map[string]interface{}{
		logger.FieldProvider: transcriber.Name(),
	})

	analyzer := analysis.NewGroqAnalyzer(cfg.Analysis)

	svcOpts := interview.Options{}
	if cfg.Transcription.Provider == assemblyai.ProviderName {
		svcOpts.MaxAudioBytes = cfg.Transcription.AssemblyAI.MaxAudioBytes()
	}
	svc := interview.NewService(transcriber, analyzer, svcOpts)

	srv := server.New(cfg.Server, logger.GetGlobalLogger())
	server.NewHandler(svc, cfg.Name).RegisterRoutes(srv.Engine())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", map[string]interface{}{"signal": sig.String()})
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	if err := srv.Stop(context.Background()); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Service stopped")
	return nil
}

// newTranscriber builds the configured transcription provider through the
// provider registry's factory path.
func newTranscriber(cfg config.TranscriptionConfig) (transcription.Provider, error) {
	registry := transcription.NewRegistry()
	registry.RegisterFactory(whisper.ProviderName, whisper.Factory())
	registry.RegisterFactory(assemblyai.ProviderName, assemblyai.Factory())

	p, err := registry.Create(cfg.Provider, providerSettings(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w (registered: %v)", err, registry.List())
	}
	registry.Set(cfg.Provider, p)
	return p, nil
}

// providerSettings flattens the typed section for the selected variant into
// the generic settings map its factory consumes.
func providerSettings(cfg config.TranscriptionConfig) map[string]any {
	switch cfg.Provider {
	case whisper.ProviderName:
		return map[string]any{
			"binary":   cfg.Whisper.Binary,
			"model":    cfg.Whisper.Model,
			"language": cfg.Whisper.Language,
			"timeout":  cfg.Whisper.Timeout,
			"temp_dir": cfg.Whisper.TempDir,
		}
	case assemblyai.ProviderName:
		return map[string]any{
			"api_key":        cfg.AssemblyAI.APIKey,
			"base_url":       cfg.AssemblyAI.BaseURL,
			"chunk_size":     cfg.AssemblyAI.ChunkSize,
			"poll_interval":  cfg.AssemblyAI.PollInterval,
			"poll_timeout":   cfg.AssemblyAI.PollTimeout,
			"max_audio_size": cfg.AssemblyAI.MaxAudioSize,
		}
	}
	return nil
}
