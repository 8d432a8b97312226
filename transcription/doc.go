// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends.
//
// It follows the provider pattern with a pluggable registry so the active
// backend is selected by configuration.
//
// # Backends
//
//   - transcription/whisper: on-box Whisper CLI transcription
//   - transcription/assemblyai: remote AssemblyAI upload/submit/poll pipeline
//
// # Usage
//
//	reg := transcription.NewRegistry()
//	reg.RegisterFactory(whisper.ProviderName, whisper.Factory())
//	p, err := reg.Create(cfg.Provider, providerCfg)
//	result, err := p.Transcribe(ctx, req)
package transcription
