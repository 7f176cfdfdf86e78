package web

import "github.com/rook-computer/inkqr/internal/config"

// ServerConfig contains settings for running the HTTP server.
type ServerConfig struct {
	ListenAddr string

	// DevMode enables permissive CORS so a separately served UI can call
	// the API.
	DevMode bool

	// StaticDir, when set to an existing directory containing index.html,
	// replaces the embedded page template. Useful while editing the page.
	StaticDir string
}

// ServerConfigFrom extracts the HTTP settings from the loaded config.
func ServerConfigFrom(cfg config.Config) ServerConfig {
	return ServerConfig{ListenAddr: cfg.ListenAddr, DevMode: cfg.DevMode, StaticDir: cfg.StaticDir}
}
