package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do BlockVista.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Fonte do mundo
	WorldFile string `json:"world_file"` // caminho local do snapshot JSON
	ServerURL string `json:"server_url"` // servidor de snapshots (ws://)
	WorldName string `json:"world_name"` // chave do cache local
	CacheDir  string `json:"cache_dir"`  // diretório do cache SQLite

	// Renderização
	FOV          float32 `json:"fov"`
	DrawDistance float32 `json:"draw_distance"`
	FoldSpecies  bool    `json:"fold_species"` // colapsa madeiras numa espécie só

	// Câmera / passeio
	CameraSpeed       float32 `json:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity"`
	ZoomSpeed         float32 `json:"zoom_speed"`
	TourAutoPlay      bool    `json:"tour_auto_play"`
	TourSpeed         float32 `json:"tour_speed"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "BlockVista",
		Fullscreen:   false,
		TargetFPS:    60,

		WorldFile: "world.json",
		ServerURL: "",
		WorldName: "world",
		CacheDir:  "saves",

		FOV:          60.0,
		DrawDistance: 160.0,
		FoldSpecies:  true,

		CameraSpeed:       10.0,
		CameraSensitivity: 0.3,
		ZoomSpeed:         5.0,
		TourAutoPlay:      false,
		TourSpeed:         0.35,

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
