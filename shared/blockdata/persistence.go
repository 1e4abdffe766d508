package blockdata

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SnapshotModel é o esquema do banco para um snapshot em cache.
type SnapshotModel struct {
	Name      string `gorm:"primaryKey"` // nome do mundo
	Data      []byte // snapshot serializado em GOB
	MTime     int64  // versão/timestamp da fonte
	UpdatedAt time.Time
}

// WorldMetadata armazena informações globais no banco.
type WorldMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const CurrentFormatVersion = 1

// SnapshotStore é o cache local de snapshots em SQLite. Permite abrir o
// visualizador offline depois da primeira carga via rede.
type SnapshotStore struct {
	DB *gorm.DB
}

// OpenSnapshotStore abre (ou cria) o banco SQLite e roda as migrações.
func OpenSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "worlds.bv")

	// Logger silencioso: erros de cache nunca poluem o log do viewer
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&SnapshotModel{}, &WorldMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&WorldMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[Persistence] Cache de snapshots aberto: %s", dbPath)
	return &SnapshotStore{DB: db}, nil
}

// SaveSnapshot persiste um snapshot no cache (upsert por nome de mundo).
func (s *SnapshotStore) SaveSnapshot(name string, snap *Snapshot, mtime int64) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("cache não inicializado")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("falha ao serializar snapshot: %w", err)
	}

	model := SnapshotModel{Name: name, Data: buf.Bytes(), MTime: mtime}
	if err := s.DB.Save(&model).Error; err != nil {
		return fmt.Errorf("falha ao salvar snapshot %q: %w", name, err)
	}
	log.Printf("[Persistence] Snapshot %q salvo no cache (%d bytes)", name, buf.Len())
	return nil
}

// LoadSnapshot recupera um snapshot do cache pelo nome do mundo.
func (s *SnapshotStore) LoadSnapshot(name string) (*Snapshot, int64, error) {
	if s == nil || s.DB == nil {
		return nil, 0, fmt.Errorf("cache não inicializado")
	}

	var model SnapshotModel
	if err := s.DB.First(&model, "name = ?", name).Error; err != nil {
		return nil, 0, err
	}

	var snap Snapshot
	if err := gob.NewDecoder(bytes.NewReader(model.Data)).Decode(&snap); err != nil {
		return nil, 0, fmt.Errorf("cache corrompido para %q: %w", name, err)
	}

	log.Printf("[Persistence] Snapshot %q recuperado do cache (mtime %d)", name, model.MTime)
	return &snap, model.MTime, nil
}

// Close fecha a conexão com o banco.
func (s *SnapshotStore) Close() {
	if s == nil || s.DB == nil {
		return
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
