package blockdata

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// ParseSnapshot decodifica o JSON de um snapshot de mundo.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("falha ao parsear snapshot: %w", err)
	}
	if len(snap.Blocks) == 0 {
		return nil, fmt.Errorf("snapshot sem blocos")
	}
	return &snap, nil
}

// LoadSnapshotFile carrega e decodifica um snapshot do disco.
func LoadSnapshotFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}
	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[Snapshot] %s carregado: %d blocos", path, len(snap.Blocks))
	return snap, nil
}

// Prepare aplica o pré-passo de normalização sobre os blocos crus: fold de
// espécies, resolução de registros legados e síntese de plantas duplas.
// Retorna a lista pronta para o classificador; o snapshot original não é
// modificado.
func (s *Snapshot) Prepare(fold FoldFunc) []BlockRecord {
	records := ExpandRecords(s.Blocks, fold)
	if len(records) != len(s.Blocks) {
		log.Printf("[Snapshot] Normalização: %d blocos de entrada → %d registros (%d sintetizados)",
			len(s.Blocks), len(records), len(records)-len(s.Blocks))
	}
	return records
}
