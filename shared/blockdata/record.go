package blockdata

import (
	"encoding/json"
	"fmt"

	"BlockVista/shared/util"
)

// BlockRecord é um bloco do snapshot: tipo + posição + atributos opcionais
// de estado. Criado uma vez pela normalização do loader; somente leitura
// depois disso.
type BlockRecord struct {
	Type string
	X    int
	Y    int
	Z    int

	// Atributos opcionais vindos do campo extraData do JSON
	Data        int             // bits auxiliares legados (sub-tipo de slab, flag upper)
	HasData     bool            // distingue data=0 de data ausente
	IsUpperSlab bool            // metade superior (slabs)
	Facing      Facing          // north/south/east/west
	Half        string          // "top" ou "bottom" (escadas, alçapões, plantas duplas)
	Shape       string          // straight/inner_left/inner_right/outer_left/outer_right
	Open        bool            // alçapões e portas
	Color       string          // uma das 16 cores de tintura
	Connections map[string]bool // north/east/south/west (+ "up" para muros)
	Hanging     bool            // lanternas penduradas
	Material    string          // material explícito (alçapões genéricos)
}

// Coord retorna a posição do bloco na grade.
func (r BlockRecord) Coord() util.GridCoord {
	return util.NewGridCoord(r.X, r.Y, r.Z)
}

// FacingOrDefault retorna o facing do registro, ou o default quando ausente
// ou inválido.
func (r BlockRecord) FacingOrDefault(def Facing) Facing {
	if r.Facing.Valid() {
		return r.Facing
	}
	return def
}

// rawBlock é o layout do JSON de entrada antes da normalização.
type rawBlock struct {
	Type      string                 `json:"type"`
	X         int                    `json:"x"`
	Y         int                    `json:"y"`
	Z         int                    `json:"z"`
	ExtraData map[string]interface{} `json:"extraData,omitempty"`
	// Alguns snapshots antigos carregam "data" no nível raiz
	Data *float64 `json:"data,omitempty"`
}

// UnmarshalJSON decodifica um bloco do snapshot achatando o mapa extraData
// nos campos tipados. Chaves desconhecidas são ignoradas em silêncio: o
// snapshot é conteúdo estático e não pode derrubar a carga do mundo.
func (r *BlockRecord) UnmarshalJSON(data []byte) error {
	var raw rawBlock
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type == "" {
		return fmt.Errorf("bloco sem tipo em (%d, %d, %d)", raw.X, raw.Y, raw.Z)
	}

	*r = BlockRecord{Type: raw.Type, X: raw.X, Y: raw.Y, Z: raw.Z}
	if raw.Data != nil {
		r.Data = int(*raw.Data)
		r.HasData = true
	}

	for key, val := range raw.ExtraData {
		switch key {
		case "data":
			if f, ok := val.(float64); ok {
				r.Data = int(f)
				r.HasData = true
			}
		case "isUpperSlab":
			r.IsUpperSlab, _ = val.(bool)
		case "facing":
			if s, ok := val.(string); ok {
				r.Facing = Facing(s)
			}
		case "half":
			r.Half, _ = val.(string)
		case "shape":
			r.Shape, _ = val.(string)
		case "open":
			r.Open, _ = val.(bool)
		case "color":
			r.Color, _ = val.(string)
		case "hanging":
			r.Hanging, _ = val.(bool)
		case "material":
			r.Material, _ = val.(string)
		case "connections":
			if m, ok := val.(map[string]interface{}); ok {
				r.Connections = make(map[string]bool, len(m))
				for dir, on := range m {
					if b, ok := on.(bool); ok && b {
						r.Connections[dir] = true
					}
				}
			}
		}
	}
	return nil
}

// SnapshotStats é o bloco informativo do snapshot. Consumido apenas pelo HUD.
type SnapshotStats struct {
	BlockCounts  map[string]int `json:"block_counts"`
	TotalBlocks  int            `json:"total_blocks"`
	LeafBlocks   int            `json:"leaf_blocks"`
	ChunkRange   int            `json:"chunk_range"`
	CenterChunk  struct{ X, Z int }   `json:"center_chunk"`
	HeightRange  struct{ Min, Max int } `json:"height_range"`
	LoadedChunks int            `json:"loaded_chunks,omitempty"`
}

// TourPoint é um ponto nomeado do passeio guiado de câmera.
type TourPoint struct {
	Label string  `json:"label"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Z     float32 `json:"z"`
	Text  string  `json:"text,omitempty"`
}

// Snapshot é a descrição completa e estática do mundo.
type Snapshot struct {
	Blocks []BlockRecord `json:"blocks"`
	Stats  SnapshotStats `json:"stats"`
	Tour   []TourPoint   `json:"tour,omitempty"`
}
