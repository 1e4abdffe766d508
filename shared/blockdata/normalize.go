package blockdata

import (
	"strings"

	"BlockVista/shared/util"
)

// FoldFunc transforma um tipo de bloco antes da classificação. Usada pela
// aplicação para colapsar variações cosméticas (ex: todas as espécies de
// madeira numa só) sem que a classificação precise saber disso.
type FoldFunc func(blockType string) string

// woodSpecies são os prefixos de espécie que o fold padrão colapsa.
var woodSpecies = []string{
	"spruce_", "birch_", "jungle_", "acacia_", "dark_oak_",
	"cherry_", "mangrove_", "pale_oak_", "crimson_", "warped_",
}

// DefaultSpeciesFold colapsa toda espécie de madeira para o conjunto de
// texturas do carvalho. Escolha de apresentação: economiza texturas sem
// mudar a silhueta do mundo.
func DefaultSpeciesFold(blockType string) string {
	for _, prefix := range woodSpecies {
		if strings.HasPrefix(blockType, prefix) {
			return "oak_" + strings.TrimPrefix(blockType, prefix)
		}
	}
	return blockType
}

// slabMaterials é a tabela fixa de 8 entradas do campo de material legado
// (3 bits) dos slabs genéricos.
var slabMaterials = [8]string{
	"stone", "sandstone", "oak", "cobblestone",
	"brick", "stone_brick", "nether_brick", "quartz",
}

// legacyUpperBit marca a metade superior no campo data legado.
const legacyUpperBit = 0x8

// normalizeLegacy resolve registros genéricos/ambíguos em sub-tipos
// concretos antes da classificação. Mutação local: o registro do snapshot
// original nunca é alterado no lugar.
func normalizeLegacy(rec *BlockRecord) {
	switch rec.Type {
	case "slab", "double_slab":
		idx := 0
		if rec.HasData {
			idx = rec.Data & 0x7
			if rec.Data&legacyUpperBit != 0 {
				rec.IsUpperSlab = true
			}
		}
		rec.Type = slabMaterials[idx] + "_slab"

	case "stairs":
		// O formato antigo não distingue o material; assumimos o sub-tipo
		// canônico e preservamos facing/half/shape dos metadados auxiliares.
		rec.Type = "oak_stairs"

	case "trapdoor":
		material := rec.Material
		if material == "" {
			material = "oak"
		}
		rec.Type = material + "_trapdoor"

	case "door":
		rec.Type = "oak_door"

	case "wool", "concrete", "stained_glass", "terracotta":
		// Variante parametrizada por cor: dobra a cor para dentro do tipo,
		// que é o que indexa o conjunto de texturas.
		color := rec.Color
		if color == "" {
			color = "white"
		}
		rec.Type = color + "_" + rec.Type
	}
}

// doublePlantNames são as plantas de dois blocos de altura conhecidas.
var doublePlantNames = map[string]bool{
	"sunflower":  true,
	"lilac":      true,
	"rose_bush":  true,
	"peony":      true,
	"tall_grass": true,
	"large_fern": true,
}

// IsDoublePlant informa se o tipo ocupa dois blocos verticais.
func IsDoublePlant(blockType string) bool {
	return doublePlantNames[blockType] || strings.HasPrefix(blockType, "double_plant_")
}

// ExpandRecords aplica o fold de espécies, resolve registros legados e
// sintetiza a metade superior de plantas duplas quando o snapshot trouxe
// apenas a base. Passo único, sem sentinelas: um conjunto de posições já
// consumidas evita tops duplicados.
func ExpandRecords(blocks []BlockRecord, fold FoldFunc) []BlockRecord {
	out := make([]BlockRecord, 0, len(blocks))

	// Tops explícitos já presentes no snapshot
	tops := make(map[util.GridCoord]bool)
	for _, b := range blocks {
		if IsDoublePlant(b.Type) && b.Half == "top" {
			tops[b.Coord()] = true
		}
	}

	for _, b := range blocks {
		if fold != nil {
			b.Type = fold(b.Type)
		}
		normalizeLegacy(&b)
		out = append(out, b)

		if IsDoublePlant(b.Type) && b.Half != "top" {
			topPos := b.Coord().Up()
			if !tops[topPos] {
				top := b
				top.Y++
				top.Half = "top"
				out = append(out, top)
				tops[topPos] = true
			}
		}
	}
	return out
}
