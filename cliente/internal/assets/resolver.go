package assets

import (
	"strings"

	"BlockVista/shared/blockdata"
)

// Face identifica a face de um cubo para fins de resolução de textura.
type Face string

const (
	FaceTop     Face = "top"
	FaceBottom  Face = "bottom"
	FaceSide    Face = "side"
	FaceEnd     Face = "end"
	FaceDefault Face = "default"
)

// TextureDir é o prefixo de todos os assets de textura de blocos.
const TextureDir = "textures/blocks/"

// Resolver calcula os caminhos de textura de um tipo de bloco, aplicando a
// cadeia de fallback que cobre os vários esquemas de nomenclatura legados
// do conteúdo de origem. Puro: o carregamento em si fica no renderer.
type Resolver struct {
	// overrides mapeia tipo completo → face → arquivo
	overrides map[string]map[Face]string
	// baseTexture mapeia material base → arquivo da textura do material
	baseTexture map[string]string
}

// NewResolver monta o resolvedor com as tabelas de override conhecidas.
func NewResolver() *Resolver {
	return &Resolver{
		overrides: map[string]map[Face]string{
			"grass_block": {
				FaceTop:    "grass_block_top.png",
				FaceSide:   "grass_block_side.png",
				FaceBottom: "dirt.png",
			},
			"podzol": {
				FaceTop:    "podzol_top.png",
				FaceSide:   "podzol_side.png",
				FaceBottom: "dirt.png",
			},
			"mycelium": {
				FaceTop:    "mycelium_top.png",
				FaceSide:   "mycelium_side.png",
				FaceBottom: "dirt.png",
			},
			"oak_log": {
				FaceEnd:  "oak_log_top.png",
				FaceSide: "oak_log.png",
			},
			"quartz_block": {
				FaceEnd:  "quartz_block_top.png",
				FaceSide: "quartz_block_side.png",
			},
			"hay_block": {
				FaceEnd:  "hay_block_top.png",
				FaceSide: "hay_block_side.png",
			},
			"melon": {
				FaceEnd:  "melon_top.png",
				FaceSide: "melon_side.png",
			},
			"sandstone": {
				FaceTop:    "sandstone_top.png",
				FaceBottom: "sandstone_bottom.png",
				FaceSide:   "sandstone.png",
			},
			"bookshelf": {
				FaceTop:    "oak_planks.png",
				FaceBottom: "oak_planks.png",
				FaceSide:   "bookshelf.png",
			},
			"crafting_table": {
				FaceTop:    "crafting_table_top.png",
				FaceSide:   "crafting_table_side.png",
				FaceBottom: "oak_planks.png",
			},
			"furnace": {
				FaceTop:    "furnace_top.png",
				FaceSide:   "furnace_side.png",
				FaceBottom: "furnace_top.png",
			},
			"tnt": {
				FaceTop:    "tnt_top.png",
				FaceBottom: "tnt_bottom.png",
				FaceSide:   "tnt_side.png",
			},
			"smooth_stone": {FaceDefault: "smooth_stone.png"},
			"lantern":      {FaceDefault: "lantern.png"},
			"soul_lantern": {FaceDefault: "soul_lantern.png"},
			"chain":        {FaceDefault: "chain.png"},
			"grass":        {FaceDefault: "short_grass.png"},
			"tall_grass":   {FaceDefault: "tall_grass_bottom.png"},
			"water":        {FaceDefault: "water_still.png"},
		},
		baseTexture: map[string]string{
			// Madeiras: o material base usa a textura das tábuas
			"oak":      "oak_planks",
			"spruce":   "spruce_planks",
			"birch":    "birch_planks",
			"jungle":   "jungle_planks",
			"acacia":   "acacia_planks",
			"dark_oak": "dark_oak_planks",

			// Pedras: singular → arquivo no plural quando for o caso
			"stone_brick":  "stone_bricks",
			"brick":        "bricks",
			"nether_brick": "nether_bricks",
			"quartz":       "quartz_block",
			"cobblestone":  "cobblestone",
			"sandstone":    "sandstone",
			"stone":        "stone",
			"smooth_stone": "smooth_stone",
			"andesite":     "andesite",
			"granite":      "granite",
			"diorite":      "diorite",
			"blackstone":   "blackstone",
			"iron":         "iron_block",
		},
	}
}

// categorySuffixes são os sufixos de categoria removidos para chegar ao
// material base de um tipo derivado.
var categorySuffixes = []string{
	"_slab", "_stairs", "_wall", "_fence", "_trapdoor", "_door", "_button",
}

// BaseMaterial deriva o material base de um tipo: remove o prefixo waxed_
// e o sufixo de categoria. Retorna o próprio tipo quando nada foi removido.
func BaseMaterial(blockType string) string {
	t := strings.TrimPrefix(blockType, "waxed_")
	for _, suffix := range categorySuffixes {
		if strings.HasSuffix(t, suffix) {
			return strings.TrimSuffix(t, suffix)
		}
	}
	return t
}

// Candidates retorna os caminhos de textura em ordem de preferência para um
// tipo e face. O chamador tenta cada um; se todos falharem, usa a textura
// placeholder procedural. Nunca retorna lista vazia.
func (r *Resolver) Candidates(blockType string, face Face) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(file string) {
		path := TextureDir + file
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}

	// 1. Override exato por tipo+face (ou default de textura única)
	if faces, ok := r.overrides[blockType]; ok {
		if file, ok := faces[face]; ok {
			add(file)
		} else if file, ok := faces[FaceDefault]; ok {
			add(file)
		}
	}

	// 2. Troncos de casca integral: todas as faces usam a textura lateral
	// do tronco correspondente
	if strings.HasSuffix(blockType, "_wood") {
		add(strings.TrimSuffix(blockType, "_wood") + "_log.png")
	}

	// 3. Substituição pelo material base, recursando na tabela de overrides
	if base := BaseMaterial(blockType); base != blockType {
		texName := base
		if mapped, ok := r.baseTexture[base]; ok {
			texName = mapped
		}
		if faces, ok := r.overrides[texName]; ok {
			if file, ok := faces[face]; ok {
				add(file)
			} else if file, ok := faces[FaceDefault]; ok {
				add(file)
			}
		}
		add(texName + ".png")
	}

	// 4. Padrão genérico por face
	if face != FaceDefault {
		add(blockType + "_" + string(face) + ".png")
	}

	// 5. Fallback uniforme
	add(blockType + ".png")

	// 6. Tingidos sem arquivo próprio: a base branca recebe o tint do
	// catálogo
	if token, kind, ok := blockdata.SplitDyeType(blockType); ok && token != "white" {
		add("white_" + kind + ".png")
	}

	return out
}
