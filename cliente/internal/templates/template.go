package templates

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/meshing"
	"BlockVista/shared/blockdata"
)

// SubMesh é uma fatia de geometria com um material próprio. Um template tem
// uma sub-malha por material distinto; cada sub-malha vira um draw call.
type SubMesh struct {
	Geometry meshing.GeometryData
	Material FaceMaterial
}

// LightSpec descreve uma luz pontual emitida por cada instância do template
// (lanternas). Offset é relativo ao centro do bloco.
type LightSpec struct {
	Offset  rl.Vector3
	Color   rl.Color
	Radius  float32
	Flicker float32 // amplitude da oscilação de intensidade (0 = fixa)
}

// Template é a receita de renderização compartilhada por todos os blocos de
// um mesmo grupo. Construído uma vez e referenciado por todas as instâncias.
type Template struct {
	Key      string
	Category blockdata.RenderCategory

	SubMeshes []SubMesh
	Lights    []LightSpec

	// Instanced indica desenho via instancing de GPU; compostos (cercas,
	// muros, lanternas) são clonados e desenhados por instância.
	Instanced bool

	// YawPerInstance aplica a rotação do facing na matriz de cada
	// instância em vez de assar na geometria.
	YawPerInstance bool

	Transparent bool
	Foliage     bool
	Slab        bool
	Fallback    bool
	Invisible   bool
}

// VertexCount soma os vértices de todas as sub-malhas.
func (t *Template) VertexCount() int {
	total := 0
	for i := range t.SubMeshes {
		total += t.SubMeshes[i].Geometry.VertexCount()
	}
	return total
}

// part é uma peça intermediária de um template composto antes da mesclagem
// por material.
type part struct {
	geo meshing.GeometryData
	mat FaceMaterial
}

// mergeParts agrupa peças pelo material, preservando a ordem de primeira
// aparição, e devolve uma sub-malha por material.
func mergeParts(parts []part) []SubMesh {
	var order []string
	merged := make(map[string]*SubMesh)
	for _, p := range parts {
		key := p.mat.Key()
		sub, ok := merged[key]
		if !ok {
			sub = &SubMesh{Material: p.mat}
			merged[key] = sub
			order = append(order, key)
		}
		sub.Geometry.Merge(p.geo)
	}

	out := make([]SubMesh, 0, len(order))
	for _, key := range order {
		out = append(out, *merged[key])
	}
	return out
}
