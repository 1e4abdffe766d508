package templates

import (
	"testing"

	"BlockVista/cliente/internal/assets"
	"BlockVista/cliente/internal/meshing"
	"BlockVista/shared/blockdata"
)

func newTestFactory() *Factory {
	return NewFactory(meshing.NewLibrary(), assets.NewResolver())
}

func classify(t *testing.T, rec blockdata.BlockRecord) blockdata.Classification {
	t.Helper()
	c := blockdata.NewClassifier(blockdata.NewCatalog())
	return c.Classify(rec)
}

func TestFactoryMemoization(t *testing.T) {
	f := newTestFactory()
	rec := blockdata.BlockRecord{Type: "stone", X: 0, Y: 0, Z: 0}
	cls := classify(t, rec)

	a := f.Get(cls, rec)
	b := f.Get(cls, blockdata.BlockRecord{Type: "stone", X: 5, Y: 1, Z: 2})

	if a != b {
		t.Error("blocos do mesmo grupo deveriam compartilhar o template")
	}
	if f.Count() != 1 {
		t.Errorf("cache com %d templates, esperado 1", f.Count())
	}
}

func TestUniformTemplateSingleSubMesh(t *testing.T) {
	f := newTestFactory()
	rec := blockdata.BlockRecord{Type: "stone"}
	tpl := f.Get(classify(t, rec), rec)

	// Material único nas seis faces → uma sub-malha com 36 vértices
	if len(tpl.SubMeshes) != 1 {
		t.Fatalf("%d sub-malhas, esperado 1", len(tpl.SubMeshes))
	}
	if got := tpl.SubMeshes[0].Geometry.VertexCount(); got != 36 {
		t.Errorf("%d vértices, esperado 36", got)
	}
	if !tpl.Instanced {
		t.Error("cubo uniforme deveria ser instanciável")
	}
}

func TestGrassBlockSubMeshes(t *testing.T) {
	f := newTestFactory()
	rec := blockdata.BlockRecord{Type: "grass_block"}
	tpl := f.Get(classify(t, rec), rec)

	// Topo tingido, lados tingidos e fundo (dirt) geram materiais distintos
	if len(tpl.SubMeshes) < 3 {
		t.Errorf("%d sub-malhas, esperado no mínimo 3", len(tpl.SubMeshes))
	}
	if tpl.VertexCount() != 36 {
		t.Errorf("total de %d vértices, esperado 36", tpl.VertexCount())
	}
}

func TestSlabTemplates(t *testing.T) {
	f := newTestFactory()

	lower := blockdata.BlockRecord{Type: "oak_slab"}
	upper := blockdata.BlockRecord{Type: "oak_slab", IsUpperSlab: true}

	tplLower := f.Get(classify(t, lower), lower)
	tplUpper := f.Get(classify(t, upper), upper)

	if tplLower == tplUpper {
		t.Fatal("metades de laje deveriam ter templates distintos")
	}
	if !tplLower.Slab || !tplUpper.Slab {
		t.Error("templates de laje deveriam ter o flag Slab")
	}

	// Geometria da inferior fica abaixo do centro, da superior acima
	maxY := float32(-1)
	for _, sub := range tplLower.SubMeshes {
		for i := 1; i < len(sub.Geometry.Vertices); i += 3 {
			if y := sub.Geometry.Vertices[i]; y > maxY {
				maxY = y
			}
		}
	}
	if maxY > 0 {
		t.Errorf("laje inferior acima do centro da célula: maxY=%f", maxY)
	}
}

func TestStairTopHalfFlipped(t *testing.T) {
	f := newTestFactory()

	bottom := blockdata.BlockRecord{Type: "oak_stairs", Facing: blockdata.FacingEast}
	top := blockdata.BlockRecord{Type: "oak_stairs", Facing: blockdata.FacingEast, Half: "top"}

	tplBottom := f.Get(classify(t, bottom), bottom)
	tplTop := f.Get(classify(t, top), top)

	if tplBottom == tplTop {
		t.Fatal("metades de escada deveriam ter templates distintos")
	}
	if tplBottom.VertexCount() != 66 || tplTop.VertexCount() != 66 {
		t.Error("perfil de escada deveria manter 11 quads nas duas metades")
	}

	// A metade superior é uma rotação própria, nunca um espelho: a normal
	// geométrica de cada triângulo tem que concordar com a armazenada, senão
	// o culling esconderia a escada inteira
	for name, tpl := range map[string]*Template{"inferior": tplBottom, "superior": tplTop} {
		geo := tpl.SubMeshes[0].Geometry
		for i := 0; i+8 < len(geo.Vertices); i += 9 {
			ax, ay, az := geo.Vertices[i], geo.Vertices[i+1], geo.Vertices[i+2]
			bx, by, bz := geo.Vertices[i+3], geo.Vertices[i+4], geo.Vertices[i+5]
			cx, cy, cz := geo.Vertices[i+6], geo.Vertices[i+7], geo.Vertices[i+8]
			ux, uy, uz := bx-ax, by-ay, bz-az
			vx, vy, vz := cx-ax, cy-ay, cz-az
			nx := uy*vz - uz*vy
			ny := uz*vx - ux*vz
			nz := ux*vy - uy*vx
			if nx*geo.Normals[i]+ny*geo.Normals[i+1]+nz*geo.Normals[i+2] <= 0 {
				t.Fatalf("escada %s: triângulo em %d com winding invertido", name, i/9)
			}
		}
	}
}

func TestTrapdoorSolidRim(t *testing.T) {
	f := newTestFactory()

	rec := blockdata.BlockRecord{Type: "oak_trapdoor"}
	tpl := f.Get(classify(t, rec), rec)

	// Faces largas texturizadas e aro de cor chapada → duas sub-malhas
	if len(tpl.SubMeshes) != 2 {
		t.Fatalf("%d sub-malhas, esperado 2", len(tpl.SubMeshes))
	}

	var solid, textured *SubMesh
	for i := range tpl.SubMeshes {
		if tpl.SubMeshes[i].Material.Solid {
			solid = &tpl.SubMeshes[i]
		} else {
			textured = &tpl.SubMeshes[i]
		}
	}
	if solid == nil || textured == nil {
		t.Fatal("esperado um aro chapado e um par de faces texturizadas")
	}
	// Aro: 4 faces; largas: 2 faces
	if solid.Geometry.VertexCount() != 24 {
		t.Errorf("aro com %d vértices, esperado 24", solid.Geometry.VertexCount())
	}
	if textured.Geometry.VertexCount() != 12 {
		t.Errorf("faces largas com %d vértices, esperado 12", textured.Geometry.VertexCount())
	}
	if len(solid.Material.Candidates) != 0 {
		t.Error("aro chapado não deveria resolver textura")
	}

	// A grade de ferro é vazada, fica texturizada em todas as faces
	iron := blockdata.BlockRecord{Type: "iron_trapdoor"}
	tplIron := f.Get(classify(t, iron), iron)
	for i := range tplIron.SubMeshes {
		if tplIron.SubMeshes[i].Material.Solid {
			t.Error("grade de ferro não deveria ter faces chapadas")
		}
	}
}

func TestFenceConnections(t *testing.T) {
	f := newTestFactory()

	isolated := blockdata.BlockRecord{Type: "oak_fence"}
	connected := blockdata.BlockRecord{
		Type:        "oak_fence",
		Connections: map[string]bool{"north": true, "east": true},
	}

	tplIso := f.Get(classify(t, isolated), isolated)
	tplCon := f.Get(classify(t, connected), connected)

	if tplCon.VertexCount() <= tplIso.VertexCount() {
		t.Error("cerca conectada deveria ter mais geometria que a isolada")
	}
	if tplIso.Instanced || tplCon.Instanced {
		t.Error("cercas são compostas, não instanciadas")
	}
}

func TestLanternLights(t *testing.T) {
	f := newTestFactory()

	rec := blockdata.BlockRecord{Type: "lantern", Hanging: true}
	tpl := f.Get(classify(t, rec), rec)

	if len(tpl.Lights) != 2 {
		t.Fatalf("%d luzes, esperado 2 (núcleo + halo)", len(tpl.Lights))
	}
	if tpl.Lights[0].Radius >= tpl.Lights[1].Radius {
		t.Error("a primeira luz deveria ser o núcleo curto")
	}
	if tpl.Lights[1].Flicker == 0 {
		t.Error("o halo deveria oscilar")
	}
}

func TestDoorsAndTorchesInvisible(t *testing.T) {
	f := newTestFactory()

	for _, typ := range []string{"oak_door", "torch", "wall_torch"} {
		rec := blockdata.BlockRecord{Type: typ}
		tpl := f.Get(classify(t, rec), rec)
		if !tpl.Invisible {
			t.Errorf("%s deveria ser um placeholder invisível", typ)
		}
		if len(tpl.SubMeshes) != 0 {
			t.Errorf("%s não deveria ter geometria", typ)
		}
	}
}

func TestDoublePlantHalves(t *testing.T) {
	f := newTestFactory()

	bottom := blockdata.BlockRecord{Type: "sunflower"}
	top := blockdata.BlockRecord{Type: "sunflower", Half: "top"}

	tplBottom := f.Get(classify(t, bottom), bottom)
	tplTop := f.Get(classify(t, top), top)

	if tplBottom == tplTop {
		t.Fatal("metades de planta dupla deveriam ter templates distintos")
	}
	for _, tpl := range []*Template{tplBottom, tplTop} {
		if !tpl.Foliage || !tpl.Transparent {
			t.Error("planta dupla deveria ser folhagem transparente")
		}
	}
}

func TestFallbackMaterialIsWireframe(t *testing.T) {
	mat := fallbackMaterial()
	if !mat.Wireframe {
		t.Error("material de fallback deveria ser wireframe")
	}
	if mat.Tint.R != 255 || mat.Tint.B != 255 || mat.Tint.G != 0 {
		t.Error("fallback deveria ser magenta")
	}
}
