package meshing

import (
	"testing"

	"BlockVista/shared/blockdata"
)

// boundsY retorna os limites verticais dos vértices de uma geometria.
func boundsY(g GeometryData) (minY, maxY float32) {
	minY, maxY = 999, -999
	for i := 1; i < len(g.Vertices); i += 3 {
		y := g.Vertices[i]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return
}

func TestCubeFaces(t *testing.T) {
	lib := NewLibrary()
	faces := lib.CubeFaces()

	for i, f := range faces {
		// Cada face é um quad: 2 triângulos, 6 vértices
		if f.VertexCount() != 6 {
			t.Errorf("face %d: %d vértices, esperado 6", i, f.VertexCount())
		}
		if len(f.Normals) != len(f.Vertices) {
			t.Errorf("face %d: normais ausentes", i)
		}
		if len(f.UVs)/2 != f.VertexCount() {
			t.Errorf("face %d: UVs incompletas", i)
		}
	}

	minY, maxY := boundsY(faces[FaceUp])
	if minY != 0.5 || maxY != 0.5 {
		t.Errorf("face superior deveria estar em y=0.5, limites [%f, %f]", minY, maxY)
	}
}

func TestSlabFacesOffsets(t *testing.T) {
	lib := NewLibrary()

	lower := lib.SlabFaces(false)
	upper := lib.SlabFaces(true)

	// Laje inferior ocupa [-0.5, 0]; superior [0, 0.5]
	for i := range lower {
		minY, maxY := boundsY(lower[i])
		if minY < -0.5 || maxY > 0 {
			t.Errorf("laje inferior face %d fora de [-0.5, 0]: [%f, %f]", i, minY, maxY)
		}
	}
	for i := range upper {
		minY, maxY := boundsY(upper[i])
		if minY < 0 || maxY > 0.5 {
			t.Errorf("laje superior face %d fora de [0, 0.5]: [%f, %f]", i, minY, maxY)
		}
	}
}

func TestSlabSideUVs(t *testing.T) {
	lib := NewLibrary()

	// Lados da laje inferior amostram a metade de baixo da textura (V 0.5-1)
	lower := lib.SlabFaces(false)[FaceEast]
	for i := 1; i < len(lower.UVs); i += 2 {
		v := lower.UVs[i]
		if v < 0.5 || v > 1 {
			t.Errorf("laje inferior: V=%f fora de [0.5, 1]", v)
		}
	}

	// E a superior a metade de cima (V 0-0.5)
	upper := lib.SlabFaces(true)[FaceEast]
	for i := 1; i < len(upper.UVs); i += 2 {
		v := upper.UVs[i]
		if v < 0 || v > 0.5 {
			t.Errorf("laje superior: V=%f fora de [0, 0.5]", v)
		}
	}
}

func TestStairProfile(t *testing.T) {
	lib := NewLibrary()

	geo := lib.Stair(blockdata.FacingEast, false)

	// Perfil em L: 11 quads = 66 vértices
	if geo.VertexCount() != 66 {
		t.Errorf("escada: %d vértices, esperado 66", geo.VertexCount())
	}

	minY, maxY := boundsY(geo)
	if minY != -0.5 || maxY != 0.5 {
		t.Errorf("escada fora da célula unitária: [%f, %f]", minY, maxY)
	}

	// As quatro orientações geram geometria distinta, mas do mesmo tamanho
	for _, facing := range []blockdata.Facing{
		blockdata.FacingNorth, blockdata.FacingSouth, blockdata.FacingWest,
	} {
		other := lib.Stair(facing, false)
		if other.VertexCount() != geo.VertexCount() {
			t.Errorf("escada %s: contagem de vértices divergente", facing)
		}
	}
}

// windingDisagreements conta triângulos cuja normal geométrica (calculada da
// ordem dos vértices) aponta contra a normal armazenada. Qualquer divergência
// significa winding invertido, e back-face culling esconderia a face.
func windingDisagreements(g GeometryData) int {
	count := 0
	for i := 0; i+8 < len(g.Vertices); i += 9 {
		ax, ay, az := g.Vertices[i], g.Vertices[i+1], g.Vertices[i+2]
		bx, by, bz := g.Vertices[i+3], g.Vertices[i+4], g.Vertices[i+5]
		cx, cy, cz := g.Vertices[i+6], g.Vertices[i+7], g.Vertices[i+8]
		ux, uy, uz := bx-ax, by-ay, bz-az
		vx, vy, vz := cx-ax, cy-ay, cz-az
		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx
		dot := nx*g.Normals[i] + ny*g.Normals[i+1] + nz*g.Normals[i+2]
		if dot <= 0 {
			count++
		}
	}
	return count
}

func TestStairUpperWinding(t *testing.T) {
	lib := NewLibrary()

	facings := []blockdata.Facing{
		blockdata.FacingEast, blockdata.FacingNorth,
		blockdata.FacingWest, blockdata.FacingSouth,
	}
	for _, facing := range facings {
		for _, upper := range []bool{false, true} {
			geo := lib.Stair(facing, upper)
			if bad := windingDisagreements(geo); bad != 0 {
				t.Errorf("escada %s (superior=%v): %d triângulos com winding invertido",
					facing, upper, bad)
			}
		}
	}
}

func TestStairUpperProfile(t *testing.T) {
	lib := NewLibrary()

	geo := lib.Stair(blockdata.FacingEast, true)

	minY, maxY := boundsY(geo)
	if minY != -0.5 || maxY != 0.5 {
		t.Errorf("escada superior fora da célula unitária: [%f, %f]", minY, maxY)
	}

	// De ponta-cabeça: a laje ocupa a metade de cima e o degrau fica
	// embaixo, ainda no lado leste (+X)
	for i := 0; i+2 < len(geo.Vertices); i += 3 {
		x, y := geo.Vertices[i], geo.Vertices[i+1]
		if y < -0.01 && x < -0.01 {
			t.Fatalf("vértice do degrau inferior no lado oeste: (%f, %f)", x, y)
		}
	}

	// A laje superior cobre a célula inteira, inclusive o lado oeste
	found := false
	for i := 0; i+2 < len(geo.Vertices); i += 3 {
		if geo.Vertices[i] < -0.4 && geo.Vertices[i+1] > 0.4 {
			found = true
			break
		}
	}
	if !found {
		t.Error("laje superior não cobre o lado oeste da célula")
	}
}

func TestCrossBothWindings(t *testing.T) {
	lib := NewLibrary()
	geo := lib.Cross()

	// 2 lâminas × 2 windings = 4 quads
	if geo.VertexCount() != 24 {
		t.Errorf("cross: %d vértices, esperado 24", geo.VertexCount())
	}
}

func TestLibraryReturnsClones(t *testing.T) {
	lib := NewLibrary()

	a := lib.Cross()
	a.Vertices[0] = 42

	b := lib.Cross()
	if b.Vertices[0] == 42 {
		t.Error("modificação em um clone vazou para o cache")
	}
}

func TestGeometryTransforms(t *testing.T) {
	geo := Box(0, 0, 0, 1, 1, 1)

	geo.Translate(0, 2, 0)
	minY, maxY := boundsY(geo)
	if minY != 1.5 || maxY != 2.5 {
		t.Errorf("translação: limites [%f, %f], esperado [1.5, 2.5]", minY, maxY)
	}

	// Rotação de 90° preserva a contagem e a extensão vertical
	geo.RotateY(90)
	if geo.VertexCount() != 36 {
		t.Errorf("rotação alterou a contagem de vértices: %d", geo.VertexCount())
	}
	minY, maxY = boundsY(geo)
	if minY != 1.5 || maxY != 2.5 {
		t.Errorf("rotação alterou a extensão vertical: [%f, %f]", minY, maxY)
	}
}

func TestEnsureNormals(t *testing.T) {
	geo := GeometryData{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 1, 0,
		},
	}
	geo.EnsureNormals()

	if len(geo.Normals) != len(geo.Vertices) {
		t.Fatalf("normais não geradas: %d floats", len(geo.Normals))
	}
	// Triângulo no plano XY com winding anti-horário → normal +Z
	if geo.Normals[2] != 1 {
		t.Errorf("normal Z = %f, esperado 1", geo.Normals[2])
	}
}
