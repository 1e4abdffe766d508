package templates

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/assets"
	"BlockVista/cliente/internal/meshing"
	"BlockVista/shared/blockdata"
)

// Deslocamentos horizontais por direção de conexão (convenção interna:
// norte = -Z, leste = +X).
var connectionOffsets = map[string][2]float32{
	"north": {0, -1},
	"south": {0, 1},
	"east":  {1, 0},
	"west":  {-1, 0},
}

// buildFence monta poste central mais dois trilhos por conexão. Cada chave
// de grupo carrega um conjunto de conexões distinto, então a geometria é
// assada por grupo e desenhada por clone.
func (f *Factory) buildFence(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	mat := f.mats.baseMaterial(rec.Type, assets.FaceDefault, cls.Props)

	parts := []part{
		{geo: meshing.Box(0, 0, 0, 0.25, 1, 0.25), mat: mat},
	}

	for dir, connected := range rec.Connections {
		if !connected {
			continue
		}
		off, ok := connectionOffsets[dir]
		if !ok {
			continue
		}
		// Trilhos do centro até a borda da célula, nas duas alturas
		for _, y := range []float32{0.25, -0.0625} {
			cx := off[0] * 0.3125
			cz := off[1] * 0.3125
			w := float32(0.125) + abs32(off[0])*0.25
			d := float32(0.125) + abs32(off[1])*0.25
			parts = append(parts, part{geo: meshing.Box(cx, y, cz, w, 0.1875, d), mat: mat})
		}
	}

	return &Template{
		Key:       cls.GroupKey,
		Category:  cls.Category,
		SubMeshes: mergeParts(parts),
	}
}

// buildWall é o primo mais grosso da cerca: poste de meio bloco e braços na
// altura média. O flag "up" força o poste cheio mesmo num trecho reto.
func (f *Factory) buildWall(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	mat := f.mats.baseMaterial(rec.Type, assets.FaceDefault, cls.Props)

	connected := func(dir string) bool { return rec.Connections[dir] }
	straightNS := connected("north") && connected("south") && !connected("east") && !connected("west")
	straightEW := connected("east") && connected("west") && !connected("north") && !connected("south")
	post := !(straightNS || straightEW) || rec.Connections["up"]

	var parts []part
	if post {
		parts = append(parts, part{geo: meshing.Box(0, 0, 0, 0.5, 1, 0.5), mat: mat})
	}
	for dir, on := range rec.Connections {
		if !on {
			continue
		}
		off, ok := connectionOffsets[dir]
		if !ok {
			continue
		}
		cx := off[0] * 0.28125
		cz := off[1] * 0.28125
		w := float32(0.375) + abs32(off[0])*0.0625
		d := float32(0.375) + abs32(off[1])*0.0625
		parts = append(parts, part{geo: meshing.Box(cx, -0.0625, cz, w, 0.875, d), mat: mat})
	}
	if len(parts) == 0 {
		parts = append(parts, part{geo: meshing.Box(0, 0, 0, 0.5, 1, 0.5), mat: mat})
	}

	return &Template{
		Key:       cls.GroupKey,
		Category:  cls.Category,
		SubMeshes: mergeParts(parts),
	}
}

// trapdoorRimColor é a cor chapada do aro fino das portinholas de madeira.
var trapdoorRimColor = rl.Color{R: 120, G: 88, B: 52, A: 255}

// buildTrapdoor gera a placa fina nas quatro combinações de estado. A
// orientação é assada na geometria: aberta, a placa fica em pé encostada na
// parede do facing. Só as duas faces largas levam textura; o aro é cor
// chapada (a grade de ferro mantém a textura vazada em todas as faces).
func (f *Factory) buildTrapdoor(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	mat := f.mats.baseMaterial(rec.Type, assets.FaceDefault, cls.Props)
	iron := rec.Type == "iron_trapdoor"
	if iron {
		// A grade de ferro tem furos
		mat.Transparent = true
		mat.AlphaCutoff = 0.5
		mat.DoubleSided = true
	}

	var faces [meshing.FaceCount]meshing.GeometryData
	textured := [2]int{meshing.FaceUp, meshing.FaceDown}
	if rec.Open {
		// Em pé contra a parede leste, girada para o facing real; as faces
		// largas ficam em leste/oeste
		faces = meshing.BoxFaces(0.40625, 0, 0, 0.1875, 1, 1)
		textured = [2]int{meshing.FaceEast, meshing.FaceWest}
		facing := rec.FacingOrDefault(blockdata.FacingNorth)
		if yaw := facing.Yaw(); yaw != 0 {
			for i := range faces {
				faces[i].RotateY(yaw)
			}
		}
	} else if rec.Half == "top" {
		faces = meshing.BoxFaces(0, 0.40625, 0, 1, 0.1875, 1)
	} else {
		faces = meshing.BoxFaces(0, -0.40625, 0, 1, 0.1875, 1)
	}

	sideMat := solidMaterial(trapdoorRimColor)
	if iron {
		sideMat = mat
	}

	parts := make([]part, 0, meshing.FaceCount)
	for i := range faces {
		pm := sideMat
		if i == textured[0] || i == textured[1] {
			pm = mat
		}
		parts = append(parts, part{geo: faces[i], mat: pm})
	}

	return &Template{
		Key:         cls.GroupKey,
		Category:    cls.Category,
		SubMeshes:   mergeParts(parts),
		Transparent: mat.Transparent,
	}
}

// buildLantern monta o corpo emissor com a argola ou a corrente de
// suspensão, e declara as duas luzes pontuais da instância.
func (f *Factory) buildLantern(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	mat := f.mats.baseMaterial(rec.Type, assets.FaceDefault, cls.Props)
	mat.Emissive = true
	mat.AlphaCutoff = 0.5
	mat.Transparent = true

	lightColor := rl.Color{R: 255, G: 200, B: 120, A: 255}
	if rec.Type == "soul_lantern" {
		lightColor = rl.Color{R: 110, G: 200, B: 255, A: 255}
	}

	baseY := float32(-0.28)
	if rec.Hanging {
		baseY = -0.05
	}

	parts := []part{
		// Corpo e tampa
		{geo: meshing.Box(0, baseY, 0, 0.375, 0.4375, 0.375), mat: mat},
		{geo: meshing.Box(0, baseY+0.28125, 0, 0.25, 0.125, 0.25), mat: mat},
	}

	if rec.Hanging {
		chainMat := f.mats.baseMaterial("chain", assets.FaceDefault, cls.Props)
		chainMat.DoubleSided = true
		chainMat.AlphaCutoff = 0.5
		chainMat.Transparent = true

		chain := f.geo.ChainCross()
		// Só o trecho entre a tampa e o teto da célula
		for i := 1; i < len(chain.Vertices); i += 3 {
			chain.Vertices[i] = chain.Vertices[i]*0.3 + 0.35
		}
		parts = append(parts, part{geo: chain, mat: chainMat})
	}

	return &Template{
		Key:         cls.GroupKey,
		Category:    cls.Category,
		SubMeshes:   mergeParts(parts),
		Transparent: true,
		Lights: []LightSpec{
			{Offset: rl.Vector3{Y: baseY}, Color: lightColor, Radius: 3.5, Flicker: 0},
			{Offset: rl.Vector3{Y: baseY}, Color: lightColor, Radius: 9, Flicker: 0.15},
		},
	}
}

// buildGrindstone é a roda entre duas pernas, orientada pelo facing na
// geometria do grupo.
func (f *Factory) buildGrindstone(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	sideMat := f.mats.baseMaterial("grindstone_side", assets.FaceDefault, cls.Props)
	legMat := f.mats.baseMaterial("dark_oak_planks", assets.FaceDefault, cls.Props)

	parts := []part{
		// Roda central
		{geo: meshing.Box(0, 0.125, 0, 0.5, 0.75, 0.25), mat: sideMat},
		// Pernas
		{geo: meshing.Box(0, -0.25, 0.28125, 0.125, 0.5, 0.125), mat: legMat},
		{geo: meshing.Box(0, -0.25, -0.28125, 0.125, 0.5, 0.125), mat: legMat},
	}

	subs := mergeParts(parts)
	facing := rec.FacingOrDefault(blockdata.FacingNorth)
	if yaw := facing.Yaw(); yaw != 0 {
		for i := range subs {
			subs[i].Geometry.RotateY(yaw)
		}
	}

	return &Template{
		Key:       cls.GroupKey,
		Category:  cls.Category,
		SubMeshes: subs,
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
