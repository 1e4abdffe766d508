package meshing

// Índices de face de um cubo. A ordem é fixa: os materiais por face de um
// template seguem exatamente esta numeração.
const (
	FaceEast  = 0 // +X
	FaceWest  = 1 // -X
	FaceUp    = 2 // +Y
	FaceDown  = 3 // -Y
	FaceNorth = 4 // -Z
	FaceSouth = 5 // +Z

	FaceCount = 6
)

// boxFaces gera as seis faces de uma caixa alinhada aos eixos delimitada por
// min/max, centrada na célula unitária [-0.5, 0.5]. As UVs são projetadas a
// partir da posição espacial dentro da célula: o cubo cheio cobre a textura
// inteira e caixas menores amostram o sub-retângulo correspondente. É essa
// projeção que faz os lados de uma laje inferior usarem V em [0.5, 1] e os
// da superior V em [0, 0.5].
func boxFaces(minX, minY, minZ, maxX, maxY, maxZ float32) [FaceCount]GeometryData {
	var faces [FaceCount]GeometryData

	// Projeções espaciais → UV (V cresce para baixo na textura)
	u8 := func(x float32) float32 { return x + 0.5 }
	v8 := func(y float32) float32 { return 0.5 - y }

	// Face Leste (+X)
	{
		b := &MeshBuffer{}
		b.AddFaceUV(
			[3]float32{maxX, minY, maxZ}, [3]float32{maxX, minY, minZ},
			[3]float32{maxX, maxY, minZ}, [3]float32{maxX, maxY, maxZ},
			[2]float32{0.5 - maxZ, v8(minY)}, [2]float32{0.5 - minZ, v8(minY)},
			[2]float32{0.5 - minZ, v8(maxY)}, [2]float32{0.5 - maxZ, v8(maxY)},
			[3]float32{1, 0, 0}, colorWhite,
		)
		faces[FaceEast] = b.Geometry
	}

	// Face Oeste (-X)
	{
		b := &MeshBuffer{}
		b.AddFaceUV(
			[3]float32{minX, minY, minZ}, [3]float32{minX, minY, maxZ},
			[3]float32{minX, maxY, maxZ}, [3]float32{minX, maxY, minZ},
			[2]float32{u8(minZ), v8(minY)}, [2]float32{u8(maxZ), v8(minY)},
			[2]float32{u8(maxZ), v8(maxY)}, [2]float32{u8(minZ), v8(maxY)},
			[3]float32{-1, 0, 0}, colorWhite,
		)
		faces[FaceWest] = b.Geometry
	}

	// Face Topo (+Y)
	{
		b := &MeshBuffer{}
		b.AddFaceUV(
			[3]float32{minX, maxY, maxZ}, [3]float32{maxX, maxY, maxZ},
			[3]float32{maxX, maxY, minZ}, [3]float32{minX, maxY, minZ},
			[2]float32{u8(minX), u8(maxZ)}, [2]float32{u8(maxX), u8(maxZ)},
			[2]float32{u8(maxX), u8(minZ)}, [2]float32{u8(minX), u8(minZ)},
			[3]float32{0, 1, 0}, colorWhite,
		)
		faces[FaceUp] = b.Geometry
	}

	// Face Baixo (-Y)
	{
		b := &MeshBuffer{}
		b.AddFaceUV(
			[3]float32{minX, minY, minZ}, [3]float32{maxX, minY, minZ},
			[3]float32{maxX, minY, maxZ}, [3]float32{minX, minY, maxZ},
			[2]float32{u8(minX), u8(minZ)}, [2]float32{u8(maxX), u8(minZ)},
			[2]float32{u8(maxX), u8(maxZ)}, [2]float32{u8(minX), u8(maxZ)},
			[3]float32{0, -1, 0}, colorWhite,
		)
		faces[FaceDown] = b.Geometry
	}

	// Face Norte (-Z)
	{
		b := &MeshBuffer{}
		b.AddFaceUV(
			[3]float32{maxX, minY, minZ}, [3]float32{minX, minY, minZ},
			[3]float32{minX, maxY, minZ}, [3]float32{maxX, maxY, minZ},
			[2]float32{0.5 - maxX, v8(minY)}, [2]float32{0.5 - minX, v8(minY)},
			[2]float32{0.5 - minX, v8(maxY)}, [2]float32{0.5 - maxX, v8(maxY)},
			[3]float32{0, 0, -1}, colorWhite,
		)
		faces[FaceNorth] = b.Geometry
	}

	// Face Sul (+Z)
	{
		b := &MeshBuffer{}
		b.AddFaceUV(
			[3]float32{minX, minY, maxZ}, [3]float32{maxX, minY, maxZ},
			[3]float32{maxX, maxY, maxZ}, [3]float32{minX, maxY, maxZ},
			[2]float32{u8(minX), v8(minY)}, [2]float32{u8(maxX), v8(minY)},
			[2]float32{u8(maxX), v8(maxY)}, [2]float32{u8(minX), v8(maxY)},
			[3]float32{0, 0, 1}, colorWhite,
		)
		faces[FaceSouth] = b.Geometry
	}

	return faces
}

// BoxFaces gera as seis faces separadas de uma caixa centrada em
// (cx, cy, cz) com dimensões (w, h, d), para materiais distintos por face.
func BoxFaces(cx, cy, cz, w, h, d float32) [FaceCount]GeometryData {
	return boxFaces(cx-w/2, cy-h/2, cz-d/2, cx+w/2, cy+h/2, cz+d/2)
}

// Box gera uma caixa completa (as seis faces mescladas) centrada em
// (cx, cy, cz) com dimensões (w, h, d), com as mesmas UVs projetadas.
func Box(cx, cy, cz, w, h, d float32) GeometryData {
	faces := BoxFaces(cx, cy, cz, w, h, d)
	var out GeometryData
	for i := range faces {
		out.Merge(faces[i])
	}
	return out
}
