package meshing

// crossGeometry gera as duas lâminas diagonais usadas por vegetação e
// correntes. Cada lâmina é emitida nas duas orientações de winding para
// ficar visível dos dois lados sem desligar o culling. uMin/uMax permitem
// amostrar só uma faixa da textura (correntes usam a tira central).
func crossGeometry(uMin, uMax float32) GeometryData {
	b := &MeshBuffer{}

	blade := func(x1, z1, x2, z2 float32) {
		n := [3]float32{0, 1, 0}
		// Frente
		b.AddFaceUV(
			[3]float32{x1, -0.5, z1}, [3]float32{x2, -0.5, z2},
			[3]float32{x2, 0.5, z2}, [3]float32{x1, 0.5, z1},
			[2]float32{uMin, 1}, [2]float32{uMax, 1},
			[2]float32{uMax, 0}, [2]float32{uMin, 0},
			n, colorWhite,
		)
		// Verso
		b.AddFaceUV(
			[3]float32{x2, -0.5, z2}, [3]float32{x1, -0.5, z1},
			[3]float32{x1, 0.5, z1}, [3]float32{x2, 0.5, z2},
			[2]float32{uMax, 1}, [2]float32{uMin, 1},
			[2]float32{uMin, 0}, [2]float32{uMax, 0},
			n, colorWhite,
		)
	}

	blade(-0.5, -0.5, 0.5, 0.5)
	blade(-0.5, 0.5, 0.5, -0.5)

	return b.Geometry
}
