package meshing

import "BlockVista/shared/blockdata"

// stairGeometry gera o perfil em L de uma escada: meia-laje inferior com o
// pisa completo mais o degrau superior. São 11 quads no total, cobrindo
// todas as faces externas do perfil. A base é construída virada para leste
// (lado alto em +X); a metade superior vira de ponta-cabeça antes da
// rotação de facing.
func stairGeometry(facing blockdata.Facing, upper bool) GeometryData {
	var out GeometryData

	// Meia-laje inferior: fundo, frente, traseira baixa, laterais e o pisa
	// (topo apenas na metade oeste, o degrau cobre o resto)
	lower := boxFaces(-0.5, -0.5, -0.5, 0.5, 0, 0.5)
	out.Merge(lower[FaceDown])
	out.Merge(lower[FaceWest])
	out.Merge(lower[FaceEast])
	out.Merge(lower[FaceNorth])
	out.Merge(lower[FaceSouth])

	tread := boxFaces(-0.5, -0.5, -0.5, 0, 0, 0.5)
	out.Merge(tread[FaceUp])

	// Degrau superior: topo, espelho (voltado para oeste), traseira alta
	// e laterais
	step := boxFaces(0, 0, -0.5, 0.5, 0.5, 0.5)
	out.Merge(step[FaceUp])
	out.Merge(step[FaceWest])
	out.Merge(step[FaceEast])
	out.Merge(step[FaceNorth])
	out.Merge(step[FaceSouth])

	if upper {
		// Rotação própria de 180° em torno de X: a laje vai para o topo, o
		// degrau permanece no lado alto (+X) e o winding dos triângulos
		// continua válido para back-face culling
		out.RotateX(180)
	}
	if yaw := facing.Yaw(); yaw != 0 {
		out.RotateY(yaw)
	}
	return out
}
