package meshing

import "math"

// GeometryData contém os buffers de vértices para uma malha.
// Os triângulos não são indexados: cada face gera 6 vértices.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
	UVs      []float32
}

// VertexCount retorna o número de vértices na malha.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Normals) > 0 {
		clone.Normals = make([]float32, len(g.Normals))
		copy(clone.Normals, g.Normals)
	}
	if len(g.Colors) > 0 {
		clone.Colors = make([]uint8, len(g.Colors))
		copy(clone.Colors, g.Colors)
	}
	if len(g.UVs) > 0 {
		clone.UVs = make([]float32, len(g.UVs))
		copy(clone.UVs, g.UVs)
	}
	return clone
}

// Merge concatena outra malha nesta (in-place).
func (g *GeometryData) Merge(other GeometryData) {
	g.Vertices = append(g.Vertices, other.Vertices...)
	g.Normals = append(g.Normals, other.Normals...)
	g.Colors = append(g.Colors, other.Colors...)
	g.UVs = append(g.UVs, other.UVs...)
}

// Translate desloca todos os vértices (in-place).
func (g *GeometryData) Translate(dx, dy, dz float32) {
	for i := 0; i+2 < len(g.Vertices); i += 3 {
		g.Vertices[i] += dx
		g.Vertices[i+1] += dy
		g.Vertices[i+2] += dz
	}
}

// RotateY gira vértices e normais em torno do eixo Y (graus, anti-horário
// visto de cima), mantendo o centro na origem.
func (g *GeometryData) RotateY(degrees float32) {
	rad := float64(degrees) * math.Pi / 180.0
	sin := float32(math.Sin(rad))
	cos := float32(math.Cos(rad))
	rot := func(buf []float32) {
		for i := 0; i+2 < len(buf); i += 3 {
			x, z := buf[i], buf[i+2]
			buf[i] = x*cos + z*sin
			buf[i+2] = -x*sin + z*cos
		}
	}
	rot(g.Vertices)
	rot(g.Normals)
}

// RotateX gira vértices e normais em torno do eixo X (graus), mantendo o
// centro na origem.
func (g *GeometryData) RotateX(degrees float32) {
	rad := float64(degrees) * math.Pi / 180.0
	sin := float32(math.Sin(rad))
	cos := float32(math.Cos(rad))
	rot := func(buf []float32) {
		for i := 0; i+2 < len(buf); i += 3 {
			y, z := buf[i+1], buf[i+2]
			buf[i+1] = y*cos - z*sin
			buf[i+2] = y*sin + z*cos
		}
	}
	rot(g.Vertices)
	rot(g.Normals)
}

// EnsureNormals recalcula normais planas por triângulo quando ausentes.
func (g *GeometryData) EnsureNormals() {
	if len(g.Normals) == len(g.Vertices) {
		return
	}
	g.Normals = make([]float32, len(g.Vertices))
	for i := 0; i+8 < len(g.Vertices); i += 9 {
		ax, ay, az := g.Vertices[i], g.Vertices[i+1], g.Vertices[i+2]
		bx, by, bz := g.Vertices[i+3], g.Vertices[i+4], g.Vertices[i+5]
		cx, cy, cz := g.Vertices[i+6], g.Vertices[i+7], g.Vertices[i+8]
		ux, uy, uz := bx-ax, by-ay, bz-az
		vx, vy, vz := cx-ax, cy-ay, cz-az
		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx
		length := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
		if length > 0 {
			nx, ny, nz = nx/length, ny/length, nz/length
		}
		for v := 0; v < 3; v++ {
			g.Normals[i+v*3] = nx
			g.Normals[i+v*3+1] = ny
			g.Normals[i+v*3+2] = nz
		}
	}
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

func (b *MeshBuffer) addVertexUV(v [3]float32, uv [2]float32, n [3]float32, c [4]uint8) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
	b.Geometry.UVs = append(b.Geometry.UVs, uv[0], uv[1])
}

// AddFaceUV adiciona uma face retangular (quad) ao buffer com coordenadas UV.
// Vértices em ordem anti-horária vistos de fora.
func (b *MeshBuffer) AddFaceUV(v1, v2, v3, v4 [3]float32, uv1, uv2, uv3, uv4 [2]float32, n [3]float32, c [4]uint8) {
	// Triângulo 1 (v1, v2, v3)
	b.addVertexUV(v1, uv1, n, c)
	b.addVertexUV(v2, uv2, n, c)
	b.addVertexUV(v3, uv3, n, c)

	// Triângulo 2 (v1, v3, v4)
	b.addVertexUV(v1, uv1, n, c)
	b.addVertexUV(v3, uv3, n, c)
	b.addVertexUV(v4, uv4, n, c)
}

// AddTriangleUV adiciona uma face triangular ao buffer com coordenadas UV.
func (b *MeshBuffer) AddTriangleUV(v1, v2, v3 [3]float32, uv1, uv2, uv3 [2]float32, n [3]float32, c [4]uint8) {
	b.addVertexUV(v1, uv1, n, c)
	b.addVertexUV(v2, uv2, n, c)
	b.addVertexUV(v3, uv3, n, c)
}

// colorWhite é a cor de vértice neutra; tonalização acontece no material.
var colorWhite = [4]uint8{255, 255, 255, 255}
