package util

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3 é um alias para rl.Vector3 para conveniência
type Vector3 = rl.Vector3

// GridCoord representa a posição inteira de um bloco no snapshot.
// X = leste/oeste, Y = nível vertical, Z = norte/sul (Y é UP, como no Raylib)
type GridCoord struct {
	X, Y, Z int
}

// NewGridCoord cria uma nova coordenada de bloco.
func NewGridCoord(x, y, z int) GridCoord {
	return GridCoord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c GridCoord) Add(other GridCoord) GridCoord {
	return GridCoord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// Up retorna a coordenada do bloco imediatamente acima.
func (c GridCoord) Up() GridCoord {
	return GridCoord{X: c.X, Y: c.Y + 1, Z: c.Z}
}

// Equals verifica igualdade entre coordenadas.
func (c GridCoord) Equals(other GridCoord) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// String retorna a representação em string da coordenada.
func (c GridCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// GameScale controla a escala de conversão bloco → unidade 3D.
const GameScale float32 = 1.0

// GridToWorldPos converte uma coordenada de bloco para o canto de origem no mundo 3D.
func GridToWorldPos(coord GridCoord) rl.Vector3 {
	return rl.Vector3{
		X: float32(coord.X) * GameScale,
		Y: float32(coord.Y) * GameScale,
		Z: float32(coord.Z) * GameScale,
	}
}

// GridToWorldCenter converte para o centro geométrico do bloco no mundo 3D.
// Os templates de geometria são construídos centrados na origem, então toda
// matriz de instância translada para este ponto.
func GridToWorldCenter(coord GridCoord) rl.Vector3 {
	pos := GridToWorldPos(coord)
	pos.X += GameScale * 0.5
	pos.Y += GameScale * 0.5
	pos.Z += GameScale * 0.5
	return pos
}

// WorldToGridCoord converte uma posição 3D de volta para coordenada de bloco.
func WorldToGridCoord(pos rl.Vector3) GridCoord {
	return GridCoord{
		X: floorInt(pos.X / GameScale),
		Y: floorInt(pos.Y / GameScale),
		Z: floorInt(pos.Z / GameScale),
	}
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}
