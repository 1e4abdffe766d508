package meshing

import (
	"sync"

	"BlockVista/shared/blockdata"
)

// Library fornece as geometrias primitivas compartilhadas pelos templates.
// Cada primitiva é gerada uma única vez e cacheada; os chamadores recebem
// clones e podem modificá-los livremente.
type Library struct {
	mu    sync.RWMutex
	solos map[string]GeometryData
	faces map[string][FaceCount]GeometryData
}

// NewLibrary cria a biblioteca com os caches vazios.
func NewLibrary() *Library {
	return &Library{
		solos: make(map[string]GeometryData),
		faces: make(map[string][FaceCount]GeometryData),
	}
}

func (l *Library) getSolo(key string, build func() GeometryData) GeometryData {
	l.mu.RLock()
	geo, ok := l.solos[key]
	l.mu.RUnlock()
	if ok {
		return geo.Clone()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if geo, ok = l.solos[key]; !ok {
		geo = build()
		l.solos[key] = geo
	}
	return geo.Clone()
}

func (l *Library) getFaces(key string, build func() [FaceCount]GeometryData) [FaceCount]GeometryData {
	l.mu.RLock()
	faces, ok := l.faces[key]
	l.mu.RUnlock()
	if !ok {
		l.mu.Lock()
		if faces, ok = l.faces[key]; !ok {
			faces = build()
			l.faces[key] = faces
		}
		l.mu.Unlock()
	}

	var out [FaceCount]GeometryData
	for i := range faces {
		out[i] = faces[i].Clone()
	}
	return out
}

// CubeFaces retorna as seis faces do cubo unitário centrado na origem,
// separadas para permitir um material diferente por face.
func (l *Library) CubeFaces() [FaceCount]GeometryData {
	return l.getFaces("cube", func() [FaceCount]GeometryData {
		return boxFaces(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5)
	})
}

// SlabFaces retorna as faces de meia-laje. A laje inferior ocupa a metade de
// baixo da célula (centro em y = -0.25) e a superior a metade de cima
// (centro em y = +0.25); as UVs laterais amostram a metade correspondente
// da textura.
func (l *Library) SlabFaces(upper bool) [FaceCount]GeometryData {
	key := "slab_lower"
	if upper {
		key = "slab_upper"
	}
	return l.getFaces(key, func() [FaceCount]GeometryData {
		if upper {
			return boxFaces(-0.5, 0, -0.5, 0.5, 0.5, 0.5)
		}
		return boxFaces(-0.5, -0.5, -0.5, 0.5, 0, 0.5)
	})
}

// Stair retorna o perfil de escada já orientado para o facing e a metade
// pedidos. Cada combinação é gerada e cacheada separadamente; só a correção
// de ±90° dos cantos fica na matriz da instância.
func (l *Library) Stair(facing blockdata.Facing, upper bool) GeometryData {
	if !facing.Valid() {
		facing = blockdata.FacingEast
	}
	key := "stair_" + string(facing)
	if upper {
		key += "_top"
	}
	return l.getSolo(key, func() GeometryData {
		return stairGeometry(facing, upper)
	})
}

// Cross retorna as lâminas diagonais de vegetação cobrindo a textura inteira.
func (l *Library) Cross() GeometryData {
	return l.getSolo("cross", func() GeometryData {
		return crossGeometry(0, 1)
	})
}

// ChainCross retorna lâminas estreitas amostrando a faixa central da
// textura, usadas por correntes de lanterna.
func (l *Library) ChainCross() GeometryData {
	return l.getSolo("chain_cross", func() GeometryData {
		geo := crossGeometry(0.40625, 0.59375)
		// Lâminas estreitas: encolhe no plano horizontal mantendo a altura
		for i := 0; i+2 < len(geo.Vertices); i += 3 {
			geo.Vertices[i] *= 0.1875
			geo.Vertices[i+2] *= 0.1875
		}
		return geo
	})
}
