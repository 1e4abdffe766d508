package templates

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/assets"
	"BlockVista/cliente/internal/meshing"
	"BlockVista/shared/blockdata"
)

// FaceMaterial descreve a aparência de uma parte de template. O renderer
// resolve Candidates na ordem dada; se nenhuma textura existir no disco,
// usa o checkerboard procedural.
type FaceMaterial struct {
	Candidates  []string
	Tint        rl.Color
	Transparent bool
	AlphaCutoff float32
	Opacity     float32
	DoubleSided bool
	Emissive    bool
	Wireframe   bool
	// Solid ignora Candidates e desenha a cor chapada do Tint
	Solid bool
}

// Key identifica o material para fins de mesclagem de sub-malhas: partes com
// a mesma chave compartilham um draw call.
func (m FaceMaterial) Key() string {
	tex := "none"
	if len(m.Candidates) > 0 {
		tex = m.Candidates[0]
	}
	return fmt.Sprintf("%s|%02x%02x%02x%02x|t%v|c%.2f|o%.2f|d%v|e%v|w%v|s%v",
		tex, m.Tint.R, m.Tint.G, m.Tint.B, m.Tint.A,
		m.Transparent, m.AlphaCutoff, m.Opacity, m.DoubleSided, m.Emissive,
		m.Wireframe, m.Solid)
}

// materialBuilder traduz categoria + propriedades do catálogo nos materiais
// por face de um template.
type materialBuilder struct {
	resolver *assets.Resolver
}

// baseMaterial monta um FaceMaterial com as propriedades do catálogo já
// aplicadas (transparência, cutoff, opacidade).
func (mb *materialBuilder) baseMaterial(blockType string, face assets.Face, props blockdata.Props) FaceMaterial {
	mat := FaceMaterial{
		Candidates:  mb.resolver.Candidates(blockType, face),
		Tint:        rl.White,
		Transparent: props.Transparent,
		AlphaCutoff: props.AlphaCutoff,
		Opacity:     props.Opacity,
	}
	if mat.Opacity == 0 {
		mat.Opacity = 1
	}
	return mat
}

// faceToAsset mapeia o índice de face da malha para a face de textura de um
// bloco orientado verticalmente.
func faceToAsset(face int, directional bool) assets.Face {
	switch face {
	case meshing.FaceUp:
		if directional {
			return assets.FaceEnd
		}
		return assets.FaceTop
	case meshing.FaceDown:
		if directional {
			return assets.FaceEnd
		}
		return assets.FaceBottom
	default:
		return assets.FaceSide
	}
}

// cubeMaterials resolve os seis materiais de um bloco cúbico conforme a
// categoria de renderização.
func (mb *materialBuilder) cubeMaterials(blockType string, props blockdata.Props) [meshing.FaceCount]FaceMaterial {
	var mats [meshing.FaceCount]FaceMaterial

	switch props.Category {
	case blockdata.CategoryTopBottomSide:
		for i := 0; i < meshing.FaceCount; i++ {
			mats[i] = mb.baseMaterial(blockType, faceToAsset(i, false), props)
		}
		if props.HasTint {
			// Tonalização só no topo; grama também tinge os lados, que
			// usam a textura de overlay
			mats[meshing.FaceUp].Tint = props.Tint
			if blockType == "grass_block" {
				for _, i := range []int{meshing.FaceEast, meshing.FaceWest, meshing.FaceNorth, meshing.FaceSouth} {
					mats[i].Tint = props.Tint
				}
			}
		}

	case blockdata.CategoryDirectional:
		for i := 0; i < meshing.FaceCount; i++ {
			mats[i] = mb.baseMaterial(blockType, faceToAsset(i, true), props)
		}

	case blockdata.CategoryLeaves:
		for i := 0; i < meshing.FaceCount; i++ {
			m := mb.baseMaterial(blockType, assets.FaceDefault, props)
			m.DoubleSided = true
			if props.HasTint {
				m.Tint = props.Tint
			}
			mats[i] = m
		}

	default:
		// Uniforme: o mesmo material nas seis faces
		m := mb.baseMaterial(blockType, assets.FaceDefault, props)
		if props.HasTint {
			m.Tint = props.Tint
		}
		for i := 0; i < meshing.FaceCount; i++ {
			mats[i] = m
		}
	}

	return mats
}

// solidMaterial é um material de cor chapada, sem textura.
func solidMaterial(tint rl.Color) FaceMaterial {
	return FaceMaterial{
		Solid:   true,
		Tint:    tint,
		Opacity: 1,
	}
}

// fallbackMaterial é o wireframe magenta usado quando a construção de um
// template falha.
func fallbackMaterial() FaceMaterial {
	return FaceMaterial{
		Tint:      rl.Magenta,
		Opacity:   1,
		Wireframe: true,
	}
}
