package templates

import (
	"log"
	"sync"

	"BlockVista/cliente/internal/assets"
	"BlockVista/cliente/internal/meshing"
	"BlockVista/shared/blockdata"
)

// Factory constrói e memoiza templates por chave de grupo. Todos os
// templates de um snapshot são construídos antes do primeiro frame; o cache
// garante que grupos repetidos compartilhem a mesma receita.
type Factory struct {
	geo      *meshing.Library
	resolver *assets.Resolver
	mats     *materialBuilder

	mu    sync.RWMutex
	cache map[string]*Template
}

// NewFactory cria a fábrica com a biblioteca de geometria e o resolvedor de
// texturas compartilhados.
func NewFactory(geo *meshing.Library, resolver *assets.Resolver) *Factory {
	return &Factory{
		geo:      geo,
		resolver: resolver,
		mats:     &materialBuilder{resolver: resolver},
		cache:    make(map[string]*Template),
	}
}

// Get retorna o template do grupo, construindo-o na primeira chamada. O
// registro fornece os dados de variante (facing, metade, conexões), que são
// idênticos para todos os blocos do grupo por construção da chave. Nunca
// retorna nil: falhas de construção produzem o template de fallback.
func (f *Factory) Get(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	f.mu.RLock()
	tpl, ok := f.cache[cls.GroupKey]
	f.mu.RUnlock()
	if ok {
		return tpl
	}

	tpl = f.build(cls, rec)

	f.mu.Lock()
	if cached, ok := f.cache[cls.GroupKey]; ok {
		tpl = cached
	} else {
		f.cache[cls.GroupKey] = tpl
	}
	f.mu.Unlock()
	return tpl
}

// Count retorna quantos templates distintos já foram construídos.
func (f *Factory) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.cache)
}

// build despacha para o construtor da categoria. Qualquer pânico durante a
// construção é capturado e rende o template de fallback, mantendo o
// carregamento do mundo vivo.
func (f *Factory) build(cls blockdata.Classification, rec blockdata.BlockRecord) (tpl *Template) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Templates] Pânico construindo template '%s': %v", cls.GroupKey, r)
			tpl = f.fallbackTemplate(cls.GroupKey)
		}
	}()

	switch cls.Category {
	case blockdata.CategorySlab:
		tpl = f.buildSlab(cls, rec)
	case blockdata.CategoryStair:
		tpl = f.buildStair(cls, rec)
	case blockdata.CategoryCross:
		tpl = f.buildCross(cls, rec)
	case blockdata.CategoryFence:
		tpl = f.buildFence(cls, rec)
	case blockdata.CategoryWall:
		tpl = f.buildWall(cls, rec)
	case blockdata.CategoryTrapdoor:
		tpl = f.buildTrapdoor(cls, rec)
	case blockdata.CategoryLantern:
		tpl = f.buildLantern(cls, rec)
	case blockdata.CategoryChain:
		tpl = f.buildChain(cls, rec)
	case blockdata.CategoryGrindstone:
		tpl = f.buildGrindstone(cls, rec)
	case blockdata.CategoryButton:
		tpl = f.buildButton(cls, rec)
	case blockdata.CategoryDoor, blockdata.CategoryTorch:
		// Ainda sem modelo dedicado: instâncias invisíveis
		tpl = &Template{Key: cls.GroupKey, Category: cls.Category, Invisible: true}
	default:
		tpl = f.buildCube(cls, rec)
	}
	return tpl
}

// buildCube cobre as categorias cúbicas cheias: uniforme, topo/fundo/lado,
// direcional e folhas.
func (f *Factory) buildCube(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	faces := f.geo.CubeFaces()
	mats := f.mats.cubeMaterials(rec.Type, cls.Props)

	parts := make([]part, 0, meshing.FaceCount)
	for i := 0; i < meshing.FaceCount; i++ {
		parts = append(parts, part{geo: faces[i], mat: mats[i]})
	}

	return &Template{
		Key:         cls.GroupKey,
		Category:    cls.Category,
		SubMeshes:   mergeParts(parts),
		Instanced:   true,
		Transparent: cls.Props.Transparent,
		Foliage:     cls.Category == blockdata.CategoryLeaves,
	}
}

// buildSlab gera a meia-laje deslocada. As duas metades têm templates
// distintos; o deslocamento vertical fica na geometria, não na matriz.
func (f *Factory) buildSlab(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	upper := rec.IsUpperSlab || rec.Half == "top"
	faces := f.geo.SlabFaces(upper)

	props := cls.Props
	props.Category = blockdata.CategoryTopBottomSide
	mats := f.mats.cubeMaterials(rec.Type, props)

	parts := make([]part, 0, meshing.FaceCount)
	for i := 0; i < meshing.FaceCount; i++ {
		parts = append(parts, part{geo: faces[i], mat: mats[i]})
	}

	return &Template{
		Key:         cls.GroupKey,
		Category:    cls.Category,
		SubMeshes:   mergeParts(parts),
		Instanced:   true,
		Transparent: cls.Props.Transparent,
		Slab:        true,
	}
}

// buildStair usa o perfil pré-orientado do facing e da metade; só a
// correção de canto entra como rotação por instância.
func (f *Factory) buildStair(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	geo := f.geo.Stair(cls.Facing, rec.Half == "top")

	mat := f.mats.baseMaterial(rec.Type, assets.FaceDefault, cls.Props)

	return &Template{
		Key:         cls.GroupKey,
		Category:    cls.Category,
		SubMeshes:   []SubMesh{{Geometry: geo, Material: mat}},
		Instanced:   true,
		Transparent: cls.Props.Transparent,
	}
}

// buildCross cobre vegetação e plantas duplas. A metade de uma planta dupla
// resolve a textura do sufixo correspondente.
func (f *Factory) buildCross(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	texType := rec.Type
	if blockdata.IsDoublePlant(rec.Type) {
		if rec.Half == "top" {
			texType = rec.Type + "_top"
		} else {
			texType = rec.Type + "_bottom"
		}
	}

	mat := f.mats.baseMaterial(texType, assets.FaceDefault, cls.Props)
	mat.DoubleSided = true
	if mat.AlphaCutoff == 0 {
		mat.AlphaCutoff = 0.5
	}
	if cls.Props.HasTint {
		mat.Tint = cls.Props.Tint
	}

	return &Template{
		Key:         cls.GroupKey,
		Category:    cls.Category,
		SubMeshes:   []SubMesh{{Geometry: f.geo.Cross(), Material: mat}},
		Instanced:   true,
		Transparent: true,
		Foliage:     true,
	}
}

// buildChain é o cross estreito; material único, então pode ser instanciado.
func (f *Factory) buildChain(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	mat := f.mats.baseMaterial(rec.Type, assets.FaceDefault, cls.Props)
	mat.DoubleSided = true
	if mat.AlphaCutoff == 0 {
		mat.AlphaCutoff = 0.5
	}

	return &Template{
		Key:         cls.GroupKey,
		Category:    cls.Category,
		SubMeshes:   []SubMesh{{Geometry: f.geo.ChainCross(), Material: mat}},
		Instanced:   true,
		Transparent: true,
	}
}

// buildButton é a única categoria pequena instanciada com yaw por instância:
// a caixa é simétrica o bastante para reorientar na matriz.
func (f *Factory) buildButton(cls blockdata.Classification, rec blockdata.BlockRecord) *Template {
	// Botão encostado na parede oeste da célula, reorientado por instância
	geo := meshing.Box(-0.4375, 0, 0, 0.125, 0.25, 0.375)
	mat := f.mats.baseMaterial(rec.Type, assets.FaceDefault, cls.Props)

	return &Template{
		Key:            cls.GroupKey,
		Category:       cls.Category,
		SubMeshes:      []SubMesh{{Geometry: geo, Material: mat}},
		Instanced:      true,
		YawPerInstance: true,
	}
}

// fallbackTemplate é o cubo wireframe magenta de segurança.
func (f *Factory) fallbackTemplate(key string) *Template {
	var geo meshing.GeometryData
	faces := f.geo.CubeFaces()
	for i := range faces {
		geo.Merge(faces[i])
	}

	return &Template{
		Key:       key,
		Category:  blockdata.CategoryUniform,
		SubMeshes: []SubMesh{{Geometry: geo, Material: fallbackMaterial()}},
		Instanced: true,
		Fallback:  true,
	}
}
