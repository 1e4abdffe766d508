package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"log"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/batch"
	"BlockVista/cliente/internal/meshing"
	"BlockVista/cliente/internal/templates"
)

// gpuPart é uma sub-malha de template já residente na GPU, com o material
// raylib preparado (shader, textura, tint).
type gpuPart struct {
	mesh     rl.Mesh
	material rl.Material
	spec     templates.FaceMaterial
}

// drawNode emparelha um nó de batch com suas partes na GPU.
type drawNode struct {
	src   *batch.Node
	parts []gpuPart
}

// Renderer sobe os nós de batch para a GPU e os desenha na ordem já
// resolvida pelo batcher.
type Renderer struct {
	BlockShader     rl.Shader
	InstancedShader rl.Shader

	textures *textureCache
	nodes    []*drawNode
	lights   *lightSet

	// Uniforms por material, nos dois shaders
	cutoffLoc    [2]int32
	opacityLoc   [2]int32
	emissiveLoc  [2]int32
	lightUniform [2]lightLocs

	totalInstances int
	totalVertices  int
}

type lightLocs struct {
	count  int32
	pos    int32
	color  int32
	radius int32
}

// NewRenderer inicializa shaders, cache de texturas e o conjunto de luzes.
// Exige a janela pronta: chamado depois de rl.InitWindow.
func NewRenderer() *Renderer {
	r := &Renderer{
		textures: newTextureCache(),
		lights:   newLightSet(),
	}

	r.BlockShader = rl.LoadShaderFromMemory(blockVertexShader, blockFragmentShader)
	r.InstancedShader = rl.LoadShaderFromMemory(blockInstancedVertexShader, blockFragmentShader)

	// Locs é um ponteiro bruto para um array em C
	locs := unsafe.Slice(r.BlockShader.Locs, rl.MaxShaderLocations)
	locs[rl.ShaderLocMapDiffuse] = rl.GetShaderLocation(r.BlockShader, "texture0")
	locs[rl.ShaderLocColorDiffuse] = rl.GetShaderLocation(r.BlockShader, "colDiffuse")

	locsI := unsafe.Slice(r.InstancedShader.Locs, rl.MaxShaderLocations)
	locsI[rl.ShaderLocMapDiffuse] = rl.GetShaderLocation(r.InstancedShader, "texture0")
	locsI[rl.ShaderLocColorDiffuse] = rl.GetShaderLocation(r.InstancedShader, "colDiffuse")
	// A matriz de modelo chega como atributo por instância
	locsI[rl.ShaderLocMatrixModel] = rl.GetShaderLocationAttrib(r.InstancedShader, "instanceTransform")

	for i, shader := range []rl.Shader{r.BlockShader, r.InstancedShader} {
		r.cutoffLoc[i] = rl.GetShaderLocation(shader, "alphaCutoff")
		r.opacityLoc[i] = rl.GetShaderLocation(shader, "opacity")
		r.emissiveLoc[i] = rl.GetShaderLocation(shader, "emissive")
		r.lightUniform[i] = lightLocs{
			count:  rl.GetShaderLocation(shader, "lightCount"),
			pos:    rl.GetShaderLocation(shader, "lightPos"),
			color:  rl.GetShaderLocation(shader, "lightColor"),
			radius: rl.GetShaderLocation(shader, "lightRadius"),
		}
	}

	log.Printf("[Render] Shaders compilados (normal=%d, instanciado=%d)",
		r.BlockShader.ID, r.InstancedShader.ID)
	return r
}

// Upload sobe todos os nós para a GPU. Substitui o conteúdo anterior, se
// houver. A ordem dos nós é preservada: ela é a ordem de desenho.
func (r *Renderer) Upload(nodes []*batch.Node) {
	r.unloadNodes()
	r.lights.Reset()
	r.totalInstances = 0
	r.totalVertices = 0

	for _, node := range nodes {
		tpl := node.Template
		r.totalInstances += node.InstanceCount()

		if tpl.Invisible {
			continue
		}

		dn := &drawNode{src: node}
		for i := range tpl.SubMeshes {
			sub := &tpl.SubMeshes[i]
			if sub.Geometry.VertexCount() == 0 {
				continue
			}
			dn.parts = append(dn.parts, r.uploadPart(sub, tpl))
			r.totalVertices += sub.Geometry.VertexCount() * node.InstanceCount()
		}
		r.nodes = append(r.nodes, dn)

		for _, spec := range tpl.Lights {
			for _, pos := range node.Positions {
				r.lights.Add(pos, spec)
			}
		}
	}

	log.Printf("[Render] Upload concluído: %d nós, %d instâncias, %d luzes",
		len(r.nodes), r.totalInstances, r.lights.Count())
}

func (r *Renderer) uploadPart(sub *templates.SubMesh, tpl *templates.Template) gpuPart {
	mesh := r.geometryToMesh(sub.Geometry)
	rl.UploadMesh(&mesh, false)

	material := rl.LoadMaterialDefault()
	if tpl.Instanced {
		material.Shader = r.InstancedShader
	} else {
		material.Shader = r.BlockShader
	}

	if !sub.Material.Wireframe {
		tex := r.textures.White()
		if !sub.Material.Solid {
			tex = r.textures.Resolve(sub.Material.Candidates)
		}
		rl.SetMaterialTexture(&material, rl.MapDiffuse, tex)
	}

	// O tint entra pelo colDiffuse do mapa difuso
	maps := unsafe.Slice(material.Maps, 1)
	maps[0].Color = sub.Material.Tint

	return gpuPart{mesh: mesh, material: material, spec: sub.Material}
}

// geometryToMesh copia os buffers Go para memória C, como o raylib espera.
func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(len(data.Vertices) / 3)
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	return mesh
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// Stats retorna contadores para o HUD.
func (r *Renderer) Stats() (groups, instances, vertices int) {
	return len(r.nodes), r.totalInstances, r.totalVertices
}

func (r *Renderer) unloadNodes() {
	for _, dn := range r.nodes {
		for _, part := range dn.parts {
			rl.UnloadMesh(&part.mesh)
		}
	}
	r.nodes = nil
}

// Unload libera todos os recursos de GPU.
func (r *Renderer) Unload() {
	r.unloadNodes()
	r.textures.Unload()
	rl.UnloadShader(r.BlockShader)
	rl.UnloadShader(r.InstancedShader)
}
