package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw percorre os nós na ordem resolvida pelo batcher: opacos primeiro,
// depois os transparentes nas suas faixas. Um draw call por sub-malha para
// nós instanciados; compostos desenham malha a malha por instância.
func (r *Renderer) Draw(camera rl.Camera3D) {
	timeVal := float32(rl.GetTime())

	r.lights.Apply(r.BlockShader, r.lightUniform[0], timeVal)
	r.lights.Apply(r.InstancedShader, r.lightUniform[1], timeVal)

	rl.BeginBlendMode(rl.BlendAlpha)
	for _, dn := range r.nodes {
		r.drawNode(dn)
	}
	rl.EndBlendMode()
}

func (r *Renderer) drawNode(dn *drawNode) {
	tpl := dn.src.Template

	if tpl.Fallback {
		// Wireframe magenta de segurança, sem passar pelos shaders
		for _, pos := range dn.src.Positions {
			rl.DrawCubeWires(pos, 1.01, 1.01, 1.01, rl.Magenta)
		}
		return
	}

	for i := range dn.parts {
		part := &dn.parts[i]
		r.applyMaterialUniforms(part, tpl.Instanced)

		if part.spec.DoubleSided {
			rl.DisableBackfaceCulling()
		}

		if tpl.Instanced {
			rl.DrawMeshInstanced(part.mesh, part.material, dn.src.Transforms, len(dn.src.Transforms))
		} else {
			for _, transform := range dn.src.Transforms {
				rl.DrawMesh(part.mesh, part.material, transform)
			}
		}

		if part.spec.DoubleSided {
			rl.EnableBackfaceCulling()
		}
	}
}

// applyMaterialUniforms empurra os uniforms por material para o shader que
// vai desenhar a parte.
func (r *Renderer) applyMaterialUniforms(part *gpuPart, instanced bool) {
	idx := 0
	shader := r.BlockShader
	if instanced {
		idx = 1
		shader = r.InstancedShader
	}

	emissive := float32(0)
	if part.spec.Emissive {
		emissive = 1
	}

	rl.SetShaderValue(shader, r.cutoffLoc[idx], []float32{part.spec.AlphaCutoff}, rl.ShaderUniformFloat)
	rl.SetShaderValue(shader, r.opacityLoc[idx], []float32{part.spec.Opacity}, rl.ShaderUniformFloat)
	rl.SetShaderValue(shader, r.emissiveLoc[idx], []float32{emissive}, rl.ShaderUniformFloat)
}
