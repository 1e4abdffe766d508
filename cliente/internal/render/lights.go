package render

import (
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/templates"
)

// maxLights espelha MAX_LIGHTS do fragment shader.
const maxLights = 16

type worldLight struct {
	pos     rl.Vector3
	color   [3]float32
	radius  float32
	flicker float32
	phase   float32
}

// lightSet mantém as luzes pontuais coletadas das lanternas do snapshot e
// empurra os uniforms por frame, com a oscilação aplicada.
type lightSet struct {
	lights  []worldLight
	dropped int
}

func newLightSet() *lightSet {
	return &lightSet{}
}

func (ls *lightSet) Reset() {
	ls.lights = ls.lights[:0]
	ls.dropped = 0
}

func (ls *lightSet) Count() int {
	return len(ls.lights)
}

// Add registra a luz de uma instância. Acima do limite do shader as luzes
// extras são descartadas (e contadas no log).
func (ls *lightSet) Add(center rl.Vector3, spec templates.LightSpec) {
	if len(ls.lights) >= maxLights {
		ls.dropped++
		if ls.dropped == 1 {
			log.Printf("[Render] Limite de %d luzes atingido, extras ignoradas", maxLights)
		}
		return
	}

	ls.lights = append(ls.lights, worldLight{
		pos: rl.Vector3{
			X: center.X + spec.Offset.X,
			Y: center.Y + spec.Offset.Y,
			Z: center.Z + spec.Offset.Z,
		},
		color: [3]float32{
			float32(spec.Color.R) / 255,
			float32(spec.Color.G) / 255,
			float32(spec.Color.B) / 255,
		},
		radius:  spec.Radius,
		flicker: spec.Flicker,
		// Fase derivada da posição para dessincronizar lanternas vizinhas
		phase: center.X*1.7 + center.Z*2.3,
	})
}

// Apply envia o estado atual das luzes para um shader.
func (ls *lightSet) Apply(shader rl.Shader, locs lightLocs, timeVal float32) {
	count := len(ls.lights)
	rl.SetShaderValue(shader, locs.count, []float32{float32(count)}, rl.ShaderUniformFloat)
	if count == 0 {
		return
	}

	positions := make([]float32, 0, count*3)
	colors := make([]float32, 0, count*3)
	radii := make([]float32, 0, count)

	for _, l := range ls.lights {
		intensity := float32(1)
		if l.flicker > 0 {
			intensity += l.flicker * float32(math.Sin(float64(timeVal*7.3+l.phase)))
		}
		positions = append(positions, l.pos.X, l.pos.Y, l.pos.Z)
		colors = append(colors, l.color[0]*intensity, l.color[1]*intensity, l.color[2]*intensity)
		radii = append(radii, l.radius)
	}

	rl.SetShaderValueV(shader, locs.pos, positions, rl.ShaderUniformVec3, int32(count))
	rl.SetShaderValueV(shader, locs.color, colors, rl.ShaderUniformVec3, int32(count))
	rl.SetShaderValueV(shader, locs.radius, radii, rl.ShaderUniformFloat, int32(count))
}
