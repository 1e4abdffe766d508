package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"BlockVista/shared/util"
)

// Mode define o tipo de projeção.
type Mode int

const (
	ModePerspective Mode = iota
	ModeOrthographic
)

// Controller é a câmera orbital do visualizador: gira em torno de um ponto
// de interesse com zoom e movimento suavizados por interpolação.
type Controller struct {
	RLCamera rl.Camera3D

	Mode         Mode
	FOV          float32
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32

	// Estado alvo (para interpolação suave)
	TargetLookAt rl.Vector3
	TargetZoom   float32
	TargetAngleY float32 // azimute (radianos)
	TargetAngleX float32 // elevação (radianos)

	// Estado atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria o controlador com a pose isométrica padrão.
func New(fov float32) *Controller {
	if fov == 0 {
		fov = 60
	}
	c := &Controller{
		Mode:         ModePerspective,
		FOV:          fov,
		MinZoom:      4.0,
		MaxZoom:      250.0,
		MoveSpeed:    50.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    10.0,
		SmoothFactor: 0.12,

		TargetZoom:   60.0,
		TargetAngleY: 45.0 * rl.Deg2rad,
		TargetAngleX: -30.0 * rl.Deg2rad,
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}

	c.recompute()
	return c
}

// SetTarget move o ponto de interesse imediatamente, sem suavização.
func (c *Controller) SetTarget(pos rl.Vector3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
	c.recompute()
}

// ToggleMode alterna entre perspectiva e ortográfica.
func (c *Controller) ToggleMode() {
	if c.Mode == ModePerspective {
		c.Mode = ModeOrthographic
	} else {
		c.Mode = ModePerspective
	}
	c.recompute()
}

// Update interpola o estado atual na direção do alvo. Chamado a cada frame.
func (c *Controller) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	cur := mgl32.Vec3{c.CurrentLookAt.X, c.CurrentLookAt.Y, c.CurrentLookAt.Z}
	tgt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}
	lerped := cur.Add(tgt.Sub(cur).Mul(factor))

	c.CurrentLookAt = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.recompute()
}

// recompute converte (ângulos, zoom) em posição cartesiana da câmera.
func (c *Controller) recompute() {
	dist := c.CurrentZoom

	if c.Mode == ModeOrthographic {
		// No ortográfico o zoom vive no Fovy; a câmera fica longe para não
		// cortar geometria no near plane
		c.RLCamera.Fovy = c.CurrentZoom * 0.5
		c.RLCamera.Projection = rl.CameraOrthographic
		dist = 220.0
	} else {
		c.RLCamera.Fovy = c.FOV
		c.RLCamera.Projection = rl.CameraPerspective
	}

	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + dist*cosX*sinY,
		Y: c.CurrentLookAt.Y + dist*-sinX,
		Z: c.CurrentLookAt.Z + dist*cosX*cosY,
	}
	c.RLCamera.Target = c.CurrentLookAt
}

// HandleInput processa o input de câmera. Retorna true se houve movimento
// (usado para interromper o passeio automático).
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		moved = true
		c.TargetZoom -= wheel * c.ZoomSpeed
		c.TargetZoom = util.Clamp(c.TargetZoom, c.MinZoom, c.MaxZoom)
	}

	// Órbita com o botão esquerdo
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Elevação limitada: nem de ponta cabeça, nem rasante
		c.TargetAngleX = util.Clamp(c.TargetAngleX, -89.0*rl.Deg2rad, -5.0*rl.Deg2rad)
	}

	// Pan WASD no plano do chão, relativo ao azimute da câmera
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	lookAt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}

	forward := lookAt.Sub(camPos)
	forward[1] = 0
	if forward.Len() > 0 {
		forward = forward.Normalize()
	}
	right := forward.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() > 0 {
		right = right.Normalize()
	}

	// Quanto mais longe o zoom, mais rápido o pan
	speed := c.MoveSpeed * (c.CurrentZoom / 50.0) * dt

	move := mgl32.Vec3{}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}
	if rl.IsKeyDown(rl.KeyE) {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if rl.IsKeyDown(rl.KeyQ) {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}

	if move.Len() > 0 {
		move = move.Normalize().Mul(speed)
		c.TargetLookAt = rl.Vector3{
			X: c.TargetLookAt.X + move.X(),
			Y: c.TargetLookAt.Y + move.Y(),
			Z: c.TargetLookAt.Z + move.Z(),
		}
		moved = true
	}

	return moved
}
