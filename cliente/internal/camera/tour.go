package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/shared/blockdata"
)

// Tour conduz a câmera pelos pontos nomeados do snapshot. O deslocamento em
// si fica por conta da suavização do Controller: o passeio só move o alvo.
type Tour struct {
	Points   []blockdata.TourPoint
	AutoPlay bool
	Speed    float32 // pontos por segundo no modo automático

	index int
	dwell float32
	live  bool
}

// NewTour cria o passeio. Sem pontos, o passeio fica permanentemente inerte.
func NewTour(points []blockdata.TourPoint, autoPlay bool, speed float32) *Tour {
	if speed <= 0 {
		speed = 0.35
	}
	return &Tour{
		Points:   points,
		AutoPlay: autoPlay,
		Speed:    speed,
		live:     autoPlay && len(points) > 0,
	}
}

// Available informa se o snapshot trouxe pontos de passeio.
func (t *Tour) Available() bool {
	return len(t.Points) > 0
}

// Active informa se o passeio automático está correndo.
func (t *Tour) Active() bool {
	return t.live
}

// Current retorna o ponto atual.
func (t *Tour) Current() (blockdata.TourPoint, bool) {
	if len(t.Points) == 0 {
		return blockdata.TourPoint{}, false
	}
	return t.Points[t.index], true
}

// Next avança para o próximo ponto (circular) e aponta a câmera para ele.
func (t *Tour) Next(ctrl *Controller) {
	if len(t.Points) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.Points)
	t.dwell = 0
	t.goTo(ctrl)
}

// Prev volta ao ponto anterior (circular).
func (t *Tour) Prev(ctrl *Controller) {
	if len(t.Points) == 0 {
		return
	}
	t.index = (t.index - 1 + len(t.Points)) % len(t.Points)
	t.dwell = 0
	t.goTo(ctrl)
}

// Stop interrompe o passeio automático (input manual do usuário).
func (t *Tour) Stop() {
	t.live = false
}

// Resume retoma o passeio automático do ponto atual.
func (t *Tour) Resume(ctrl *Controller) {
	if len(t.Points) == 0 {
		return
	}
	t.live = true
	t.dwell = 0
	t.goTo(ctrl)
}

// Update toca o passeio automático: segura a câmera no ponto atual e avança
// quando o tempo de contemplação passa.
func (t *Tour) Update(dt float32, ctrl *Controller) {
	if !t.live || len(t.Points) == 0 {
		return
	}

	t.dwell += dt
	if t.dwell >= 1.0/t.Speed {
		t.dwell = 0
		t.index = (t.index + 1) % len(t.Points)
	}
	t.goTo(ctrl)
}

func (t *Tour) goTo(ctrl *Controller) {
	p := t.Points[t.index]
	ctrl.TargetLookAt = rl.Vector3{X: p.X, Y: p.Y, Z: p.Z}
}
