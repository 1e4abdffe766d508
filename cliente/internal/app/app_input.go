package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera processa entrada e suavização da câmera.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	if a.Cam.HandleInput(dt) {
		// Entrada manual interrompe o passeio guiado
		a.Tour.Stop()
	}
	a.Cam.Update(dt)
}

// updateInput processa atalhos globais de teclado.
func (a *App) updateInput() {
	// Esc alterna pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		switch a.State {
		case StateViewing:
			a.State = StatePaused
		case StatePaused:
			a.State = StateViewing
		}
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
		a.Config.Fullscreen = !a.Config.Fullscreen
	}

	if a.State != StateViewing {
		return
	}

	if rl.IsKeyPressed(rl.KeyP) {
		a.Cam.ToggleMode()
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	// Navegação do passeio guiado
	if a.Tour.Available() {
		if rl.IsKeyPressed(rl.KeyTab) {
			if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
				a.Tour.Prev(a.Cam)
			} else {
				a.Tour.Next(a.Cam)
			}
		}
		if rl.IsKeyPressed(rl.KeyR) {
			a.Tour.Resume(a.Cam)
		}
	}
}
