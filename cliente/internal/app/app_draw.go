package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/camera"
	"BlockVista/shared/util"
)

// draw renderiza um frame completo.
func (a *App) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	if a.Loading {
		a.drawLoadingScreen()
		return
	}

	a.drawScene()

	if a.Config.ShowDebugInfo {
		a.drawHUD()
	}
	a.drawTourPanel()

	if a.State == StatePaused {
		a.drawPauseMenu()
	}
}

// drawScene renderiza o mundo 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	if a.Config.ShowGrid {
		rl.DrawGrid(64, 1.0)
	}
	a.renderer.Draw(a.Cam.RLCamera)

	rl.EndMode3D()
}

// drawHUD renderiza o painel de informações no canto direito.
func (a *App) drawHUD() {
	screenW := int32(rl.GetScreenWidth())

	panelW := int32(250)
	panelX := screenW - panelW - 10
	panelY := int32(10)
	panelH := int32(190)

	rl.DrawRectangle(panelX, panelY, panelW, panelH, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(panelX, panelY, panelW, panelH, rl.NewColor(100, 100, 120, 255))

	x := panelX + 10
	y := panelY + 10

	// FPS com código de cores
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x, y, 20, fpsColor)
	y += 28

	groups, instances, vertices := a.renderer.Stats()
	rl.DrawText(fmt.Sprintf("Blocos: %d", a.blockCount), x, y, 16, rl.White)
	y += 22
	rl.DrawText(fmt.Sprintf("Grupos: %d  Instâncias: %d", groups, instances), x, y, 16, rl.White)
	y += 22
	rl.DrawText(fmt.Sprintf("Vértices: %d", vertices), x, y, 16, rl.White)
	y += 22

	target := a.Cam.TargetLookAt
	rl.DrawText(fmt.Sprintf("Câmera: %.0f, %.0f, %.0f", target.X, target.Y, target.Z), x, y, 16, rl.LightGray)
	y += 22

	mode := "Perspectiva"
	if a.Cam.Mode == camera.ModeOrthographic {
		mode = "Ortográfica"
	}
	rl.DrawText(fmt.Sprintf("Projeção: %s (P)", mode), x, y, 16, rl.LightGray)
	y += 22

	if a.Tour.Available() {
		rl.DrawText("Passeio: Tab/Shift+Tab", x, y, 16, rl.SkyBlue)
	}
}

// drawTourPanel mostra o rótulo do ponto atual do passeio guiado.
func (a *App) drawTourPanel() {
	point, ok := a.Tour.Current()
	if !ok {
		return
	}

	// Só mostra o rótulo enquanto a câmera está apontada para o ponto do
	// passeio; input manual de câmera dispensa o painel.
	if util.DistSq(a.Cam.TargetLookAt, rl.Vector3{X: point.X, Y: point.Y, Z: point.Z}) > 0.25 {
		return
	}

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	labelSize := rl.MeasureText(point.Label, 24)
	textSize := int32(0)
	if point.Text != "" {
		textSize = rl.MeasureText(point.Text, 16)
	}
	panelW := labelSize + 40
	if textSize+40 > panelW {
		panelW = textSize + 40
	}
	panelH := int32(44)
	if point.Text != "" {
		panelH = 68
	}
	panelX := (screenW - panelW) / 2
	panelY := screenH - panelH - 24

	rl.DrawRectangle(panelX, panelY, panelW, panelH, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(panelX, panelY, panelW, panelH, rl.NewColor(100, 100, 120, 255))
	rl.DrawText(point.Label, panelX+(panelW-labelSize)/2, panelY+10, 24, rl.Gold)
	if point.Text != "" {
		rl.DrawText(point.Text, panelX+(panelW-textSize)/2, panelY+42, 16, rl.LightGray)
	}
}

// drawPauseMenu renderiza o menu de pausa sobre a cena.
func (a *App) drawPauseMenu() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenW, screenH, rl.NewColor(0, 0, 0, 150))

	title := "PAUSADO"
	titleSize := rl.MeasureText(title, 40)
	rl.DrawText(title, (screenW-titleSize)/2, screenH/2-120, 40, rl.White)

	btnW := int32(220)
	btnH := int32(44)
	btnX := (screenW - btnW) / 2

	if a.drawButton("Continuar", btnX, screenH/2-30, btnW, btnH) {
		a.State = StateViewing
	}
	if a.drawButton("Sair", btnX, screenH/2+30, btnW, btnH) {
		a.quit = true
	}
}

// drawButton desenha um botão com destaque de hover e retorna true no clique.
func (a *App) drawButton(label string, x, y, w, h int32) bool {
	mouse := rl.GetMousePosition()
	hover := mouse.X >= float32(x) && mouse.X <= float32(x+w) &&
		mouse.Y >= float32(y) && mouse.Y <= float32(y+h)

	bg := rl.NewColor(60, 60, 80, 255)
	if hover {
		bg = rl.NewColor(90, 90, 120, 255)
	}

	rl.DrawRectangle(x, y, w, h, bg)
	rl.DrawRectangleLines(x, y, w, h, rl.NewColor(130, 130, 160, 255))

	textSize := rl.MeasureText(label, 20)
	rl.DrawText(label, x+(w-textSize)/2, y+(h-20)/2, 20, rl.White)

	return hover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// drawLoadingScreen renderiza a tela de carregamento com barra de progresso.
func (a *App) drawLoadingScreen() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	title := "BlockVista"
	titleSize := rl.MeasureText(title, 48)
	rl.DrawText(title, (screenW-titleSize)/2, screenH/2-100, 48, rl.Gold)

	statusSize := rl.MeasureText(a.LoadingStatus, 20)
	rl.DrawText(a.LoadingStatus, (screenW-statusSize)/2, screenH/2-20, 20, rl.LightGray)

	barW := int32(400)
	barH := int32(18)
	barX := (screenW - barW) / 2
	barY := screenH/2 + 20

	rl.DrawRectangle(barX, barY, barW, barH, rl.NewColor(50, 50, 60, 255))
	fill := int32(float32(barW) * a.LoadingProgress)
	if fill > 0 {
		rl.DrawRectangle(barX, barY, fill, barH, rl.NewColor(120, 180, 255, 255))
	}
	rl.DrawRectangleLines(barX, barY, barW, barH, rl.NewColor(100, 100, 120, 255))

	// Pontos animados no rodapé
	dots := (a.frameCount / 20) % 4
	suffix := ""
	for i := 0; i < dots; i++ {
		suffix += "."
	}
	rl.DrawText("Carregando"+suffix, barX, barY+30, 16, rl.Gray)
}
