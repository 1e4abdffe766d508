package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/assets"
	"BlockVista/cliente/internal/batch"
	"BlockVista/cliente/internal/camera"
	"BlockVista/cliente/internal/client"
	"BlockVista/cliente/internal/meshing"
	"BlockVista/cliente/internal/render"
	"BlockVista/cliente/internal/templates"
	"BlockVista/shared/blockdata"
	"BlockVista/shared/config"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Carregando o snapshot
	StateViewing                 // Visualizando o mundo
	StatePaused                  // Pausado
)

// worldData é o resultado do pipeline de carga, pronto para subir à GPU.
type worldData struct {
	snapshot *blockdata.Snapshot
	nodes    []*batch.Node
	blocks   int
}

// App é a aplicação principal do BlockVista.
type App struct {
	Config *config.Config
	State  AppState

	Cam  *camera.Controller
	Tour *camera.Tour

	classifier *blockdata.Classifier
	factory    *templates.Factory
	batcher    *batch.Batcher
	renderer   *render.Renderer
	netClient  *client.SnapshotClient

	// Pipeline de carga roda em goroutine; o upload de GPU fica na thread
	// principal
	worldCh chan *worldData

	snapshot   *blockdata.Snapshot
	blockCount int
	frameCount int
	quit       bool

	Loading         bool
	LoadingStatus   string
	LoadingProgress float32
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:        cfg,
		State:         StateLoading,
		Loading:       true,
		LoadingStatus: "Preparando...",
		worldCh:       make(chan *worldData, 1),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	a.Cam = camera.New(a.Config.FOV)
	a.Tour = camera.NewTour(nil, false, a.Config.TourSpeed)

	log.Println("[BlockVista] Janela inicializada com sucesso")
	log.Printf("[BlockVista] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	catalog := blockdata.NewCatalog()
	a.classifier = blockdata.NewClassifier(catalog)
	a.factory = templates.NewFactory(meshing.NewLibrary(), assets.NewResolver())
	a.batcher = batch.NewBatcher(a.classifier, a.factory)
	a.renderer = render.NewRenderer()

	go a.loadWorld()

	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	// Mundo pronto vindo do pipeline de carga
	select {
	case world := <-a.worldCh:
		a.installWorld(world)
	default:
	}

	switch a.State {
	case StateLoading:
		a.updateInput()
	case StateViewing:
		a.updateCamera()
		a.updateInput()
		a.Tour.Update(rl.GetFrameTime(), a.Cam)
	case StatePaused:
		a.updateInput()
	}
}

// installWorld sobe o mundo carregado para a GPU e posiciona a câmera.
func (a *App) installWorld(world *worldData) {
	a.renderer.Upload(world.nodes)
	a.snapshot = world.snapshot
	a.blockCount = world.blocks

	a.Tour = camera.NewTour(world.snapshot.Tour, a.Config.TourAutoPlay, a.Config.TourSpeed)
	a.Cam.SetTarget(worldCenter(world.nodes))
	if a.Tour.Active() {
		a.Tour.Resume(a.Cam)
	}

	a.Loading = false
	a.State = StateViewing
	log.Printf("[App] Mundo instalado: %d blocos em %d grupos", world.blocks, len(world.nodes))
}

// worldCenter calcula o centro médio das instâncias para a pose inicial.
func worldCenter(nodes []*batch.Node) rl.Vector3 {
	var sum rl.Vector3
	count := 0
	for _, n := range nodes {
		for _, p := range n.Positions {
			sum.X += p.X
			sum.Y += p.Y
			sum.Z += p.Z
			count++
		}
	}
	if count == 0 {
		return rl.Vector3{}
	}
	inv := 1.0 / float32(count)
	return rl.Vector3{X: sum.X * inv, Y: sum.Y * inv, Z: sum.Z * inv}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.netClient != nil {
		a.netClient.Close()
	}
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[BlockVista] Erro ao salvar configurações: %v", err)
	}
}
