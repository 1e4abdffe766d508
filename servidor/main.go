package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"BlockVista/shared/blockdata"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wireMessage é o envelope JSON trocado com os clientes.
type wireMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// requestPayload pede o snapshot de um mundo pelo nome.
type requestPayload struct {
	World string `json:"world"`
}

// statusPayload é a mensagem informativa enviada aos clientes.
type statusPayload struct {
	Message string `json:"message"`
}

// Hub gerencia as conexões WebSocket ativas
type Hub struct {
	clients    map[*websocket.Conn]*sync.Mutex
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*sync.Mutex),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Recuperado de pânico fatal: %v", r)
		}
	}()

	for {
		select {
		case client, ok := <-h.register:
			if !ok {
				return
			}
			h.mu.Lock()
			h.clients[client] = &sync.Mutex{}
			h.mu.Unlock()
			log.Printf("Cliente registrado: %s", client.RemoteAddr())
		case client, ok := <-h.unregister:
			if !ok {
				return
			}
			h.mu.Lock()
			if lock, ok := h.clients[client]; ok {
				lock.Lock()
				delete(h.clients, client)
				client.Close()
				lock.Unlock()
				log.Printf("Cliente desregistrado: %s", client.RemoteAddr())
			}
			h.mu.Unlock()
		case message, ok := <-h.broadcast:
			if !ok {
				return
			}
			h.mu.Lock()
			type clientEntry struct {
				conn *websocket.Conn
				lock *sync.Mutex
			}
			var targets []clientEntry
			for c, l := range h.clients {
				targets = append(targets, clientEntry{c, l})
			}
			h.mu.Unlock()

			for _, target := range targets {
				target.lock.Lock()
				err := target.conn.WriteMessage(websocket.TextMessage, message)
				if err != nil {
					log.Printf("Erro ao enviar para cliente %s: %v", target.conn.RemoteAddr(), err)
					target.conn.Close()
					h.mu.Lock()
					delete(h.clients, target.conn)
					h.mu.Unlock()
				}
				target.lock.Unlock()
			}
		}
	}
}

// WriteSafe garante que apenas uma goroutine escreva no WebSocket por vez
func (h *Hub) WriteSafe(conn *websocket.Conn, data []byte) error {
	h.mu.Lock()
	lock, ok := h.clients[conn]
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("cliente não encontrado no hub")
	}

	lock.Lock()
	defer lock.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

// safeSend envia para o canal de broadcast protegendo contra pânicos de canal fechado
func (h *Hub) safeSend(data []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Hub] Aviso: Falha ao enviar broadcast (canal fechado?): %v", r)
		}
	}()
	h.broadcast <- data
}

// sendMessage serializa um envelope e envia para um cliente específico.
func (h *Hub) sendMessage(conn *websocket.Conn, msgType string, payload interface{}) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Erro ao serializar payload: %v", err)
			return
		}
		raw = data
	}

	data, err := json.Marshal(wireMessage{Type: msgType, Payload: raw})
	if err != nil {
		log.Printf("Erro ao serializar envelope: %v", err)
		return
	}

	if err := h.WriteSafe(conn, data); err != nil {
		log.Printf("Erro ao enviar mensagem: %v", err)
	}
}

// worldLibrary serve os snapshots do diretório de mundos e acompanha
// alterações nos arquivos para rebroadcast.
type worldLibrary struct {
	dir    string
	mu     sync.Mutex
	mtimes map[string]time.Time
}

func newWorldLibrary(dir string) *worldLibrary {
	return &worldLibrary{dir: dir, mtimes: make(map[string]time.Time)}
}

// path resolve o nome do mundo para seu arquivo JSON, recusando nomes que
// tentem escapar do diretório.
func (w *worldLibrary) path(world string) (string, error) {
	if world == "" {
		world = "world"
	}
	if world != filepath.Base(world) {
		return "", fmt.Errorf("nome de mundo inválido: %q", world)
	}
	return filepath.Join(w.dir, world+".json"), nil
}

// load lê e valida o snapshot, devolvendo o JSON cru para repasse.
func (w *worldLibrary) load(world string) (json.RawMessage, error) {
	path, err := w.path(world)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mundo %q indisponível: %w", world, err)
	}

	// Valida antes de repassar: um arquivo quebrado não deve derrubar clientes
	if _, err := blockdata.ParseSnapshot(data); err != nil {
		return nil, fmt.Errorf("mundo %q corrompido: %w", world, err)
	}

	w.markSeen(world, path)
	return data, nil
}

func (w *worldLibrary) markSeen(world, path string) {
	if info, err := os.Stat(path); err == nil {
		w.mu.Lock()
		w.mtimes[world] = info.ModTime()
		w.mu.Unlock()
	}
}

// watch observa os mundos já servidos e rebroadcasta quando o arquivo muda.
func (w *worldLibrary) watch(hub *Hub) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Watch] Recuperado de pânico: %v", r)
			go func() {
				time.Sleep(5 * time.Second)
				w.watch(hub)
			}()
		}
	}()

	for {
		time.Sleep(2 * time.Second)

		w.mu.Lock()
		worlds := make(map[string]time.Time, len(w.mtimes))
		for name, t := range w.mtimes {
			worlds[name] = t
		}
		w.mu.Unlock()

		for name, last := range worlds {
			path, err := w.path(name)
			if err != nil {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || !info.ModTime().After(last) {
				continue
			}

			log.Printf("[Watch] Mundo %q alterado, rebroadcastando...", name)
			data, err := w.load(name)
			if err != nil {
				log.Printf("[Watch] %v", err)
				continue
			}
			if msg, err := json.Marshal(wireMessage{Type: "snapshot", Payload: data}); err == nil {
				hub.safeSend(msg)
			}
		}
	}
}

func main() {
	// Garante que o working directory é o mesmo diretório do executável,
	// para que caminhos relativos funcionem corretamente.
	if exePath, err := os.Executable(); err == nil {
		os.Chdir(filepath.Dir(exePath))
	}

	worldsDir := flag.String("worlds", ".", "Diretório com os snapshots de mundo (JSON)")
	port := flag.String("port", "8080", "Porta do servidor")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	// Configurar Log em Arquivo para depuração de crash
	if err := os.MkdirAll("tmp", 0755); err == nil {
		logFile, err := os.OpenFile("tmp/server.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			mw := io.MultiWriter(os.Stdout, logFile)
			log.SetOutput(mw)
		}
	}
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║      BlockVista SERVER v0.1.0        ║")
	log.Println("╚══════════════════════════════════════╝")

	hub := newHub()
	go hub.run()

	library := newWorldLibrary(*worldsDir)
	go library.watch(hub)

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, library, w, r)
	})

	if p := os.Getenv("PORT"); p != "" {
		*port = p
	}

	// Iniciar Servidor HTTP/WebSocket com verificação de porta
	addr := "127.0.0.1:" + *port
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("ERRO CRÍTICO: não foi possível abrir a porta %s.", *port)
		log.Printf("Provavelmente há outra instância do servidor rodando.")
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
	ln.Close() // Fecha para o ListenAndServe reabrir

	log.Printf("Servidor BlockVista iniciado em %s (mundos em %s)", addr, *worldsDir)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Erro fatal no servidor HTTP: %v", err)
	}
}

// serveWs maneja requisições websocket do peer.
func serveWs(hub *Hub, library *worldLibrary, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Erro no upgrade do WebSocket: %v", err)
		return
	}
	hub.register <- conn

	hub.sendMessage(conn, "status", statusPayload{Message: "Conectado ao servidor BlockVista"})

	go func() {
		defer func() {
			hub.unregister <- conn
		}()

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Printf("Erro ao ler mensagem: %v", err)
				break
			}

			var msg wireMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				log.Printf("Erro ao desempacotar envelope: %v", err)
				continue
			}

			handleClientMessage(hub, library, conn, &msg)
		}
	}()
}

func handleClientMessage(hub *Hub, library *worldLibrary, conn *websocket.Conn, msg *wireMessage) {
	switch msg.Type {
	case "ping":
		hub.sendMessage(conn, "pong", nil)
	case "request_snapshot":
		var req requestPayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				log.Printf("Erro ao ler request_snapshot: %v", err)
				return
			}
		}

		hub.sendMessage(conn, "status", statusPayload{Message: "Preparando snapshot..."})
		data, err := library.load(req.World)
		if err != nil {
			log.Printf("[WS] %v", err)
			hub.sendMessage(conn, "status", statusPayload{Message: "Mundo indisponível no servidor"})
			return
		}

		envelope, err := json.Marshal(wireMessage{Type: "snapshot", Payload: data})
		if err != nil {
			log.Printf("[WS] Erro ao montar envelope: %v", err)
			return
		}
		if err := hub.WriteSafe(conn, envelope); err != nil {
			log.Printf("[WS] Erro ao enviar snapshot: %v", err)
			return
		}
		log.Printf("[WS] Snapshot %q enviado para %s (%d bytes)", req.World, conn.RemoteAddr(), len(envelope))
	default:
		log.Printf("[WS] Mensagem desconhecida: %s", msg.Type)
	}
}
