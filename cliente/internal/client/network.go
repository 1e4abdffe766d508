package client

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"BlockVista/shared/blockdata"
)

// wireMessage é o envelope JSON trocado com o servidor de snapshots.
type wireMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// requestPayload pede o snapshot de um mundo pelo nome.
type requestPayload struct {
	World string `json:"world"`
}

// statusPayload é a mensagem informativa do servidor.
type statusPayload struct {
	Message string `json:"message"`
}

// SnapshotClient lida com a comunicação com o servidor BlockVista.
type SnapshotClient struct {
	conn      *websocket.Conn
	url       string
	connected bool
	mu        sync.RWMutex

	// Callbacks para o App
	OnSnapshot func(*blockdata.Snapshot)
	OnStatus   func(msg string)
}

func NewSnapshotClient(url string) *SnapshotClient {
	return &SnapshotClient{url: url}
}

// Connect disca com algumas tentativas: o servidor pode ainda estar subindo.
func (c *SnapshotClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var err error
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Network] Tentativa de conexão %d/%d em %s...", i+1, maxRetries, c.url)
		c.conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Network] Servidor ainda não está pronto: %v. Aguardando...", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Printf("[Network] Desisti após %d tentativas: %v", maxRetries, err)
		return err
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	return nil
}

func (c *SnapshotClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// RequestSnapshot pede o snapshot do mundo. A resposta chega pelo callback
// OnSnapshot.
func (c *SnapshotClient) RequestSnapshot(world string) {
	payload, _ := json.Marshal(requestPayload{World: world})
	c.send(wireMessage{Type: "request_snapshot", Payload: payload})
}

func (c *SnapshotClient) send(msg wireMessage) {
	if !c.IsConnected() {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Network] Erro ao serializar mensagem: %v", err)
		return
	}

	c.mu.Lock()
	err = c.conn.WriteMessage(websocket.TextMessage, data)
	c.mu.Unlock()

	if err != nil {
		log.Printf("[Network] Erro ao enviar mensagem: %v", err)
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
	}
}

func (c *SnapshotClient) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		if c.conn != nil {
			c.conn.Close()
		}
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[Network] Conexão perdida: %v", err)
			break
		}

		var msg wireMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("[Network] Mensagem inválida do servidor: %v", err)
			continue
		}

		c.handleMessage(&msg)
	}
}

func (c *SnapshotClient) handleMessage(msg *wireMessage) {
	switch msg.Type {
	case "snapshot":
		snap, err := blockdata.ParseSnapshot(msg.Payload)
		if err != nil {
			log.Printf("[Network] Snapshot inválido: %v", err)
			return
		}
		log.Printf("[Network] Snapshot recebido: %d blocos", len(snap.Blocks))
		if c.OnSnapshot != nil {
			c.OnSnapshot(snap)
		}

	case "status":
		var status statusPayload
		if err := json.Unmarshal(msg.Payload, &status); err == nil && c.OnStatus != nil {
			c.OnStatus(status.Message)
		}

	default:
		log.Printf("[Network] Tipo de mensagem desconhecido: %q", msg.Type)
	}
}

// Close encerra a conexão de forma ordenada.
func (c *SnapshotClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.conn.Close()
		c.connected = false
	}
}
