package app

import (
	"log"
	"os"
	"time"

	"BlockVista/cliente/internal/client"
	"BlockVista/shared/blockdata"
)

// loadWorld executa o pipeline de carga em background: arquivo local,
// depois cache SQLite, depois servidor. O resultado já sai classificado e
// agrupado; só o upload de GPU fica para a thread principal.
func (a *App) loadWorld() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[App] Pânico no pipeline de carga: %v", r)
			a.LoadingStatus = "Erro ao carregar o mundo"
		}
	}()

	snap := a.fetchSnapshot()
	if snap == nil {
		a.LoadingStatus = "Nenhuma fonte de mundo disponível"
		log.Println("[App] Nenhuma fonte de mundo disponível (arquivo, cache ou servidor)")
		return
	}

	a.setProgress(0.6, "Classificando blocos...")
	var fold blockdata.FoldFunc
	if a.Config.FoldSpecies {
		fold = blockdata.DefaultSpeciesFold
	}
	records := snap.Prepare(fold)

	a.setProgress(0.8, "Montando a cena...")
	nodes := a.batcher.Build(records)

	a.setProgress(1.0, "Enviando para a GPU...")
	a.worldCh <- &worldData{snapshot: snap, nodes: nodes, blocks: len(records)}
}

// fetchSnapshot tenta cada fonte de mundo em ordem de preferência.
func (a *App) fetchSnapshot() *blockdata.Snapshot {
	// 1. Arquivo local
	if a.Config.WorldFile != "" {
		if _, err := os.Stat(a.Config.WorldFile); err == nil {
			a.setProgress(0.2, "Lendo arquivo do mundo...")
			snap, err := blockdata.LoadSnapshotFile(a.Config.WorldFile)
			if err == nil {
				return snap
			}
			log.Printf("[App] Arquivo de mundo inválido: %v", err)
		}
	}

	// 2. Cache local (permite abrir offline depois da primeira carga)
	store, err := blockdata.OpenSnapshotStore(a.Config.CacheDir)
	if err != nil {
		log.Printf("[App] Cache indisponível: %v", err)
		store = nil
	}
	defer store.Close()

	// 3. Servidor de snapshots
	if a.Config.ServerURL != "" {
		a.setProgress(0.3, "Conectando ao servidor...")
		if snap := a.fetchFromServer(); snap != nil {
			if store != nil {
				if err := store.SaveSnapshot(a.Config.WorldName, snap, time.Now().Unix()); err != nil {
					log.Printf("[App] Falha ao atualizar o cache: %v", err)
				}
			}
			return snap
		}
	}

	if store != nil {
		a.setProgress(0.4, "Lendo do cache local...")
		if snap, _, err := store.LoadSnapshot(a.Config.WorldName); err == nil {
			return snap
		}
	}
	return nil
}

// fetchFromServer conecta via websocket e espera um snapshot do mundo.
func (a *App) fetchFromServer() *blockdata.Snapshot {
	received := make(chan *blockdata.Snapshot, 1)

	a.netClient = client.NewSnapshotClient(a.Config.ServerURL)
	a.netClient.OnSnapshot = func(snap *blockdata.Snapshot) {
		select {
		case received <- snap:
		default:
		}
	}
	a.netClient.OnStatus = func(msg string) {
		a.LoadingStatus = msg
	}

	if err := a.netClient.Connect(); err != nil {
		log.Printf("[App] Sem conexão com o servidor: %v", err)
		return nil
	}

	a.setProgress(0.4, "Baixando snapshot...")
	a.netClient.RequestSnapshot(a.Config.WorldName)

	select {
	case snap := <-received:
		return snap
	case <-time.After(30 * time.Second):
		log.Println("[App] Timeout esperando o snapshot do servidor")
		return nil
	}
}

func (a *App) setProgress(progress float32, status string) {
	a.LoadingProgress = progress
	a.LoadingStatus = status
}
