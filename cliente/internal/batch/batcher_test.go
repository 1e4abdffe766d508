package batch

import (
	"math"
	"testing"

	"BlockVista/cliente/internal/assets"
	"BlockVista/cliente/internal/meshing"
	"BlockVista/cliente/internal/templates"
	"BlockVista/shared/blockdata"
)

func newTestBatcher() *Batcher {
	catalog := blockdata.NewCatalog()
	factory := templates.NewFactory(meshing.NewLibrary(), assets.NewResolver())
	return NewBatcher(blockdata.NewClassifier(catalog), factory)
}

func TestBuildGroupsByKey(t *testing.T) {
	b := newTestBatcher()

	// Cenário clássico: 2 pedras, 1 laje — 2 grupos
	records := []blockdata.BlockRecord{
		{Type: "stone", X: 0, Y: 0, Z: 0},
		{Type: "stone", X: 1, Y: 0, Z: 0},
		{Type: "oak_slab", X: 2, Y: 0, Z: 0},
	}

	nodes := b.Build(records)
	if len(nodes) != 2 {
		t.Fatalf("%d grupos, esperado 2", len(nodes))
	}

	total := 0
	for _, n := range nodes {
		total += n.InstanceCount()
	}
	if total != 3 {
		t.Errorf("%d instâncias no total, esperado 3", total)
	}

	// Pedras compartilham o nó
	for _, n := range nodes {
		if n.Key == "stone" && n.InstanceCount() != 2 {
			t.Errorf("grupo stone com %d instâncias, esperado 2", n.InstanceCount())
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	b1 := newTestBatcher()
	b2 := newTestBatcher()

	records := []blockdata.BlockRecord{
		{Type: "stone", X: 0, Y: 0, Z: 0},
		{Type: "oak_leaves", X: 1, Y: 0, Z: 0},
		{Type: "oak_slab", X: 2, Y: 0, Z: 0},
		{Type: "glass", X: 3, Y: 0, Z: 0},
		{Type: "stone", X: 4, Y: 0, Z: 0},
	}

	n1 := b1.Build(records)
	n2 := b2.Build(records)

	if len(n1) != len(n2) {
		t.Fatal("execuções divergiram no número de grupos")
	}
	for i := range n1 {
		if n1[i].Key != n2[i].Key {
			t.Errorf("posição %d: %q vs %q", i, n1[i].Key, n2[i].Key)
		}
	}
}

func TestDrawOrder(t *testing.T) {
	b := newTestBatcher()

	// Entrada propositalmente embaralhada
	records := []blockdata.BlockRecord{
		{Type: "oak_leaves", X: 0, Y: 0, Z: 0},        // transparente, folhagem
		{Type: "water", X: 1, Y: 0, Z: 0},             // transparente
		{Type: "stone", X: 2, Y: 0, Z: 0},             // opaco
		{Type: "fern", X: 3, Y: 0, Z: 0},              // transparente, folhagem
		{Type: "grass_block", X: 4, Y: 0, Z: 0},       // opaco
	}

	nodes := b.Build(records)

	lastRank := -1
	for _, n := range nodes {
		rank := drawRank(n.Template)
		if rank < lastRank {
			t.Errorf("grupo %q (faixa %d) depois de faixa %d", n.Key, rank, lastRank)
		}
		lastRank = rank
	}

	// Os dois opacos vêm antes de qualquer transparente
	if nodes[0].Template.Transparent || nodes[1].Template.Transparent {
		t.Error("opacos deveriam abrir a lista de desenho")
	}
	// Folhagem fecha a lista
	last := nodes[len(nodes)-1]
	if !last.Template.Foliage {
		t.Errorf("folhagem deveria fechar a lista, último foi %q", last.Key)
	}
}

func TestInstanceTransformCenters(t *testing.T) {
	b := newTestBatcher()

	records := []blockdata.BlockRecord{{Type: "stone", X: 3, Y: 1, Z: -2}}
	nodes := b.Build(records)

	if len(nodes) != 1 || nodes[0].InstanceCount() != 1 {
		t.Fatal("cenário de bloco único mal montado")
	}

	// Translação para o centro da célula: grade + 0.5 em cada eixo
	m := nodes[0].Transforms[0]
	if m.M12 != 3.5 || m.M13 != 1.5 || m.M14 != -1.5 {
		t.Errorf("translação (%f, %f, %f), esperado (3.5, 1.5, -1.5)", m.M12, m.M13, m.M14)
	}
}

func TestStairInstanceYaw(t *testing.T) {
	b := newTestBatcher()

	// Metade e facing vivem na geometria; a matriz carrega só os 90° do
	// canto direito
	records := []blockdata.BlockRecord{{
		Type:   "oak_stairs",
		Facing: blockdata.FacingEast,
		Half:   "top",
		Shape:  "outer_right",
	}}

	nodes := b.Build(records)
	m := nodes[0].Transforms[0]

	// Rotação de 90° em torno de Y: M0 = cos(90°) = 0, M8 = sin(90°) = 1
	if math.Abs(float64(m.M0)) > 1e-5 {
		t.Errorf("M0 = %f, esperado ~0", m.M0)
	}
	if math.Abs(float64(m.M8)-1) > 1e-5 {
		t.Errorf("M8 = %f, esperado ~1", m.M8)
	}
}

func TestBuildNeverPanics(t *testing.T) {
	b := newTestBatcher()

	// Registros duvidosos: tipo desconhecido, conexões inválidas, shape lixo
	records := []blockdata.BlockRecord{
		{Type: "completely_unknown_block"},
		{Type: "oak_fence", Connections: map[string]bool{"diagonal": true}},
		{Type: "oak_stairs", Shape: "zigzag"},
		{Type: "iron_trapdoor", Open: true},
	}

	nodes := b.Build(records)
	if len(nodes) == 0 {
		t.Fatal("nenhum nó gerado")
	}
	for _, n := range nodes {
		if n.Template == nil {
			t.Errorf("grupo %q sem template", n.Key)
		}
	}
}
