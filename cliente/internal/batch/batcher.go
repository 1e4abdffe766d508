package batch

import (
	"log"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"BlockVista/cliente/internal/templates"
	"BlockVista/shared/blockdata"
	"BlockVista/shared/util"
)

// Node agrupa todas as instâncias de um template: a unidade de desenho do
// renderer. Transforms e Positions andam em paralelo, na ordem em que os
// blocos apareceram no snapshot.
type Node struct {
	Key        string
	Template   *templates.Template
	Transforms []rl.Matrix
	Positions  []rl.Vector3
}

// InstanceCount retorna o número de instâncias do nó.
func (n *Node) InstanceCount() int {
	return len(n.Transforms)
}

// Batcher converte a lista plana de blocos nos nós de desenho agrupados.
type Batcher struct {
	classifier *blockdata.Classifier
	factory    *templates.Factory
}

// NewBatcher cria o batcher sobre um classificador e uma fábrica de
// templates compartilhados.
func NewBatcher(classifier *blockdata.Classifier, factory *templates.Factory) *Batcher {
	return &Batcher{classifier: classifier, factory: factory}
}

// Build classifica cada bloco, agrupa por GroupKey preservando a ordem de
// primeira aparição e devolve os nós já ordenados para desenho. Um bloco
// problemático rende o template de fallback do seu grupo; a construção
// nunca aborta.
func (b *Batcher) Build(records []blockdata.BlockRecord) []*Node {
	var order []*Node
	nodes := make(map[string]*Node)

	for i := range records {
		rec := records[i]
		cls := b.classifier.Classify(rec)
		tpl := b.factory.Get(cls, rec)

		node, ok := nodes[cls.GroupKey]
		if !ok {
			node = &Node{Key: cls.GroupKey, Template: tpl}
			nodes[cls.GroupKey] = node
			order = append(order, node)
		}

		center := util.GridToWorldCenter(rec.Coord())
		node.Transforms = append(node.Transforms, instanceTransform(center, cls, tpl))
		node.Positions = append(node.Positions, center)
	}

	sortNodes(order)

	fallbacks := 0
	for _, n := range order {
		if n.Template.Fallback {
			fallbacks++
		}
	}
	if fallbacks > 0 {
		log.Printf("[Batch] %d grupos caíram no template de fallback", fallbacks)
	}
	log.Printf("[Batch] %d blocos em %d grupos", len(records), len(order))

	return order
}

// instanceTransform compõe a matriz da instância: rotação local (quando o
// template delega o yaw) seguida da translação para o centro do bloco.
func instanceTransform(center rl.Vector3, cls blockdata.Classification, tpl *templates.Template) rl.Matrix {
	yaw := cls.InstanceYaw
	if tpl.YawPerInstance {
		yaw = cls.Facing.Yaw()
	}

	trans := rl.MatrixTranslate(center.X, center.Y, center.Z)
	if yaw == 0 {
		return trans
	}
	// MatrixMultiply aplica o operando esquerdo primeiro: gira no centro
	// local e depois translada para o mundo
	rot := rl.MatrixRotateY(yaw * (math.Pi / 180.0))
	return rl.MatrixMultiply(rot, trans)
}

// drawRank define a ordem de desenho: opacos primeiro, depois transparentes
// (não-folhagem antes de folhagem; não-laje antes de laje).
func drawRank(tpl *templates.Template) int {
	if !tpl.Transparent {
		return 0
	}
	rank := 1
	if tpl.Foliage {
		rank += 2
	}
	if tpl.Slab {
		rank++
	}
	return rank
}

// sortNodes ordena de forma estável, preservando a ordem de primeira
// aparição dentro de cada faixa.
func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return drawRank(nodes[i].Template) < drawRank(nodes[j].Template)
	})
}
