package blockdata

// RenderCategory define a estratégia de renderização de um tipo de bloco.
// Toda classificação produz exatamente um valor deste enum fechado.
type RenderCategory int

const (
	CategoryUniform RenderCategory = iota // cubo com a mesma textura nas 6 faces
	CategoryTopBottomSide                 // topo/fundo/lateral distintos (grass_block, bookshelf)
	CategoryDirectional                   // extremidades + lateral (troncos, pilares)
	CategoryLeaves                        // cubo alpha-test com tint de espécie
	CategorySlab                          // meio bloco (metade inferior ou superior)
	CategoryStair                         // perfil de degrau, geometria orientada por facing
	CategoryWall                          // muro com poste + braços conectáveis
	CategoryFence                         // cerca com poste + duas réguas por conexão
	CategoryTrapdoor                      // alçapão fino, estado aberto/fechado
	CategoryDoor                          // placeholder invisível (sem contribuição visual)
	CategoryLantern                       // composto com luzes próprias
	CategoryChain                         // planos cruzados com fatia estreita de UV
	CategoryGrindstone                    // composto: armação + roda + pernas
	CategoryCross                         // planos em X (plantas, teias)
	CategoryButton                        // caixinha rasa encostada no bloco
	CategoryTorch                         // placeholder invisível (sem contribuição visual)
)

var categoryNames = [...]string{
	"uniform", "top_bottom_side", "directional", "leaves", "slab", "stair",
	"wall", "fence", "trapdoor", "door", "lantern", "chain", "grindstone",
	"cross", "button", "torch",
}

func (c RenderCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Facing representa a orientação horizontal de um bloco.
type Facing string

const (
	FacingNorth Facing = "north"
	FacingSouth Facing = "south"
	FacingEast  Facing = "east"
	FacingWest  Facing = "west"
)

// Yaw retorna a rotação em graus (eixo Y) para a orientação.
// Convenção: east = 0°, rotação anti-horária vista de cima.
func (f Facing) Yaw() float32 {
	switch f {
	case FacingNorth:
		return 90
	case FacingWest:
		return 180
	case FacingSouth:
		return 270
	}
	return 0
}

// Valid informa se o valor é uma das quatro orientações conhecidas.
func (f Facing) Valid() bool {
	switch f {
	case FacingNorth, FacingSouth, FacingEast, FacingWest:
		return true
	}
	return false
}
