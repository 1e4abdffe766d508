package blockdata

import (
	"sort"
	"strings"
)

// Classification é o resultado de classificar um registro: a categoria de
// renderização, a chave canônica de agrupamento e a rotação que sobra para
// a matriz da instância (quando a geometria não a embute).
type Classification struct {
	Category    RenderCategory
	GroupKey    string
	Facing      Facing  // orientação resolvida, com default aplicado
	InstanceYaw float32 // graus extras aplicados por instância (eixo Y)
	Props       Props
}

// Classifier determina a categoria e a GroupKey de cada registro.
// Função pura de (registro, catálogo): sem estado mutável escondido.
type Classifier struct {
	catalog *Catalog
	rules   []rule
}

type rule struct {
	name     string
	match    func(blockType string) bool
	classify func(c *Classifier, rec BlockRecord) Classification
}

// NewClassifier monta o classificador com a tabela ordenada de regras.
// A ordem importa: a primeira regra que casar vence.
func NewClassifier(catalog *Catalog) *Classifier {
	c := &Classifier{catalog: catalog}
	c.rules = []rule{
		{"web", matchWeb, classifyCross},
		{"colored", matchColored, classifyColored},
		{"slab", hasSuffix("_slab"), classifySlab},
		{"stair", hasSuffix("_stairs"), classifyStair},
		{"trapdoor", contains("trapdoor"), classifyTrapdoor},
		{"wall", matchWall, classifyConnected(CategoryWall)},
		{"fence", matchFence, classifyConnected(CategoryFence)},
		{"lantern", matchLantern, classifyLantern},
		{"leaves", contains("leaves"), classifyByCatalog},
		{"log", matchLog, classifyByCatalog},
		{"door", matchDoor, classifyPlaceholder(CategoryDoor)},
		{"torch", contains("torch"), classifyPlaceholder(CategoryTorch)},
		{"button", hasSuffix("_button"), classifyButton},
		{"grindstone", matchExact("grindstone"), classifyGrindstone},
		{"chain", matchExact("chain"), classifyChain},
		{"double_plant", IsDoublePlant, classifyDoublePlant},
		{"plant", matchPlant, classifyCross},
	}
	return c
}

// Classify resolve a categoria e a GroupKey de um registro. Total: todo
// tipo não-vazio produz uma classificação válida; tipos desconhecidos caem
// no default uniforme do catálogo.
func (c *Classifier) Classify(rec BlockRecord) Classification {
	for _, r := range c.rules {
		if r.match(rec.Type) {
			return r.classify(c, rec)
		}
	}
	return classifyByCatalog(c, rec)
}

// --- Predicados ---

func hasSuffix(suffix string) func(string) bool {
	return func(t string) bool { return strings.HasSuffix(t, suffix) }
}

func contains(sub string) func(string) bool {
	return func(t string) bool { return strings.Contains(t, sub) }
}

func matchExact(name string) func(string) bool {
	return func(t string) bool { return t == name }
}

func matchWeb(t string) bool {
	return t == "cobweb" || t == "web"
}

func matchColored(t string) bool {
	return strings.Contains(t, "concrete") || strings.Contains(t, "wool")
}

func matchWall(t string) bool {
	return strings.HasSuffix(t, "_wall") && !strings.Contains(t, "gate")
}

func matchFence(t string) bool {
	return (strings.HasSuffix(t, "_fence") || t == "fence") && !strings.Contains(t, "gate")
}

// sea_lantern é um bloco cheio, não uma luminária pendurável.
func matchLantern(t string) bool {
	return strings.Contains(t, "lantern") && !strings.Contains(t, "jack_o") &&
		t != "sea_lantern"
}

func matchLog(t string) bool {
	return strings.Contains(t, "_log") || strings.HasSuffix(t, "_wood")
}

func matchDoor(t string) bool {
	return t == "door" || strings.HasSuffix(t, "_door")
}

// plantPatterns é a lista explícita de fragmentos que identificam plantas
// renderizadas como planos cruzados.
var plantPatterns = []string{
	"sapling", "flower", "poppy", "dandelion", "tulip", "orchid", "allium",
	"azure_bluet", "oxeye", "cornflower", "lily_of_the_valley", "fern",
	"grass", "dead_bush", "sweet_berry", "mushroom", "bamboo", "sugar_cane",
	"wheat", "carrots", "potatoes", "beetroots", "vine", "rose",
}

// plantExclusions são os quase-acertos que NÃO podem virar planta.
var plantExclusions = []string{
	"grass_block", "mushroom_stem", "mushroom_block", "flower_pot",
}

func matchPlant(t string) bool {
	for _, excl := range plantExclusions {
		if t == excl {
			return false
		}
	}
	for _, pat := range plantPatterns {
		if strings.Contains(t, pat) {
			return true
		}
	}
	return false
}

// --- Construtores de classificação ---

func (c *Classifier) props(blockType string) Props {
	return c.catalog.Lookup(blockType)
}

func facingOrDefault(f Facing, def Facing) Facing {
	if f.Valid() {
		return f
	}
	return def
}

func halfOrDefault(half string) string {
	if half == "top" {
		return "top"
	}
	return "bottom"
}

func shapeOrDefault(shape string) string {
	switch shape {
	case "inner_left", "inner_right", "outer_left", "outer_right":
		return shape
	}
	return "straight"
}

func classifyCross(c *Classifier, rec BlockRecord) Classification {
	return Classification{
		Category: CategoryCross,
		GroupKey: rec.Type,
		Props:    c.props(rec.Type),
	}
}

func classifyColored(c *Classifier, rec BlockRecord) Classification {
	// A cor já foi dobrada no tipo pela normalização; a chave é o tipo.
	return Classification{
		Category: CategoryUniform,
		GroupKey: rec.Type,
		Props:    c.props(rec.Type),
	}
}

func classifySlab(c *Classifier, rec BlockRecord) Classification {
	half := "lower"
	if rec.IsUpperSlab {
		half = "upper"
	}
	return Classification{
		Category: CategorySlab,
		GroupKey: rec.Type + "|" + half,
		Props:    c.props(rec.Type),
	}
}

func classifyStair(c *Classifier, rec BlockRecord) Classification {
	facing := facingOrDefault(rec.Facing, FacingEast)
	half := halfOrDefault(rec.Half)
	shape := shapeOrDefault(rec.Shape)

	// A orientação e a metade da escada estão embutidas na geometria (a
	// malha do degrau não é invariante por rotação de UV); a matriz da
	// instância carrega apenas a correção de ±90° dos cantos.
	var yaw float32
	switch shape {
	case "inner_left", "outer_left":
		yaw -= 90
	case "inner_right", "outer_right":
		yaw += 90
	}

	return Classification{
		Category:    CategoryStair,
		GroupKey:    rec.Type + "|" + string(facing) + "|" + half + "|" + shape,
		Facing:      facing,
		InstanceYaw: yaw,
		Props:       c.props(rec.Type),
	}
}

func classifyTrapdoor(c *Classifier, rec BlockRecord) Classification {
	facing := facingOrDefault(rec.Facing, FacingNorth)
	half := halfOrDefault(rec.Half)
	state := "closed"
	if rec.Open {
		state = "open"
	}
	return Classification{
		Category: CategoryTrapdoor,
		GroupKey: rec.Type + "|" + state + "|" + half + "|" + string(facing),
		Facing:   facing,
		Props:    c.props(rec.Type),
	}
}

// connectionKey serializa o conjunto de conexões de forma canônica:
// direções ativas ordenadas alfabeticamente, "none" quando vazio.
func connectionKey(conns map[string]bool) string {
	var dirs []string
	for dir, on := range conns {
		if on {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return "none"
	}
	sort.Strings(dirs)
	return strings.Join(dirs, "_")
}

func classifyConnected(cat RenderCategory) func(*Classifier, BlockRecord) Classification {
	return func(c *Classifier, rec BlockRecord) Classification {
		return Classification{
			Category: cat,
			GroupKey: rec.Type + "|" + connectionKey(rec.Connections),
			Props:    c.props(rec.Type),
		}
	}
}

func classifyLantern(c *Classifier, rec BlockRecord) Classification {
	mount := "standing"
	if rec.Hanging {
		mount = "hanging"
	}
	return Classification{
		Category: CategoryLantern,
		GroupKey: rec.Type + "|" + mount,
		Props:    c.props(rec.Type),
	}
}

func classifyPlaceholder(cat RenderCategory) func(*Classifier, BlockRecord) Classification {
	return func(c *Classifier, rec BlockRecord) Classification {
		return Classification{
			Category: cat,
			GroupKey: rec.Type,
			Props:    c.props(rec.Type),
		}
	}
}

func classifyButton(c *Classifier, rec BlockRecord) Classification {
	facing := facingOrDefault(rec.Facing, FacingNorth)
	return Classification{
		Category:    CategoryButton,
		GroupKey:    rec.Type,
		Facing:      facing,
		InstanceYaw: facing.Yaw(),
		Props:       c.props(rec.Type),
	}
}

func classifyGrindstone(c *Classifier, rec BlockRecord) Classification {
	facing := facingOrDefault(rec.Facing, FacingNorth)
	return Classification{
		Category: CategoryGrindstone,
		GroupKey: rec.Type + "|" + string(facing),
		Facing:   facing,
		Props:    c.props(rec.Type),
	}
}

func classifyChain(c *Classifier, rec BlockRecord) Classification {
	return Classification{
		Category: CategoryChain,
		GroupKey: rec.Type,
		Props:    c.props(rec.Type),
	}
}

func classifyDoublePlant(c *Classifier, rec BlockRecord) Classification {
	// As duas metades usam texturas distintas; a chave separa top/bottom.
	return Classification{
		Category: CategoryCross,
		GroupKey: rec.Type + "|" + halfOrDefault(rec.Half),
		Props:    c.props(rec.Type),
	}
}

func classifyByCatalog(c *Classifier, rec BlockRecord) Classification {
	props := c.props(rec.Type)
	return Classification{
		Category: props.Category,
		GroupKey: rec.Type,
		Props:    props,
	}
}
