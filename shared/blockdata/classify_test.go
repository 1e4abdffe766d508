package blockdata

import "testing"

func newTestClassifier() *Classifier {
	return NewClassifier(NewCatalog())
}

func TestClassifyCategories(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		blockType string
		want      RenderCategory
	}{
		{"stone", CategoryUniform},
		{"grass_block", CategoryTopBottomSide},
		{"oak_log", CategoryDirectional},
		{"oak_leaves", CategoryLeaves},
		{"cherry_leaves", CategoryLeaves},
		{"oak_slab", CategorySlab},
		{"stone_brick_stairs", CategoryStair},
		{"oak_trapdoor", CategoryTrapdoor},
		{"cobblestone_wall", CategoryWall},
		{"oak_fence", CategoryFence},
		{"lantern", CategoryLantern},
		{"soul_lantern", CategoryLantern},
		{"jack_o_lantern", CategoryTopBottomSide},
		{"sea_lantern", CategoryUniform},
		{"oak_door", CategoryDoor},
		{"torch", CategoryTorch},
		{"wall_torch", CategoryTorch},
		{"stone_button", CategoryButton},
		{"grindstone", CategoryGrindstone},
		{"chain", CategoryChain},
		{"cobweb", CategoryCross},
		{"poppy", CategoryCross},
		{"short_grass", CategoryCross},
		{"sunflower", CategoryCross},
		{"red_wool", CategoryUniform},
		{"lime_concrete", CategoryUniform},
		{"bloco_misterioso", CategoryUniform},
	}

	for _, tt := range tests {
		got := c.Classify(BlockRecord{Type: tt.blockType})
		if got.Category != tt.want {
			t.Errorf("Classify(%q).Category = %v, want %v", tt.blockType, got.Category, tt.want)
		}
	}
}

// Todo tipo não-vazio precisa produzir uma classificação com chave válida.
func TestClassifyTotality(t *testing.T) {
	c := newTestClassifier()

	inputs := []string{
		"stone", "x", "___", "waxed_oxidized_cut_copper_stairs",
		"bloco_que_nao_existe", "fence", "web", "grass",
	}

	for _, blockType := range inputs {
		got := c.Classify(BlockRecord{Type: blockType})
		if got.GroupKey == "" {
			t.Errorf("Classify(%q) produziu GroupKey vazia", blockType)
		}
		if got.Category.String() == "unknown" {
			t.Errorf("Classify(%q) produziu categoria inválida: %d", blockType, got.Category)
		}
	}
}

func TestClassifySlabHalves(t *testing.T) {
	c := newTestClassifier()

	lower := c.Classify(BlockRecord{Type: "oak_slab"})
	upper := c.Classify(BlockRecord{Type: "oak_slab", IsUpperSlab: true})

	if lower.GroupKey != "oak_slab|lower" {
		t.Errorf("GroupKey inferior = %q, want %q", lower.GroupKey, "oak_slab|lower")
	}
	if upper.GroupKey != "oak_slab|upper" {
		t.Errorf("GroupKey superior = %q, want %q", upper.GroupKey, "oak_slab|upper")
	}
}

func TestClassifyStairYaw(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name    string
		rec     BlockRecord
		wantYaw float32
	}{
		{"reta inferior", BlockRecord{Type: "oak_stairs", Facing: FacingNorth}, 0},
		{"reta superior", BlockRecord{Type: "oak_stairs", Facing: FacingNorth, Half: "top"}, 0},
		{"canto direito", BlockRecord{Type: "oak_stairs", Facing: FacingEast, Shape: "outer_right"}, 90},
		{"canto esquerdo", BlockRecord{Type: "oak_stairs", Facing: FacingEast, Shape: "inner_left"}, -90},
		{"canto direito superior", BlockRecord{Type: "oak_stairs", Half: "top", Shape: "outer_right"}, 90},
	}

	for _, tt := range tests {
		got := c.Classify(tt.rec)
		if got.InstanceYaw != tt.wantYaw {
			t.Errorf("%s: InstanceYaw = %v, want %v", tt.name, got.InstanceYaw, tt.wantYaw)
		}
	}
}

func TestClassifyStairDefaults(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify(BlockRecord{Type: "oak_stairs", Shape: "rampa"})
	if got.Facing != FacingEast {
		t.Errorf("facing default = %q, want %q", got.Facing, FacingEast)
	}
	if got.GroupKey != "oak_stairs|east|bottom|straight" {
		t.Errorf("GroupKey = %q, want %q", got.GroupKey, "oak_stairs|east|bottom|straight")
	}
}

func TestConnectionKey(t *testing.T) {
	tests := []struct {
		conns map[string]bool
		want  string
	}{
		{nil, "none"},
		{map[string]bool{}, "none"},
		{map[string]bool{"north": true}, "north"},
		{map[string]bool{"west": true, "east": true}, "east_west"},
		{map[string]bool{"south": true, "north": true, "east": false}, "north_south"},
		{map[string]bool{"up": true, "north": true, "south": true}, "north_south_up"},
	}

	for _, tt := range tests {
		got := connectionKey(tt.conns)
		if got != tt.want {
			t.Errorf("connectionKey(%v) = %q, want %q", tt.conns, got, tt.want)
		}
	}
}

func TestClassifyFenceGroupsByConnections(t *testing.T) {
	c := newTestClassifier()

	a := c.Classify(BlockRecord{Type: "oak_fence", Connections: map[string]bool{"north": true, "east": true}})
	b := c.Classify(BlockRecord{Type: "oak_fence", Connections: map[string]bool{"east": true, "north": true}})
	isolated := c.Classify(BlockRecord{Type: "oak_fence"})

	if a.GroupKey != b.GroupKey {
		t.Errorf("mesmo conjunto de conexões gerou chaves distintas: %q vs %q", a.GroupKey, b.GroupKey)
	}
	if a.GroupKey == isolated.GroupKey {
		t.Errorf("cerca conectada e isolada compartilham a chave %q", a.GroupKey)
	}
}

func TestClassifyLanternMount(t *testing.T) {
	c := newTestClassifier()

	standing := c.Classify(BlockRecord{Type: "lantern"})
	hanging := c.Classify(BlockRecord{Type: "lantern", Hanging: true})

	if standing.GroupKey != "lantern|standing" {
		t.Errorf("GroupKey = %q, want %q", standing.GroupKey, "lantern|standing")
	}
	if hanging.GroupKey != "lantern|hanging" {
		t.Errorf("GroupKey = %q, want %q", hanging.GroupKey, "lantern|hanging")
	}
}

func TestClassifyDoublePlantHalves(t *testing.T) {
	c := newTestClassifier()

	bottom := c.Classify(BlockRecord{Type: "rose_bush"})
	top := c.Classify(BlockRecord{Type: "rose_bush", Half: "top"})

	if bottom.GroupKey != "rose_bush|bottom" || top.GroupKey != "rose_bush|top" {
		t.Errorf("chaves de planta dupla = %q / %q", bottom.GroupKey, top.GroupKey)
	}
	if bottom.Category != CategoryCross || top.Category != CategoryCross {
		t.Errorf("planta dupla fora de CategoryCross: %v / %v", bottom.Category, top.Category)
	}
}

func TestFacingYaw(t *testing.T) {
	tests := []struct {
		facing Facing
		want   float32
	}{
		{FacingEast, 0},
		{FacingNorth, 90},
		{FacingWest, 180},
		{FacingSouth, 270},
		{Facing("diagonal"), 0},
	}

	for _, tt := range tests {
		if got := tt.facing.Yaw(); got != tt.want {
			t.Errorf("Yaw(%q) = %v, want %v", tt.facing, got, tt.want)
		}
	}
}
