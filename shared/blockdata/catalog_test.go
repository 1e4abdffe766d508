package blockdata

import "testing"

func TestCatalogLookupOverrides(t *testing.T) {
	c := NewCatalog()

	// Folhas com entrada manual preservam o tint de espécie
	spruce := c.Lookup("spruce_leaves")
	if spruce.Category != CategoryLeaves || spruce.Tint != SpruceTint {
		t.Errorf("spruce_leaves = %+v", spruce)
	}

	// Folhas desconhecidas ganham o perfil genérico de folhagem
	cherry := c.Lookup("cherry_leaves")
	if cherry.Category != CategoryLeaves || !cherry.Transparent || !cherry.HasTint {
		t.Errorf("cherry_leaves = %+v", cherry)
	}
	if cherry.AlphaCutoff != 0.5 {
		t.Errorf("cherry_leaves.AlphaCutoff = %v, want 0.5", cherry.AlphaCutoff)
	}

	// Troncos desconhecidos viram direcionais
	if got := c.Lookup("mangrove_log"); got.Category != CategoryDirectional {
		t.Errorf("mangrove_log.Category = %v, want %v", got.Category, CategoryDirectional)
	}

	// Troncos de casca integral também, na mesma regra do classificador
	if got := c.Lookup("oak_wood"); got.Category != CategoryDirectional {
		t.Errorf("oak_wood.Category = %v, want %v", got.Category, CategoryDirectional)
	}
}

func TestCatalogLookupFallback(t *testing.T) {
	c := NewCatalog()

	got := c.Lookup("bloco_que_nao_existe")
	if got != fallbackProps {
		t.Errorf("fallback = %+v, want %+v", got, fallbackProps)
	}
	if c.Known("bloco_que_nao_existe") {
		t.Error("tipo desconhecido não deveria constar na tabela")
	}
	if !c.Known("stone") {
		t.Error("stone deveria constar na tabela")
	}
}

func TestCatalogTransparency(t *testing.T) {
	c := NewCatalog()

	water := c.Lookup("water")
	if !water.Transparent || water.Opacity == 0 || !water.HasTint {
		t.Errorf("water = %+v", water)
	}

	glass := c.Lookup("glass")
	if !glass.Transparent || glass.Opacity != 0.6 {
		t.Errorf("glass = %+v", glass)
	}

	if c.Lookup("stone").Transparent {
		t.Error("stone não pode ser transparente")
	}
}

func TestCatalogDyedVariants(t *testing.T) {
	c := NewCatalog()

	wool := c.Lookup("red_wool")
	if !wool.HasTint || wool.Category != CategoryUniform {
		t.Errorf("red_wool = %+v", wool)
	}
	wantTint, _ := GetDyeColor("red")
	if wool.Tint != wantTint {
		t.Errorf("red_wool.Tint = %v, want %v", wool.Tint, wantTint)
	}

	glass := c.Lookup("blue_stained_glass")
	if !glass.Transparent || glass.Opacity != 0.6 || !glass.HasTint {
		t.Errorf("blue_stained_glass = %+v", glass)
	}

	// Prefixo de cor sem um tipo tingível continua no fallback
	if got := c.Lookup("red_mushroom_block"); got.HasTint {
		t.Errorf("red_mushroom_block não deveria receber tint: %+v", got)
	}
}

func TestSplitDyeType(t *testing.T) {
	tests := []struct {
		in        string
		wantToken string
		wantKind  string
		wantOK    bool
	}{
		{"red_wool", "red", "wool", true},
		{"light_blue_concrete", "light_blue", "concrete", true},
		{"white_terracotta", "white", "terracotta", true},
		{"stone", "", "", false},
		{"red_", "", "", false},
	}

	for _, tt := range tests {
		token, kind, ok := SplitDyeType(tt.in)
		if token != tt.wantToken || kind != tt.wantKind || ok != tt.wantOK {
			t.Errorf("SplitDyeType(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, token, kind, ok, tt.wantToken, tt.wantKind, tt.wantOK)
		}
	}
}

func TestCatalogTints(t *testing.T) {
	c := NewCatalog()

	grass := c.Lookup("grass_block")
	if !grass.HasTint || grass.Tint != GrassTint {
		t.Errorf("grass_block = %+v", grass)
	}
	if c.Lookup("dirt").HasTint {
		t.Error("dirt não leva tint")
	}
}
