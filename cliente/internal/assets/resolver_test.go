package assets

import "testing"

func TestBaseMaterial(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"oak_slab", "oak"},
		{"stone_brick_stairs", "stone_brick"},
		{"cobblestone_wall", "cobblestone"},
		{"spruce_fence", "spruce"},
		{"iron_trapdoor", "iron"},
		{"waxed_copper_slab", "copper"},
		{"oak_door", "oak"},
		{"stone", "stone"},
		{"grass_block", "grass_block"},
	}
	for _, tt := range tests {
		if got := BaseMaterial(tt.in); got != tt.want {
			t.Errorf("BaseMaterial(%q) = %q, esperado %q", tt.in, got, tt.want)
		}
	}
}

func TestCandidatesOverride(t *testing.T) {
	r := NewResolver()

	got := r.Candidates("grass_block", FaceTop)
	if len(got) == 0 || got[0] != TextureDir+"grass_block_top.png" {
		t.Fatalf("grass_block top: primeiro candidato errado: %v", got)
	}

	got = r.Candidates("grass_block", FaceBottom)
	if got[0] != TextureDir+"dirt.png" {
		t.Fatalf("grass_block bottom deveria mapear para dirt.png: %v", got)
	}

	// Face sem override específico cai no padrão genérico
	got = r.Candidates("lantern", FaceSide)
	if got[0] != TextureDir+"lantern.png" {
		t.Fatalf("lantern deveria usar o default da tabela: %v", got)
	}
}

func TestCandidatesBaseSubstitution(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		blockType string
		face      Face
		wantFirst string
	}{
		// Derivado de madeira resolve para a textura das tábuas
		{"oak_slab", FaceSide, TextureDir + "oak_planks.png"},
		// Singular → plural no arquivo de textura
		{"stone_brick_stairs", FaceTop, TextureDir + "stone_bricks.png"},
		{"nether_brick_fence", FaceSide, TextureDir + "nether_bricks.png"},
		// Quartzo delega para o bloco, que por sua vez tem override por face
		{"quartz_slab", FaceSide, TextureDir + "quartz_block_side.png"},
	}
	for _, tt := range tests {
		got := r.Candidates(tt.blockType, tt.face)
		if len(got) == 0 {
			t.Fatalf("%s: lista de candidatos vazia", tt.blockType)
		}
		if got[0] != tt.wantFirst {
			t.Errorf("%s/%s: primeiro candidato %q, esperado %q (lista: %v)",
				tt.blockType, tt.face, got[0], tt.wantFirst, got)
		}
	}
}

func TestCandidatesFallbackChain(t *testing.T) {
	r := NewResolver()

	// Tipo desconhecido: padrão por face e depois o uniforme
	got := r.Candidates("mystery_ore", FaceSide)
	want := []string{
		TextureDir + "mystery_ore_side.png",
		TextureDir + "mystery_ore.png",
	}
	if len(got) != len(want) {
		t.Fatalf("candidatos: %v, esperado %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidato %d: %q, esperado %q", i, got[i], want[i])
		}
	}

	// Nunca vazio, nem com face default
	if got := r.Candidates("mystery_ore", FaceDefault); len(got) == 0 {
		t.Fatal("candidatos não podem ser vazios")
	}
}

func TestCandidatesDyedFallback(t *testing.T) {
	r := NewResolver()

	// Tingido: o arquivo próprio vem primeiro, a base branca por último
	got := r.Candidates("red_wool", FaceDefault)
	if got[0] != TextureDir+"red_wool.png" {
		t.Errorf("primeiro candidato %q, esperado red_wool.png", got[0])
	}
	if got[len(got)-1] != TextureDir+"white_wool.png" {
		t.Errorf("último candidato %q, esperado white_wool.png", got[len(got)-1])
	}

	// O branco não cai em si mesmo
	got = r.Candidates("white_wool", FaceDefault)
	for i, p := range got[:len(got)-1] {
		for _, q := range got[i+1:] {
			if p == q {
				t.Errorf("candidato duplicado %q", p)
			}
		}
	}
}

func TestCandidatesWoodUsesLogSide(t *testing.T) {
	r := NewResolver()

	// Casca integral: toda face resolve para a lateral do tronco antes dos
	// fallbacks genéricos
	for _, face := range []Face{FaceSide, FaceEnd} {
		got := r.Candidates("oak_wood", face)
		if got[0] != TextureDir+"oak_log.png" {
			t.Errorf("face %s: primeiro candidato %q, esperado oak_log.png", face, got[0])
		}
	}
}

func TestCandidatesNoDuplicates(t *testing.T) {
	r := NewResolver()
	for _, face := range []Face{FaceTop, FaceBottom, FaceSide, FaceEnd, FaceDefault} {
		got := r.Candidates("sandstone_slab", face)
		seen := make(map[string]bool)
		for _, p := range got {
			if seen[p] {
				t.Errorf("face %s: candidato duplicado %q", face, p)
			}
			seen[p] = true
		}
	}
}
