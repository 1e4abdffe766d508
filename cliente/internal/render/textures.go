package render

import (
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// textureCache carrega e retém texturas por caminho. O placeholder
// quadriculado magenta/preto cobre qualquer candidato ausente no disco.
type textureCache struct {
	loaded      map[string]rl.Texture2D
	missing     map[string]bool
	placeholder rl.Texture2D
	white       rl.Texture2D
}

func newTextureCache() *textureCache {
	c := &textureCache{
		loaded:  make(map[string]rl.Texture2D),
		missing: make(map[string]bool),
	}

	img := rl.GenImageChecked(16, 16, 8, 8, rl.Magenta, rl.Black)
	c.placeholder = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(c.placeholder, rl.FilterPoint)

	// Texel branco para materiais de cor chapada: o tint entra pelo
	// colDiffuse
	white := rl.GenImageColor(1, 1, rl.White)
	c.white = rl.LoadTextureFromImage(white)
	rl.UnloadImage(white)

	return c
}

// White retorna a textura 1x1 branca compartilhada.
func (c *textureCache) White() rl.Texture2D {
	return c.white
}

// Resolve tenta cada candidato em ordem e retorna a primeira textura que
// existir; sem nenhuma, retorna o placeholder. Falhas são memoizadas para
// não bater no disco de novo.
func (c *textureCache) Resolve(candidates []string) rl.Texture2D {
	for _, path := range candidates {
		if tex, ok := c.loaded[path]; ok {
			return tex
		}
		if c.missing[path] {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			c.missing[path] = true
			continue
		}

		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			c.missing[path] = true
			continue
		}

		// Pixel art: filtro nearest e repetição para UVs projetadas
		rl.SetTextureFilter(tex, rl.FilterPoint)
		rl.SetTextureWrap(tex, rl.WrapRepeat)
		c.loaded[path] = tex
		return tex
	}

	if len(candidates) > 0 {
		log.Printf("[Render] Textura ausente, usando placeholder: %v", candidates)
	}
	return c.placeholder
}

// Unload descarrega todas as texturas da GPU.
func (c *textureCache) Unload() {
	for _, tex := range c.loaded {
		rl.UnloadTexture(tex)
	}
	rl.UnloadTexture(c.placeholder)
	rl.UnloadTexture(c.white)
	c.loaded = make(map[string]rl.Texture2D)
	c.missing = make(map[string]bool)
}
