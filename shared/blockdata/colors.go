package blockdata

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DyeColor representa uma das 16 cores de tintura de conteúdo voxel.
type DyeColor struct {
	Token   string
	R, G, B uint8
}

// DyeColorList é a tabela das 16 cores usadas por lã, concreto, vidro
// tingido e afins. Os valores seguem a paleta clássica do formato.
var DyeColorList = []DyeColor{
	{"white", 233, 236, 236},
	{"orange", 240, 118, 19},
	{"magenta", 189, 68, 179},
	{"light_blue", 58, 175, 217},
	{"yellow", 248, 197, 39},
	{"lime", 112, 185, 25},
	{"pink", 237, 141, 172},
	{"gray", 62, 68, 71},
	{"light_gray", 142, 142, 134},
	{"cyan", 21, 137, 145},
	{"purple", 121, 42, 172},
	{"blue", 53, 57, 157},
	{"brown", 114, 71, 40},
	{"green", 84, 109, 27},
	{"red", 161, 39, 34},
	{"black", 20, 21, 25},
}

var dyeIndex = func() map[string]rl.Color {
	m := make(map[string]rl.Color, len(DyeColorList))
	for _, d := range DyeColorList {
		m[d.Token] = rl.NewColor(d.R, d.G, d.B, 255)
	}
	return m
}()

// GetDyeColor retorna a cor RGB de um token de tintura.
func GetDyeColor(token string) (rl.Color, bool) {
	c, ok := dyeIndex[token]
	return c, ok
}

// IsDyeToken informa se o token é uma das 16 cores conhecidas.
func IsDyeToken(token string) bool {
	_, ok := dyeIndex[token]
	return ok
}

// SplitDyeType separa um tipo tingido no token de cor e no restante:
// "red_wool" → ("red", "wool", true). Tipos sem prefixo de cor conhecido
// retornam ok = false.
func SplitDyeType(blockType string) (token, kind string, ok bool) {
	for _, d := range DyeColorList {
		prefix := d.Token + "_"
		if strings.HasPrefix(blockType, prefix) && len(blockType) > len(prefix) {
			return d.Token, strings.TrimPrefix(blockType, prefix), true
		}
	}
	return "", "", false
}
