package blockdata

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Props reúne os atributos visuais de um tipo de bloco no catálogo.
type Props struct {
	Category    RenderCategory
	Transparent bool
	AlphaCutoff float32
	Opacity     float32 // 0 usa 1.0
	HasTint     bool
	Tint        rl.Color
}

// Catalog é o registro estático tipo → propriedades de renderização.
// Puro e total: tipos desconhecidos recebem o default uniforme.
type Catalog struct {
	entries map[string]Props
}

// Cores de tint padrão (bioma de planície).
var (
	GrassTint   = rl.NewColor(121, 192, 90, 255)
	FoliageTint = rl.NewColor(72, 181, 24, 255)
	WaterTint   = rl.NewColor(63, 118, 228, 255)
	SpruceTint  = rl.NewColor(97, 153, 97, 255)
	BirchTint   = rl.NewColor(128, 167, 85, 255)
)

// NewCatalog monta o catálogo com a tabela manual de tipos conhecidos.
func NewCatalog() *Catalog {
	e := map[string]Props{
		// Sólidos uniformes
		"stone":          {Category: CategoryUniform},
		"cobblestone":    {Category: CategoryUniform},
		"mossy_cobblestone": {Category: CategoryUniform},
		"stone_bricks":   {Category: CategoryUniform},
		"mossy_stone_bricks": {Category: CategoryUniform},
		"bricks":         {Category: CategoryUniform},
		"nether_bricks":  {Category: CategoryUniform},
		"quartz_block":   {Category: CategoryDirectional},
		"dirt":           {Category: CategoryUniform},
		"gravel":         {Category: CategoryUniform},
		"sand":           {Category: CategoryUniform},
		"sandstone":      {Category: CategoryTopBottomSide},
		"smooth_stone":   {Category: CategoryUniform},
		"obsidian":       {Category: CategoryUniform},
		"bedrock":        {Category: CategoryUniform},
		"netherrack":     {Category: CategoryUniform},
		"glowstone":      {Category: CategoryUniform},
		"coal_ore":       {Category: CategoryUniform},
		"iron_ore":       {Category: CategoryUniform},
		"gold_ore":       {Category: CategoryUniform},
		"diamond_ore":    {Category: CategoryUniform},
		"redstone_ore":   {Category: CategoryUniform},
		"lapis_ore":      {Category: CategoryUniform},
		"emerald_ore":    {Category: CategoryUniform},
		"iron_block":     {Category: CategoryUniform},
		"gold_block":     {Category: CategoryUniform},
		"diamond_block":  {Category: CategoryUniform},

		// Topo/fundo/lateral
		"grass_block":    {Category: CategoryTopBottomSide, HasTint: true, Tint: GrassTint},
		"podzol":         {Category: CategoryTopBottomSide},
		"mycelium":       {Category: CategoryTopBottomSide},
		"bookshelf":      {Category: CategoryTopBottomSide},
		"crafting_table": {Category: CategoryTopBottomSide},
		"furnace":        {Category: CategoryTopBottomSide},
		"jack_o_lantern": {Category: CategoryTopBottomSide},
		"pumpkin":        {Category: CategoryTopBottomSide},
		"melon":          {Category: CategoryDirectional},
		"hay_block":      {Category: CategoryDirectional},
		"tnt":            {Category: CategoryTopBottomSide},
		"mushroom_stem":  {Category: CategoryUniform},
		"sea_lantern":    {Category: CategoryUniform},

		// Madeiras (o fold de espécie pode colapsar tudo para uma)
		"oak_planks":      {Category: CategoryUniform},
		"spruce_planks":   {Category: CategoryUniform},
		"birch_planks":    {Category: CategoryUniform},
		"jungle_planks":   {Category: CategoryUniform},
		"acacia_planks":   {Category: CategoryUniform},
		"dark_oak_planks": {Category: CategoryUniform},

		// Folhas com tint por espécie
		"oak_leaves":    {Category: CategoryLeaves, Transparent: true, AlphaCutoff: 0.5, HasTint: true, Tint: FoliageTint},
		"spruce_leaves": {Category: CategoryLeaves, Transparent: true, AlphaCutoff: 0.5, HasTint: true, Tint: SpruceTint},
		"birch_leaves":  {Category: CategoryLeaves, Transparent: true, AlphaCutoff: 0.5, HasTint: true, Tint: BirchTint},

		// Transparentes
		"glass":      {Category: CategoryUniform, Transparent: true, Opacity: 0.6},
		"glass_pane": {Category: CategoryUniform, Transparent: true, Opacity: 0.6},
		"ice":        {Category: CategoryUniform, Transparent: true, Opacity: 0.8},
		"water":      {Category: CategoryUniform, Transparent: true, Opacity: 0.62, HasTint: true, Tint: WaterTint},
		"slime_block": {Category: CategoryUniform, Transparent: true, Opacity: 0.7},
		"cobweb":     {Category: CategoryCross, Transparent: true, AlphaCutoff: 0.35},
		"snow":       {Category: CategoryUniform},
	}
	return &Catalog{entries: e}
}

// fallbackProps é o retorno documentado para tipos desconhecidos.
var fallbackProps = Props{Category: CategoryUniform}

// Lookup resolve as propriedades de um tipo. Overrides programáticos têm
// precedência sobre a tabela manual: há variantes demais de nomenclatura
// para listar todas as folhas e troncos à mão.
func (c *Catalog) Lookup(blockType string) Props {
	if strings.Contains(blockType, "leaves") {
		if p, ok := c.entries[blockType]; ok && p.Category == CategoryLeaves {
			return p
		}
		return Props{Category: CategoryLeaves, Transparent: true, AlphaCutoff: 0.5, HasTint: true, Tint: FoliageTint}
	}
	if strings.Contains(blockType, "_log") || strings.HasSuffix(blockType, "_wood") {
		return Props{Category: CategoryDirectional}
	}
	if p, ok := c.entries[blockType]; ok {
		return p
	}
	// Variantes tingidas: a cor vem da tabela de tinturas e multiplica a
	// textura base
	if token, kind, ok := SplitDyeType(blockType); ok {
		if tint, found := GetDyeColor(token); found {
			switch kind {
			case "wool", "concrete", "concrete_powder", "terracotta", "carpet":
				return Props{Category: CategoryUniform, HasTint: true, Tint: tint}
			case "stained_glass", "stained_glass_pane":
				return Props{Category: CategoryUniform, Transparent: true, Opacity: 0.6, HasTint: true, Tint: tint}
			}
		}
	}
	return fallbackProps
}

// Known informa se o tipo consta na tabela manual (sem contar overrides).
func (c *Catalog) Known(blockType string) bool {
	_, ok := c.entries[blockType]
	return ok
}
