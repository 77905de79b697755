package namegen

import (
	"sort"

	"github.com/dmitrymomot/nameforge/pkg/vibe"
)

// presetTarget builds a Target from constant per-axis ranges. The ranges
// in this file are all within scale, so Set cannot fail.
func presetTarget(ranges map[vibe.Axis]vibe.Range) vibe.Target {
	var t vibe.Target
	for ax, r := range ranges {
		if err := t.Set(ax, r.Min, r.Max); err != nil {
			panic(err)
		}
	}
	return t
}

// PresetDefault is DefaultOptions under its preset name.
func PresetDefault() *Options {
	return DefaultOptions()
}

// PresetElf favors elegant, benevolent, flowing names: vowel-led prefixes,
// the occasional apostrophe, and a generous glyph pass with ligatures
// enabled.
func PresetElf() *Options {
	o := DefaultOptions()
	o.Theme = "elf"
	o.Target = presetTarget(map[vibe.Axis]vibe.Range{
		vibe.Elegance:    {Min: 7, Max: 10},
		vibe.Benevolence: {Min: 6, Max: 9},
		vibe.Exoticism:   {Min: 5, Max: 8},
	})
	o.VowelFirst = Prob(0.3)
	o.FeatureChance = 0.3
	o.AllowApostrophes = true
	o.ModificationChance = 0.5
	o.AllowLigatures = true
	return o
}

// PresetDwarf favors blunt, potent names, consonant-led and heavily
// accented.
func PresetDwarf() *Options {
	o := DefaultOptions()
	o.Theme = "dwarf"
	o.Target = presetTarget(map[vibe.Axis]vibe.Range{
		vibe.Potency:     {Min: 7, Max: 10},
		vibe.Elegance:    {Min: 1, Max: 4},
		vibe.Benevolence: {Min: 4, Max: 7},
	})
	o.ModificationChance = 0.7
	return o
}

// PresetOrc favors harsh, menacing names, broken by hyphens or spaces
// rather than apostrophes, with the glyph pass fully off.
func PresetOrc() *Options {
	o := DefaultOptions()
	o.Theme = "orc"
	o.Target = presetTarget(map[vibe.Axis]vibe.Range{
		vibe.Potency:     {Min: 8, Max: 10},
		vibe.Benevolence: {Min: 1, Max: 3},
		vibe.Elegance:    {Min: 1, Max: 3},
	})
	o.BlockCounts = []int{2, 3}
	o.AllowHyphens = true
	o.AllowSpaces = true
	o.AllowDiacritics = false
	return o
}

// PresetFae favors delicate, whimsical names: strongly vowel-led with
// diacritics and ligatures both in play.
func PresetFae() *Options {
	o := DefaultOptions()
	o.Theme = "fae"
	o.Target = presetTarget(map[vibe.Axis]vibe.Range{
		vibe.Exoticism:  {Min: 7, Max: 10},
		vibe.Elegance:   {Min: 6, Max: 9},
		vibe.GenderLean: {Min: 6, Max: 9},
	})
	o.VowelFirst = Prob(0.4)
	o.ModificationChance = 0.4
	o.AllowLigatures = true
	return o
}

// PresetDruid favors grounded, gentle Celtic-inspired names.
func PresetDruid() *Options {
	o := DefaultOptions()
	o.Theme = "druid"
	o.Target = presetTarget(map[vibe.Axis]vibe.Range{
		vibe.Benevolence: {Min: 6, Max: 9},
		vibe.Exoticism:   {Min: 4, Max: 7},
		vibe.Potency:     {Min: 4, Max: 7},
	})
	o.VowelFirst = Prob(0.3)
	o.AllowLigatures = true
	return o
}

// PresetDesert favors longer, exotic names, always three blocks and
// rarely vowel-led.
func PresetDesert() *Options {
	o := DefaultOptions()
	o.Theme = "desert"
	o.Target = presetTarget(map[vibe.Axis]vibe.Range{
		vibe.Exoticism: {Min: 8, Max: 10},
		vibe.Potency:   {Min: 5, Max: 8},
	})
	o.BlockCounts = []int{3}
	o.VowelFirst = Prob(0.1)
	o.ModificationChance = 0.3
	return o
}

var presets = map[string]func() *Options{
	"default": PresetDefault,
	"elf":     PresetElf,
	"dwarf":   PresetDwarf,
	"orc":     PresetOrc,
	"fae":     PresetFae,
	"druid":   PresetDruid,
	"desert":  PresetDesert,
}

// Preset returns a fresh Options for the given preset id. The second
// return reports whether the id is known.
func Preset(id string) (*Options, bool) {
	fn, ok := presets[id]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// PresetIDs returns the known preset ids in sorted order.
func PresetIDs() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
