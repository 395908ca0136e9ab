// Test program checking that legacy layouts survive migration: the layout
// rebuilt from the migrated overrides must bind exactly what the legacy
// layout bound.
package main

import (
	"log"
	"os"
	"slices"

	"github.com/llehouerou/inputremap/internal/config"
	"github.com/llehouerou/inputremap/internal/inputmap"
	"github.com/llehouerou/inputremap/internal/layoutfile"
	"github.com/llehouerou/inputremap/internal/playermap"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s config.toml legacy.yaml...", os.Args[0])
	}

	cfg, err := config.LoadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Loaded %d presets", len(cfg.PresetTags()))

	failed := 0
	for _, path := range os.Args[2:] {
		if !check(cfg, path) {
			failed++
		}
	}

	if failed > 0 {
		log.Fatalf("%d of %d layouts do not survive migration", failed, len(os.Args)-2)
	}
	log.Println("All layouts survive migration")
}

func check(cfg *config.Config, path string) bool {
	f, err := layoutfile.LoadFile(path)
	if err != nil {
		log.Printf("%s: %v", path, err)
		return false
	}
	if f.Preset == "" {
		f.Preset = cfg.DefaultPreset
	}

	flat, err := f.Layout()
	if err != nil {
		log.Printf("%s: %v", path, err)
		return false
	}
	preset, ok := cfg.Preset(f.Preset)
	if !ok {
		log.Printf("%s: unknown preset %q", path, f.Preset)
		return false
	}

	overrides := inputmap.ReconstructOverrides(cfg, flat, preset)
	log.Printf("%s: %d override entries against preset %q", path, overrides.NumInputDefinitions(), f.Preset)

	player := playermap.PlayerInputMappings{BasePresetTag: f.Preset, MappingOverrides: overrides}
	rebuilt := player.BuildMergedMappingLayout(cfg, false)

	ok = true
	for i := range max(len(flat.Groups), len(rebuilt.Groups)) {
		want, _ := flat.GroupAt(i)
		got, _ := rebuilt.GroupAt(i)
		if !sameBindings(want, got) {
			log.Printf("%s: group %d differs\nlegacy:\n%v\nrebuilt:\n%v", path, i, inputmap.NewMappingLayout(want), inputmap.NewMappingLayout(got))
			ok = false
		}
	}
	if ok {
		log.Printf("%s: OK", path)
	}
	return ok
}

// sameBindings compares the live mappings of two groups, ignoring order and
// default flags.
func sameBindings(a, b inputmap.MappingGroup) bool {
	return slices.Equal(bindingKeys(a), bindingKeys(b))
}

func bindingKeys(g inputmap.MappingGroup) []string {
	var keys []string
	for _, m := range g.Actions {
		m.IsDefault = false
		keys = append(keys, m.String())
	}
	for _, m := range g.Axes {
		m.IsDefault = false
		keys = append(keys, m.String())
	}
	slices.Sort(keys)
	return keys
}
