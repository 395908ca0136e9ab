package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/llehouerou/inputremap/internal/config"
	"github.com/llehouerou/inputremap/internal/errmsg"
	"github.com/llehouerou/inputremap/internal/layoutfile"
	"github.com/llehouerou/inputremap/internal/layoutview"
	"github.com/llehouerou/inputremap/internal/playermap"
)

const usage = `usage:
  inputremap presets [-config path]
  inputremap merge   [-config path] [-preset tag] [-overrides file.yaml] [-debug] [-dump]
  inputremap migrate [-config path] [-preset tag] [-o file.yaml] legacy.yaml
`

var errUsage = errors.New("unknown command")

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Message(err))
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errmsg.Error(errmsg.OpParseArgs, errUsage)
	}

	switch args[0] {
	case "presets":
		return runPresets(args[1:], out)
	case "merge":
		return runMerge(args[1:], out)
	case "migrate":
		return runMigrate(args[1:], out)
	default:
		return errmsg.Error(errmsg.OpParseArgs, fmt.Errorf("%w %q", errUsage, args[0]))
	}
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, errmsg.Error(errmsg.OpConfigLoad, err)
	}
	return cfg, nil
}

func runPresets(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default: XDG config and ./inputremap.toml)")
	if err := fs.Parse(args); err != nil {
		return errmsg.Error(errmsg.OpParseArgs, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	for _, tag := range cfg.PresetTags() {
		marker := " "
		if tag == cfg.DefaultPreset {
			marker = "*"
		}
		layout, _ := cfg.Preset(tag)
		fmt.Fprintf(out, "%s %-12s %-20s %s\n", marker, tag, cfg.PresetName(tag), layoutview.Summary(layout))
	}
	return nil
}

func runMerge(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file")
	presetTag := fs.String("preset", "", "base preset (default: from overrides file or config)")
	overridesPath := fs.String("overrides", "", "player mapping file")
	debug := fs.Bool("debug", false, "log every merge stage")
	dump := fs.Bool("dump", false, "print the plain layout listing")
	if err := fs.Parse(args); err != nil {
		return errmsg.Error(errmsg.OpParseArgs, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	tag := cfg.DefaultPreset
	var f *layoutfile.File
	if *overridesPath != "" {
		if f, err = layoutfile.LoadFile(*overridesPath); err != nil {
			return errmsg.Error(errmsg.OpLayoutRead, err)
		}
		if f.Preset != "" {
			tag = f.Preset
		}
	}
	if *presetTag != "" {
		tag = *presetTag
	}
	if _, ok := cfg.Preset(tag); !ok {
		return errmsg.ErrorWith(errmsg.OpPresetLookup, tag, config.ErrUnknownPreset)
	}

	player := playermap.New(cfg, "", tag)
	if f != nil {
		f.Preset = tag
		if player, err = f.PlayerMappings(); err != nil {
			return errmsg.ErrorWith(errmsg.OpLayoutRead, *overridesPath, err)
		}
		if player.MigrateLegacy(cfg) {
			slog.Info("migrated legacy player mappings", "file", *overridesPath, "player", player.PlayerID)
		}
	}

	merged := player.BuildMergedMappingLayout(cfg, *debug)
	if *dump {
		_, err = merged.WriteTo(out)
		return err
	}
	_, err = fmt.Fprintln(out, layoutview.Render("Merged: "+cfg.PresetName(player.BasePresetTag), merged, layoutview.DefaultStyles()))
	return err
}

func runMigrate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file")
	presetTag := fs.String("preset", "", "preset the legacy layout was based on (default: from file)")
	outPath := fs.String("o", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return errmsg.Error(errmsg.OpParseArgs, err)
	}
	if fs.NArg() != 1 {
		return errmsg.Error(errmsg.OpParseArgs, fmt.Errorf("%w: migrate needs one legacy file", errUsage))
	}
	legacyPath := fs.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	f, err := layoutfile.LoadFile(legacyPath)
	if err != nil {
		return errmsg.Error(errmsg.OpLayoutRead, err)
	}
	f.Legacy = true
	if *presetTag != "" {
		f.Preset = *presetTag
	}
	if f.Preset == "" {
		f.Preset = cfg.DefaultPreset
	}

	player, err := f.PlayerMappings()
	if err != nil {
		return errmsg.ErrorWith(errmsg.OpLayoutRead, legacyPath, err)
	}
	if !player.MigrateLegacy(cfg) {
		return errmsg.ErrorWith(errmsg.OpMigrate, legacyPath, errNothingToMigrate)
	}

	migrated := layoutfile.FromPlayer(player)
	if *outPath != "" {
		if err := layoutfile.WriteFile(migrated, *outPath); err != nil {
			return errmsg.ErrorWith(errmsg.OpLayoutWrite, *outPath, err)
		}
		return nil
	}

	data, err := layoutfile.Marshal(migrated)
	if err != nil {
		return errmsg.Error(errmsg.OpLayoutWrite, err)
	}
	_, err = out.Write(data)
	return err
}

var errNothingToMigrate = errors.New("file holds no mappings")
