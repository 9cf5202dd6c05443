package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	homedir "github.com/mitchellh/go-homedir"

	log "github.com/sirupsen/logrus"

	"github.com/mozzenior/wm/store"
)

// overrides is the subset of Config that the optional TOML file may
// override (spec §4.12 / SPEC_FULL §4.12): bindings and the layout table
// stay compile-time, since actions and arrangers are closed, compiled Go
// values with no serializable form.
type overrides struct {
	Mfact       *float64 `toml:"mfact"`
	Snap        *int     `toml:"snap"`
	BorderPx    *int     `toml:"border_px"`
	ShowBar     *bool    `toml:"show_bar"`
	TopBar      *bool    `toml:"top_bar"`
	ResizeHints *bool    `toml:"resize_hints"`
	Tags        []string `toml:"tags"`
	Colors      *struct {
		NormBorder string `toml:"norm_border"`
		SelBorder  string `toml:"sel_border"`
		NormFg     string `toml:"norm_fg"`
		NormBg     string `toml:"norm_bg"`
		SelFg      string `toml:"sel_fg"`
		SelBg      string `toml:"sel_bg"`
	} `toml:"colors"`
}

// ConfigPath returns $XDG_CONFIG_HOME/wm/wm.toml, falling back to
// ~/.config/wm/wm.toml via go-homedir when XDG_CONFIG_HOME is unset.
func ConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wm", "wm.toml")
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wm", "wm.toml")
}

// Load starts from Default() and applies an optional TOML override file. A
// missing file is not an error — it's the common case on a first run. A
// malformed file is backed up next to itself (so the user can recover what
// they wrote) and Load falls back to the default, logging at Warn rather
// than aborting startup (spec §7: config-level problems never block the
// data model from staying consistent).
func Load() *Config {
	c := Default()

	path := ConfigPath()
	if path == "" {
		return c
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("config: could not read override file, using defaults")
		} else {
			log.Info("config: no override file at ", path, ", using defaults")
		}
		return c
	}

	var ov overrides
	if _, err := toml.Decode(string(data), &ov); err != nil {
		backup := path + ".bak"
		if cerr := store.CopyFileContents(path, backup, 0o644); cerr != nil {
			log.WithError(cerr).Warn("config: failed to back up malformed override file")
		} else {
			log.Warn("config: malformed override file, backed up to ", backup)
		}
		log.WithError(err).Warn("config: using defaults")
		return c
	}

	applyOverrides(c, ov)
	return c
}

// applyOverrides copies present (non-nil) override fields onto c. Tags
// shorter than store.NumViews only replace the leading tags; colors given
// as malformed hex strings are skipped with a warning rather than zeroing
// the color out.
func applyOverrides(c *Config, ov overrides) {
	if ov.Mfact != nil {
		c.Mfact = store.ClampMfact(*ov.Mfact)
	}
	if ov.Snap != nil {
		c.Snap = *ov.Snap
	}
	if ov.BorderPx != nil {
		c.BorderPx = *ov.BorderPx
	}
	if ov.ShowBar != nil {
		c.ShowBar = *ov.ShowBar
	}
	if ov.TopBar != nil {
		c.TopBar = *ov.TopBar
	}
	if ov.ResizeHints != nil {
		c.ResizeHints = *ov.ResizeHints
	}
	for i, tag := range ov.Tags {
		if i >= len(c.Tags) {
			break
		}
		c.Tags[i] = tag
	}
	if ov.Colors != nil {
		applyColor(&c.Colors.NormBorder, ov.Colors.NormBorder)
		applyColor(&c.Colors.SelBorder, ov.Colors.SelBorder)
		applyColor(&c.Colors.NormFg, ov.Colors.NormFg)
		applyColor(&c.Colors.NormBg, ov.Colors.NormBg)
		applyColor(&c.Colors.SelFg, ov.Colors.SelFg)
		applyColor(&c.Colors.SelBg, ov.Colors.SelBg)
	}
}

func applyColor(dst *uint32, hex string) {
	if hex == "" {
		return
	}
	v, err := parseHexColor(hex)
	if err != nil {
		log.Warn("config: ignoring malformed color ", hex)
		return
	}
	*dst = v
}
