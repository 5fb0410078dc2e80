package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/starlight-duel/starlight/assets"
	"github.com/starlight-duel/starlight/internal/config"
	"github.com/starlight-duel/starlight/internal/hangar"
	"github.com/starlight-duel/starlight/internal/logger"
	"github.com/starlight-duel/starlight/internal/match"
	"github.com/starlight-duel/starlight/internal/platform"
	"github.com/starlight-duel/starlight/internal/player"
	"github.com/starlight-duel/starlight/internal/render"
	"github.com/starlight-duel/starlight/internal/ship"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Starlight"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 80
	gridRows   = screenHeight / cellHeight // 45
)

const (
	// Playfield, in world units; one unit is one cell.
	fieldHalfW = 38
	fieldHalfH = 8
	fieldTop   = 2 // border row

	panelRow = fieldTop + 2*fieldHalfH + 4
	commsRow = panelRow + 12
	commsMax = 8
)

type scene uint8

const (
	sceneMenu scene = iota
	sceneMatch
)

// Game is the Ebitengine game struct. It owns the devices, rendering
// and whichever scene is up; gameplay state lives in match.
type Game struct {
	cfg     *config.Config
	catalog *hangar.Catalog
	pads    *platform.Pads
	keys    platform.Keyboard
	audio   *platform.Audio // nil when disabled or the device failed
	hums    []*platform.EngineHum
	muted   bool

	scene scene
	menu  *menu
	match *match.Match

	atlas    *render.FontAtlas
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	log      *slog.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	catalog, err := hangar.LoadCatalog(assets.Ships, "ships")
	if err != nil {
		return nil, err
	}
	atlas := render.NewFontAtlas()
	g := &Game{
		cfg:      cfg,
		catalog:  catalog,
		pads:     platform.NewPads(),
		atlas:    atlas,
		renderer: render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		log:      logger.L().With("component", "game"),
	}
	if cfg.Audio.Enabled {
		// a missing sound device should not stop the game
		if g.audio, err = platform.NewAudio(cfg.Audio); err != nil {
			g.log.Warn("Audio disabled", "error", err)
		}
	}
	g.menu = newMenu(g)
	return g, nil
}

// launch starts a fresh match with the frames and options picked in
// the menu.
func (g *Game) launch() {
	p1, p2 := g.cfg.Inputs.P1, g.cfg.Inputs.P2
	p1.InvertY = g.menu.invert[0].On
	p2.InvertY = g.menu.invert[1].On

	reg := player.NewRegistry(&p1, &p2)
	reg.Attach(player.P1, g.pads.Pad(0), g.keys)
	reg.Attach(player.P2, g.pads.Pad(1), g.keys)

	tuning := g.cfg.ShipTuning()
	tuning.RailZones = g.menu.rails.On
	m := match.New(reg, match.Options{
		Costs:               g.cfg.EnergyCosts(),
		Tuning:              tuning,
		StartMode:           g.cfg.StartMode(),
		SpawnGraceTicks:     g.cfg.Match.SpawnGraceTicks,
		HitBand:             g.cfg.Match.HitBand,
		ShieldRechargeTicks: g.cfg.Match.ShieldRechargeTicks,
		EnergyDrain:         g.cfg.Match.EnergyDrain,
		EnergyRegen:         g.cfg.Match.EnergyRegen,
	})
	m.AddVolume(match.Volume{
		Zone: ship.Zone{Name: "the nebula", AffectsP1: true, AffectsP2: true, Mode: ship.ModeFree},
		Min:  ship.Vec{X: -10, Y: -fieldHalfH},
		Max:  ship.Vec{X: 10, Y: fieldHalfH},
	})
	m.AddVolume(match.Volume{
		Zone: ship.Zone{Name: "the lanes", AffectsP1: true, AffectsP2: true, Mode: ship.ModeRail},
		Min:  ship.Vec{X: -fieldHalfW, Y: -fieldHalfH},
		Max:  ship.Vec{X: -24, Y: fieldHalfH},
	})

	g.stopAudio()
	spawns := []match.Spawn{
		{Slot: player.P1, At: ship.Vec{X: -30, Y: -3}, Heading: ship.Vec{X: 1}},
		{Slot: player.P2, At: ship.Vec{X: 30, Y: 3}, Heading: ship.Vec{X: -1}},
	}
	for i, sp := range spawns {
		key := g.menu.frames[i].Value()
		f, ok := g.catalog.Get(key)
		if !ok {
			g.log.Error("Unknown frame", "frame", key)
			return
		}
		sp.Frame = f
		sp.Emitter = g.emitter()
		if _, err := m.Join(sp); err != nil {
			g.log.Error("Launch failed", "slot", sp.Slot, "error", err)
			return
		}
	}

	g.match = m
	g.scene = sceneMatch
	g.log.Info("Match launched", "p1", g.menu.frames[0].Value(), "p2", g.menu.frames[1].Value())
}

// emitter returns an engine hum, or a silent stand-in without audio.
func (g *Game) emitter() ship.PitchEmitter {
	pitch := g.cfg.Ship.DefaultPitch
	if g.audio == nil {
		return ship.NewSilentEmitter(pitch)
	}
	hum, err := g.audio.EngineHum(pitch)
	if err != nil {
		g.log.Warn("Engine hum unavailable", "error", err)
		return ship.NewSilentEmitter(pitch)
	}
	g.hums = append(g.hums, hum)
	return hum
}

func (g *Game) stopAudio() {
	if g.audio != nil {
		g.audio.Silence()
	}
	g.hums = g.hums[:0]
	g.muted = false
}

func (g *Game) muteHums(on bool) {
	if g.muted == on {
		return
	}
	g.muted = on
	for _, h := range g.hums {
		h.Mute(on)
	}
}

func (g *Game) Update() error {
	g.pads.Update()

	switch g.scene {
	case sceneMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		g.menu.update(1 / float64(ebiten.TPS()))
		if g.scene == sceneMenu {
			g.menu.draw(g.buffer)
		}
	case sceneMatch:
		g.updateMatch()
	}
	return nil
}

func (g *Game) updateMatch() {
	m := g.match
	if m.Over() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.stopAudio()
		g.match = nil
		g.scene = sceneMenu
		g.menu.reset()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := m.Swap(); err != nil {
			g.log.Warn("Swap refused", "error", err)
		}
	}

	m.Update()
	g.muteHums(m.Paused() || m.Over())
	g.drawMatch()
}

func (g *Game) drawMatch() {
	buf := g.buffer
	m := g.match
	buf.Clear()

	buf.WriteString(2, 0, title, render.ColorWhite, render.ColorBlack)
	status := fmt.Sprintf("tick %d", m.Tick())
	switch {
	case m.Over() && m.Winner() == player.SlotNone:
		status = "DRAW  Enter: menu"
	case m.Over():
		status = fmt.Sprintf("%s WINS  Enter: menu", m.Winner())
	case m.Paused():
		status = "PAUSED"
	}
	buf.WriteString(20, 0, status, render.ColorLightCyan, render.ColorBlack)

	buf.Box(0, fieldTop, gridCols, 2*fieldHalfH+3, render.ColorDarkGray)
	for y := -fieldHalfH; y <= fieldHalfH; y++ {
		for x := -10; x <= 10; x++ {
			col, row := fieldCell(float64(x), float64(y))
			buf.Set(col, row, render.GlyphMedium, render.ColorBlue, render.ColorBlack)
		}
	}

	render.DrawShipPanel(buf, 2, panelRow, player.P1, m.Ship(player.P1), m.Frame(player.P1))
	render.DrawShipPanel(buf, 42, panelRow, player.P2, m.Ship(player.P2), m.Frame(player.P2))
	render.DrawComms(buf, 2, commsRow, commsMax, m.Comms())

	buf.WriteString(2, gridRows-1, "Esc/Backspace: Pause  F2: Swap seats", render.ColorDarkGray, render.ColorBlack)
	fps := fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	buf.WriteString(gridCols-20, gridRows-1, fps, render.ColorDarkGray, render.ColorBlack)
}

// fieldCell maps a world position to a playfield cell. X wraps so rail
// ships keep circling the field.
func fieldCell(x, y float64) (int, int) {
	span := float64(2 * fieldHalfW)
	wx := math.Mod(x+fieldHalfW, span)
	if wx < 0 {
		wx += span
	}
	return 1 + int(wx), fieldTop + 1 + int(math.Round(y)) + fieldHalfH
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.buffer)
	if g.scene != sceneMatch {
		return
	}
	for _, s := range player.Slots {
		c := g.match.Ship(s)
		if c == nil {
			continue
		}
		glyph := byte('>')
		if s == player.P2 {
			glyph = '<'
		}
		if c.Vitals().Destroyed() {
			glyph = render.GlyphSquare
		}
		col, row := fieldCell(c.Position().X, c.Position().Y)
		g.renderer.DrawFloating(screen, glyph, render.SlotColor(c.Slot()), float64(col*cellWidth), float64(row*cellHeight))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func main() {
	cfgPath := flag.String("config", "configs/starlight.yaml", "path to the settings file")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logCfg := logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		logCfg.Output = f
	}
	logger.Init(logCfg)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
