package main

import (
	"fmt"
	"log"

	"github.com/emberengine/ember/engine/colors"
	"github.com/emberengine/ember/engine/core"
	glbackend "github.com/emberengine/ember/engine/gfx/gl"
	"github.com/emberengine/ember/engine/platform"
)

type App struct {
	dev   *glbackend.Device
	layer *LayerSprites
	tick  int
	title string
}

func (a *App) OnStart(e *core.Engine) {
	a.layer = &LayerSprites{dev: a.dev}
	e.Layers.Push(a.layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++
	if a.tick%60 != 0 || a.layer.renderer == nil {
		return
	}
	st := a.layer.renderer.Stats()
	title := fmt.Sprintf("%s | %d draws, %d atlas binds", a.title, st.DrawCalls, st.AtlasBinds)
	e.Window.SetTitle(title)
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	def := core.Config{
		Title:      "Ember (2D)",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
	}
	cfg, err := core.LoadConfig("sandbox.toml", def)
	if err != nil {
		log.Fatal(err)
	}

	app := &App{title: cfg.Title}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		dev, err := glbackend.NewDevice()
		if err != nil {
			return nil, err
		}
		app.dev = dev
		return dev, nil
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
