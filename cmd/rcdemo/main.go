// Command rcdemo is the host-integration layer around the raycaster
// core: a window, the game loop tick, raw key/mouse capture, and a
// blit of the engine's pixel buffer onto the screen. Everything here
// is deliberately outside the core per §1's scope — windowing, input,
// and presentation are external collaborators the core only consumes
// the output of (Δt, key/mouse deltas) and produces (a pixel buffer,
// a frame time) for.
package main

import (
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/FSMargoo/RCEngine/geom"
	"github.com/FSMargoo/RCEngine/mapfile"
	"github.com/FSMargoo/RCEngine/raycaster"
	"github.com/FSMargoo/RCEngine/rcconfig"
	"github.com/FSMargoo/RCEngine/texload"
)

const (
	screenW = 640
	screenH = 480
)

type game struct {
	scene      *raycaster.Scene
	cam        *raycaster.Camera
	renderer   *raycaster.Renderer
	interactor *raycaster.Interactor

	screenImage *ebiten.Image
	lastMouseX  int
}

func (g *game) Update() error {
	dt := 1.0 / 60.0

	g.interactor.SetKey(raycaster.MoveForward, ebiten.IsKeyPressed(ebiten.KeyW))
	g.interactor.SetKey(raycaster.MoveBack, ebiten.IsKeyPressed(ebiten.KeyS))
	g.interactor.SetKey(raycaster.MoveLeft, ebiten.IsKeyPressed(ebiten.KeyA))
	g.interactor.SetKey(raycaster.MoveRight, ebiten.IsKeyPressed(ebiten.KeyD))

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		g.interactor.SetSpeedMode(raycaster.SpeedSneaking)
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		g.interactor.SetSpeedMode(raycaster.SpeedSprinting)
	default:
		g.interactor.SetSpeedMode(raycaster.SpeedNormal)
	}

	mx, _ := ebiten.CursorPosition()
	dx := mx - g.lastMouseX
	g.lastMouseX = mx
	g.interactor.Look(g.cam, dt, float64(dx), 0)

	g.interactor.Step(g.cam, g.scene.Map, dt)
	g.interactor.StepDoors(dt)
	g.interactor.TriggerSprites(g.cam, g.scene.Sprites)

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.interactor.Interact(g.cam, g.scene.Map, screenW)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	buf, _, err := g.renderer.Render(g.scene, g.cam)
	if err != nil {
		log.Println("render:", err)
		return
	}
	words := make([]uint32, buf.W*buf.H)
	buf.PackInto(words)

	pix := make([]byte, 4*len(words))
	for i, w := range words {
		pix[4*i+0] = byte(w >> 16) // R
		pix[4*i+1] = byte(w >> 8)  // G
		pix[4*i+2] = byte(w)       // B
		pix[4*i+3] = byte(w >> 24) // A
	}
	g.screenImage.WritePixels(pix)
	screen.DrawImage(g.screenImage, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	cfg, err := rcconfig.Load("rcdemo.toml")
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open("assets/map.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	wallTex := loadTexture("assets/wall.png")
	doorTex := loadTexture("assets/door.png")
	glassTex := loadTexture("assets/glass.png")
	stripTex := loadTexture("assets/strip.png")
	diagTex := loadTexture("assets/diag.png")

	parsed, err := mapfile.Parse(f, mapfile.TextureSet{
		Wall: wallTex, Diag: diagTex, Door: doorTex, Glass: glassTex, Strip: stripTex,
	})
	if err != nil {
		log.Fatal(err)
	}

	scene, err := raycaster.NewScene(parsed.Map)
	if err != nil {
		log.Fatal(err)
	}
	scene.Floor = loadTexture("assets/floor.png")
	scene.Ceiling = loadTexture("assets/ceiling.png")
	scene.Fog.Level = cfg.FogLevel
	scene.Fog.Color = raycaster.Unpack(cfg.FogColor)

	cam := raycaster.NewCamera(parsed.Spawn, geom.Vector2{X: -1, Y: 0})
	// fovFactor is |plane|/|dir| = tan(fov/2).
	cam.SetFov(2 * math.Atan(cfg.FovFactor))

	renderer, err := raycaster.NewRenderer(screenW, screenH)
	if err != nil {
		log.Fatal(err)
	}
	renderer.EnableSuperResolution(cfg.SuperResolution)

	interactor := raycaster.NewInteractor()
	interactor.MoveSpeed = cfg.MoveSpeed
	interactor.RotateSpeed = cfg.RotateSpeed
	interactor.PitchSpeed = cfg.PitchSpeed
	interactor.Reach = cfg.Reach

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("RCEngine")
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	g := &game{
		scene:       scene,
		cam:         cam,
		renderer:    renderer,
		interactor:  interactor,
		screenImage: ebiten.NewImage(screenW, screenH),
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadTexture(path string) *raycaster.Texture {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	tex, err := texload.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	return tex
}
