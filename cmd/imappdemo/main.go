// Command imappdemo opens a demo window exercising the layer stack and
// the image texture lifecycle.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/imapp"
	_ "github.com/gogpu/imapp/driver/gogpu"
)

func main() {
	var (
		width   = flag.Int("width", 1024, "window width")
		height  = flag.Int("height", 768, "window height")
		title   = flag.String("title", "imapp demo", "window title")
		driver  = flag.String("driver", "", "window driver name (default: best available)")
		vsync   = flag.Bool("vsync", true, "enable vertical sync")
		verbose = flag.Bool("v", false, "enable debug logging")
		list    = flag.Bool("list-drivers", false, "list available window drivers and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range imapp.Drivers() {
			fmt.Println(name)
		}
		return
	}

	if *verbose {
		imapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	app, err := imapp.New(imapp.DefaultConfig().
		WithSize(*width, *height).
		WithTitle(*title).
		WithVSync(*vsync).
		WithDriver(*driver))
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	defer app.Close()

	if err := app.SetIcon(makeIcon()); err != nil {
		log.Printf("icon: %v", err)
	}

	app.PushLayer(&backgroundLayer{})
	app.PushLayer(&spriteLayer{})

	if err := app.Run(); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

// makeIcon builds a 32x32 two-tone diamond.
func makeIcon() *imapp.Image {
	icon := imapp.NewImage(32, 32)
	icon.Clear(imapp.NewPixel(30, 30, 60))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if dx, dy := x-16, y-16; dx*dx+dy*dy < 140 {
				icon.SetPixel(y, x, imapp.NewPixel(255, 180, 0))
			}
		}
	}
	return icon
}

// backgroundLayer paints a vertical gradient behind everything else.
type backgroundLayer struct {
	imapp.BaseLayer
}

func (l *backgroundLayer) Render(dc *gg.Context) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	steps := 64
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetRGB(0.1+t*0.2, 0.15+t*0.2, 0.3+t*0.3)
		dc.DrawRectangle(0, h*t, w, h/float64(steps)+1)
		dc.Fill()
	}
}

// spriteLayer animates a per-frame regenerated texture across the window.
type spriteLayer struct {
	imapp.BaseLayer
	img   *imapp.Image
	frame int
}

func (l *spriteLayer) OnAttach() {
	l.img = imapp.NewImage(96, 96)
}

func (l *spriteLayer) Render(dc *gg.Context) {
	l.frame++
	t := float64(l.frame) / 60

	for y := 0; y < l.img.Height(); y++ {
		for x := 0; x < l.img.Width(); x++ {
			v := uint8(128 + 127*math.Sin(float64(x+y)/12+t*2))
			l.img.SetPixel(y, x, imapp.NewPixel(v, 64, 255-v))
		}
	}
	if err := l.img.Upload(); err != nil {
		log.Printf("upload: %v", err)
		return
	}

	x := float64(dc.Width())/2 + math.Cos(t)*200 - 48
	y := float64(dc.Height())/2 + math.Sin(t)*150 - 48
	dc.DrawImage(gg.ImageBufFromImage(l.img), x, y)
}

func (l *spriteLayer) OnKill() {
	l.img.Release()
}
