// Command fontstat lays text out over a number of frames and reports how
// the font collection's caches and glyph atlas behave.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/fonts"
	"github.com/gogpu/fonts/fontconf"
	"github.com/gogpu/fonts/internal/workers"
	"github.com/gogpu/fonts/text"
)

func main() {
	var (
		config    = flag.String("config", "", "font configuration file (default: Go fonts)")
		preferred = flag.String("font", "", "font file to prefer over the configured fonts")
		ppp       = flag.Float64("ppp", 1, "physical pixels per point")
		sample    = flag.String("text", "The quick brown fox jumps over the lazy dog.", "text to lay out")
		wrap      = flag.Float64("wrap", 0, "wrap width in points (0: no wrapping)")
		frames    = flag.Int("frames", 3, "number of frames to simulate")
		callers   = flag.Int("workers", 4, "goroutines requesting layout each frame (0: GOMAXPROCS)")
		harfbuzz  = flag.Bool("harfbuzz", false, "shape with HarfBuzz")
		output    = flag.String("atlas", "", "write the glyph atlas to this PNG file")
		verbose   = flag.Bool("v", false, "log cache activity")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	fonts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	defs := fonts.DefaultDefinitions()
	if *config != "" {
		loaded, err := fontconf.Load(os.DirFS(filepath.Dir(*config)), filepath.Base(*config))
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		defs = fontconf.Merge(defs, loaded)
	}
	if *preferred != "" {
		src, err := text.NewFontSourceFromFile(*preferred)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		defs.PreferFont(src, text.FamilyProportional, text.FamilyMonospace)
	}

	var opts []fonts.Option
	if *harfbuzz {
		opts = append(opts, fonts.WithShaper(text.NewHarfbuzzShaper()))
	}
	f, err := fonts.New(*ppp, defs, opts...)
	if err != nil {
		log.Fatalf("Failed to create fonts: %v", err)
	}

	width := *wrap
	if width <= 0 {
		width = math.Inf(1)
	}

	pool := workers.New(*callers)
	defer pool.Close()
	fmt.Printf("workers: %d\n", pool.Size())

	styles := f.Styles()
	galleys := make([]*text.Galley, len(styles))
	for frame := range *frames {
		// Every style is requested twice per frame from different goroutines,
		// as separate widgets showing the same label would.
		batch := make([]func(), 0, 2*len(styles))
		for i, style := range styles {
			color := text.DefaultTextFormat().Color
			batch = append(batch,
				func() { galleys[i] = f.Layout(*sample, style, color, width) },
				func() { f.Layout(*sample, style, color, width) },
			)
		}
		pool.Run(batch)

		if frame == 0 {
			for i, style := range styles {
				size := galleys[i].Size()
				fmt.Printf("%-20s rows=%d size=%.1fx%.1f\n", style, len(galleys[i].Rows), size.X, size.Y)
			}
		}

		uploaded := 0
		if delta, ok := f.FontImageDelta(); ok {
			uploaded = len(delta.RGBA())
		}
		f.EndFrame()

		stats := f.CacheStats()
		fmt.Printf("frame %d: galleys=%d hits=%d misses=%d evictions=%d font_sizes=%d chains=%d/%d upload=%dB\n",
			frame, stats.Galleys, stats.Hits, stats.Misses, stats.Evictions, stats.FontSizes,
			stats.ChainHits, stats.ChainHits+stats.ChainMisses, uploaded)
	}

	w, h := f.FontImageSize()
	fmt.Printf("atlas: %dx%d\n", w, h)

	if *output != "" {
		if err := writeAtlas(f, *output); err != nil {
			log.Fatalf("Failed to save atlas: %v", err)
		}
		log.Printf("Atlas saved to %s (%dx%d)\n", *output, w, h)
	}
}

// writeAtlas saves the atlas as a grayscale PNG.
func writeAtlas(f *fonts.Fonts, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, f.FontImage()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
