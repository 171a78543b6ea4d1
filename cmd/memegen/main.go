// Command memegen renders text labels onto a base image and writes the
// result as PNG.
//
// One-shot:
//
//	memegen -base base.png -top-left "me" -bottom-right "also me"
//
// Streaming, redrawing after every "slot=text" line read from stdin:
//
//	memegen -base base.png -watch < edits.txt
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/meme"
)

func main() {
	var (
		base        = flag.String("base", "images/base-image.png", "base image")
		topLeft     = flag.String("top-left", "", "top-left text")
		middle      = flag.String("middle", "", "middle text")
		bottomRight = flag.String("bottom-right", "", "bottom-right text")
		output      = flag.String("output", meme.DefaultExportName, "output file")
		fontPath    = flag.String("font", "", "TTF/OTF font file (default Go Regular)")
		shaped      = flag.Bool("shaping", false, "measure text with HarfBuzz shaping")
		noStroke    = flag.Bool("no-stroke", false, "fill label boxes without the outer stroke")
		watch       = flag.Bool("watch", false, "read slot=text lines from stdin and re-render after each")
		verbose     = flag.Bool("v", false, "log rendering details to stderr")
	)
	flag.Parse()

	if *verbose {
		meme.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts, err := buildOptions(*fontPath, *shaped, *noStroke)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	s := meme.NewSession(opts...)
	if err := s.SetTexts(meme.Texts{
		TopLeft:     *topLeft,
		Middle:      *middle,
		BottomRight: *bottomRight,
	}); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := s.Load(*base); err != nil {
		log.Fatalf("Failed to load base image: %v", err)
	}

	save := func(s *meme.Session) error {
		_, err := s.ExportAs(*output)
		return err
	}
	if err := save(s); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if *watch {
		if err := meme.Watch(os.Stdin, s, save); err != nil {
			log.Fatalf("Failed to watch input: %v", err)
		}
	}

	c := s.Compositor()
	log.Printf("Meme saved to %s (%dx%d)\n", *output, c.Width(), c.Height())
}

func buildOptions(fontPath string, shaped, noStroke bool) ([]meme.Option, error) {
	font := meme.DefaultFont()
	if fontPath != "" {
		f, err := meme.LoadFont(fontPath)
		if err != nil {
			return nil, err
		}
		font = f
	}
	opts := []meme.Option{meme.WithFont(font)}

	if shaped {
		m, err := meme.NewShapingMeasurer(font.Data())
		if err != nil {
			return nil, err
		}
		opts = append(opts, meme.WithMeasurer(m))
	}

	if noStroke {
		st := meme.DefaultStyle()
		st.StrokeBackground = false
		opts = append(opts, meme.WithStyle(st))
	}
	return opts, nil
}
