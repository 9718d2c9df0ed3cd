// Package export serializes a scene snapshot to SVG
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/abey79/rusteroid/engine"
)

// Options controls the SVG output
type Options struct {
	StrokeWidth float64
	DocumentID  uuid.UUID // Written as the root id; zero value picks a fresh one
}

// svgWriter accumulates the first write error so callers check once
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// WriteSVG writes one path per scene item, segments drawn as move/line pairs
// World space is y-up; the root group flips it into SVG's y-down space
func WriteSVG(w io.Writer, scene engine.Scene, opts Options) error {
	id := opts.DocumentID
	if id == uuid.Nil {
		id = uuid.New()
	}
	stroke := opts.StrokeWidth
	if stroke <= 0 {
		stroke = 1
	}

	s := &svgWriter{w: bufio.NewWriter(w)}
	s.printf(`<?xml version="1.0"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" id="%s"
     width="%g" height="%g" viewBox="%g %g %g %g">
`, id, scene.Width, scene.Height, -scene.Width/2, -scene.Height/2, scene.Width, scene.Height)
	s.printf("<g transform=\"scale(1,-1)\" fill=\"none\" stroke=\"black\" stroke-width=\"%g\">\n", stroke)

	for _, item := range scene.Items {
		if len(item.Segments) == 0 {
			continue
		}
		s.printf("<path class=\"%s\" d=\"", itemClass(item))
		for i, seg := range item.Segments {
			if i > 0 {
				s.printf(" ")
			}
			s.printf("M%.3f,%.3f L%.3f,%.3f", seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
		}
		s.printf("\"/>\n")
	}

	s.printf("</g>\n</svg>\n")
	if s.err != nil {
		return fmt.Errorf("write svg: %w", s.err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush svg: %w", err)
	}
	return nil
}

func itemClass(item engine.SceneItem) string {
	switch item.Kind {
	case engine.EntityAsteroid:
		return fmt.Sprintf("asteroid cat%d", item.Category)
	case engine.EntityMissile:
		return "missile"
	default:
		return "entity"
	}
}
