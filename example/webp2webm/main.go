package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/vidkit/webm/format/webm"
)

func main() {
	pattern := flag.String("in", "*.webp", "glob of WebP keyframe images, muxed in lexical order")
	fps := flag.Float64("fps", 30, "frame rate")
	out := flag.String("out", "out.webm", "output file")
	flag.Parse()

	files, err := filepath.Glob(*pattern)
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("no files match %s", *pattern)
	}

	images := make([][]byte, 0, len(files))
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			log.Fatal(err)
		}
		images = append(images, b)
	}

	buf, err := webm.MuxWebPFPS(images, *fps)
	if err != nil {
		log.Fatal(err)
	}
	if err := webm.SaveToFile(*out, buf); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d frames, %d bytes)", *out, len(images), len(buf))
}
