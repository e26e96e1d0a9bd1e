package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/sortie/impeller-playground/fixtures"
	log "github.com/sortie/impeller-playground/log"
	"github.com/sortie/impeller-playground/options"
	"github.com/sortie/impeller-playground/playground"
	"github.com/sortie/impeller-playground/renderer"
)

var logger = log.New("main")

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := &options.PlaygroundOptions{
		TestName:    flag.String("name", "interactive", "Test name shown in the window title"),
		FixtureDir:  flag.String("fixtures", "", "Fixture directory (defaults to a 'fixtures' directory next to the executable)"),
		Fixture:     flag.String("fixture", "", "Fixture image to decode and upload before rendering"),
		ShaderDir:   flag.String("shaders", renderer.ShaderLibraryDirectory(), "Shader library directory"),
		LibraryName: flag.String("library", "playground.wgsl", "Shader library file name"),
		FrameLimit:  flag.Int("frames", 0, "Stop after this many frames (0 = run until the window closes)"),
		Verbose:     flag.Bool("v", false, "Enable debug logging"),
	}
	flag.Parse()

	if *opts.Verbose {
		log.SetLevel(log.Debug)
	}

	r, err := renderer.New(*opts.ShaderDir, *opts.LibraryName)
	if err != nil {
		logger.Errorf("failed to create renderer: %v", err)
		os.Exit(1)
	}
	defer r.Release()

	pg := playground.New(r, *opts.TestName)
	pg.SetFrameLimit(*opts.FrameLimit)
	if *opts.FixtureDir != "" {
		pg.SetFixtureOpener(fixtures.DirOpener(*opts.FixtureDir))
	}

	if *opts.Fixture != "" {
		texture := pg.CreateTextureForFixture(*opts.Fixture)
		if texture == nil {
			os.Exit(1)
		}
		defer texture.Release()
		logger.Infof("loaded fixture %q (%v, %d mip)", texture.Label(), texture.Size(), texture.MipCount())
	}

	ok := pg.OpenPlaygroundHere(func(pass *renderer.RenderPass) bool {
		// Clear-only frame; the pass is already open on the drawable.
		return true
	})
	if !ok {
		os.Exit(1)
	}
}
