// desktop front end of the word cloud generator
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/viper"

	"goWordCloud/analysislib"
	"goWordCloud/cloudlib"
	"goWordCloud/configlib"
	"goWordCloud/morphlib"
	"goWordCloud/sessionlib"
)

const guiCanvasWidth = 800

// loadConfig reads the shared config; the canvas stays 800 wide unless the file sets a width
func loadConfig(v *viper.Viper, name string, paths ...string) (*configlib.Config, error) {
	cfg, err := configlib.Load(v, name, paths...)
	if err != nil {
		return nil, err
	}
	if !v.InConfig("width") {
		cfg.Width = guiCanvasWidth
	}

	return cfg, nil
}

func main() {
	logger := log.New(os.Stderr, "wordcloudgui: ", log.LstdFlags)

	cfg, err := loadConfig(viper.New(), "wordcloud")
	if err != nil {
		logger.Fatalf("Fatal error config file: %s", err)
	}

	analyzer, err := morphlib.New(cfg.Analyzer)
	if err != nil {
		logger.Fatal(err)
	}
	pipeline := analysislib.New(analyzer, cloudlib.Renderer{},
		analysislib.WithLogger(logger),
		analysislib.WithCacheTTL(cfg.CacheTTL))

	a := app.NewWithID("io.github.gowordcloud")
	w := a.NewWindow("워드클라우드 생성기")

	ui := newWindow(w, cfg, sessionlib.New(pipeline), logger)
	ui.onApplied = func(st sessionlib.State) { logger.Printf("generation finished: %s", st) }
	w.SetContent(ui.build())
	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}
