package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/cache-browser/internal/audio"
	"github.com/ytget/cache-browser/internal/browser"
	"github.com/ytget/cache-browser/internal/classify"
	"github.com/ytget/cache-browser/internal/config"
	"github.com/ytget/cache-browser/internal/platform"
	"github.com/ytget/cache-browser/internal/scanner"
	"github.com/ytget/cache-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.cache-browser"
	AppName = "Cache Browser"

	WindowWidth  = 1000
	WindowHeight = 650
)

func main() {
	fmt.Printf("Cache Browser v%s starting...\n", version)

	opts := loadOptions()

	prober, err := audio.NewProber(opts.Probe.Engine)
	if err != nil {
		log.Printf("invalid probe engine, using decoder: %v", err)
		prober = audio.DecoderProber{}
	}

	sc, err := scanner.New(classify.NewClassifier(prober), scanner.Options{
		Workers: opts.Scan.Workers,
		Include: opts.Scan.Include,
		Exclude: opts.Scan.Exclude,
	})
	if err != nil {
		log.Fatalf("invalid scan filters: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	b := browser.New(sc, audio.NewEngine(), settings, browser.Options{
		Watch:    opts.Watch.Enabled && settings.GetAutoRefresh(),
		Debounce: opts.Debounce(),
	})

	rootUI := ui.NewRootUI(myWindow, b, settings)
	myWindow.SetOnClosed(b.Close)
	myApp.Lifecycle().SetOnStarted(rootUI.OpenLastDirectory)

	myWindow.ShowAndRun()
}

// loadOptions reads config.yaml from the user config directory, falling back to defaults
func loadOptions() *config.Options {
	path, err := platform.GetOptionsPath()
	if err != nil {
		log.Printf("config directory unavailable: %v", err)
		return config.DefaultOptions()
	}

	opts, err := config.LoadOptions(path)
	if err != nil {
		log.Printf("failed to load %s, using defaults: %v", path, err)
		return config.DefaultOptions()
	}
	return opts
}
