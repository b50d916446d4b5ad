// Command cache-scan prints the catalog of a cache directory without the GUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/schollz/progressbar/v3"

	"github.com/ytget/cache-browser/internal/audio"
	"github.com/ytget/cache-browser/internal/classify"
	"github.com/ytget/cache-browser/internal/config"
	"github.com/ytget/cache-browser/internal/model"
	"github.com/ytget/cache-browser/internal/platform"
	"github.com/ytget/cache-browser/internal/scanner"
)

const (
	nameColumnWidth = 48
	typeColumnWidth = 10
	sizeColumnWidth = 10
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: user config dir)")
	probe := flag.String("probe", "", "audio probe engine: decoder, ffprobe or none")
	quiet := flag.Bool("q", false, "do not show scan progress")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configPath, *probe, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "cache-scan: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, configPath, probe string, quiet bool) error {
	if configPath == "" {
		path, err := platform.GetOptionsPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	opts, err := config.LoadOptions(configPath)
	if err != nil {
		return err
	}
	if probe != "" {
		opts.Probe.Engine = probe
	}

	prober, err := audio.NewProber(opts.Probe.Engine)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	scanOpts := scanner.Options{
		Workers: opts.Scan.Workers,
		Include: opts.Scan.Include,
		Exclude: opts.Scan.Exclude,
	}
	if !quiet {
		scanOpts.OnProgress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("scanning"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Set(done)
		}
	}

	sc, err := scanner.New(classify.NewClassifier(prober), scanOpts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	catalog, err := sc.Scan(ctx, dir)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	printCatalog(catalog)
	return nil
}

func printCatalog(catalog *model.Catalog) {
	fmt.Printf("%s\n\n", catalog.Dir)
	fmt.Println(row("DECODED", "TYPE", "FORMAT", "SIZE"))

	for _, entry := range catalog.Entries {
		fmt.Println(row(
			entry.DecodedIdentity,
			entry.ContentType.String(),
			entry.Format.String(),
			strconv.FormatInt(entry.Size, 10),
		))
	}

	fmt.Printf("\n%d files", catalog.Len())
	counts := catalog.CountByType()
	for _, ct := range []model.ContentType{
		model.ContentTypeImage,
		model.ContentTypeXML,
		model.ContentTypeModel3DS,
		model.ContentTypeContainerArchive,
		model.ContentTypeAudio,
	} {
		if n := counts[ct]; n > 0 {
			fmt.Printf(", %s: %d", ct, n)
		}
	}
	fmt.Println()
}

// row pads by display width so CJK and emoji names keep the columns aligned
func row(name, contentType, format, size string) string {
	name = runewidth.FillRight(runewidth.Truncate(name, nameColumnWidth, "…"), nameColumnWidth)
	contentType = runewidth.FillRight(contentType, typeColumnWidth)
	size = runewidth.FillLeft(size, sizeColumnWidth)
	return name + "  " + contentType + "  " + runewidth.FillRight(format, typeColumnWidth) + size
}
