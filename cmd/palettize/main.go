package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/setanarut/palettizer"
	"github.com/setanarut/palettizer/internal/config"
	"github.com/setanarut/palettizer/presets"
	"github.com/setanarut/palettizer/utils"
)

var version = "dev"

var (
	help        bool
	verbose     bool
	showVersion bool
	inputPath   string
	outputPath  string
	configPath  string
	swatchPath  string
	colors      int
	method      string
	kernel      string
	serpentine  bool
	preset      string
	seed        string
	workers     int
	sampleSize  int
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s [options] -i input -o output.(png|gif)\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.BoolVar(&help, "h", false, "show help")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&inputPath, "i", "", "input image (png, jpeg or gif)")
	flag.StringVar(&outputPath, "o", "out.png", "output image, .gif writes an indexed GIF")
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&swatchPath, "index", "", "write the palette as a swatch PNG")
	flag.IntVar(&colors, "colors", 256, "palette size, 1-256")
	flag.StringVar(&method, "method", "box", "histogram method: global or box")
	flag.StringVar(&kernel, "kernel", "", "dither kernel, empty for none")
	flag.BoolVar(&serpentine, "serpentine", false, "alternate scan direction per row")
	flag.StringVar(&preset, "preset", "", "palette preset: ada, exa, uni, mac, web, win, bitmap")
	flag.StringVar(&seed, "seed", "", "seed the palette from dominant or kmeans colors")
	flag.IntVar(&workers, "workers", 1, "row workers for plain and ordered reduction")
	flag.IntVar(&sampleSize, "sample", 0, "build the palette from a copy scaled to fit this size, 0 samples full size")
}

func main() {
	_ = godotenv.Load()
	flag.Parse()

	if help {
		flag.Usage()
		return
	}
	if showVersion {
		fmt.Println(version)
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("palettize failed", "err", err)
		os.Exit(1)
	}
}

// overrideFlags copies explicitly set flags over the loaded config.
func overrideFlags(f *config.File) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "colors":
			f.Colors = colors
		case "method":
			f.Method = method
		case "kernel":
			f.Kernel = kernel
		case "serpentine":
			f.Serpentine = serpentine
		case "preset":
			f.Preset = preset
		case "seed":
			f.Seed = seed
		case "workers":
			f.Workers = workers
		}
	})
}

func run(logger *slog.Logger) error {
	if inputPath == "" {
		return errors.New("no input image, use -i")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	overrideFlags(&cfg)

	src, err := utils.ReadImage(inputPath)
	if err != nil {
		return err
	}
	img := palettizer.FromImage(src)
	logger.Info("loaded", "path", inputPath, "size", strconv.Itoa(img.Width)+"x"+strconv.Itoa(img.Height))

	var opt palettizer.Options
	if cfg.Preset != "" {
		if opt, err = presets.Options(img, cfg.Preset, cfg.Colors); err != nil {
			return err
		}
		if opt, err = cfg.ApplyRendering(opt); err != nil {
			return err
		}
	} else if opt, err = cfg.Options(); err != nil {
		return err
	}

	if cfg.Seed != "" {
		m, err := utils.ParseSeedMethod(cfg.Seed)
		if err != nil {
			return err
		}
		opt.Palette = utils.ExtractPalette(src, min(opt.Colors*2, 256), m)
		logger.Debug("seed palette", "method", m, "colors", len(opt.Palette))
	}
	opt.Logger = logger

	q, err := palettizer.New(opt)
	if err != nil {
		return err
	}

	start := time.Now()
	sample := img
	if sampleSize > 0 {
		sample = palettizer.FromImage(utils.Thumbnail(src, sampleSize))
		logger.Debug("sampling thumbnail", "width", sample.Width, "height", sample.Height)
	}
	if err := q.Sample(sample); err != nil {
		return err
	}
	pal, err := q.Palette()
	if err != nil {
		return err
	}
	logger.Info("palette built", "colors", len(pal), "elapsed", time.Since(start))

	start = time.Now()
	out, err := q.Reduce(img)
	if err != nil {
		return err
	}
	logger.Info("reduced", "kernel", string(opt.Kernel), "serpentine", opt.Serpentine, "elapsed", time.Since(start))

	if stats, err := utils.Compare(img, out); err == nil {
		logger.Info("error", "mean", stats.Mean, "stddev", stats.StdDev, "max", stats.Max)
	}

	if err := utils.Save(out.NRGBA(), q, outputPath); err != nil {
		return err
	}
	logger.Info("saved", "path", outputPath)

	if swatchPath != "" {
		if err := utils.SavePalette(pal, 32, swatchPath); err != nil {
			return err
		}
		logger.Info("saved palette", "path", swatchPath)
	}
	return nil
}
