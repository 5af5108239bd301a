package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Shimi9999/gosm"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "debug logging")
	recursive := flag.Bool("r", false, "search directories recursively for song folders")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()
	gosm.SetLogger(logger)

	failed := false
	for _, path := range flag.Args() {
		if err := check(path, *recursive); err != nil {
			logger.Error("check failed", zap.String("path", path), zap.Error(err))
			failed = true
		}
	}
	if failed {
		logger.Sync()
		os.Exit(1)
	}
}

func check(path string, recursive bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		simfileData, err := gosm.LoadSimfile(path)
		if err != nil {
			return err
		}
		printSimfile(simfileData)
		return nil
	}

	var dirs []gosm.SimfileDirectory
	if recursive {
		if err := gosm.FindSimfileInDirectory(path, &dirs); err != nil {
			return err
		}
	} else {
		dir, err := gosm.LoadSimfileInDirectory(path)
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		fmt.Printf("[%s] %s\n", dir.Name, dir.Path)
		for _, simfileData := range dir.SimfileSet {
			printSimfile(simfileData)
		}
	}
	return nil
}

func printSimfile(simfileData gosm.SimfileData) {
	sim := simfileData.Simfile
	fmt.Printf("%s\n  %s / %s\n  sha256 %s\n", simfileData.Path, orEmpty(sim.Title), orEmpty(sim.Artist), simfileData.Sha256)
	fmt.Printf("  %d bpm changes, %d stops, %d bg changes\n", len(sim.BPMs), len(sim.Stops), len(sim.BgChanges))
	for _, chart := range sim.Charts {
		fmt.Printf("  %-14s %-9s %2d  %d measures, %d notes\n",
			chart.Type, chart.Difficulty, chart.Meter, len(chart.Measures), chart.TotalNotes())
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
