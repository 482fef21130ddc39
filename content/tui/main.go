package main

import (
	"flag"
	"io"
	"log"
	"os"

	"aritmath/content/config"
	"aritmath/content/cue"
	"aritmath/content/scene"
	"aritmath/content/timer"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	// 终端被游戏画面占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	cues := cue.Nop
	if !*mute {
		if p, err := newToneCues(); err != nil {
			log.Println("sound disabled:", err)
		} else {
			cues = p
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	s.EnableMouse()
	s.HideCursor()

	term := newTerminal(s)
	err = scene.Run(scene.Bundle{
		Renderer: term,
		Cues:     cues,
		Clock:    timer.SystemClock(),
		Input:    term,
		Tuning:   tuning,
	})
	term.Close()
	s.Fini()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
