// Copyright 2018 The Ebiten Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"aritmath/content/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func Init() {
	InitImage()
	InitFont()
	InitAudio()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	flag.Parse()

	tuning, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	Init()
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("AritMath")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(tuning.FramesPerSecond)

	g := NewGame(tuning, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
