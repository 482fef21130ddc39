package main

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	arcadeFaceSource *text.GoTextFaceSource
)

func InitFont() {
	// 加载字体
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		log.Fatal(err)
	}
	arcadeFaceSource = s
}

// drawText 以 (x, y) 为锚点绘制一行文字，align 决定锚点在文字的左侧、中间还是右侧
func drawText(screen *ebiten.Image, s string, x, y, size float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size
	op.PrimaryAlign = align
	text.Draw(screen, s, &text.GoTextFace{
		Source: arcadeFaceSource,
		Size:   size,
	}, op)
}
