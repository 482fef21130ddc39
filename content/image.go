package main

import (
	"image/color"
	"math"

	"aritmath/content/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	heartSize     = 32
	crosshairSize = 32
)

var (
	balloonImage *ebiten.Image
	heartImage   *ebiten.Image

	// 准星，替代系统鼠标指针
	crosshairImage *ebiten.Image

	// 五种天空背景
	backgroundColors = [config.Backgrounds]color.RGBA{
		{0x87, 0xce, 0xeb, 0xff},
		{0xa7, 0xd0, 0xff, 0xff},
		{0xff, 0xd8, 0xa8, 0xff},
		{0xc8, 0xe6, 0xc9, 0xff},
		{0xe1, 0xbe, 0xe7, 0xff},
	}
	balloonColor = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	heartColor   = color.RGBA{0xd3, 0x2f, 0x2f, 0xff}
	buttonColor  = color.RGBA{0x2b, 0x6c, 0xb0, 0xff}
	textColor    = color.Black
)

// InitImage 生成气球和爱心的贴图，尺寸与命中区域一致
func InitImage() {
	const w, h = config.BalloonWidth, config.BalloonHeight
	balloonImage = ebiten.NewImage(w, h)
	r := float32(w/2 - 2)
	vector.DrawFilledCircle(balloonImage, w/2, r+2, r, balloonColor, true)
	// 气球口和绳子
	vector.DrawFilledRect(balloonImage, w/2-4, 2*r, 8, 6, balloonColor, true)
	vector.StrokeLine(balloonImage, w/2, 2*r+6, w/2, h, 2, color.Gray{0x40}, true)

	heartImage = ebiten.NewImage(heartSize, heartSize)
	vector.DrawFilledCircle(heartImage, 10, 11, 8, heartColor, true)
	vector.DrawFilledCircle(heartImage, 22, 11, 8, heartColor, true)
	sq := ebiten.NewImage(16, 16)
	sq.Fill(heartColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-8, -8)
	op.GeoM.Rotate(math.Pi / 4)
	op.GeoM.Translate(heartSize/2, 17)
	heartImage.DrawImage(sq, op)

	const c = crosshairSize / 2
	crosshairImage = ebiten.NewImage(crosshairSize, crosshairSize)
	vector.StrokeCircle(crosshairImage, c, c, c-4, 2, color.Black, true)
	vector.StrokeLine(crosshairImage, c, 0, c, c-4, 2, color.Black, true)
	vector.StrokeLine(crosshairImage, c, c+4, c, crosshairSize, 2, color.Black, true)
	vector.StrokeLine(crosshairImage, 0, c, c-4, c, 2, color.Black, true)
	vector.StrokeLine(crosshairImage, c+4, c, crosshairSize, c, 2, color.Black, true)
}
