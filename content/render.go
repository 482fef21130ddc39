package main

import (
	"fmt"
	"image/color"
	"strconv"

	"aritmath/content/config"
	"aritmath/content/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenRenderer 把场景快照画到 ebiten 的屏幕上，每帧新建一个
type screenRenderer struct {
	screen *ebiten.Image
}

func (r screenRenderer) Draw(snap scene.Snapshot) {
	r.screen.Fill(backgroundColors[snap.Background%len(backgroundColors)])

	switch snap.Mode {
	case config.ModeMainMenu:
		drawText(r.screen, "AritMath", config.ScreenWidth/2, 5*config.TitleFontSize, config.TitleFontSize, textColor, text.AlignCenter)
		drawText(r.screen, config.Credit, 10, 10, config.FontSize/2, textColor, text.AlignStart)
	case config.ModeLevelSelect:
		drawText(r.screen, "CHOOSE A LEVEL", config.ScreenWidth/2, 5*config.TitleFontSize, config.TitleFontSize, textColor, text.AlignCenter)
	case config.ModeLevel:
		r.drawLevel(snap)
	case config.ModeGameOver:
		drawText(r.screen, "GAME OVER", config.ScreenWidth/2, 200, config.TitleFontSize, textColor, text.AlignCenter)
		drawText(r.screen, "Score: "+strconv.Itoa(snap.Score), config.ScreenWidth/2, 100, config.FontSize, textColor, text.AlignCenter)
		drawText(r.screen, "Best: "+strconv.Itoa(snap.Best), config.ScreenWidth/2, 140, config.FontSize, textColor, text.AlignCenter)
	}

	for _, b := range snap.Buttons {
		r.drawButton(b)
	}
}

func (r screenRenderer) drawButton(b scene.Button) {
	vector.DrawFilledRect(r.screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), buttonColor, true)
	c := b.Rect.Center()
	drawText(r.screen, b.Label, c[0], c[1]-config.FontSize/3, config.FontSize*2/3, color.White, text.AlignCenter)
}

func (r screenRenderer) drawLevel(snap scene.Snapshot) {
	// 题目
	drawText(r.screen, snap.Question, config.ScreenWidth/2, 150, config.FontSize, textColor, text.AlignCenter)

	// 气球和上面的答案
	for _, b := range snap.Balloons {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.Pos[0], b.Pos[1])
		r.screen.DrawImage(balloonImage, op)
		drawText(r.screen, strconv.Itoa(b.Answer), b.Pos[0]+config.BalloonWidth/2, b.Pos[1]+config.BalloonWidth/2-config.FontSize/3, config.FontSize*2/3, color.White, text.AlignCenter)
	}

	// 分数、最高分、剩余时间
	drawText(r.screen, "Score: "+strconv.Itoa(snap.Score), 10, 10, config.FontSize*2/3, textColor, text.AlignStart)
	drawText(r.screen, "Best: "+strconv.Itoa(snap.Best), 250, 10, config.FontSize*2/3, textColor, text.AlignStart)
	drawText(r.screen, fmt.Sprintf("Time: %.1f", snap.Remaining.Seconds()), 10, 60, config.FontSize*2/3, textColor, text.AlignStart)
	drawText(r.screen, snap.Level.String(), 10, 110, config.FontSize/2, textColor, text.AlignStart)

	// 生命值
	for i := 0; i < snap.Lives; i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(config.HeartX-(snap.Lives-1-i)*config.HeartWidth), config.HeartY)
		r.screen.DrawImage(heartImage, op)
	}
}

// drawCrosshair 把准星中心对准鼠标位置
func drawCrosshair(screen *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-crosshairSize/2), float64(y-crosshairSize/2))
	screen.DrawImage(crosshairImage, op)
}

var _ scene.Renderer = screenRenderer{}
