// +build ignore

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "Icon.png")
	}

	// 512x512 icon: ascending bars on the app's plum background
	img := image.NewRGBA(image.Rect(0, 0, 512, 512))

	bgColor := color.RGBA{106, 30, 85, 255}
	barColor := color.RGBA{166, 77, 121, 255}
	topColor := color.RGBA{255, 255, 255, 255}

	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			img.Set(x, y, bgColor)
		}
	}

	// Five bars, sorted by height
	heights := []int{120, 190, 260, 330, 400}
	barWidth := 60
	gap := 24
	left := (512 - len(heights)*barWidth - (len(heights)-1)*gap) / 2
	bottom := 456

	for i, h := range heights {
		x0 := left + i*(barWidth+gap)
		for y := bottom - h; y < bottom; y++ {
			for x := x0; x < x0+barWidth; x++ {
				c := barColor
				if y < bottom-h+12 {
					c = topColor
				}
				img.Set(x, y, c)
			}
		}
	}

	f, err := os.Create(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer f.Close()

	png.Encode(f, img)
}
