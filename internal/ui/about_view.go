package ui

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
)

const aboutImageSize = 120

type aboutView struct {
	info  *widget.RichText
	image fyne.CanvasObject
	back  *widget.Button
}

func (p *Portal) ShowAbout() {
	v := &aboutView{
		info: widget.NewRichTextFromMarkdown(fmt.Sprintf("## %s\n\nCreated by %s", p.cfg.App.Title, p.cfg.App.Author)),
		back: backButton(p),
	}
	v.image = aboutImage(p.cfg.App.AboutImage)

	p.about = v
	p.setView(viewAbout, container.NewBorder(v.info, v.back, nil, nil, container.NewCenter(v.image)))
}

// aboutImage falls back to a placeholder label when the file is missing or unreadable.
func aboutImage(path string) fyne.CanvasObject {
	if path == "" {
		return widget.NewLabel("(no image)")
	}
	if _, err := os.Stat(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("About image not available")
		return widget.NewLabel("(no image)")
	}

	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(aboutImageSize, aboutImageSize))
	return img
}
