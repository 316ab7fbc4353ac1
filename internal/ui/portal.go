// Package ui renders the exam portal in a single fyne window. Each Show* call replaces the
// window content; the service.Session holds all state that outlives a view.
package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lshigami/examportal/config"
	"github.com/lshigami/examportal/internal/service"
	"github.com/rs/zerolog/log"
)

type viewName string

const (
	viewLogin    viewName = "login"
	viewMenu     viewName = "menu"
	viewExam     viewName = "exam"
	viewAttempts viewName = "attempts"
	viewAbout    viewName = "about"
)

type Portal struct {
	app     fyne.App
	window  fyne.Window
	session *service.Session
	cfg     *config.Config

	current  viewName
	login    *loginView
	menu     *menuView
	exam     *examView
	attempts *attemptsView
	about    *aboutView
}

func NewPortal(a fyne.App, session *service.Session, cfg *config.Config) *Portal {
	w := a.NewWindow(cfg.App.Title)
	w.Resize(fyne.NewSize(600, 400))

	p := &Portal{app: a, window: w, session: session, cfg: cfg}
	p.ShowLogin()
	return p
}

// ShowAndRun blocks in the fyne event loop until the window is closed.
func (p *Portal) ShowAndRun() {
	log.Info().Str("title", p.cfg.App.Title).Msg("Starting UI")
	p.window.ShowAndRun()
}

func (p *Portal) setView(name viewName, content fyne.CanvasObject) {
	log.Debug().Str("view", string(name)).Msg("Switching view")
	p.current = name
	p.window.SetContent(content)
}

// guard sends the user back to the login screen when the session has ended underneath a view.
func (p *Portal) guard(err error) bool {
	if errors.Is(err, service.ErrNotLoggedIn) {
		p.ShowLogin()
		return true
	}
	return false
}

func backButton(p *Portal) *widget.Button {
	return widget.NewButton("Back", p.ShowMainMenu)
}

// ShowFatal opens a standalone window explaining why the portal could not start and
// blocks until it is closed.
func ShowFatal(a fyne.App, title string, err error) {
	w, _ := fatalWindow(a, title, err)
	w.ShowAndRun()
}

func fatalWindow(a fyne.App, title string, err error) (fyne.Window, *widget.Label) {
	w := a.NewWindow(title)
	msg := widget.NewLabel("The exam portal could not start:\n\n" + err.Error())
	msg.Wrapping = fyne.TextWrapWord
	w.SetContent(container.NewBorder(nil, widget.NewButton("Quit", a.Quit), nil, nil, msg))
	w.Resize(fyne.NewSize(480, 200))
	return w, msg
}
