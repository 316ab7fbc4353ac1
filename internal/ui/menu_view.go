package ui

import (
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type menuView struct {
	greeting   *widget.Label
	takeExam   *widget.Button
	myAttempts *widget.Button
	aboutBtn   *widget.Button
	logout     *widget.Button
}

func (p *Portal) ShowMainMenu() {
	user, ok := p.session.CurrentUser()
	if !ok {
		p.ShowLogin()
		return
	}

	v := &menuView{
		greeting:   widget.NewLabel("Logged in as " + user),
		takeExam:   widget.NewButton("Take Exam", p.ShowExam),
		myAttempts: widget.NewButton("My Attempts", p.ShowAttempts),
		aboutBtn:   widget.NewButton("About", p.ShowAbout),
		logout: widget.NewButton("Logout", func() {
			p.session.Logout()
			p.ShowLogin()
		}),
	}
	p.menu = v
	p.setView(viewMenu, container.NewVBox(v.greeting, v.takeExam, v.myAttempts, v.aboutBtn, v.logout))
}
