package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lshigami/examportal/internal/service"
)

const (
	msgInvalidCredentials = "Invalid credentials."
	msgRegistered         = "User registered successfully! You can login now."
	msgDuplicate          = "Username already exists."
	msgStoreError         = "Something went wrong talking to the database. Please try again."
)

type loginView struct {
	username *widget.Entry
	password *widget.Entry
	loginBtn *widget.Button
	signup   *widget.Button
	status   *widget.Label
}

func (p *Portal) ShowLogin() {
	v := &loginView{
		username: widget.NewEntry(),
		password: widget.NewPasswordEntry(),
		status:   widget.NewLabel(""),
	}
	v.username.SetPlaceHolder("Username")
	v.password.SetPlaceHolder("Password")
	v.loginBtn = widget.NewButton("Login", func() { p.doLogin(v) })
	v.signup = widget.NewButton("Sign Up", func() { p.doSignup(v) })
	v.password.OnSubmitted = func(string) { p.doLogin(v) }

	form := container.NewGridWithColumns(2,
		widget.NewLabel("Username:"), v.username,
		widget.NewLabel("Password:"), v.password,
		v.loginBtn, v.signup,
	)
	p.login = v
	p.setView(viewLogin, container.NewVBox(form, v.status))
}

func (p *Portal) doLogin(v *loginView) {
	err := p.session.Login(v.username.Text, v.password.Text)
	if err != nil {
		v.status.SetText(loginMessage(err))
		return
	}
	p.ShowMainMenu()
}

func (p *Portal) doSignup(v *loginView) {
	err := p.session.Register(v.username.Text, v.password.Text)
	switch {
	case err == nil:
		v.status.SetText(msgRegistered)
	case errors.Is(err, service.ErrDuplicateUsername):
		v.status.SetText(msgDuplicate)
	default:
		v.status.SetText(loginMessage(err))
	}
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials
	case errors.Is(err, service.ErrInvalidInput):
		// "invalid input: username is required" -> "Username is required."
		detail := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
		return strings.ToUpper(detail[:1]) + detail[1:] + "."
	default:
		return msgStoreError
	}
}
