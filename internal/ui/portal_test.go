package ui

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/lshigami/examportal/config"
	"github.com/lshigami/examportal/database"
	"github.com/lshigami/examportal/internal/dbtest"
	"github.com/lshigami/examportal/internal/repository"
	"github.com/lshigami/examportal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPortal(t *testing.T, cfg *config.Config) (*Portal, *service.Session) {
	t.Helper()
	p, s, _ := newTestPortalWithDB(t, cfg)
	return p, s
}

func newTestPortalWithDB(t *testing.T, cfg *config.Config) (*Portal, *service.Session, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t, cfg)

	auth, err := service.NewAuthService(repository.NewUserRepository(db), cfg)
	require.NoError(t, err)
	exam := service.NewExamService(repository.NewQuestionRepository(db), repository.NewAttemptRepository(db))
	session := service.NewSession(auth, exam)

	a := test.NewApp()
	t.Cleanup(a.Quit)
	return NewPortal(a, session, cfg), session, db
}

func fillCredentials(p *Portal, user, pass string) {
	p.login.username.SetText("")
	p.login.password.SetText("")
	test.Type(p.login.username, user)
	test.Type(p.login.password, pass)
}

func loggedInPortal(t *testing.T) (*Portal, *service.Session) {
	t.Helper()
	p, s := newTestPortal(t, dbtest.Config(t))
	require.NoError(t, s.Register("alice", "pw1"))
	fillCredentials(p, "alice", "pw1")
	test.Tap(p.login.loginBtn)
	require.Equal(t, viewMenu, p.current)
	return p, s
}

func TestLoginViewSignupAndLogin(t *testing.T) {
	p, s := newTestPortal(t, dbtest.Config(t))
	assert.Equal(t, viewLogin, p.current)

	fillCredentials(p, "alice", "pw1")
	test.Tap(p.login.signup)
	assert.Equal(t, msgRegistered, p.login.status.Text)
	assert.Equal(t, viewLogin, p.current)

	fillCredentials(p, "alice", "pw2")
	test.Tap(p.login.signup)
	assert.Equal(t, msgDuplicate, p.login.status.Text)

	fillCredentials(p, "alice", "wrong")
	test.Tap(p.login.loginBtn)
	assert.Equal(t, msgInvalidCredentials, p.login.status.Text)
	assert.Equal(t, viewLogin, p.current)

	fillCredentials(p, "alice", "pw1")
	test.Tap(p.login.loginBtn)
	assert.Equal(t, viewMenu, p.current)
	assert.Equal(t, "Logged in as alice", p.menu.greeting.Text)
	user, ok := s.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "alice", user)
}

func TestLoginViewRejectsEmptyInput(t *testing.T) {
	p, _ := newTestPortal(t, dbtest.Config(t))

	test.Tap(p.login.signup)
	assert.Equal(t, "Username is required; password is required.", p.login.status.Text)

	test.Tap(p.login.loginBtn)
	assert.Equal(t, viewLogin, p.current)
	assert.NotEmpty(t, p.login.status.Text)
}

func TestExamSubmitRecordsAttempt(t *testing.T) {
	p, s := loggedInPortal(t)

	test.Tap(p.menu.takeExam)
	require.Equal(t, viewExam, p.current)
	require.Len(t, p.exam.groups, 3)

	assert.Equal(t, []string{"A. 3", "B. 4", "C. 5", "D. 6"}, p.exam.groups[0].Options)
	p.exam.groups[0].SetSelected(p.exam.groups[0].Options[1])
	p.exam.groups[1].SetSelected(p.exam.groups[1].Options[2])
	// third question left unanswered
	assert.Equal(t, []int{2, 3, 0}, p.exam.selections())

	test.Tap(p.exam.submit)
	assert.Equal(t, viewMenu, p.current)
	assert.NotNil(t, p.window.Canvas().Overlays().Top(), "score dialog should be shown")

	attempts, err := s.Attempts()
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, 2, attempts[0].Score)
}

func TestExamSelectionsUsePosition(t *testing.T) {
	options := []string{"Yes", "No", "Yes", "Maybe"}
	v := &examView{groups: []*widget.RadioGroup{
		widget.NewRadioGroup(optionLabels(options), nil),
		widget.NewRadioGroup(optionLabels(options), nil),
	}}

	v.groups[0].SetSelected(v.groups[0].Options[2])
	v.groups[1].SetSelected(v.groups[1].Options[0])
	assert.Equal(t, []int{3, 1}, v.selections())
}

func TestViewsReportStoreFailure(t *testing.T) {
	p, s, db := newTestPortalWithDB(t, dbtest.Config(t))
	require.NoError(t, s.Register("alice", "pw1"))
	fillCredentials(p, "alice", "pw1")
	test.Tap(p.login.loginBtn)
	require.Equal(t, viewMenu, p.current)

	test.Tap(p.menu.takeExam)
	require.Equal(t, viewExam, p.current)
	require.NoError(t, database.Close(db))

	test.Tap(p.exam.submit)
	assert.Equal(t, viewExam, p.current)
	assert.Equal(t, msgStoreError, p.exam.status.Text)

	p.ShowMainMenu()
	test.Tap(p.menu.takeExam)
	assert.Equal(t, viewExam, p.current)
	assert.Equal(t, msgStoreError, p.exam.status.Text)
	assert.Empty(t, p.exam.groups)

	p.ShowMainMenu()
	test.Tap(p.menu.myAttempts)
	assert.Equal(t, viewAttempts, p.current)
	assert.Equal(t, msgStoreError, p.attempts.text.Text)

	p.ShowMainMenu()
	test.Tap(p.menu.logout)
	require.Equal(t, viewLogin, p.current)
	fillCredentials(p, "alice", "pw1")
	test.Tap(p.login.loginBtn)
	assert.Equal(t, viewLogin, p.current)
	assert.Equal(t, msgStoreError, p.login.status.Text)

	fillCredentials(p, "bob", "pw2")
	test.Tap(p.login.signup)
	assert.Equal(t, msgStoreError, p.login.status.Text)
}

func TestFatalWindowShowsError(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w, msg := fatalWindow(a, "Online Exam Portal", errors.New("store unavailable: disk full"))
	assert.Equal(t, "Online Exam Portal", w.Title())
	assert.NotNil(t, w.Content())
	assert.Contains(t, msg.Text, "could not start")
	assert.Contains(t, msg.Text, "store unavailable: disk full")
}

func TestAttemptsViewListsHistory(t *testing.T) {
	p, s := loggedInPortal(t)

	test.Tap(p.menu.myAttempts)
	require.Equal(t, viewAttempts, p.current)
	assert.Equal(t, "Your Attempts:\nNo attempts yet.\n", p.attempts.text.Text)

	test.Tap(p.attempts.back)
	require.Equal(t, viewMenu, p.current)

	first, err := s.SubmitExam([]int{2, 3, 2})
	require.NoError(t, err)
	second, err := s.SubmitExam([]int{1})
	require.NoError(t, err)

	test.Tap(p.menu.myAttempts)
	want := "Your Attempts:\n" +
		"Attempt #" + itoa(first.AttemptID) + ": Score = 3\n" +
		"Attempt #" + itoa(second.AttemptID) + ": Score = 0\n"
	assert.Equal(t, want, p.attempts.text.Text)
}

func TestAboutViewImageFallback(t *testing.T) {
	p, _ := loggedInPortal(t)

	test.Tap(p.menu.aboutBtn)
	require.Equal(t, viewAbout, p.current)
	label, ok := p.about.image.(*widget.Label)
	require.True(t, ok, "missing image should render a placeholder")
	assert.Equal(t, "(no image)", label.Text)
	assert.Contains(t, p.about.info.String(), "Online Exam Portal")
	assert.Contains(t, p.about.info.String(), "Created by Gideon")

	test.Tap(p.about.back)
	assert.Equal(t, viewMenu, p.current)
}

func TestAboutViewLoadsImage(t *testing.T) {
	cfg := dbtest.Config(t)
	cfg.App.AboutImage = writePNG(t)
	p, s := newTestPortal(t, cfg)
	require.NoError(t, s.Register("bob", "pw"))
	require.NoError(t, s.Login("bob", "pw"))

	p.ShowAbout()
	_, ok := p.about.image.(*canvas.Image)
	assert.True(t, ok)
}

func TestLogoutReturnsToLogin(t *testing.T) {
	p, s := loggedInPortal(t)

	test.Tap(p.menu.logout)
	assert.Equal(t, viewLogin, p.current)
	_, ok := s.CurrentUser()
	assert.False(t, ok)

	// Views that need a user bounce back to login.
	p.ShowMainMenu()
	assert.Equal(t, viewLogin, p.current)
	p.ShowExam()
	assert.Equal(t, viewLogin, p.current)
	p.ShowAttempts()
	assert.Equal(t, viewLogin, p.current)
}

func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
