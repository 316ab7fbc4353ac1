package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/rs/zerolog/log"
)

type examView struct {
	questions []dto.QuestionDTO
	groups    []*widget.RadioGroup
	submit    *widget.Button
	status    *widget.Label
}

func (p *Portal) ShowExam() {
	questions, err := p.session.Questions()
	if p.guard(err) {
		return
	}

	v := &examView{questions: questions, status: widget.NewLabel("")}
	p.exam = v

	if err != nil {
		log.Error().Err(err).Msg("Exam view: failed to load questions")
		v.status.SetText(msgStoreError)
		p.setView(viewExam, container.NewVBox(v.status, backButton(p)))
		return
	}

	list := container.NewVBox()
	for i, q := range questions {
		group := widget.NewRadioGroup(optionLabels(q.Options), nil)
		v.groups = append(v.groups, group)
		list.Add(widget.NewLabelWithStyle(fmt.Sprintf("%d. %s", i+1, q.Text), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		list.Add(group)
	}
	v.submit = widget.NewButton("Submit", func() { p.submitExam(v) })

	p.setView(viewExam, container.NewBorder(nil, container.NewVBox(v.status, v.submit), nil, nil, container.NewVScroll(list)))
}

// optionLabels prefixes each option with its letter so labels stay distinct even when
// two options share the same text.
func optionLabels(options []string) []string {
	labels := make([]string, len(options))
	for j, opt := range options {
		labels[j] = fmt.Sprintf("%c. %s", 'A'+j, opt)
	}
	return labels
}

// selections maps each radio group to the 1-based position of its chosen option, 0 when none.
func (v *examView) selections() []int {
	out := make([]int, len(v.groups))
	for i, g := range v.groups {
		if g.Selected == "" {
			continue
		}
		for j, label := range g.Options {
			if label == g.Selected {
				out[i] = j + 1
				break
			}
		}
	}
	return out
}

func (p *Portal) submitExam(v *examView) {
	result, err := p.session.SubmitExam(v.selections())
	if p.guard(err) {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Exam view: submission failed")
		v.status.SetText(msgStoreError)
		return
	}

	p.ShowMainMenu()
	dialog.ShowInformation("Exam finished", fmt.Sprintf("Your score: %d / %d", result.Score, result.Total), p.window)
}
