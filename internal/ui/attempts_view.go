package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/rs/zerolog/log"
)

type attemptsView struct {
	text *widget.Label
	back *widget.Button
}

func (p *Portal) ShowAttempts() {
	attempts, err := p.session.Attempts()
	if p.guard(err) {
		return
	}

	v := &attemptsView{text: widget.NewLabel(""), back: backButton(p)}
	if err != nil {
		log.Error().Err(err).Msg("Attempts view: failed to load attempts")
		v.text.SetText(msgStoreError)
	} else {
		v.text.SetText(formatAttempts(attempts))
	}

	p.attempts = v
	p.setView(viewAttempts, container.NewBorder(nil, v.back, nil, nil, container.NewVScroll(v.text)))
}

func formatAttempts(attempts []dto.AttemptDTO) string {
	var sb strings.Builder
	sb.WriteString("Your Attempts:\n")
	if len(attempts) == 0 {
		sb.WriteString("No attempts yet.\n")
	}
	for _, a := range attempts {
		fmt.Fprintf(&sb, "Attempt #%d: Score = %d\n", a.ID, a.Score)
	}
	return sb.String()
}
