package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"powers-dict/model"
)

func Start(dict *model.PowersDictionary) error {
	if err := tea.NewProgram(NewBrowser(dict), tea.WithAltScreen()).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
