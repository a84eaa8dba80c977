package commands

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/k2-saas/create-k2-saas/internal/scaffold"
	"github.com/k2-saas/create-k2-saas/internal/templates"
)

// askOne is replaced in tests.
var askOne = survey.AskOne

// errAborted is returned when the user interrupts a prompt.
var errAborted = errors.New("project creation cancelled")

// promptSource asks for the project name until it is valid.
func promptSource() scaffold.NameSource {
	return scaffold.NameSourceFunc(func() (string, error) {
		var name string
		prompt := &survey.Input{
			Message: "What do you want to name your project?",
			Help:    "Lowercase letters, digits and hyphens, e.g. my-awesome-app",
		}
		if err := askOne(prompt, &name, survey.WithValidator(validateNameAnswer)); err != nil {
			return "", promptError(err)
		}
		return name, nil
	})
}

func validateNameAnswer(ans interface{}) error {
	name, ok := ans.(string)
	if !ok {
		return fmt.Errorf("project name must be text")
	}
	return scaffold.ValidateName(name)
}

// promptTemplate asks which registered template to use.
func promptTemplate(list []*templates.Template) (string, error) {
	options := make([]string, len(list))
	for i, t := range list {
		options[i] = fmt.Sprintf("%s - %s", t.Name, t.Description)
	}

	var selectedIdx int
	prompt := &survey.Select{
		Message: "Select a template:",
		Options: options,
	}
	if err := askOne(prompt, &selectedIdx); err != nil {
		return "", promptError(err)
	}
	if selectedIdx < 0 || selectedIdx >= len(list) {
		return "", fmt.Errorf("invalid template selection %d", selectedIdx)
	}
	return list[selectedIdx].Name, nil
}

func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
