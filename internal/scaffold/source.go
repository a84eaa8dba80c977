package scaffold

import "fmt"

// NameSource supplies the project name for a run.
type NameSource interface {
	ProjectName() (string, error)
}

// ArgumentSource is a project name given on the command line.
type ArgumentSource string

// ProjectName returns the argument, or an error when it is not a valid name.
func (a ArgumentSource) ProjectName() (string, error) {
	name := string(a)
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// NameSourceFunc adapts a function to NameSource.
type NameSourceFunc func() (string, error)

func (f NameSourceFunc) ProjectName() (string, error) { return f() }

// resolveName asks src for a name and validates it regardless of the source.
func resolveName(src NameSource) (string, error) {
	if src == nil {
		return "", fmt.Errorf("%w: no project name source", ErrInvalidName)
	}
	name, err := src.ProjectName()
	if err != nil {
		return "", err
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
