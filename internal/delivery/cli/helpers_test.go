package cli

import "io"

// scriptedInput rejoue des lignes saisies puis renvoie io.EOF
type scriptedInput struct {
	lines   []string
	prompts []string
}

func newInput(lines ...string) *scriptedInput {
	return &scriptedInput{lines: lines}
}

func (s *scriptedInput) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func (s *scriptedInput) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}
