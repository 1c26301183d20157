package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

// ErrQuit - fin de saisie (Ctrl-D, Ctrl-C ou choix Quitter)
var ErrQuit = errors.New("quit")

// LineReader - source des saisies; *readline.Instance la satisfait
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

var _ LineReader = (*readline.Instance)(nil)

// Prompter pose une question et la repose tant que la réponse est invalide
type Prompter struct {
	in  LineReader
	out io.Writer
}

func NewPrompter(in LineReader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// ask lit des lignes jusqu'à ce que accept réussisse; hint est affiché sinon
func (p *Prompter) ask(label, hint string, accept func(string) bool) error {
	for {
		p.in.SetPrompt(label + " : ")
		line, err := p.in.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return ErrQuit
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if accept(strings.TrimSpace(line)) {
			return nil
		}
		warnColor.Fprintln(p.out, "  "+hint)
	}
}

// Text - texte obligatoire
func (p *Prompter) Text(label string) (string, error) {
	var value string
	err := p.ask(label, "Ce champ est obligatoire.", func(s string) bool {
		value = s
		return s != ""
	})
	return value, err
}

// OptionalText - texte libre, éventuellement vide
func (p *Prompter) OptionalText(label string) (string, error) {
	var value string
	err := p.ask(label+" (optionnel)", "", func(s string) bool {
		value = s
		return true
	})
	return value, err
}

// ID - identifiant strictement positif
func (p *Prompter) ID(label string) (int64, error) {
	var id int64
	err := p.ask(label, "Veuillez entrer un identifiant numérique valide.", func(s string) bool {
		v, err := strconv.ParseInt(s, 10, 64)
		id = v
		return err == nil && v > 0
	})
	return id, err
}

// OptionalID - identifiant ou vide (0)
func (p *Prompter) OptionalID(label string) (int64, error) {
	var id int64
	err := p.ask(label+" (optionnel)", "Veuillez entrer un identifiant numérique valide ou laisser vide.", func(s string) bool {
		if s == "" {
			id = 0
			return true
		}
		v, err := strconv.ParseInt(s, 10, 64)
		id = v
		return err == nil && v > 0
	})
	return id, err
}

// Int - entier supérieur ou égal à min
func (p *Prompter) Int(label string, min int) (int, error) {
	var value int
	hint := fmt.Sprintf("Veuillez entrer un nombre entier supérieur ou égal à %d.", min)
	err := p.ask(label, hint, func(s string) bool {
		v, err := strconv.Atoi(s)
		value = v
		return err == nil && v >= min
	})
	return value, err
}

// OptionalInt - entier positif ou nul, nil si vide
func (p *Prompter) OptionalInt(label string) (*int, error) {
	var value *int
	err := p.ask(label+" (optionnel)", "Veuillez entrer un nombre entier positif ou laisser vide.", func(s string) bool {
		if s == "" {
			value = nil
			return true
		}
		v, err := strconv.Atoi(s)
		value = &v
		return err == nil && v >= 0
	})
	return value, err
}

// Amount - montant positif ou nul; la virgule décimale est acceptée
func (p *Prompter) Amount(label string) (float64, error) {
	var value float64
	err := p.ask(label, "Veuillez entrer un montant valide (nombre positif).", func(s string) bool {
		v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		value = v
		return err == nil && v >= 0
	})
	return value, err
}

// Date - date au format AAAA-MM-JJ
func (p *Prompter) Date(label string) (time.Time, error) {
	var value time.Time
	err := p.ask(label+" (AAAA-MM-JJ)", "Veuillez entrer une date valide au format AAAA-MM-JJ.", func(s string) bool {
		v, err := parseDate(s)
		value = v
		return err == nil
	})
	return value, err
}

// OptionalDate - date ou vide
func (p *Prompter) OptionalDate(label string) (*time.Time, error) {
	var value *time.Time
	err := p.ask(label+" (AAAA-MM-JJ, optionnel)", "Veuillez entrer une date au format AAAA-MM-JJ ou laisser vide.", func(s string) bool {
		if s == "" {
			value = nil
			return true
		}
		v, err := parseDate(s)
		value = &v
		return err == nil
	})
	return value, err
}

// Confirm - oui/non
func (p *Prompter) Confirm(label string) (bool, error) {
	var value bool
	err := p.ask(label+" (o/n)", "Répondez par o (oui) ou n (non).", func(s string) bool {
		switch strings.ToLower(s) {
		case "o", "oui", "y", "yes":
			value = true
			return true
		case "n", "non", "no":
			value = false
			return true
		}
		return false
	})
	return value, err
}

// Choice affiche les options numérotées; la réponse est le numéro ou le libellé
func (p *Prompter) Choice(label string, options []string) (string, error) {
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, option)
	}

	var value string
	err := p.ask(label, "Veuillez choisir une option de la liste.", func(s string) bool {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
			value = options[n-1]
			return true
		}
		for _, option := range options {
			if strings.EqualFold(s, option) {
				value = option
				return true
			}
		}
		return false
	})
	return value, err
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.Local)
}
