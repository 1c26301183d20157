// Package cli fournit le menu interactif de gestion de flotte.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/frontandrew/motofleet/internal/app"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgBlue)
	warnColor    = color.New(color.FgYellow)
)

// action - entrée du menu principal
type action struct {
	label string
	run   func(ctx context.Context) error
}

// CLI - menu principal et écrans de saisie
type CLI struct {
	svc       *app.Services
	prompt    *Prompter
	out       io.Writer
	logger    logger.Logger
	exportDir string
	now       func() time.Time
}

func New(svc *app.Services, in LineReader, out io.Writer, logger logger.Logger, exportDir string) *CLI {
	return &CLI{
		svc:       svc,
		prompt:    NewPrompter(in, out),
		out:       out,
		logger:    logger,
		exportDir: exportDir,
		now:       time.Now,
	}
}

func (c *CLI) actions() []action {
	return []action{
		{"Planifier un entretien", c.planifierEntretien},
		{"Envoyer les rappels d'entretien", c.envoyerRappels},
		{"Enregistrer un entretien réalisé", c.enregistrerEntretien},
		{"Enregistrer une panne / garantie", c.enregistrerPanne},
		{"Gérer le stock de pièces détachées", c.gererStock},
		{"Générer une alerte de stock bas", c.genererAlerteStock},
		{"Passer une commande de pièces détachées", c.passerCommande},
		{"Consulter l'historique des commandes de pièces", c.consulterHistorique},
		{"Gérer le profil des conducteurs", c.gererConducteurs},
		{"Planifier un essai moto", c.planifierEssai},
		{"Enregistrer un essai moto", c.enregistrerEssai},
		{"Enregistrer un incident", c.enregistrerIncident},
		{"Gérer les notifications", c.gererNotifications},
		{"Gérer les clients", c.gererClients},
		{"Gérer les modèles de moto", c.gererModeles},
		{"Gérer les motos", c.gererMotos},
		{"Gérer les pièces détachées", c.gererPieces},
	}
}

// Run affiche le menu jusqu'à Quitter ou la fin de l'entrée
func (c *CLI) Run(ctx context.Context) error {
	titleColor.Fprintln(c.out, "\n=== MotoFleet CLI ===")
	actions := c.actions()

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintln(c.out)
		infoColor.Fprintln(c.out, "Que voulez-vous faire ?")
		for i, a := range actions {
			fmt.Fprintf(c.out, "  %2d. %s\n", i+1, a.label)
		}
		fmt.Fprintln(c.out, "   0. Quitter")

		choice, err := c.prompt.Int("Votre choix", 0)
		if errors.Is(err, ErrQuit) || (err == nil && choice == 0) {
			errorColor.Fprintln(c.out, "Fermeture de MotoFleet CLI...")
			return nil
		}
		if err != nil {
			return err
		}
		if choice > len(actions) {
			warnColor.Fprintln(c.out, "  Veuillez choisir une option de la liste.")
			continue
		}

		if err := c.execute(ctx, actions[choice-1]); errors.Is(err, ErrQuit) {
			errorColor.Fprintln(c.out, "Fermeture de MotoFleet CLI...")
			return nil
		}
	}
}

// execute lance une action; ses erreurs sont affichées puis le menu reprend
func (c *CLI) execute(ctx context.Context, a action) error {
	log := c.logger.With("operation_id", uuid.NewString())
	titleColor.Fprintf(c.out, "\n%s\n\n", a.label)

	err := a.run(ctx)
	switch {
	case errors.Is(err, ErrQuit):
		return err
	case err != nil:
		c.failure(err)
		log.Warn("Operation failed", map[string]interface{}{
			"operation": a.label,
			"error":     err.Error(),
		})
	default:
		log.Debug("Operation completed", map[string]interface{}{
			"operation": a.label,
		})
	}
	return nil
}

func (c *CLI) success(format string, args ...interface{}) {
	successColor.Fprintf(c.out, "✅ "+format+"\n", args...)
}

func (c *CLI) info(format string, args ...interface{}) {
	infoColor.Fprintf(c.out, format+"\n", args...)
}

func (c *CLI) failure(err error) {
	errorColor.Fprintf(c.out, "❌ Erreur: %v\n", err)
}

// Actions des écrans de gestion
const (
	actionCreer     = "Créer"
	actionModifier  = "Modifier"
	actionLister    = "Lister"
	actionSupprimer = "Supprimer"
)

// manage affiche le sous-menu d'un écran de gestion puis lance l'action choisie
func (c *CLI) manage(ctx context.Context, screens map[string]func(context.Context) error, order ...string) error {
	choice, err := c.prompt.Choice("Action", order)
	if err != nil {
		return err
	}
	return screens[choice](ctx)
}
