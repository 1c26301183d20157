package cli

import (
	"context"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/usecase/conducteur"
	"github.com/frontandrew/motofleet/internal/usecase/essai"
	"github.com/frontandrew/motofleet/internal/usecase/incident"
)

func (c *CLI) gererConducteurs(ctx context.Context) error {
	return c.manage(ctx, map[string]func(context.Context) error{
		actionCreer:     func(ctx context.Context) error { return c.saisirConducteur(ctx, 0) },
		actionModifier:  c.modifierConducteur,
		actionLister:    c.listerConducteurs,
		actionSupprimer: c.supprimerConducteur,
	}, actionCreer, actionModifier, actionLister, actionSupprimer)
}

func (c *CLI) modifierConducteur(ctx context.Context) error {
	id, err := c.prompt.ID("ID du conducteur")
	if err != nil {
		return err
	}
	return c.saisirConducteur(ctx, id)
}

func (c *CLI) saisirConducteur(ctx context.Context, id int64) error {
	nom, err := c.prompt.Text("Nom")
	if err != nil {
		return err
	}
	permis, err := c.prompt.Text("Type de permis")
	if err != nil {
		return err
	}
	experience, err := c.prompt.Int("Années d'expérience", 0)
	if err != nil {
		return err
	}
	contact, err := c.prompt.OptionalText("Contact")
	if err != nil {
		return err
	}

	cond, err := c.svc.Conducteurs.Gerer(ctx, &conducteur.GererRequest{
		ID:               id,
		Nom:              nom,
		Permis:           permis,
		ExperienceAnnees: experience,
		ContactInfo:      contact,
	})
	if err != nil {
		return err
	}
	c.success("Conducteur enregistré : %s", describeConducteur(cond))
	return nil
}

func (c *CLI) listerConducteurs(ctx context.Context) error {
	conducteurs, err := c.svc.Conducteurs.List(ctx)
	if err != nil {
		return err
	}
	if len(conducteurs) == 0 {
		c.info("Aucun conducteur enregistré.")
	}
	for _, cond := range conducteurs {
		c.info("%s", describeConducteur(cond))
	}
	return nil
}

func (c *CLI) supprimerConducteur(ctx context.Context) error {
	id, err := c.prompt.ID("ID du conducteur")
	if err != nil {
		return err
	}
	if err := c.svc.Conducteurs.Delete(ctx, id); err != nil {
		return err
	}
	c.success("Conducteur %d supprimé.", id)
	return nil
}

func (c *CLI) planifierEssai(ctx context.Context) error {
	motoID, err := c.prompt.ID("ID de la moto")
	if err != nil {
		return err
	}
	conducteurID, err := c.prompt.ID("ID du conducteur")
	if err != nil {
		return err
	}
	debut, err := c.prompt.Date("Date de début")
	if err != nil {
		return err
	}
	fin, err := c.prompt.OptionalDate("Date de fin")
	if err != nil {
		return err
	}

	e, err := c.svc.Essais.Planifier(ctx, &essai.PlanifierRequest{
		MotoID:       motoID,
		ConducteurID: conducteurID,
		DateDebut:    debut,
		DateFin:      fin,
	})
	if err != nil {
		return err
	}
	c.success("Essai planifié : %s", describeEssai(e))
	return nil
}

func (c *CLI) enregistrerEssai(ctx context.Context) error {
	id, err := c.prompt.ID("ID de l'essai")
	if err != nil {
		return err
	}
	fin, err := c.prompt.Date("Date de fin")
	if err != nil {
		return err
	}
	km, err := c.prompt.Int("Kilométrage parcouru", 0)
	if err != nil {
		return err
	}

	e, err := c.svc.Essais.Enregistrer(ctx, &essai.EnregistrerRequest{EssaiID: id, DateFin: fin, KilometrageParcouru: km})
	if err != nil {
		return err
	}
	c.success("Essai enregistré : %s", describeEssai(e))
	return nil
}

func (c *CLI) enregistrerIncident(ctx context.Context) error {
	essaiID, err := c.prompt.OptionalID("ID de l'essai")
	if err != nil {
		return err
	}
	conducteurID, err := c.prompt.OptionalID("ID du conducteur")
	if err != nil {
		return err
	}
	motoID, err := c.prompt.OptionalID("ID de la moto")
	if err != nil {
		return err
	}
	if essaiID == 0 && conducteurID == 0 && motoID == 0 {
		return domain.ErrNoAssociation
	}
	date, err := c.prompt.Date("Date de l'incident")
	if err != nil {
		return err
	}
	description, err := c.prompt.Text("Description")
	if err != nil {
		return err
	}
	severite, err := c.prompt.Choice("Sévérité", []string{domain.SeveriteFaible, domain.SeveriteMoyenne, domain.SeveriteElevee})
	if err != nil {
		return err
	}

	i, err := c.svc.Incidents.Enregistrer(ctx, &incident.EnregistrerRequest{
		EssaiID:      essaiID,
		ConducteurID: conducteurID,
		MotoID:       motoID,
		DateIncident: date,
		Description:  description,
		Severite:     severite,
	})
	if err != nil {
		return err
	}
	c.success("Incident enregistré : %s", describeIncident(i))
	return nil
}
