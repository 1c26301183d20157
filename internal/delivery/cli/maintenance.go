package cli

import (
	"context"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/usecase/entretien"
	"github.com/frontandrew/motofleet/internal/usecase/panne"
)

func (c *CLI) planifierEntretien(ctx context.Context) error {
	motoID, err := c.prompt.ID("ID de la moto")
	if err != nil {
		return err
	}
	typ, err := c.prompt.Choice("Type d'entretien", []string{domain.EntretienPreventif, domain.EntretienCuratif})
	if err != nil {
		return err
	}

	req := &entretien.PlanifierRequest{MotoID: motoID, TypeEntretien: typ}
	if typ == domain.EntretienCuratif {
		date, err := c.prompt.Date("Date prévue")
		if err != nil {
			return err
		}
		km, err := c.prompt.Int("Kilométrage prévu", 0)
		if err != nil {
			return err
		}
		req.DatePlanifiee = &date
		req.Kilometrage = &km
	}

	e, err := c.svc.Entretiens.Planifier(ctx, req)
	if err != nil {
		return err
	}
	c.success("Entretien planifié (ID %d) pour le %s à %d km.", e.ID(), formatOptionalDate(e.DatePlanifiee()), e.Kilometrage())
	return nil
}

func (c *CLI) envoyerRappels(ctx context.Context) error {
	notifications, err := c.svc.Entretiens.EnvoyerRappels(ctx)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		c.info("Aucun entretien à rappeler.")
		return nil
	}
	for _, n := range notifications {
		c.info("📨 %s : %s", n.Client().Nom(), n.Message())
	}
	c.success("%d rappel(s) envoyé(s).", len(notifications))
	return nil
}

func (c *CLI) enregistrerEntretien(ctx context.Context) error {
	id, err := c.prompt.ID("ID de l'entretien")
	if err != nil {
		return err
	}
	date, err := c.prompt.Date("Date de réalisation")
	if err != nil {
		return err
	}
	cout, err := c.prompt.Amount("Coût (€)")
	if err != nil {
		return err
	}
	description, err := c.prompt.OptionalText("Description")
	if err != nil {
		return err
	}
	km, err := c.prompt.OptionalInt("Kilométrage relevé")
	if err != nil {
		return err
	}

	e, err := c.svc.Entretiens.Enregistrer(ctx, &entretien.EnregistrerRequest{
		EntretienID:  id,
		DateRealisee: date,
		Cout:         cout,
		Description:  description,
		Kilometrage:  km,
	})
	if err != nil {
		return err
	}
	c.success("Entretien %d enregistré comme réalisé le %s.", e.ID(), formatOptionalDate(e.DateRealisee()))
	return nil
}

func (c *CLI) enregistrerPanne(ctx context.Context) error {
	motoID, err := c.prompt.OptionalID("ID de la moto")
	if err != nil {
		return err
	}
	entretienID, err := c.prompt.OptionalID("ID de l'entretien associé")
	if err != nil {
		return err
	}
	if motoID == 0 && entretienID == 0 {
		return domain.ErrNoAssociation
	}
	date, err := c.prompt.Date("Date de la panne")
	if err != nil {
		return err
	}
	description, err := c.prompt.Text("Description")
	if err != nil {
		return err
	}
	cout, err := c.prompt.Amount("Coût de réparation (€)")
	if err != nil {
		return err
	}
	garantie, err := c.prompt.Confirm("Sous garantie ?")
	if err != nil {
		return err
	}

	p, err := c.svc.Pannes.Enregistrer(ctx, &panne.EnregistrerRequest{
		MotoID:       motoID,
		EntretienID:  entretienID,
		DateEvent:    date,
		Description:  description,
		Cout:         cout,
		SousGarantie: garantie,
	})
	if err != nil {
		return err
	}
	c.success("Panne enregistrée (ID %d).", p.ID())
	return nil
}
