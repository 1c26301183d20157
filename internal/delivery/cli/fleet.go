package cli

import (
	"context"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/usecase/client"
	"github.com/frontandrew/motofleet/internal/usecase/moto"
)

func (c *CLI) gererClients(ctx context.Context) error {
	return c.manage(ctx, map[string]func(context.Context) error{
		actionCreer:     func(ctx context.Context) error { return c.saisirClient(ctx, 0) },
		actionModifier:  c.modifierClient,
		actionLister:    c.listerClients,
		actionSupprimer: c.supprimerClient,
	}, actionCreer, actionModifier, actionLister, actionSupprimer)
}

func (c *CLI) modifierClient(ctx context.Context) error {
	id, err := c.prompt.ID("ID du client")
	if err != nil {
		return err
	}
	return c.saisirClient(ctx, id)
}

func (c *CLI) saisirClient(ctx context.Context, id int64) error {
	nom, err := c.prompt.Text("Nom")
	if err != nil {
		return err
	}
	typ, err := c.prompt.Text("Type (entreprise, concessionnaire, particulier...)")
	if err != nil {
		return err
	}
	contact, err := c.prompt.OptionalText("Contact")
	if err != nil {
		return err
	}

	cl, err := c.svc.Clients.Gerer(ctx, &client.GererRequest{ID: id, Nom: nom, Type: typ, ContactInfo: contact})
	if err != nil {
		return err
	}
	c.success("Client enregistré : %s", describeClient(cl))
	return nil
}

func (c *CLI) listerClients(ctx context.Context) error {
	clients, err := c.svc.Clients.List(ctx)
	if err != nil {
		return err
	}
	if len(clients) == 0 {
		c.info("Aucun client enregistré.")
	}
	for _, cl := range clients {
		c.info("%s", describeClient(cl))
	}
	return nil
}

func (c *CLI) supprimerClient(ctx context.Context) error {
	id, err := c.prompt.ID("ID du client")
	if err != nil {
		return err
	}
	if err := c.svc.Clients.Delete(ctx, id); err != nil {
		return err
	}
	c.success("Client %d supprimé.", id)
	return nil
}

func (c *CLI) gererModeles(ctx context.Context) error {
	return c.manage(ctx, map[string]func(context.Context) error{
		actionCreer:     func(ctx context.Context) error { return c.saisirModele(ctx, 0) },
		actionModifier:  c.modifierModele,
		actionLister:    c.listerModeles,
		actionSupprimer: c.supprimerModele,
	}, actionCreer, actionModifier, actionLister, actionSupprimer)
}

func (c *CLI) modifierModele(ctx context.Context) error {
	id, err := c.prompt.ID("ID du modèle")
	if err != nil {
		return err
	}
	return c.saisirModele(ctx, id)
}

func (c *CLI) saisirModele(ctx context.Context, id int64) error {
	nom, err := c.prompt.Text("Nom du modèle")
	if err != nil {
		return err
	}
	km, err := c.prompt.OptionalInt("Intervalle d'entretien en km")
	if err != nil {
		return err
	}
	annees, err := c.prompt.OptionalInt("Intervalle d'entretien en années")
	if err != nil {
		return err
	}

	m, err := c.svc.Motos.GererModele(ctx, &moto.ModeleRequest{ID: id, Nom: nom, IntervalleKm: km, IntervalleAnnees: annees})
	if err != nil {
		return err
	}
	c.success("Modèle enregistré : %s", describeModele(m))
	return nil
}

func (c *CLI) listerModeles(ctx context.Context) error {
	modeles, err := c.svc.Motos.ListModeles(ctx)
	if err != nil {
		return err
	}
	if len(modeles) == 0 {
		c.info("Aucun modèle enregistré.")
	}
	for _, m := range modeles {
		c.info("%s", describeModele(m))
	}
	return nil
}

func (c *CLI) supprimerModele(ctx context.Context) error {
	id, err := c.prompt.ID("ID du modèle")
	if err != nil {
		return err
	}
	if err := c.svc.Motos.DeleteModele(ctx, id); err != nil {
		return err
	}
	c.success("Modèle %d supprimé.", id)
	return nil
}

func (c *CLI) gererMotos(ctx context.Context) error {
	return c.manage(ctx, map[string]func(context.Context) error{
		actionCreer:     func(ctx context.Context) error { return c.saisirMoto(ctx, 0) },
		actionModifier:  c.modifierMoto,
		actionLister:    c.listerMotos,
		actionSupprimer: c.supprimerMoto,
	}, actionCreer, actionModifier, actionLister, actionSupprimer)
}

func (c *CLI) modifierMoto(ctx context.Context) error {
	id, err := c.prompt.ID("ID de la moto")
	if err != nil {
		return err
	}
	return c.saisirMoto(ctx, id)
}

// saisirMoto: le numéro de série et la date d'achat ne sont demandés qu'à la création
func (c *CLI) saisirMoto(ctx context.Context, id int64) error {
	req := &moto.GererRequest{ID: id}

	var err error
	if req.ModeleID, err = c.prompt.ID("ID du modèle"); err != nil {
		return err
	}
	if req.ClientID, err = c.prompt.OptionalID("ID du client"); err != nil {
		return err
	}
	if id == 0 {
		if req.NumeroSerie, err = c.prompt.Text("Numéro de série"); err != nil {
			return err
		}
		if req.DateAchat, err = c.prompt.OptionalDate("Date d'achat"); err != nil {
			return err
		}
	} else {
		stored, err := c.svc.Motos.Get(ctx, id)
		if err != nil {
			return err
		}
		req.NumeroSerie = stored.NumeroSerie()
	}
	if req.KilometrageActuel, err = c.prompt.OptionalInt("Kilométrage actuel"); err != nil {
		return err
	}
	if req.Statut, err = c.prompt.Choice("Statut", []string{domain.StatutDisponible, domain.StatutEnEntretien, domain.StatutEnEssai}); err != nil {
		return err
	}

	m, err := c.svc.Motos.Gerer(ctx, req)
	if err != nil {
		return err
	}
	c.success("Moto enregistrée : %s", describeMoto(m))
	return nil
}

func (c *CLI) listerMotos(ctx context.Context) error {
	motos, err := c.svc.Motos.List(ctx)
	if err != nil {
		return err
	}
	if len(motos) == 0 {
		c.info("Aucune moto enregistrée.")
	}
	for _, m := range motos {
		c.info("%s", describeMoto(m))
	}
	return nil
}

func (c *CLI) supprimerMoto(ctx context.Context) error {
	id, err := c.prompt.ID("ID de la moto")
	if err != nil {
		return err
	}
	if err := c.svc.Motos.Delete(ctx, id); err != nil {
		return err
	}
	c.success("Moto %d supprimée.", id)
	return nil
}
