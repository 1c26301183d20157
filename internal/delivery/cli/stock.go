package cli

import (
	"context"
	"path/filepath"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/infrastructure/export"
	"github.com/frontandrew/motofleet/internal/usecase/commande"
	"github.com/frontandrew/motofleet/internal/usecase/stock"
)

func (c *CLI) gererStock(ctx context.Context) error {
	pieceID, err := c.prompt.ID("ID de la pièce détachée")
	if err != nil {
		return err
	}
	quantite, err := c.prompt.Int("Nouvelle quantité en stock", 0)
	if err != nil {
		return err
	}
	seuil, err := c.prompt.OptionalInt("Seuil d'alerte")
	if err != nil {
		return err
	}

	s, err := c.svc.Stock.Gerer(ctx, &stock.GererRequest{PieceID: pieceID, Quantite: quantite, SeuilAlerte: seuil})
	if err != nil {
		return err
	}
	c.success("Stock mis à jour pour la pièce %s.", s.Piece().Nom())
	c.info("📦 Quantité actuelle : %d", s.Quantite())
	c.info("🚨 Seuil d'alerte : %d", s.SeuilAlerte())
	return nil
}

func (c *CLI) genererAlerteStock(ctx context.Context) error {
	notifications, err := c.svc.Stock.GenererAlerteStockBas(ctx)
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		c.info("Aucun stock sous le seuil d'alerte.")
		return nil
	}
	for _, n := range notifications {
		warnColor.Fprintln(c.out, "🚨 "+n.Message())
	}
	c.success("%d alerte(s) générée(s).", len(notifications))
	return nil
}

func (c *CLI) passerCommande(ctx context.Context) error {
	pieceID, err := c.prompt.ID("ID de la pièce à commander")
	if err != nil {
		return err
	}
	date, err := c.prompt.Date("Date de commande")
	if err != nil {
		return err
	}
	quantite, err := c.prompt.Int("Quantité", 1)
	if err != nil {
		return err
	}
	cout, err := c.prompt.Amount("Coût total (€)")
	if err != nil {
		return err
	}
	delai, err := c.prompt.OptionalInt("Délai de livraison (jours)")
	if err != nil {
		return err
	}
	statut, err := c.prompt.Choice("Statut", []string{domain.CommandeEnCours, domain.CommandeLivree, domain.CommandeAnnulee})
	if err != nil {
		return err
	}

	cmd, err := c.svc.Commandes.Passer(ctx, &commande.PasserRequest{
		PieceID:        pieceID,
		DateCommande:   date,
		Quantite:       quantite,
		Cout:           cout,
		DelaiLivraison: delai,
		Statut:         statut,
	})
	if err != nil {
		return err
	}
	c.success("Commande %d passée : %s", cmd.ID(), describeCommande(cmd))
	return nil
}

func (c *CLI) consulterHistorique(ctx context.Context) error {
	pieceID, err := c.prompt.OptionalID("ID de la pièce (vide pour toutes)")
	if err != nil {
		return err
	}

	commandes, err := c.svc.Commandes.Historique(ctx, &commande.HistoriqueRequest{PieceID: pieceID})
	if err != nil {
		return err
	}
	if len(commandes) == 0 {
		c.info("Aucune commande trouvée.")
		return nil
	}
	for _, cmd := range commandes {
		c.info("%s", describeCommande(cmd))
	}

	exporter, err := c.prompt.Confirm("Exporter l'historique au format Excel ?")
	if err != nil || !exporter {
		return err
	}
	path := filepath.Join(c.exportDir, export.DefaultFilename(c.now()))
	if err := export.SaveCommandesXLSX(path, commandes); err != nil {
		return err
	}
	c.success("Historique exporté dans %s", path)
	return nil
}

func (c *CLI) gererPieces(ctx context.Context) error {
	return c.manage(ctx, map[string]func(context.Context) error{
		actionCreer:        func(ctx context.Context) error { return c.saisirPiece(ctx, 0) },
		actionModifier:     c.modifierPiece,
		actionLister:       c.listerPieces,
		"Lister les stocks": c.listerStocks,
	}, actionCreer, actionModifier, actionLister, "Lister les stocks")
}

func (c *CLI) modifierPiece(ctx context.Context) error {
	id, err := c.prompt.ID("ID de la pièce")
	if err != nil {
		return err
	}
	return c.saisirPiece(ctx, id)
}

func (c *CLI) saisirPiece(ctx context.Context, id int64) error {
	nom, err := c.prompt.Text("Nom")
	if err != nil {
		return err
	}
	description, err := c.prompt.OptionalText("Description")
	if err != nil {
		return err
	}
	prix, err := c.prompt.Amount("Prix unitaire (€)")
	if err != nil {
		return err
	}

	p, err := c.svc.Stock.GererPiece(ctx, &stock.PieceRequest{ID: id, Nom: nom, Description: description, Prix: prix})
	if err != nil {
		return err
	}
	c.success("Pièce enregistrée : %s", describePiece(p))
	return nil
}

func (c *CLI) listerPieces(ctx context.Context) error {
	pieces, err := c.svc.Stock.ListPieces(ctx)
	if err != nil {
		return err
	}
	if len(pieces) == 0 {
		c.info("Aucune pièce enregistrée.")
	}
	for _, p := range pieces {
		c.info("%s", describePiece(p))
	}
	return nil
}

func (c *CLI) listerStocks(ctx context.Context) error {
	stocks, err := c.svc.Stock.ListStocks(ctx)
	if err != nil {
		return err
	}
	if len(stocks) == 0 {
		c.info("Aucun stock enregistré.")
	}
	for _, s := range stocks {
		c.info("%s", describeStock(s))
	}
	return nil
}
