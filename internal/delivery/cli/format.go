package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
)

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}

func describeClient(c *domain.Client) string {
	s := fmt.Sprintf("#%d %s (%s)", c.ID(), c.Nom(), c.Type())
	if c.ContactInfo() != "" {
		s += " - " + c.ContactInfo()
	}
	return s
}

func describeModele(m *domain.ModeleMoto) string {
	return fmt.Sprintf("#%d %s - entretien tous les %d km / %d an(s)", m.ID(), m.Nom(), m.IntervalleKm(), m.IntervalleAnnees())
}

func describeMoto(m *domain.Moto) string {
	s := fmt.Sprintf("#%d %s %s - %d km - %s - achetée le %s",
		m.ID(), m.Modele().Nom(), m.NumeroSerie(), m.KilometrageActuel(), m.Statut(), formatDate(m.DateAchat()))
	if m.Client() != nil {
		s += " - client " + m.Client().Nom()
	}
	return s
}

func describeEntretien(e *domain.Entretien) string {
	return fmt.Sprintf("#%d %s moto #%d - prévu le %s à %d km - réalisé le %s - %.2f € - %s",
		e.ID(), e.TypeEntretien(), e.Moto().ID(), formatOptionalDate(e.DatePlanifiee()), e.Kilometrage(),
		formatOptionalDate(e.DateRealisee()), e.Cout(), e.Description())
}

func describePanne(p *domain.Panne) string {
	var refs []string
	if p.Moto() != nil {
		refs = append(refs, fmt.Sprintf("moto #%d", p.Moto().ID()))
	}
	if p.Entretien() != nil {
		refs = append(refs, fmt.Sprintf("entretien #%d", p.Entretien().ID()))
	}
	garantie := "hors garantie"
	if p.SousGarantie() {
		garantie = "sous garantie"
	}
	return fmt.Sprintf("#%d %s - %s - %s - %.2f € - %s",
		p.ID(), formatDate(p.DateEvent()), strings.Join(refs, ", "), p.Description(), p.Cout(), garantie)
}

func describePiece(p *domain.Piece) string {
	s := fmt.Sprintf("#%d %s - %.2f €", p.ID(), p.Nom(), p.Prix())
	if p.Description() != "" {
		s += " - " + p.Description()
	}
	return s
}

func describeStock(s *domain.Stock) string {
	line := fmt.Sprintf("#%d %s - quantité %d - seuil %d", s.ID(), s.Piece().Nom(), s.Quantite(), s.SeuilAlerte())
	if s.EstBas() {
		line += " - STOCK BAS"
	}
	return line
}

func describeCommande(c *domain.CommandePiece) string {
	s := fmt.Sprintf("#%d %s x%d - commandée le %s - %.2f € - %s",
		c.ID(), c.Piece().Nom(), c.Quantite(), formatDate(c.DateCommande()), c.Cout(), c.Statut())
	if date, ok := c.DateLivraisonPrevue(); ok {
		s += " - livraison prévue le " + formatDate(date)
	}
	return s
}

func describeConducteur(c *domain.Conducteur) string {
	s := fmt.Sprintf("#%d %s - permis %s - %d an(s) d'expérience", c.ID(), c.Nom(), c.Permis(), c.ExperienceAnnees())
	if c.ContactInfo() != "" {
		s += " - " + c.ContactInfo()
	}
	return s
}

func describeEssai(e *domain.Essai) string {
	etat := "en cours"
	if e.EstTermine() {
		etat = "terminé le " + formatOptionalDate(e.DateFin())
	}
	return fmt.Sprintf("#%d moto #%d - conducteur %s - début %s - %s - %d km",
		e.ID(), e.Moto().ID(), e.Conducteur().Nom(), formatDate(e.DateDebut()), etat, e.KilometrageParcouru())
}

func describeIncident(i *domain.Incident) string {
	var refs []string
	if i.Essai() != nil {
		refs = append(refs, fmt.Sprintf("essai #%d", i.Essai().ID()))
	}
	if i.Conducteur() != nil {
		refs = append(refs, "conducteur "+i.Conducteur().Nom())
	}
	if i.Moto() != nil {
		refs = append(refs, fmt.Sprintf("moto #%d", i.Moto().ID()))
	}
	return fmt.Sprintf("#%d %s - %s - %s - %s",
		i.ID(), formatDate(i.DateIncident()), strings.Join(refs, ", "), i.Severite(), i.Description())
}

func describeNotification(n *domain.Notification) string {
	etat := "non lue"
	if n.EstLu() {
		etat = "lue"
	}
	return fmt.Sprintf("#%d [%s] %s - %s - %s",
		n.ID(), etat, formatDate(n.DateNotification()), n.Client().Nom(), n.Message())
}
