// Package export produit l'historique des commandes de pièces au format Excel.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/frontandrew/motofleet/internal/domain"
)

// SheetCommandes - nom de la feuille produite
const SheetCommandes = "Commandes"

var commandeHeaders = []string{
	"ID", "Pièce", "Date de commande", "Quantité", "Coût (€)",
	"Délai (jours)", "Livraison prévue", "Statut",
}

// CommandesXLSX écrit l'historique des commandes dans w
func CommandesXLSX(w io.Writer, commandes []*domain.CommandePiece) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetCommandes)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if f.GetSheetName(0) != SheetCommandes {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, header := range commandeHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetCommandes, cell, header); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetRowStyle(SheetCommandes, 1, 1, headerStyle)
	}

	for rowIndex, c := range commandes {
		row := rowIndex + 2

		var delai, livraison interface{}
		if c.DelaiLivraison() != nil {
			delai = *c.DelaiLivraison()
		}
		if date, ok := c.DateLivraisonPrevue(); ok {
			livraison = date.Format(time.DateOnly)
		}

		values := []interface{}{
			c.ID(),
			c.Piece().Nom(),
			c.DateCommande().Format(time.DateOnly),
			c.Quantite(),
			c.Cout(),
			delai,
			livraison,
			c.Statut(),
		}
		for colIndex, value := range values {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(colIndex+1, row)
			if err := f.SetCellValue(SheetCommandes, cell, value); err != nil {
				return err
			}
		}
	}

	_ = f.SetColWidth(SheetCommandes, "A", "H", 18)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// SaveCommandesXLSX crée le fichier (et ses répertoires) puis y écrit l'historique
func SaveCommandesXLSX(path string, commandes []*domain.CommandePiece) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	return CommandesXLSX(file, commandes)
}

// DefaultFilename - nom horodaté d'un export
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("commandes_%s.xlsx", now.Format("20060102_150405"))
}
