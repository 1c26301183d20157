package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_ID_ReasksUntilValid(t *testing.T) {
	var out bytes.Buffer
	in := newInput("abc", "-1", "", "7")
	p := NewPrompter(in, &out)

	id, err := p.ID("ID de la moto")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, 3, strings.Count(out.String(), "Veuillez entrer un identifiant numérique valide."))
	assert.Len(t, in.prompts, 4)
	assert.Equal(t, "ID de la moto : ", in.prompts[0])
}

func TestPrompter_Optional(t *testing.T) {
	p := NewPrompter(newInput("", "", "", "12"), &bytes.Buffer{})

	id, err := p.OptionalID("ID du client")
	require.NoError(t, err)
	assert.Zero(t, id)

	n, err := p.OptionalInt("Seuil")
	require.NoError(t, err)
	assert.Nil(t, n)

	date, err := p.OptionalDate("Date de fin")
	require.NoError(t, err)
	assert.Nil(t, date)

	n, err = p.OptionalInt("Seuil")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 12, *n)
}

func TestPrompter_Date(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(newInput("02/01/2025", "2025-13-01", "2025-01-02"), &out)

	date, err := p.Date("Date de commande")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local), date)
	assert.Equal(t, 2, strings.Count(out.String(), "AAAA-MM-JJ"))
}

func TestPrompter_Amount(t *testing.T) {
	p := NewPrompter(newInput("-3", "12,50"), &bytes.Buffer{})

	amount, err := p.Amount("Coût")
	require.NoError(t, err)
	assert.Equal(t, 12.5, amount)
}

func TestPrompter_Choice(t *testing.T) {
	options := []string{"préventif", "curatif"}

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"par numéro", []string{"2"}, "curatif"},
		{"par libellé", []string{"PRÉVENTIF"}, "préventif"},
		{"hors liste puis valide", []string{"3", "autre", "1"}, "préventif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewPrompter(newInput(tt.lines...), &out).Choice("Type", options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "2. curatif")
		})
	}
}

func TestPrompter_Confirm(t *testing.T) {
	p := NewPrompter(newInput("peut-être", "oui", "N"), &bytes.Buffer{})

	yes, err := p.Confirm("Exporter ?")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := p.Confirm("Exporter ?")
	require.NoError(t, err)
	assert.False(t, no)
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(newInput("x"), &bytes.Buffer{})

	_, err := p.Int("Quantité", 0)
	assert.ErrorIs(t, err, ErrQuit)

	_, err = p.Text("Nom")
	assert.ErrorIs(t, err, ErrQuit)
}
