package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"topologia/internal/analysis"
	"topologia/pkg"
)

func TestOpenClosed_RealLine(t *testing.T) {
	cases := []struct {
		subset       string
		open, closed bool
	}{
		{"(0,1)", true, false},
		{"[0,1]", false, true},
		{"[0,1)", false, false},
		{"(0,1]", false, false},
		{"(2,5)", true, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.open, analysis.IsOpen(analysis.RealLine, tc.subset), tc.subset)
		assert.Equal(t, tc.closed, analysis.IsClosed(analysis.RealLine, tc.subset), tc.subset)
	}
}

func TestOpenClosed_OtherSpaces(t *testing.T) {
	assert.True(t, analysis.IsOpen(analysis.Discrete, "{7}"))
	assert.True(t, analysis.IsClosed(analysis.Discrete, "{7}"))

	assert.True(t, analysis.IsOpen(analysis.Indiscrete, "∅"))
	assert.True(t, analysis.IsClosed(analysis.Indiscrete, "{1,2,3,4}"))
	assert.False(t, analysis.IsOpen(analysis.Indiscrete, "{1}"))
	assert.False(t, analysis.IsClosed(analysis.Indiscrete, "{1,2}"))

	assert.True(t, analysis.IsOpen("cofinite", "anything"))
	assert.True(t, analysis.IsClosed("euclidean_plane", "anything"))
}

func TestInteriorClosure(t *testing.T) {
	for _, s := range []string{"(0,1)", "[0,1]", "[0,1)", "(0,1]"} {
		assert.Equal(t, "(0,1)", analysis.Interior(analysis.RealLine, s))
		assert.Equal(t, "[0,1]", analysis.Closure(analysis.RealLine, s))
	}

	assert.Equal(t, "Interior = {(2,3)} si es abierto, ∅ en caso contrario", analysis.Interior(analysis.RealLine, "(2,3)"))
	assert.Equal(t, "Clausura = {(2,3)} si es cerrado", analysis.Closure(analysis.RealLine, "(2,3)"))
	assert.Equal(t, "El interior depende de la topología específica", analysis.Interior(analysis.Discrete, "{1}"))
	assert.Equal(t, "La clausura depende de la topología específica", analysis.Closure(analysis.Discrete, "{1}"))
}

func TestBoundary(t *testing.T) {
	assert.Equal(t, "{0, 1}", analysis.Boundary(analysis.RealLine, "(0,1)"))
	assert.Equal(t, "{0, 1}", analysis.Boundary(analysis.RealLine, "[0,1)"))
	assert.Equal(t, "Frontera = clausura - interior", analysis.Boundary(analysis.RealLine, "[0,1]"))
	assert.Equal(t, "Frontera = clausura - interior", analysis.Boundary(analysis.RealLine, "(2,3)"))
	assert.Equal(t, "La frontera depende de la topología específica", analysis.Boundary("cofinite", "(0,1)"))
}

func TestLimitPoints(t *testing.T) {
	assert.Equal(t, "[0,1] (clausura del intervalo)", analysis.LimitPoints(analysis.RealLine, "(0,1)"))
	assert.Equal(t, "[0,1] (clausura del intervalo)", analysis.LimitPoints(analysis.RealLine, "Ejemplo"))
	assert.Equal(t, "Los puntos límite son los puntos de la clausura menos los puntos aislados", analysis.LimitPoints(analysis.RealLine, "(2,3)"))
	assert.Equal(t, "Los puntos límite dependen de la topología", analysis.LimitPoints(analysis.Indiscrete, "{1}"))
}

func TestSubset(t *testing.T) {
	got := analysis.Subset(analysis.RealLine, "Línea Real (ℝ)", "[0,1)")
	assert.Equal(t, pkg.SubsetAnalysis{
		IsOpen:      false,
		IsClosed:    false,
		Interior:    "(0,1)",
		Closure:     "[0,1]",
		Boundary:    "{0, 1}",
		LimitPoints: "[0,1] (clausura del intervalo)",
		Description: "Análisis del conjunto [0,1) en Línea Real (ℝ)",
	}, got)
}

func TestMissingSubset(t *testing.T) {
	got := analysis.MissingSubset(analysis.RealLine, "Línea Real (ℝ)")
	assert.False(t, got.IsOpen)
	assert.False(t, got.IsClosed)
	assert.Equal(t, analysis.Undetermined, got.Interior)
	assert.Equal(t, analysis.Undetermined, got.Closure)
	assert.Equal(t, analysis.Undetermined, got.Boundary)
	assert.Equal(t, analysis.Undetermined, got.LimitPoints)

	got = analysis.MissingSubset(analysis.Discrete, "Topología Discreta")
	assert.True(t, got.IsOpen)
	assert.Equal(t, "El interior depende de la topología específica", got.Interior)
}

func TestSetOperation(t *testing.T) {
	assert.Equal(t, "A ∪ B", analysis.SetOperation("union", "A", "B"))
	assert.Equal(t, "A ∩ B", analysis.SetOperation("intersection", "A", "B"))
	assert.Equal(t, `A \ B`, analysis.SetOperation("difference", "A", "B"))
	assert.Equal(t, "Complemento de A", analysis.SetOperation("complement", "A", "B"))
	assert.Equal(t, "A Δ B", analysis.SetOperation("symmetric_difference", "A", "B"))
	assert.Equal(t, analysis.UnknownOperation, analysis.SetOperation("product", "A", "B"))
}

func TestProperties(t *testing.T) {
	got := analysis.Properties("Topología Cofinita", pkg.SpaceProperties{Connected: true, Separable: true})
	assert.True(t, got.IsConnected)
	assert.False(t, got.IsCompact)
	assert.True(t, got.IsSeparable)
	assert.False(t, got.IsHausdorff)
	assert.Equal(t, "Propiedades de Topología Cofinita", got.Description)
}
