package analysis

import "topologia/pkg"

// UnknownOperation is returned for operation names outside the supported set.
const UnknownOperation = "Operación desconocida"

// SetOperation formats the expression for operation over the two literal
// operands. Nothing is evaluated.
func SetOperation(operation, a, b string) string {
	switch operation {
	case "union":
		return a + " ∪ " + b
	case "intersection":
		return a + " ∩ " + b
	case "difference":
		return a + ` \ ` + b
	case "complement":
		return "Complemento de " + a
	case "symmetric_difference":
		return a + " Δ " + b
	default:
		return UnknownOperation
	}
}

// Properties builds the property report of a space from its fixed flags.
func Properties(name string, props pkg.SpaceProperties) pkg.PropertiesResponse {
	return pkg.PropertiesResponse{
		IsConnected: props.Connected,
		IsCompact:   props.Compact,
		IsSeparable: props.Separable,
		IsHausdorff: props.Hausdorff,
		Description: "Propiedades de " + name,
	}
}
