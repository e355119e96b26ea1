package unit

// Unit is implemented by zero-sized unit tags.
type Unit interface {
	// Symbol returns a display symbol, or "" for dimensionless quantities.
	Symbol() string
}

// Times is satisfied by a unit U for which U ⊗ B = C is defined.
type Times[B, C Unit] interface {
	Unit
	Times(B) C
}

// Per is satisfied by a unit U for which U ⊘ B = C is defined.
type Per[B, C Unit] interface {
	Unit
	Per(B) C
}

// SymbolOf returns the symbol of U without needing a value.
func SymbolOf[U Unit]() string {
	var u U
	return u.Symbol()
}
