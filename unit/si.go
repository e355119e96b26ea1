package unit

// None tags dimensionless quantities.
type None struct{}

// Meters tags lengths.
type Meters struct{}

// SquareMeters tags areas.
type SquareMeters struct{}

// Seconds tags durations.
type Seconds struct{}

// MetersPerSecond tags speeds.
type MetersPerSecond struct{}

// MetersPerSecondSquared tags accelerations.
type MetersPerSecondSquared struct{}

func (None) Symbol() string                   { return "" }
func (Meters) Symbol() string                 { return "m" }
func (SquareMeters) Symbol() string           { return "m²" }
func (Seconds) Symbol() string                { return "s" }
func (MetersPerSecond) Symbol() string        { return "m/s" }
func (MetersPerSecondSquared) Symbol() string { return "m/s²" }

func (Meters) Per(Seconds) MetersPerSecond                   { return MetersPerSecond{} }
func (MetersPerSecond) Times(Seconds) Meters                 { return Meters{} }
func (MetersPerSecond) Per(Seconds) MetersPerSecondSquared   { return MetersPerSecondSquared{} }
func (MetersPerSecondSquared) Times(Seconds) MetersPerSecond { return MetersPerSecond{} }
func (Meters) Times(Meters) SquareMeters                     { return SquareMeters{} }
