package constants

// Train Physics
const (
	// AirResistance is the quadratic drag coefficient
	// Terminal velocity is sqrt(force / AirResistance) cells per tick
	AirResistance = 1.0

	// DefaultTrainMass is the mass of the shipped train
	DefaultTrainMass = 5.0

	// DefaultTrainForce is the constant thrust of the shipped train
	DefaultTrainForce = 3.0
)
