package main

// Default command-line values
const (
	defaultSamples = 50 // Interpolation intervals when no argument is given
	maxArgs        = 1  // Optional sample count
)

// Demo curve parameters
const (
	demoWeight = 0.1 // Uniform weight of the built-in example
)

// Output formatting
const (
	coordPrecision = 4  // Decimal places for coordinates and parameters
	labelWidth     = 8  // Right-aligned width of the "Index"/"U" labels
	fieldWidth     = 12 // Right-aligned width of the point label and weight
)
