package main

// Version is reported by the info command.
const version = "0.1.0"

// Process exit codes
const (
	exitFailure = 1
)

// Report formatting
const (
	nameColumnWidth = 12 // Width of the sequence name column
	statsPrecision  = 4  // Decimals printed for statistics
)
