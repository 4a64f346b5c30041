package hopfield

// Defaults for Options. The values mirror the reference parameterization of
// the network: a 1000-iteration budget, an absolute energy threshold of 10,
// and a plateau stop once the iteration-to-iteration change drops below 1
// after the first 10 iterations.
const (
	// DefaultMaxIterations bounds the training loop.
	DefaultMaxIterations = 1000

	// DefaultEnergyThreshold is the absolute energy below which training stops.
	DefaultEnergyThreshold = 10.0

	// DefaultStartPenalty is the fixed large penalty charged per violated
	// start-point check, independent of the caller-configurable A/B/C/D
	// weights. It is an architectural constant of the network, surfaced here
	// as a named, overridable option rather than a buried magic number.
	DefaultStartPenalty = 1000.0

	// DefaultPlateauAfter is the number of iterations that must elapse before
	// the plateau stop is considered.
	DefaultPlateauAfter = 10

	// DefaultPlateauDelta is the |ΔE| below which two consecutive energies
	// count as a plateau.
	DefaultPlateauDelta = 1.0
)

// Options configures a Solver.
//
// Zero-value policy: StartPenalty, PlateauAfter, PlateauDelta and Seed treat 0
// as "use the default" (matching the seed-0 convention used across hoptsp).
// MaxIterations and EnergyThreshold are taken verbatim — MaxIterations == 0 is
// the meaningful boundary case "decode the untrained initial state" and must
// not be silently promoted to the default budget.
//
// Example:
//
//	opts := hopfield.DefaultOptions()
//	opts.Seed = 42            // reproduce one exact trajectory
//	opts.MaxIterations = 5000 // give a stubborn instance more budget
type Options struct {
	// MaxIterations is the training budget; ≥ 0. 0 means "no training":
	// Train decodes the initial state and returns an empty trace.
	MaxIterations int

	// EnergyThreshold stops training once total energy falls strictly below
	// it. Must be finite.
	EnergyThreshold float64

	// StartPenalty is charged per violated start-point check in the energy
	// function; ≥ 0, 0 ⇒ DefaultStartPenalty.
	StartPenalty float64

	// PlateauAfter is the iteration count after which the plateau stop may
	// fire; ≥ 0, 0 ⇒ DefaultPlateauAfter.
	PlateauAfter int

	// PlateauDelta is the |ΔE| plateau tolerance; ≥ 0, 0 ⇒ DefaultPlateauDelta.
	PlateauDelta float64

	// Seed seeds the private random source used for initialization and cell
	// selection. 0 ⇒ a fixed default seed, so the zero value is still fully
	// deterministic.
	Seed int64
}

// DefaultOptions returns the canonical configuration: 1000 iterations,
// threshold 10, plateau |ΔE| < 1 after 10 iterations, deterministic default
// seed.
func DefaultOptions() Options {
	return Options{
		MaxIterations:   DefaultMaxIterations,
		EnergyThreshold: DefaultEnergyThreshold,
		StartPenalty:    DefaultStartPenalty,
		PlateauAfter:    DefaultPlateauAfter,
		PlateauDelta:    DefaultPlateauDelta,
		Seed:            0,
	}
}
