// Package unitvec integrates point bodies stored as unit-checked columns.
//
// The heavy lifting lives in the subpackages:
//
//   - vec: structure-of-arrays containers (Vec1, Vec2) and elementwise zips
//   - unit: zero-sized unit tags and their composition rules
//   - typed: Typed[V, U], which pairs a container or scalar with a unit
//
// System ties them together. Positions, velocities and accelerations are
// kept as typed Vec2 columns, so every update in Step is checked at compile
// time: a velocity times a duration accumulates into a position and nothing
// else does.
//
// # Quick Start
//
//	sys, _ := unitvec.Kinematics[float64]().
//	    Parallelism(4).
//	    ShardSize(4096).
//	    Build()
//
//	sys.Spawn(0, 0, 1, 2)
//	sys.Accelerate(0, -9.81)
//
//	dt := typed.New[unit.Seconds](0.01)
//	for range 100 {
//	    if err := sys.Step(ctx, dt); err != nil {
//	        return err
//	    }
//	}
//
//	stats, _ := sys.Stats()
//	fmt.Println(stats.MeanSpeed)
//
// # Errors
//
// Container operations panic on shape mismatch because that is a programming
// error. System validates its inputs first and returns errors instead; shape
// failures surface as *ErrShapeMismatch, which unwraps to vec.ErrShapeMismatch.
package unitvec
