// Package kernel provides specialized elementwise kernels for float64 columns.
//
// # Modes
//
//   - generic: no specialization, callers fall back to their own loops
//   - gonum:   gonum.org/v1/gonum/floats for add/sub/mul/div/add-const/scale
//   - fma:     gonum plus hardware fused multiply-add for fused products
//
// The default is gonum. Fused kernels round once, so their results can differ
// in the last bit from a separate multiply and add; fma is therefore only
// active when forced through UNITVEC_KERNEL=fma or Use, and only on CPUs
// that execute FMA in hardware. An override naming an unavailable mode is
// ignored.
//
// Every kernel reports whether it handled the call. A false result means the
// element type or the active mode is not specialized and the caller must run
// its generic path. Kernels never check lengths; callers pass slices that are
// already trimmed to a common length.
package kernel
