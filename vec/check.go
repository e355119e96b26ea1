//go:build !unitvec_nocheck

package vec

// checked enables length assertions on paired operations.
const checked = true
