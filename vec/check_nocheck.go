//go:build unitvec_nocheck

package vec

const checked = false
