package vec

func addAssign[T Number](v *T, a T) { *v += a }
func subAssign[T Number](v *T, a T) { *v -= a }
func mulAssign[T Number](v *T, a T) { *v *= a }
func divAssign[T Number](v *T, a T) { *v /= a }

// T(a * b) rounds the product before the add so the compiler cannot emit an FMA.
func addMul[T Number](v *T, a, b T) { *v += T(a * b) }
func subMul[T Number](v *T, a, b T) { *v -= T(a * b) }
func addDiv[T Number](v *T, a, b T) { *v += a / b }
func subDiv[T Number](v *T, a, b T) { *v -= a / b }
