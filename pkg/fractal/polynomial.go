package fractal

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Polynomial is a complex polynomial stored as coefficients from the highest
// order term down: Polynomial{1, 0, -1} is z²-1. It must not be empty.
type Polynomial []complex128

// Order returns the order of the polynomial
func (p Polynomial) Order() int {
	return len(p) - 1
}

// Multiply returns the product of two polynomials
func (p Polynomial) Multiply(q Polynomial) Polynomial {
	result := make(Polynomial, p.Order()+q.Order()+1)
	for i, pc := range p {
		for j, qc := range q {
			result[i+j] += pc * qc
		}
	}
	return result
}

// Derive returns the first derivative of the polynomial
func (p Polynomial) Derive() Polynomial {
	order := p.Order()
	result := make(Polynomial, order)
	for i := 0; i < order; i++ {
		result[i] = p[i] * complex(float64(order-i), 0)
	}
	return result
}

// Apply evaluates the polynomial at z using Horner's scheme
func (p Polynomial) Apply(z complex128) complex128 {
	result := p[0]
	for _, coefficient := range p[1:] {
		result = result*z + coefficient
	}
	return result
}

// String renders the polynomial in the form (c)z^n+...+(c)
func (p Polynomial) String() string {
	var sb strings.Builder
	order := p.Order()
	for i, coefficient := range p {
		if coefficient == 0 && len(p) > 1 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("+")
		}
		switch power := order - i; power {
		case 0:
			fmt.Fprintf(&sb, "(%v)", coefficient)
		case 1:
			fmt.Fprintf(&sb, "(%v)z", coefficient)
		default:
			fmt.Fprintf(&sb, "(%v)z^%d", coefficient, power)
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("(0)")
	}
	return sb.String()
}

// RootedPolynomial is a complex polynomial in root form:
// (z-root[0])·(z-root[1])·...·(z-root[n-1])
type RootedPolynomial struct {
	roots []complex128
}

// NewRootedPolynomial creates a rooted polynomial; at least one root is
// required
func NewRootedPolynomial(roots ...complex128) (RootedPolynomial, error) {
	if len(roots) == 0 {
		return RootedPolynomial{}, fmt.Errorf("fractal: rooted polynomial needs at least one root")
	}
	return RootedPolynomial{roots: append([]complex128(nil), roots...)}, nil
}

// Roots returns a copy of the roots
func (rp RootedPolynomial) Roots() []complex128 {
	return append([]complex128(nil), rp.roots...)
}

// Apply evaluates the product of the (z - root) terms at z
func (rp RootedPolynomial) Apply(z complex128) complex128 {
	result := complex(1, 0)
	for _, root := range rp.roots {
		result *= z - root
	}
	return result
}

// Polynomial expands the root form into coefficient form
func (rp RootedPolynomial) Polynomial() Polynomial {
	result := Polynomial{1, -rp.roots[0]}
	for _, root := range rp.roots[1:] {
		result = result.Multiply(Polynomial{1, -root})
	}
	return result
}

// IndexOfClosestRoot returns the index of the root closest to z within the
// given threshold, or -1 when no root is close enough
func (rp RootedPolynomial) IndexOfClosestRoot(z complex128, threshold float64) int {
	index := -1
	minDelta := math.Inf(1)
	for i, root := range rp.roots {
		if delta := cmplx.Abs(root - z); delta <= threshold && delta < minDelta {
			index = i
			minDelta = delta
		}
	}
	return index
}

// String renders the polynomial as (z-(root))·... terms
func (rp RootedPolynomial) String() string {
	var sb strings.Builder
	for _, root := range rp.roots {
		fmt.Fprintf(&sb, "(z-(%v))", root)
	}
	return sb.String()
}
