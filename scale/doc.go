// Package scale computes the reference scales used to nondimensionalize
// adsorption data.
//
// Every raw quantity is divided by a reference scale before fitting:
//
//	f* = f / f_ref
//	θ  = q / q_ref
//	T* = T / T_ref
//
// By default each reference is the maximum of its raw sequence. For binary data
// the fugacity reference is the maximum across both components, so own and
// companion fugacities share a single scale. Explicit overrides take precedence
// over the defaults.
//
// # Usage
//
//	ref, err := scale.Resolve(scale.Reference{}, [][]float64{f}, q, T)
//	if err != nil {
//	    return err
//	}
//	fStar := ref.ScaleFugacity(f)
package scale
