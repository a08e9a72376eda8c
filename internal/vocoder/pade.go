package vocoder

// pade is the 21-entry Padé-approximant coefficient triangle, indexed by
// pd*(pd+1)/2 for pd in 1..5 (spec.md §4.G "Constants").
//
// Grounded on original_source/src/vocoder/mlsa.rs / mlsa/mod.rs.
var pade = [21]float64{
	1.00000000000, 1.00000000000, 0.00000000000, 1.00000000000, 0.00000000000,
	0.00000000000, 1.00000000000, 0.00000000000, 0.00000000000, 0.00000000000,
	1.00000000000, 0.49992730000, 0.10670050000, 0.01170221000, 0.00056562790,
	1.00000000000, 0.49993910000, 0.11070980000, 0.01369984000, 0.00095648530,
	0.00003041721,
}

// defaultPD is the reference's default Padé order, giving N=pd+1=6.
const defaultPD = 5
