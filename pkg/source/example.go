package source

// Example returns the bundled example dataset: a small Nordic backbone with
// access devices hanging off sweden-pe1. It is symmetric and internally
// consistent - every referenced neighbor is itself a key - so traversals
// never hit [ErrUnknownDevice].
//
// The shape covers the interesting cases: norway-pe1 has a single backbone
// peer (the redundancy rule demotes it to a dependent of sweden-pe1),
// finland-pe1 has two (it stays a pure backbone peer), and the sweden-a*
// access chain is several hops deep with bidirectional links throughout.
func Example() *Static {
	return NewStatic(map[string][]string{
		"sweden-pe1.example.com": {
			"norway-pe1.example.com",
			"finland-pe1.example.com",
			"denmark-pe2.example.com",
			"sweden-a1.example.com",
			"sweden-a2.example.com",
			"sweden-a4.example.com",
		},
		"norway-pe1.example.com": {
			"sweden-pe1.example.com",
		},
		"finland-pe1.example.com": {
			"sweden-pe1.example.com",
			"greenland-pe1.example.com",
		},
		"greenland-pe1.example.com": {
			"finland-pe1.example.com",
		},
		"denmark-pe2.example.com": {
			"sweden-pe1.example.com",
			"denmark-a1.example.com",
		},
		"denmark-a1.example.com": {
			"denmark-pe2.example.com",
		},
		"sweden-a1.example.com": {
			"sweden-pe1.example.com",
			"sweden-a3.example.com",
			"sweden-a5.example.com",
		},
		"sweden-a2.example.com": {"sweden-pe1.example.com", "sweden-a6.example.com"},
		"sweden-a3.example.com": {"sweden-a1.example.com", "sweden-a7.example.com"},
		"sweden-a4.example.com": {"sweden-pe1.example.com"},
		"sweden-a5.example.com": {"sweden-a1.example.com"},
		"sweden-a6.example.com": {"sweden-a2.example.com"},
		"sweden-a7.example.com": {"sweden-a3.example.com"},
	})
}
