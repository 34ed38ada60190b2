package genid

// Preconditions of the unchecked mutators. debugAssertions is a constant, so
// in normal builds these bodies compile away.

func assertKind[W Width](k KindTag[W]) {
	if debugAssertions {
		if err := CheckKind(k); err != nil {
			panic(err)
		}
	}
}

func assertCounter[W Width](v uint32) {
	if debugAssertions {
		if err := CheckCounter[W](v); err != nil {
			panic(err)
		}
	}
}

func assertIncrement[W Width](g Generation[W], delta uint32) {
	if debugAssertions {
		if err := g.CheckIncrement(delta); err != nil {
			panic(err)
		}
	}
}
