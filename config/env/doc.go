// Package env abstracts reading named variables for the config package.
//
// Resolution code never touches process state directly; it goes through a
// Provider. Production code uses OS or Environ, tests use Map:
//
//	provider := env.Map(map[string]string{"BAR": "7"})
//	bar, err := env.FetchFirst(provider, []string{"SPECIFIC_BAR", "BAR"}, env.Parse[uint32])
//
// Failures are reported as *VariableError wrapping either ErrFetch (the
// provider could not read the variable) or ErrParse (the text could not be
// converted). Absence is never an error at this level.
package env
