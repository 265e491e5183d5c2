// Package config builds typed configuration values from layered, partial sources.
//
// Every configuration type T has a partial counterpart P, usually generated by
// cmd/layergen, in which every leaf is optional and every nested configuration
// is itself a partial. Partials are combined left to right and then resolved:
//
//	cfg, err := config.Resolve[Sample, SamplePartial](
//	    config.Defaults[SamplePartial](),
//	    config.Document[SamplePartial](tomlparser.NewParser(), fetcher, ""),
//	    config.Environment[SamplePartial](env.OS()),
//	)
//
// Resolution never stops at the first problem. A failed resolution returns a
// FieldErrors listing every missing or invalid field with its dotted path:
//
//	var fieldErrs config.FieldErrors
//	if errors.As(err, &fieldErrs) {
//	    for _, entry := range fieldErrs.Entries() {
//	        fmt.Println(entry.Key(), entry.Err)
//	    }
//	}
//
// The package keeps the two extension points used to read documents:
//   - Parser: deserializes raw data into a partial, with path navigation support
//   - DataFetcher: retrieves raw config data (file, inline variable, etc.)
//
// # Path Navigation
//
// Document layers accept a path that targets a section of the document. Paths
// use colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	""                          -> entire document
package config
