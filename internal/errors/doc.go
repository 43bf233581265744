// Package errors provides structured, actionable errors for the vango-ssr
// command line and configuration loader.
//
// Each error carries a registered code that maps to a category, a short
// message, a longer explanation and a documentation URL. Errors raised
// while reading a project file can point at the offending line:
//
//	err := errors.New("E102").
//	    WithLocation("ssr.yaml", 4, 3).
//	    WithSuggestion("render.indent must be a string, for example \"  \"")
//
//	fmt.Print(err.Format())
//	// ERROR E102: Invalid configuration file
//	//
//	//   ssr.yaml:4:3
//	//
//	//        2 │ render:
//	//        3 │   pretty: true
//	//   →    4 │   indent: [1]
//	//          │   ^
//	//
//	//   Hint: render.indent must be a string, for example "  "
//
// Errors produced while rendering a tree are not wrapped in this type;
// component errors reach the caller unchanged.
package errors
