// Package manifest parses and renders CMake manifests (CMakeLists.txt)
// written in the small subset of the CMake language that cmake-pm
// generates.
//
// # Grammar
//
// A manifest is a sequence of function calls:
//
//	Manifest  → Statement*
//	Statement → Name '(' Arg* ')'
//	Name      → cmake_minimum_required | project | add_executable
//	Arg       → <run of characters other than ' ', ')', '\n', '\t', '\r'>
//
// Statements may be separated by any whitespace. Arguments are separated by
// spaces; newlines, tabs and carriage returns are skipped entirely and never
// split a token. There are no comments, quoting or nested calls.
//
// # Round Trip
//
// [Parse] produces a [Document] whose statements can be edited in place
// (typically with [Document.Append]) and rendered back with
// [Document.String]. Formatting is canonical, not preserved: one statement
// per line, arguments joined by a single space.
//
//	doc, err := manifest.Parse(ctx, "add_executable(app main.cpp)")
//	if err != nil {
//		return err
//	}
//	doc.Append(manifest.KindAddExecutable, "widget.cpp", "widget.h")
//	fmt.Println(doc) // add_executable(app main.cpp widget.cpp widget.h)
//
// # Errors
//
// Parsing stops at the first unknown function name, unmatched ')',
// whitespace inside a function name, invalid UTF-8 byte, or unterminated
// statement. The
// statements parsed up to that point are returned together with a
// [*ParseError] locating the problem.
package manifest
