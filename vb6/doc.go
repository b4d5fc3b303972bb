// Package vb6 is the public entry point of vb6parse.
//
// FromText turns a Visual Basic 6 source buffer (.bas, .cls, .frm, .ctl)
// into a lossless concrete syntax tree plus the diagnostics found on the
// way. FromSource does the same but folds error diagnostics into a single
// error value. In both cases the tree is always built and Tree.Text()
// reproduces the input byte for byte.
//
//	tree, diags := vb6.FromText("Module1.bas", src)
//	fmt.Print(tree.DebugTree())
//
// Parsing holds no global state, so separate buffers can be parsed from
// separate goroutines.
package vb6
