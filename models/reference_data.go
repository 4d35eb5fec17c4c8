package models

// DefaultExpertises are the proficiency levels, lowest first.
var DefaultExpertises = []string{"Novice", "Beginner", "Intermediate", "Advanced", "Expert"}

// DefaultTags is the language catalogue loaded by the seed mode.
var DefaultTags = []string{
	"JavaScript", "Python", "HTML/CSS", "SQL", "TypeScript", "Java", "C#", "PHP", "C++", "Go", "Rust", "Kotlin",
	"Swift", "Dart", "Ruby", "R", "Shell", "Perl", "Scala", "Objective-C", "Lua", "MATLAB", "Haskell",
	"Clojure", "F#", "Elixir", "Assembly", "VB.NET", "Solidity", "Erlang", "Fortran", "VHDL", "Verilog",
	"Crystal", "Ada", "D", "Nim", "Groovy", "Julia", "OCaml", "T-SQL", "Xojo", "Apex", "Prolog", "Scheme",
	"SASS", "ActionScript", "Forth", "ABAP", "ColdFusion", "LabVIEW", "COBOL", "Tcl", "PL/SQL", "Hack",
	"Racket", "GLSL", "Zig", "Pawn", "OpenCL", "VBScript", "Haxe", "CoffeeScript", "Vala", "Q#", "Awk",
	"PostScript", "Chapel", "XSLT", "Idris", "Smalltalk", "Simula", "Red", "Rebol", "JScript", "Logo", "Eiffel",
	"Mercury", "Boo", "Pike", "PureScript", "Datalog", "MaxScript", "GDScript", "Pug", "Euphoria", "Nix",
	"Ring", "Agda", "Mojo", "Yacc", "Standard ML", "Io", "Genie", "ATS", "Factor", "Joy", "Wren", "Oz",
	"Reason",
}
