// Package mathshell implements the expression engine of an interactive
// calculator: parsing infix arithmetic into a syntax tree and reducing it to
// an exact decimal value.
//
// The grammar covers numeric literals, the binary operators + - * / % and **
// (right-associative exponentiation), unary negation, parenthesized grouping,
// single-argument function calls like sin(90), and $name references to
// session variables. Evaluation happens against a Session, which carries the
// angle mode consulted by the trigonometric functions and the variable
// bindings, including the conventional pi, e, and ans.
//
// All arithmetic uses decimal.Decimal rather than native floating point, so
// results keep the precision of their inputs.
package mathshell
