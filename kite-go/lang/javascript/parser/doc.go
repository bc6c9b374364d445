// Package parser builds an ast.ProgramNode from JavaScript source.
//
// The grammar covered is a subset of ES5. Known deviations:
//
// - Only block, var, empty, if and expression statements are recognized.
//   Loops, functions, switch, try, return and the other statements are not,
//   so their keywords surface as an unexpected token.
// - Automatic semicolon insertion is not performed: expression and var
//   statements must end with ';'. The one newline rule honored is that
//   postfix ++ and -- do not apply across a line terminator.
// - A line terminator inside a block comment does not count as a newline
//   for the postfix rule.
// - String, regular expression, array and object literals are not
//   recognized by the scanner.
// - Parentheses are not recorded in the tree.
// - No lvalue checks: 1 = 2 parses as an assignment.
// - Input must be ASCII.
package parser
