/*
Package main implements rforth, a small stack language in the FORTH tradition.

A program is a sequence of tokens separated by whitespace. Each token is
either the name of a word in the dictionary, which runs it, or a number, which
is pushed onto the stack. Anything else is reported as

	token ??

and evaluation goes on with the next token.

Numbers are 64-bit integers or floats. Integer literals take Go syntax,
including the 0x 0o and 0b prefixes; anything else that parses as a float is
one. Arithmetic on two integers stays integral, while any float operand makes
the result a float.

The built-in words are

	dup ?dup drop swap over rot   stack shuffles
	+ - * /                       arithmetic
	. .S cr .D                    output
	: alias                       definitions
	\                             comment to the end of the line
	bye                           end the session

A definition

	: sq dup * ;

binds sq to the words between its name and the ; as they are defined when the
definition is read. Redefining a word later does not change the behavior of
definitions that used it, and neither does rebinding a word named by alias.
Immediate words, like \, run while a definition is being read rather than
being compiled into it.

Usage:

	rforth [options] [file.fs ...]

Source files are evaluated in order, after a short prelude of common words
(see prelude.go), followed by standard input when no files are given or when
-i is passed. A terminal is read a line at a time with editing and history;
-tui runs a full screen session instead.
*/
package main
