// Package asm implements the syntax and symbol resolver for the mipsim
// assembly language.
//
// Tokenized statements are checked against a static instruction catalog and
// resolved into a Program: an ordered, immutable instruction list plus a
// symbol table mapping labels to code addresses or data payloads. Code labels
// address the instruction list relative to the start of the .text segment.
package asm
