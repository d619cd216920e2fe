// Package pwtext parses a small hierarchical configuration text format into a flat,
// sorted mapping from slash-joined key paths to string values.
//
// # Format
//
// A document is a sequence of statements. A scalar assignment is an identifier
// followed by whitespace (or a configured delimiter) and a value, terminated by ';'.
// A container is an identifier followed by a brace-delimited block of statements:
//
//	tag1 "value1";
//	tag2 10;
//	container1 {
//		subtag1 "subvalue1";
//		subcontainer1 {
//			subsubtag1 "subsubvalue1";
//		}
//	}
//
// Parsing the document above yields:
//
//	container1/subcontainer1/subsubtag1 => subsubvalue1
//	container1/subtag1 => subvalue1
//	tag1 => value1
//	tag2 => 10
//
// Quoted values have their surrounding quotes stripped. There are no comments and
// no escape sequences.
//
// # Error Handling
//
// Parsing never fails. Malformed input degrades into partial or empty results:
// an unterminated trailing statement is dropped, an unmatched '}' resets the
// current path, and a malformed quoted value reads as the empty string.
// Use Document.Valid to check whether anything was produced.
//
// # Typed Access
//
// Values are stored as strings. Get, Lookup and Set convert between a stored
// string and a scalar Go type, and Decode fills a struct from a document.
package pwtext
