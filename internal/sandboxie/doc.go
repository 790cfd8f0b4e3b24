// Package sandboxie edits box sections of Sandboxie.ini without disturbing
// anything else in the file.
//
// Sandboxie owns the file and rewrites it from its own UI, so every call
// here reads it fresh from disk and writes it back only when a section was
// actually added or removed. The file is parsed into typed lines:
//
//	[Viber_Work]         LineHeader
//	Enabled=y            LineKeyValue
//	                     LineBlank
//	# note               LineComment
//	[broken              LineOther
//
// Untouched lines are rendered from their raw text, so line endings,
// spacing and unknown syntax survive a rewrite byte for byte. The text
// encoding is detected from the byte order mark (Sandboxie itself writes
// UTF-16LE with a BOM) and the same encoding is used on write.
package sandboxie
