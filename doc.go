/*
Package scriptlint checks a translated game script against its original
script line by line. It flags formatting defects that break the text
renderer of the game engine. Nothing is corrected, the result is a list
of issues and their count.

A script has one dialog entry per line and line N of the translated
script belongs to line N of the original script. The text of a line is
interspersed with two-character control codes:

	&p  start a new dialog box
	&d  start Reina's version of the line
	&x  any other pointer code, x is a single character
	$3  highlight marker, opens or closes a highlighted region
	\n  line break inside a dialog box

The engine addresses text in Shift-JIS bytes. ASCII and half-width
katakana take one byte, all other characters take two. Because the
original text is made of double-byte characters the engine only finds
some control codes on even byte offsets. This is why several rules
check the byte parity of text, e.g.

	Kei's line&dReina's line

is fine because "Kei's line" is 10 bytes wide, while

	Kei's lines&dReina's lines

is reported because the text before &d is 11 bytes wide.

# Rules

Rules are independent of each other. Each rule gets the translated and
the original line and reports any number of hits. The default rules run
in this order:

	backslash               backslash not followed by n
	pointers                control codes differ from the original line
	highlight-width         odd byte width between two highlight markers
	reina-offset            odd byte width before the last &d
	highlight-offset        highlight marker on an odd byte offset
	line-length             rendered segment longer than 23 characters
	newline-space           whitespace after \n
	highlight-punct         punctuation inside a highlight
	punct-space             whitespace before highlighted punctuation
	dialog-offset           odd byte width before &p followed by highlights
	pointer-space           whitespace after a pointer code
	highlight-double-space  spaces on both sides of a highlight marker
	double-space            two consecutive spaces

Use [SelectRules] to run a subset.

# Pairing Lines

The [Linter] reads both scripts in lockstep. When one script has fewer
lines than the other the missing lines are checked as empty lines. So a
translated line without a counterpart is still checked by all rules that
only look at the translated text.
*/
package scriptlint
