// Package fuzztests houses Go fuzz harnesses that exercise the front end
// (source -> lexer -> parser) on arbitrary inputs. Its goal is to smoke
// test robustness and guard against panics or hangs on malformed JSX.
package fuzztests
