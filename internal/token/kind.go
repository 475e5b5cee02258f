package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null

	// NumberLit represents a numeric literal token.
	NumberLit
	// StringLit represents a string literal token ('...' or "...").
	StringLit

	// LParen and friends are bracket tokens.
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]

	// Lt and the other JSX-significant composites.
	Lt      // <
	Gt      // >
	LtSlash // </
	SlashGt // />

	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	FatArrow      // =>
	Question      // ?
	Colon         // :
	AndAnd        // &&
	OrOr          // ||
	QuestionQuestion // ??
	Bang          // !
	EqEq          // ==
	EqEqEq        // ===
	BangEq        // !=
	BangEqEq      // !==
	LtEq          // <=
	GtEq          // >=
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Comma         // ,
	Semicolon     // ;
	Dot           // .
	Ellipsis      // ...
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	KwConst:          "const",
	KwLet:            "let",
	KwVar:            "var",
	KwReturn:         "return",
	KwFunction:       "function",
	KwTrue:           "true",
	KwFalse:          "false",
	KwNull:           "null",
	NumberLit:        "Number",
	StringLit:        "String",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Lt:               "<",
	Gt:               ">",
	LtSlash:          "</",
	SlashGt:          "/>",
	Assign:           "=",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	PercentAssign:    "%=",
	FatArrow:         "=>",
	Question:         "?",
	Colon:            ":",
	AndAnd:           "&&",
	OrOr:             "||",
	QuestionQuestion: "??",
	Bang:             "!",
	EqEq:             "==",
	EqEqEq:           "===",
	BangEq:           "!=",
	BangEqEq:         "!==",
	LtEq:             "<=",
	GtEq:             ">=",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Percent:          "%",
	Comma:            ",",
	Semicolon:        ";",
	Dot:              ".",
	Ellipsis:         "...",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsAssignOp reports whether the kind is an assignment operator.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}

// IsLogicalOp reports whether the kind is a logical operator (&&, ||, ??).
func (k Kind) IsLogicalOp() bool {
	switch k {
	case AndAnd, OrOr, QuestionQuestion:
		return true
	default:
		return false
	}
}
