package token

var keywords = map[string]Kind{
	"const":    KwConst,
	"let":      KwLet,
	"var":      KwVar,
	"return":   KwReturn,
	"function": KwFunction,
	"true":     KwTrue,
	"false":    KwFalse,
	"null":     KwNull,
}

// LookupKeyword returns the keyword kind for text, or Ident if text is not a
// keyword.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
